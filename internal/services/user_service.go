package services

import (
	"fmt"
	"net/url"
	"strings"

	"gigslk_backend/internal/auth"
	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService covers the admin user management surface.
type UserService interface {
	ListUsers(db *gorm.DB, limit, offset int) (*dto.AdminUserListResponse, error)
	AddUser(db *gorm.DB, req *dto.AddUserRequest) (string, error)
	DeleteUser(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, limit, offset int) (*dto.AdminUserListResponse, error) {
	users, err := s.userRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	formatted := make([]dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		formatted = append(formatted, dto.AdminUserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     string(user.Role),
			Status:   "Active",
			Avatar:   avatarPlaceholder(user.Username),
		})
	}

	return &dto.AdminUserListResponse{
		Users:   formatted,
		Message: "Users fetched successfully.",
	}, nil
}

// avatarPlaceholder builds the initial-letter placeholder image URL used by
// the admin dashboard. The initial is the first rune, not the first byte, so
// multi-byte usernames stay valid UTF-8 in the query string.
func avatarPlaceholder(username string) string {
	initial := "?"
	if runes := []rune(username); len(runes) > 0 {
		initial = strings.ToUpper(string(runes[0]))
	}
	return fmt.Sprintf("https://placehold.co/40x40/553c9a/ffffff?text=%s", url.QueryEscape(initial))
}

// AddUser is the admin variant of registration: the role may also be "admin",
// which gets no profile row.
func (s *UserServiceImpl) AddUser(db *gorm.DB, req *dto.AddUserRequest) (string, error) {
	role := models.UserRole(req.Role)
	switch role {
	case models.UserRoleHost, models.UserRolePerformer, models.UserRoleAdmin:
	default:
		return "", apperrors.NewBadRequestError("Invalid role specified.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return "", apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	exists, err := s.userRepo.ExistsByEmail(tx, req.Email)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if exists {
		return "", apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(tx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		return "", apperrors.InternalError(err)
	}

	switch role {
	case models.UserRolePerformer:
		err = s.profileRepo.CreatePerformerProfile(tx, &models.PerformerProfile{
			UserID:    user.ID,
			StageName: user.Username,
		})
	case models.UserRoleHost:
		err = s.profileRepo.CreateHostProfile(tx, &models.HostProfile{
			UserID:              user.ID,
			CompanyOrganization: user.Username,
		})
	}
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return "", apperrors.InternalError(err)
	}

	return user.ID, nil
}

// DeleteUser removes the role profile and the user row together.
func (s *UserServiceImpl) DeleteUser(db *gorm.DB, userID string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user, err := s.userRepo.FindByID(tx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	switch user.Role {
	case models.UserRolePerformer:
		err = s.profileRepo.DeletePerformerByUserID(tx, user.ID)
	case models.UserRoleHost:
		err = s.profileRepo.DeleteHostByUserID(tx, user.ID)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.Delete(tx, user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
