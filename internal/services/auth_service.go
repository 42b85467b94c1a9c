package services

import (
	"gigslk_backend/internal/auth"
	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register creates the user and its role profile in one transaction. The
// profile starts out named after the username; everything else is filled in
// later through the profile upsert.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleHost && role != models.UserRolePerformer {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	exists, err := s.userRepo.ExistsByEmail(tx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(tx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createRoleProfile(tx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResponse{
		Message: "User registered successfully!",
		UserID:  user.ID,
		Role:    string(user.Role),
	}, nil
}

func (s *AuthServiceImpl) createRoleProfile(tx *gorm.DB, user *models.User) error {
	switch user.Role {
	case models.UserRolePerformer:
		return s.profileRepo.CreatePerformerProfile(tx, &models.PerformerProfile{
			UserID:    user.ID,
			StageName: user.Username,
		})
	case models.UserRoleHost:
		return s.profileRepo.CreateHostProfile(tx, &models.HostProfile{
			UserID:              user.ID,
			CompanyOrganization: user.Username,
		})
	}
	// Admins have no profile row.
	return nil
}

// loginDummyHash is a valid bcrypt hash of a throwaway value. The
// unknown-email path verifies against it so both login failures cost one
// bcrypt comparison.
const loginDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates by email and password. Unknown email and wrong password
// produce the identical error, in content and in timing.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			auth.CheckPasswordHash(req.Password, loginDummyHash)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message: "Login successful!",
		Token:   token,
		User: dto.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
