package services

import (
	"fmt"

	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GigRequestService interface {
	RequestGig(db *gorm.DB, performerUserID, gigID string) error
	RespondToRequest(db *gorm.DB, requestID string, req *dto.RespondToRequestRequest) error
}

type GigRequestServiceImpl struct {
	gigRepo        repositories.GigRepository
	gigRequestRepo repositories.GigRequestRepository
	profileRepo    repositories.ProfileRepository
	userRepo       repositories.UserRepository
	notifRepo      repositories.NotificationRepository
}

func NewGigRequestService(
	gigRepo repositories.GigRepository,
	gigRequestRepo repositories.GigRequestRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) GigRequestService {
	return &GigRequestServiceImpl{
		gigRepo:        gigRepo,
		gigRequestRepo: gigRequestRepo,
		profileRepo:    profileRepo,
		userRepo:       userRepo,
		notifRepo:      notifRepo,
	}
}

// RequestGig records a performer's interest in a gig and notifies the gig's
// host in the same transaction.
func (s *GigRequestServiceImpl) RequestGig(db *gorm.DB, performerUserID, gigID string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	gig, err := s.gigRepo.FindByID(tx, gigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return apperrors.ErrGigNotFound
		}
		return apperrors.InternalError(err)
	}

	performer, err := s.profileRepo.FindPerformerByUserID(tx, performerUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPerformerProfileNotFound) {
			return apperrors.ErrPerformerProfileNotFound
		}
		return apperrors.InternalError(err)
	}

	request := &models.GigRequest{
		GigID:       gig.ID,
		PerformerID: performer.ID,
		Status:      models.GigRequestStatusPending,
	}
	if err := s.gigRequestRepo.Create(tx, request); err != nil {
		return apperrors.InternalError(err)
	}

	host, err := s.profileRepo.FindHostByID(tx, gig.HostID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHostProfileNotFound) {
			return apperrors.NewNotFoundError("hosts", "Host not found.")
		}
		return apperrors.InternalError(err)
	}

	performerName := performer.StageName
	if user, err := s.userRepo.FindByID(tx, performerUserID); err == nil {
		performerName = user.Username
	}

	notification := &models.Notification{
		UserID:      host.UserID,
		Type:        models.NotificationTypeGigRequest,
		ActorUserID: &performerUserID,
		Title:       "New gig request",
		Message:     fmt.Sprintf("%s requested to join your gig '%s'. Accept or reject?", performerName, gig.Title),
	}
	if err := s.notifRepo.Create(tx, notification); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RespondToRequest records the host's decision. Accepting notifies the
// performer; rejecting is silent. A second response simply overwrites the
// first.
func (s *GigRequestServiceImpl) RespondToRequest(db *gorm.DB, requestID string, req *dto.RespondToRequestRequest) error {
	status := models.GigRequestStatus(req.Response)
	if status != models.GigRequestStatusAccepted && status != models.GigRequestStatusRejected {
		return apperrors.NewBadRequestError(`Response must be "accepted" or "rejected".`)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.gigRequestRepo.UpdateStatus(tx, requestID, status); err != nil {
		if apperrors.Is(err, repositories.ErrGigRequestNotFound) {
			return apperrors.ErrGigRequestNotFound
		}
		return apperrors.InternalError(err)
	}

	if status == models.GigRequestStatusAccepted {
		request, err := s.gigRequestRepo.FindByID(tx, requestID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		gig, err := s.gigRepo.FindByID(tx, request.GigID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrGigNotFound) {
				return apperrors.ErrGigNotFound
			}
			return apperrors.InternalError(err)
		}
		performer, err := s.profileRepo.FindPerformerByID(tx, request.PerformerID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPerformerProfileNotFound) {
				return apperrors.ErrPerformerProfileNotFound
			}
			return apperrors.InternalError(err)
		}

		notification := &models.Notification{
			UserID:  performer.UserID,
			Type:    models.NotificationTypeGigRequest,
			Title:   "Gig request accepted",
			Message: fmt.Sprintf("Host confirmed you for the gig '%s'.", gig.Title),
		}
		if err := s.notifRepo.Create(tx, notification); err != nil {
			return apperrors.InternalError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
