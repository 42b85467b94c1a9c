package services

import (
	"fmt"
	"time"

	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(db *gorm.DB, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	GetNotifications(db *gorm.DB, userID string) ([]dto.NotificationResponse, error)
}

type BookingServiceImpl struct {
	bookingRepo repositories.BookingRepository
	notifRepo   repositories.NotificationRepository
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	notifRepo repositories.NotificationRepository,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		notifRepo:   notifRepo,
	}
}

// CreateBooking inserts the booking and the performer's notification in one
// transaction. Either both rows exist afterwards or neither does.
func (s *BookingServiceImpl) CreateBooking(db *gorm.DB, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid event_date format. Expected YYYY-MM-DD.")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	booking := &models.Booking{
		PerformerUserID: req.PerformerID,
		HostUserID:      req.HostID,
		EventDate:       eventDate,
		EventTime:       req.EventTime,
		EventLocation:   req.EventLocation,
		Notes:           req.Notes,
	}
	if err := s.bookingRepo.Create(tx, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	notification := &models.Notification{
		UserID:      req.PerformerID,
		Type:        models.NotificationTypeBooking,
		ActorUserID: &booking.HostUserID,
		BookingID:   &booking.ID,
		Title:       "New booking received",
		Message:     bookingNotificationMessage(req.EventDate, req.EventLocation),
	}
	if err := s.notifRepo.Create(tx, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateBookingResponse{
		Message:   "Booking created and artist notified",
		BookingID: booking.ID,
	}, nil
}

func bookingNotificationMessage(date, location string) string {
	msg := "You were booked"
	if date != "" {
		msg += fmt.Sprintf(" for %s", date)
	}
	if location != "" {
		msg += fmt.Sprintf(" at %s", location)
	}
	return msg + "."
}

func (s *BookingServiceImpl) GetNotifications(db *gorm.DB, userID string) ([]dto.NotificationResponse, error) {
	notifications, err := s.notifRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	formatted := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		formatted = append(formatted, dto.NotificationResponse{
			ID:          n.ID,
			UserID:      n.UserID,
			Type:        n.Type,
			ActorUserID: n.ActorUserID,
			BookingID:   n.BookingID,
			Title:       n.Title,
			Message:     n.Message,
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
		})
	}
	return formatted, nil
}
