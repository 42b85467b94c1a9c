package repositories

import (
	"time"

	"gigslk_backend/internal/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindDatesByPerformerUserID(db *gorm.DB, performerUserID string) ([]time.Time, error)
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindDatesByPerformerUserID(db *gorm.DB, performerUserID string) ([]time.Time, error) {
	var dates []time.Time
	err := db.Model(&models.Booking{}).
		Where("performer_user_id = ?", performerUserID).
		Order("event_date ASC").
		Pluck("event_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
