package repositories

import (
	"gigslk_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByUserID(db *gorm.DB, userID string) ([]models.Notification, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUserID(db *gorm.DB, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
