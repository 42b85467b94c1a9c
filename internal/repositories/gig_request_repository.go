package repositories

import (
	"errors"

	"gigslk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigRequestNotFound = errors.New("gig request not found")

type GigRequestRepository interface {
	Create(db *gorm.DB, request *models.GigRequest) error
	FindByID(db *gorm.DB, id string) (*models.GigRequest, error)
	// UpdateStatus reports ErrGigRequestNotFound when zero rows match; a
	// missing row and a stale id are indistinguishable by contract.
	UpdateStatus(db *gorm.DB, id string, status models.GigRequestStatus) error
}

type GigRequestRepositoryImpl struct{}

func NewGigRequestRepository() GigRequestRepository {
	return &GigRequestRepositoryImpl{}
}

func (r *GigRequestRepositoryImpl) Create(db *gorm.DB, request *models.GigRequest) error {
	return db.Create(request).Error
}

func (r *GigRequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.GigRequest, error) {
	var request models.GigRequest
	err := db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *GigRequestRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.GigRequestStatus) error {
	result := db.Model(&models.GigRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigRequestNotFound
	}
	return nil
}
