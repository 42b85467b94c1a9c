package repositories

import (
	"errors"

	"gigslk_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrHostProfileNotFound      = errors.New("host profile not found")
	ErrPerformerProfileNotFound = errors.New("performer profile not found")
)

// PerformerListing is a directory row joining the profile with its user.
type PerformerListing struct {
	models.PerformerProfile
	Username string
	Email    string
}

type ProfileRepository interface {
	// Host profile
	CreateHostProfile(db *gorm.DB, profile *models.HostProfile) error
	UpsertHostProfile(db *gorm.DB, profile *models.HostProfile) error
	FindHostByUserID(db *gorm.DB, userID string) (*models.HostProfile, error)
	FindHostByID(db *gorm.DB, id string) (*models.HostProfile, error)
	DeleteHostByUserID(db *gorm.DB, userID string) error

	// Performer profile
	CreatePerformerProfile(db *gorm.DB, profile *models.PerformerProfile) error
	UpsertPerformerProfile(db *gorm.DB, profile *models.PerformerProfile) error
	FindPerformerByUserID(db *gorm.DB, userID string) (*models.PerformerProfile, error)
	FindPerformerByID(db *gorm.DB, id string) (*models.PerformerProfile, error)
	DeletePerformerByUserID(db *gorm.DB, userID string) error
	FindAllPerformers(db *gorm.DB, limit, offset int) ([]PerformerListing, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// hostUpsertColumns is everything a profile update may change. Aggregate
// fields (events_hosted, average_rating, total_reviews) are excluded: they
// are maintained outside this layer.
var hostUpsertColumns = []string{
	"company_organization", "contact_person", "contact_number", "location",
	"event_types_typically_hosted", "bio",
	"default_budget_range_min", "default_budget_range_max",
	"preferred_performer_types", "preferred_locations_for_gigs",
	"urgent_booking_enabled", "email_notifications_enabled", "sms_notifications_enabled",
	"profile_picture_url", "gallery_images", "updated_at",
}

var performerUpsertColumns = []string{
	"full_name", "stage_name", "location", "performance_type", "bio",
	"price_display", "skills", "contact_number",
	"accept_direct_booking", "travel_distance_km",
	"preferred_availability_weekdays", "preferred_availability_weekends",
	"preferred_availability_mornings", "preferred_availability_evenings",
	"profile_picture_url", "gallery_images", "updated_at",
}

func (r *ProfileRepositoryImpl) CreateHostProfile(db *gorm.DB, profile *models.HostProfile) error {
	return db.Create(profile).Error
}

// UpsertHostProfile performs a single atomic insert-or-update keyed on the
// unique user_id index. Two concurrent first-time upserts for the same user
// serialize on the conflict target instead of both inserting.
func (r *ProfileRepositoryImpl) UpsertHostProfile(db *gorm.DB, profile *models.HostProfile) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(hostUpsertColumns),
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindHostByUserID(db *gorm.DB, userID string) (*models.HostProfile, error) {
	var profile models.HostProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindHostByID(db *gorm.DB, id string) (*models.HostProfile, error) {
	var profile models.HostProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) DeleteHostByUserID(db *gorm.DB, userID string) error {
	return db.Delete(&models.HostProfile{}, "user_id = ?", userID).Error
}

func (r *ProfileRepositoryImpl) CreatePerformerProfile(db *gorm.DB, profile *models.PerformerProfile) error {
	return db.Create(profile).Error
}

// UpsertPerformerProfile mirrors UpsertHostProfile for the performer table.
func (r *ProfileRepositoryImpl) UpsertPerformerProfile(db *gorm.DB, profile *models.PerformerProfile) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(performerUpsertColumns),
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindPerformerByUserID(db *gorm.DB, userID string) (*models.PerformerProfile, error) {
	var profile models.PerformerProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindPerformerByID(db *gorm.DB, id string) (*models.PerformerProfile, error) {
	var profile models.PerformerProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) DeletePerformerByUserID(db *gorm.DB, userID string) error {
	return db.Delete(&models.PerformerProfile{}, "user_id = ?", userID).Error
}

func (r *ProfileRepositoryImpl) FindAllPerformers(db *gorm.DB, limit, offset int) ([]PerformerListing, error) {
	var listings []PerformerListing
	query := db.Model(&models.PerformerProfile{}).
		Select("performer_profiles.*, users.username, users.email").
		Joins("JOIN users ON users.id = performer_profiles.user_id").
		Order("performer_profiles.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
