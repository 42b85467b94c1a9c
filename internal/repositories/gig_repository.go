package repositories

import (
	"errors"

	"gigslk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigNotFound = errors.New("gig not found")

// GigFilter holds the optional list predicates, AND-combined.
type GigFilter struct {
	Search    string   // substring over title, description, requirements
	Location  string   // substring over event_location
	EventType string   // substring over performance_type
	MinPrice  *float64 // overlaps when budget_max >= MinPrice
	MaxPrice  *float64 // overlaps when budget_min <= MaxPrice
	Limit     int
	Offset    int
}

// GigListing joins a gig with its host's display fields.
type GigListing struct {
	models.Gig
	CompanyOrganization string
	Username            string
	ProfilePictureURL   *string
}

type GigRepository interface {
	Create(db *gorm.DB, gig *models.Gig) error
	FindByID(db *gorm.DB, id string) (*models.Gig, error)
	FindListingByID(db *gorm.DB, id string) (*GigListing, error)
	FindWithFilter(db *gorm.DB, filter GigFilter) ([]GigListing, error)
}

type GigRepositoryImpl struct{}

func NewGigRepository() GigRepository {
	return &GigRepositoryImpl{}
}

func (r *GigRepositoryImpl) Create(db *gorm.DB, gig *models.Gig) error {
	return db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Gig, error) {
	var gig models.Gig
	err := db.First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func listingQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Gig{}).
		Select("gigs.*, host_profiles.company_organization, host_profiles.profile_picture_url, users.username").
		Joins("JOIN host_profiles ON gigs.host_id = host_profiles.id").
		Joins("JOIN users ON host_profiles.user_id = users.id")
}

func (r *GigRepositoryImpl) FindListingByID(db *gorm.DB, id string) (*GigListing, error) {
	var listing GigListing
	err := listingQuery(db).Where("gigs.id = ?", id).Take(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// FindWithFilter applies the optional predicates and orders newest-first.
// Substring matches use ILIKE so filtering is case-insensitive regardless of
// column collation.
func (r *GigRepositoryImpl) FindWithFilter(db *gorm.DB, filter GigFilter) ([]GigListing, error) {
	query := listingQuery(db)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"gigs.title ILIKE ? OR gigs.description ILIKE ? OR gigs.requirements::text ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("gigs.event_location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.EventType != "" {
		query = query.Where("gigs.performance_type ILIKE ?", "%"+filter.EventType+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("gigs.budget_max >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("gigs.budget_min <= ?", *filter.MaxPrice)
	}

	query = query.Order("gigs.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var listings []GigListing
	if err := query.Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
