package services

import (
	"strconv"
	"time"

	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GigService interface {
	CreateGig(db *gorm.DB, hostUserID string, req *dto.CreateGigRequest) (*dto.CreateGigResponse, error)
	ListGigs(db *gorm.DB, query *dto.GigListQuery, limit, offset int) ([]dto.GigResponse, error)
	GetGig(db *gorm.DB, id string) (*dto.GigResponse, error)
}

type GigServiceImpl struct {
	gigRepo     repositories.GigRepository
	profileRepo repositories.ProfileRepository
}

func NewGigService(
	gigRepo repositories.GigRepository,
	profileRepo repositories.ProfileRepository,
) GigService {
	return &GigServiceImpl{
		gigRepo:     gigRepo,
		profileRepo: profileRepo,
	}
}

// CreateGig posts a gig owned by the caller's host profile. Optional fields
// stay null rather than defaulting to zero values.
func (s *GigServiceImpl) CreateGig(db *gorm.DB, hostUserID string, req *dto.CreateGigRequest) (*dto.CreateGigResponse, error) {
	hostProfile, err := s.profileRepo.FindHostByUserID(db, hostUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHostProfileNotFound) {
			return nil, apperrors.NewBadRequestError("Host profile not found for this user.")
		}
		return nil, apperrors.InternalError(err)
	}

	gig := &models.Gig{
		HostID:          hostProfile.ID,
		Title:           req.Title,
		Description:     optionalString(req.Description),
		PerformanceType: optionalString(req.EventType),
		EventTime:       optionalString(req.Time),
		EventLocation:   optionalString(req.Location),
		BudgetMin:       req.MinPrice,
		BudgetMax:       req.MaxPrice,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date format. Expected YYYY-MM-DD.")
		}
		gig.EventDate = &date
	}
	if len(req.Talents) > 0 {
		gig.SetRequirements(req.Talents)
	}

	if err := s.gigRepo.Create(db, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateGigResponse{
		Message: "Gig posted successfully!",
		GigID:   gig.ID,
	}, nil
}

func (s *GigServiceImpl) ListGigs(db *gorm.DB, query *dto.GigListQuery, limit, offset int) ([]dto.GigResponse, error) {
	filter := repositories.GigFilter{
		Search:    query.Search,
		Location:  query.Location,
		EventType: query.EventType,
		MinPrice:  optionalFloat(query.MinPrice),
		MaxPrice:  optionalFloat(query.MaxPrice),
		Limit:     limit,
		Offset:    offset,
	}

	listings, err := s.gigRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	gigs := make([]dto.GigResponse, 0, len(listings))
	for i := range listings {
		gigs = append(gigs, gigResponse(&listings[i]))
	}
	return gigs, nil
}

func (s *GigServiceImpl) GetGig(db *gorm.DB, id string) (*dto.GigResponse, error) {
	listing, err := s.gigRepo.FindListingByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := gigResponse(listing)
	return &resp, nil
}

// gigResponse flattens a joined listing row into the wire shape. The host
// display name falls back to the account username when the organization is
// blank.
func gigResponse(l *repositories.GigListing) dto.GigResponse {
	hostName := l.CompanyOrganization
	if hostName == "" {
		hostName = l.Username
	}
	return dto.GigResponse{
		ID:                 l.ID,
		HostID:             l.HostID,
		Title:              l.Title,
		Location:           l.EventLocation,
		Date:               l.EventDate,
		Time:               l.EventTime,
		Description:        l.Description,
		MinPrice:           l.BudgetMin,
		MaxPrice:           l.BudgetMax,
		SkillsNeeded:       l.GetRequirements(),
		PostedDate:         l.CreatedAt,
		HostName:           hostName,
		HostProfilePicture: l.ProfilePictureURL,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
