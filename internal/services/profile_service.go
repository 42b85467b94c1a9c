package services

import (
	"encoding/json"
	"strconv"

	"gigslk_backend/internal/mediapaths"
	"gigslk_backend/internal/models"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	hostPlaceholderPicture      = "https://placehold.co/150x150/553c9a/ffffff?text=Host"
	performerPlaceholderPicture = "https://placehold.co/150x150/553c9a/ffffff?text=Profile"
)

// ProfileUpsertResult reports whether the upsert inserted a fresh row, so the
// handler can pick between 200 and 201.
type ProfileUpsertResult struct {
	Created bool
}

type ProfileService interface {
	GetHostProfile(db *gorm.DB, userID string) (*dto.ProfileEnvelope, error)
	UpdateHostProfile(db *gorm.DB, userID string, req *dto.UpdateHostProfileRequest) (*ProfileUpsertResult, error)
	GetPerformerProfile(db *gorm.DB, userID string) (*dto.ProfileEnvelope, error)
	UpdatePerformerProfile(db *gorm.DB, userID string, req *dto.UpdatePerformerProfileRequest) (*ProfileUpsertResult, error)
	ListPerformers(db *gorm.DB, limit, offset int) ([]dto.PerformerProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	bookingRepo repositories.BookingRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	bookingRepo repositories.BookingRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
	}
}

// GetHostProfile returns the stored profile, or a username-derived default
// when none exists yet. A missing profile is not an error for this endpoint.
func (s *ProfileServiceImpl) GetHostProfile(db *gorm.DB, userID string) (*dto.ProfileEnvelope, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindHostByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHostProfileNotFound) {
			return &dto.ProfileEnvelope{
				Message: "Host profile not found, returning default.",
				Profile: defaultHostProfile(user),
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileEnvelope{
		Message: "Host profile fetched successfully.",
		Profile: hostProfileResponse(profile),
	}, nil
}

func defaultHostProfile(user *models.User) dto.HostProfileResponse {
	return dto.HostProfileResponse{
		UserID:                    user.ID,
		CompanyOrganization:       user.Username,
		Location:                  "Not Set",
		EventTypesTypicallyHosted: []string{},
		PreferredPerformerTypes:   []string{},
		PreferredLocationsForGigs: []string{},
		ProfilePictureURL:         hostPlaceholderPicture,
		GalleryImages:             []string{},
	}
}

func hostProfileResponse(p *models.HostProfile) dto.HostProfileResponse {
	return dto.HostProfileResponse{
		ID:                        p.ID,
		UserID:                    p.UserID,
		CompanyOrganization:       p.CompanyOrganization,
		ContactPerson:             p.ContactPerson,
		ContactNumber:             p.ContactNumber,
		Location:                  p.Location,
		EventTypesTypicallyHosted: p.GetEventTypes(),
		Bio:                       p.Bio,
		DefaultBudgetRangeMin:     p.DefaultBudgetRangeMin,
		DefaultBudgetRangeMax:     p.DefaultBudgetRangeMax,
		PreferredPerformerTypes:   p.GetPreferredPerformerTypes(),
		PreferredLocationsForGigs: p.GetPreferredLocations(),
		UrgentBookingEnabled:      p.UrgentBookingEnabled,
		EmailNotificationsEnabled: p.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   p.SmsNotificationsEnabled,
		ProfilePictureURL:         stringOrEmpty(p.ProfilePictureURL),
		GalleryImages:             p.GetGalleryImages(),
		EventsHosted:              p.EventsHosted,
		AverageRating:             p.AverageRating,
		TotalReviews:              p.TotalReviews,
	}
}

// UpdateHostProfile writes the whole profile through a single atomic upsert
// keyed on user_id. The existence check only decides created-vs-updated for
// the response; correctness does not depend on it.
func (s *ProfileServiceImpl) UpdateHostProfile(db *gorm.DB, userID string, req *dto.UpdateHostProfileRequest) (*ProfileUpsertResult, error) {
	profile := &models.HostProfile{
		UserID:              userID,
		CompanyOrganization: req.CompanyOrganization,
		ContactPerson:       req.ContactPerson,
		ContactNumber:       req.ContactNumber,
		Location:            req.Location,
		Bio:                 req.Bio,

		DefaultBudgetRangeMin:     parseFloatField(req.DefaultBudgetRangeMin),
		DefaultBudgetRangeMax:     parseFloatField(req.DefaultBudgetRangeMax),
		UrgentBookingEnabled:      parseBoolField(req.UrgentBookingEnabled),
		EmailNotificationsEnabled: parseBoolField(req.EmailNotificationsEnabled),
		SmsNotificationsEnabled:   parseBoolField(req.SmsNotificationsEnabled),
	}
	profile.SetEventTypes(parseListField(req.EventTypesTypicallyHosted))
	profile.SetPreferredPerformerTypes(parseListField(req.PreferredPerformerTypes))
	profile.SetPreferredLocations(parseListField(req.PreferredLocationsForGigs))

	profile.ProfilePictureURL = resolveProfilePicture(req.NewProfilePicturePath, req.ProfilePictureURL)
	profile.SetGalleryImages(resolveGallery(req.GalleryImages, req.NewGalleryPaths))

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	created := false
	if _, err := s.profileRepo.FindHostByUserID(tx, userID); err != nil {
		if !apperrors.Is(err, repositories.ErrHostProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		created = true
	}

	if err := s.profileRepo.UpsertHostProfile(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &ProfileUpsertResult{Created: created}, nil
}

// GetPerformerProfile mirrors the host fetch and additionally includes the
// performer's booked dates.
func (s *ProfileServiceImpl) GetPerformerProfile(db *gorm.DB, userID string) (*dto.ProfileEnvelope, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindPerformerByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPerformerProfileNotFound) {
			return &dto.ProfileEnvelope{
				Message: "Performer profile not found, returning default.",
				Profile: defaultPerformerProfile(user),
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	dates, err := s.bookingRepo.FindDatesByPerformerUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	bookedDates := make([]string, 0, len(dates))
	for _, d := range dates {
		bookedDates = append(bookedDates, d.Format("2006-01-02"))
	}

	resp := performerProfileResponse(profile)
	resp.BookedDates = bookedDates

	return &dto.ProfileEnvelope{
		Message: "Performer profile fetched successfully.",
		Profile: resp,
	}, nil
}

func defaultPerformerProfile(user *models.User) dto.PerformerProfileResponse {
	return dto.PerformerProfileResponse{
		UserID:            user.ID,
		FullName:          user.Username,
		StageName:         user.Username,
		Location:          "Not Set",
		PerformanceType:   "Not Set",
		Bio:               "Tell us about your talent and experience!",
		Price:             "Rs. 0 - Rs. 0",
		Skills:            []string{},
		ProfilePictureURL: performerPlaceholderPicture,
		ContactNumber:     "Not Set",
		GalleryImages:     []string{},
	}
}

func performerProfileResponse(p *models.PerformerProfile) dto.PerformerProfileResponse {
	return dto.PerformerProfileResponse{
		ID:                   p.ID,
		UserID:               p.UserID,
		FullName:             p.FullName,
		StageName:            p.StageName,
		Location:             p.Location,
		PerformanceType:      p.PerformanceType,
		Bio:                  p.Bio,
		Price:                p.PriceDisplay,
		Skills:               p.GetSkills(),
		ProfilePictureURL:    stringOrEmpty(p.ProfilePictureURL),
		ContactNumber:        p.ContactNumber,
		DirectBooking:        p.AcceptDirectBooking,
		TravelDistance:       p.TravelDistanceKM,
		AvailabilityWeekdays: p.PreferredAvailabilityWeekdays,
		AvailabilityWeekends: p.PreferredAvailabilityWeekends,
		AvailabilityMorning:  p.PreferredAvailabilityMornings,
		AvailabilityEvening:  p.PreferredAvailabilityEvenings,
		GalleryImages:        p.GetGalleryImages(),
		Rating:               p.AverageRating,
		ReviewCount:          p.TotalReviews,
	}
}

func (s *ProfileServiceImpl) UpdatePerformerProfile(db *gorm.DB, userID string, req *dto.UpdatePerformerProfileRequest) (*ProfileUpsertResult, error) {
	profile := &models.PerformerProfile{
		UserID:          userID,
		FullName:        req.FullName,
		StageName:       req.StageName,
		Location:        req.Location,
		PerformanceType: req.PerformanceType,
		Bio:             req.Bio,
		PriceDisplay:    req.Price,
		ContactNumber:   req.ContactNumber,

		AcceptDirectBooking: parseBoolField(req.DirectBooking),
		TravelDistanceKM:    parseIntField(req.TravelDistance),

		PreferredAvailabilityWeekdays: parseBoolField(req.AvailabilityWeekdays),
		PreferredAvailabilityWeekends: parseBoolField(req.AvailabilityWeekends),
		PreferredAvailabilityMornings: parseBoolField(req.AvailabilityMorning),
		PreferredAvailabilityEvenings: parseBoolField(req.AvailabilityEvening),
	}
	profile.SetSkills(parseListField(req.Skills))

	profile.ProfilePictureURL = resolveProfilePicture(req.NewProfilePicturePath, req.ProfilePictureURL)
	profile.SetGalleryImages(resolveGallery(req.GalleryImages, req.NewGalleryPaths))

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	created := false
	if _, err := s.profileRepo.FindPerformerByUserID(tx, userID); err != nil {
		if !apperrors.Is(err, repositories.ErrPerformerProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		created = true
	}

	if err := s.profileRepo.UpsertPerformerProfile(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &ProfileUpsertResult{Created: created}, nil
}

// ListPerformers is the public performer directory.
func (s *ProfileServiceImpl) ListPerformers(db *gorm.DB, limit, offset int) ([]dto.PerformerProfileResponse, error) {
	listings, err := s.profileRepo.FindAllPerformers(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profiles := make([]dto.PerformerProfileResponse, 0, len(listings))
	for i := range listings {
		resp := performerProfileResponse(&listings[i].PerformerProfile)
		if resp.StageName == "" {
			resp.StageName = listings[i].Username
		}
		profiles = append(profiles, resp)
	}
	return profiles, nil
}

// resolveProfilePicture prefers a freshly uploaded file over the retained
// URL. Both go through origin stripping so only /uploads/... paths persist.
func resolveProfilePicture(newPath, retained string) *string {
	if newPath != "" {
		normalized := mediapaths.Normalize(newPath)
		return &normalized
	}
	if retained != "" {
		normalized := mediapaths.Normalize(retained)
		return &normalized
	}
	return nil
}

// resolveGallery appends new uploads after the retained list, preserving
// client order.
func resolveGallery(retainedJSON string, newPaths []string) []string {
	gallery := mediapaths.NormalizeAll(parseListField(retainedJSON))
	gallery = append(gallery, mediapaths.NormalizeAll(newPaths)...)
	return gallery
}

// parseListField decodes a JSON array sent as a form string. Malformed or
// empty input degrades to an empty list.
func parseListField(raw string) []string {
	list := []string{}
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &list)
	}
	return list
}

// parseBoolField accepts the "0"/"1" strings the profile forms send, plus
// plain true/false.
func parseBoolField(raw string) bool {
	return raw == "1" || raw == "true"
}

func parseFloatField(raw string) float64 {
	f, _ := strconv.ParseFloat(raw, 64)
	return f
}

func parseIntField(raw string) int {
	n, _ := strconv.Atoi(raw)
	return n
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
