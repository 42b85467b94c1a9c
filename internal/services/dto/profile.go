package dto

// Profile updates arrive as multipart form data: list fields are JSON-encoded
// strings, boolean flags are "0"/"1" strings. The handler binds the form and
// adds the relative paths of any files it stored; the service owns parsing,
// coercion and URL normalization.

type UpdateHostProfileRequest struct {
	CompanyOrganization       string `form:"company_organization"`
	ContactPerson             string `form:"contact_person"`
	ContactNumber             string `form:"contact_number"`
	Location                  string `form:"location"`
	EventTypesTypicallyHosted string `form:"event_types_typically_hosted"` // JSON array
	Bio                       string `form:"bio"`
	DefaultBudgetRangeMin     string `form:"default_budget_range_min"`
	DefaultBudgetRangeMax     string `form:"default_budget_range_max"`
	PreferredPerformerTypes   string `form:"preferred_performer_types"`    // JSON array
	PreferredLocationsForGigs string `form:"preferred_locations_for_gigs"` // JSON array
	UrgentBookingEnabled      string `form:"urgent_booking_enabled"`       // "0" / "1"
	EmailNotificationsEnabled string `form:"email_notifications_enabled"`
	SmsNotificationsEnabled   string `form:"sms_notifications_enabled"`
	ProfilePictureURL         string `form:"profile_picture_url"` // retained existing picture
	GalleryImages             string `form:"gallery_images"`      // JSON array of retained URLs

	// Set by the handler after storing uploaded files; never client-bound.
	NewProfilePicturePath string   `form:"-"`
	NewGalleryPaths       []string `form:"-"`
}

type HostProfileResponse struct {
	ID                        string   `json:"id,omitempty"`
	UserID                    string   `json:"user_id"`
	CompanyOrganization       string   `json:"company_organization"`
	ContactPerson             string   `json:"contact_person"`
	ContactNumber             string   `json:"contact_number"`
	Location                  string   `json:"location"`
	EventTypesTypicallyHosted []string `json:"event_types_typically_hosted"`
	Bio                       string   `json:"bio"`
	DefaultBudgetRangeMin     float64  `json:"default_budget_range_min"`
	DefaultBudgetRangeMax     float64  `json:"default_budget_range_max"`
	PreferredPerformerTypes   []string `json:"preferred_performer_types"`
	PreferredLocationsForGigs []string `json:"preferred_locations_for_gigs"`
	UrgentBookingEnabled      bool     `json:"urgent_booking_enabled"`
	EmailNotificationsEnabled bool     `json:"email_notifications_enabled"`
	SmsNotificationsEnabled   bool     `json:"sms_notifications_enabled"`
	ProfilePictureURL         string   `json:"profile_picture_url"`
	GalleryImages             []string `json:"gallery_images"`
	EventsHosted              int      `json:"events_hosted"`
	AverageRating             float64  `json:"average_rating"`
	TotalReviews              int      `json:"total_reviews"`
}

type UpdatePerformerProfileRequest struct {
	FullName             string `form:"full_name"`
	StageName            string `form:"stage_name"`
	Location             string `form:"location"`
	PerformanceType      string `form:"performance_type"`
	Bio                  string `form:"bio"`
	Price                string `form:"price"`
	Skills               string `form:"skills"` // JSON array
	ProfilePictureURL    string `form:"profile_picture_url"`
	ContactNumber        string `form:"contact_number"`
	DirectBooking        string `form:"direct_booking"`   // "0" / "1"
	TravelDistance       string `form:"travel_distance"`  // integer km
	AvailabilityWeekdays string `form:"availability_weekdays"`
	AvailabilityWeekends string `form:"availability_weekends"`
	AvailabilityMorning  string `form:"availability_morning"`
	AvailabilityEvening  string `form:"availability_evening"`
	GalleryImages        string `form:"gallery_images"` // JSON array of retained URLs

	NewProfilePicturePath string   `form:"-"`
	NewGalleryPaths       []string `form:"-"`
}

type PerformerProfileResponse struct {
	ID                   string   `json:"id,omitempty"`
	UserID               string   `json:"user_id"`
	FullName             string   `json:"full_name"`
	StageName            string   `json:"stage_name"`
	Location             string   `json:"location"`
	PerformanceType      string   `json:"performance_type"`
	Bio                  string   `json:"bio"`
	Price                string   `json:"price"`
	Skills               []string `json:"skills"`
	ProfilePictureURL    string   `json:"profile_picture_url"`
	ContactNumber        string   `json:"contact_number"`
	DirectBooking        bool     `json:"direct_booking"`
	TravelDistance       int      `json:"travel_distance"`
	AvailabilityWeekdays bool     `json:"availability_weekdays"`
	AvailabilityWeekends bool     `json:"availability_weekends"`
	AvailabilityMorning  bool     `json:"availability_morning"`
	AvailabilityEvening  bool     `json:"availability_evening"`
	GalleryImages        []string `json:"gallery_images"`
	Rating               float64  `json:"rating"`
	ReviewCount          int      `json:"review_count"`
	BookedDates          []string `json:"booked_dates,omitempty"`
}

type ProfileEnvelope struct {
	Message string      `json:"message"`
	Profile interface{} `json:"profile"`
}
