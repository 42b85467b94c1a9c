package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type HostProfile struct {
	BaseModel
	UserID                    string `gorm:"uniqueIndex;not null"`
	CompanyOrganization       string
	ContactPerson             string
	ContactNumber             string
	Location                  string
	EventTypesTypicallyHosted datatypes.JSON `gorm:"type:jsonb"` // ["wedding", "corporate"]
	Bio                       string
	DefaultBudgetRangeMin     float64
	DefaultBudgetRangeMax     float64
	PreferredPerformerTypes   datatypes.JSON `gorm:"type:jsonb"`
	PreferredLocationsForGigs datatypes.JSON `gorm:"type:jsonb"`
	UrgentBookingEnabled      bool           `gorm:"default:false"`
	EmailNotificationsEnabled bool           `gorm:"default:false"`
	SmsNotificationsEnabled   bool           `gorm:"default:false"`
	ProfilePictureURL         *string
	GalleryImages             datatypes.JSON `gorm:"type:jsonb"`

	// Aggregates maintained outside this layer, read-only here.
	EventsHosted  int     `gorm:"default:0"`
	AverageRating float64 `gorm:"default:0"`
	TotalReviews  int     `gorm:"default:0"`

	// Relations
	Gigs []Gig `gorm:"foreignKey:HostID"`
}

func (h *HostProfile) GetEventTypes() []string {
	return decodeStringList(h.EventTypesTypicallyHosted)
}

func (h *HostProfile) GetPreferredPerformerTypes() []string {
	return decodeStringList(h.PreferredPerformerTypes)
}

func (h *HostProfile) GetPreferredLocations() []string {
	return decodeStringList(h.PreferredLocationsForGigs)
}

func (h *HostProfile) GetGalleryImages() []string {
	return decodeStringList(h.GalleryImages)
}

// decodeStringList deserializes a jsonb column into an ordered slice. A null
// column is presented as an empty slice, never as absent.
func decodeStringList(data datatypes.JSON) []string {
	list := []string{}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &list)
	}
	return list
}

func encodeStringList(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return datatypes.JSON(data)
}

func (h *HostProfile) SetEventTypes(list []string) {
	h.EventTypesTypicallyHosted = encodeStringList(list)
}

func (h *HostProfile) SetPreferredPerformerTypes(list []string) {
	h.PreferredPerformerTypes = encodeStringList(list)
}

func (h *HostProfile) SetPreferredLocations(list []string) {
	h.PreferredLocationsForGigs = encodeStringList(list)
}

func (h *HostProfile) SetGalleryImages(list []string) {
	h.GalleryImages = encodeStringList(list)
}
