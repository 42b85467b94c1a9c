package models

import (
	"gorm.io/datatypes"
)

type PerformerProfile struct {
	BaseModel
	UserID          string `gorm:"uniqueIndex;not null"`
	FullName        string
	StageName       string
	Location        string
	PerformanceType string
	Bio             string
	PriceDisplay    string         // free-text, e.g. "Rs. 5000 - Rs. 15000"
	Skills          datatypes.JSON `gorm:"type:jsonb"` // ["singing", "guitar"]
	ContactNumber   string

	AcceptDirectBooking bool `gorm:"default:false"`
	TravelDistanceKM    int  `gorm:"default:0"`

	PreferredAvailabilityWeekdays bool `gorm:"default:false"`
	PreferredAvailabilityWeekends bool `gorm:"default:false"`
	PreferredAvailabilityMornings bool `gorm:"default:false"`
	PreferredAvailabilityEvenings bool `gorm:"default:false"`

	ProfilePictureURL *string
	GalleryImages     datatypes.JSON `gorm:"type:jsonb"`

	// Aggregates maintained outside this layer, read-only here.
	AverageRating float64 `gorm:"default:0"`
	TotalReviews  int     `gorm:"default:0"`

	// Relations
	GigRequests []GigRequest `gorm:"foreignKey:PerformerID"`
}

func (p *PerformerProfile) GetSkills() []string {
	return decodeStringList(p.Skills)
}

func (p *PerformerProfile) SetSkills(list []string) {
	p.Skills = encodeStringList(list)
}

func (p *PerformerProfile) GetGalleryImages() []string {
	return decodeStringList(p.GalleryImages)
}

func (p *PerformerProfile) SetGalleryImages(list []string) {
	p.GalleryImages = encodeStringList(list)
}
