package models

import (
	"time"

	"gorm.io/datatypes"
)

type Gig struct {
	BaseModel
	HostID          string `gorm:"not null;index"` // owning HostProfile, immutable
	Title           string `gorm:"not null"`
	Description     *string
	PerformanceType *string
	EventDate       *time.Time
	EventTime       *string
	EventLocation   *string
	BudgetMin       *float64
	BudgetMax       *float64
	Requirements    datatypes.JSON `gorm:"type:jsonb"` // ordered list of free-text requirements
}

func (g *Gig) GetRequirements() []string {
	return decodeStringList(g.Requirements)
}

func (g *Gig) SetRequirements(list []string) {
	g.Requirements = encodeStringList(list)
}
