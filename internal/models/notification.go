package models

// Notification is append-only from the workflow layer; the read flag is
// mutated elsewhere. User references are weak: a notification may outlive the
// actor it refers to.
type Notification struct {
	BaseModel
	UserID      string  `gorm:"not null;index"`
	Type        string  `gorm:"not null"` // "booking", "gig_request"
	ActorUserID *string `gorm:"index"`
	BookingID   *string
	Title       string
	Message     string
	IsRead      bool `gorm:"default:false"`
}
