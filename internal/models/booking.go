package models

import "time"

// Booking links a performer and a host (both by user id) to a concrete event.
// Created atomically with the notification addressed to the performer.
type Booking struct {
	BaseModel
	PerformerUserID string `gorm:"not null;index"`
	HostUserID      string `gorm:"not null;index"`
	EventDate       time.Time
	EventTime       string
	EventLocation   string
	Notes           string
}
