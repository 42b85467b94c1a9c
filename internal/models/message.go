package models

import "time"

// Message is an append-only chat fact between two users, ordered by SentAt.
type Message struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SenderID    string    `gorm:"not null;index"`
	ReceiverID  string    `gorm:"not null;index"`
	MessageText string    `gorm:"not null"`
	SentAt      time.Time `gorm:"default:now();index"`
}
