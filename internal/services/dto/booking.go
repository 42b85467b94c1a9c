package dto

import "time"

type CreateBookingRequest struct {
	PerformerID   string `json:"performer_id" validate:"required"` // user id
	HostID        string `json:"host_id" validate:"required"`      // user id
	EventDate     string `json:"event_date" validate:"required"`   // YYYY-MM-DD
	EventTime     string `json:"event_time" validate:"required"`
	EventLocation string `json:"event_location" validate:"required"`
	Notes         string `json:"notes"`
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type NotificationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	ActorUserID *string   `json:"actor_user_id,omitempty"`
	BookingID   *string   `json:"booking_id,omitempty"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
