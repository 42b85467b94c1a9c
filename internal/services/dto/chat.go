package dto

import "time"

type SendMessageRequest struct {
	ReceiverID  string `json:"receiver_id" validate:"required"`
	MessageText string `json:"message_text" validate:"required"`
}

type ChatContactResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	Username          string  `json:"username"`
	DisplayName       string  `json:"display_name"`
	Location          string  `json:"location"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	ReceiverID  string    `json:"receiver_id"`
	MessageText string    `json:"message_text"`
	SentAt      time.Time `json:"sent_at"`
}
