package models

type UserRole string
type GigRequestStatus string

const (
	UserRoleHost      UserRole = "host"
	UserRolePerformer UserRole = "performer"
	UserRoleAdmin     UserRole = "admin"

	// GigRequest status is monotonic: pending -> {accepted, rejected}.
	GigRequestStatusPending  GigRequestStatus = "pending"
	GigRequestStatusAccepted GigRequestStatus = "accepted"
	GigRequestStatusRejected GigRequestStatus = "rejected"
)

// Notification type tags
const (
	NotificationTypeBooking    = "booking"
	NotificationTypeGigRequest = "gig_request"
)
