package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService       AuthService
	UserService       UserService
	ProfileService    ProfileService
	GigService        GigService
	GigRequestService GigRequestService
	BookingService    BookingService
	ChatService       ChatService
}
