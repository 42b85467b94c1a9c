package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	AdminHandler      *AdminHandler
	HostHandler       *HostHandler
	PerformerHandler  *PerformerHandler
	GigHandler        *GigHandler
	GigRequestHandler *GigRequestHandler
	BookingHandler    *BookingHandler
	ChatHandler       *ChatHandler
}
