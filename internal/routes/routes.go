package routes

import (
	"gigslk_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api. Static file serving for
// /uploads is wired by the app, not here.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
		appHandlers.HostHandler.RegisterRoutes(api)
		appHandlers.PerformerHandler.RegisterRoutes(api)
		appHandlers.GigHandler.RegisterRoutes(api)
		appHandlers.GigRequestHandler.RegisterRoutes(api)
		appHandlers.BookingHandler.RegisterRoutes(api)
		appHandlers.ChatHandler.RegisterRoutes(api)
	}
}
