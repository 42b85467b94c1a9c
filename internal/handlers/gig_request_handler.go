package handlers

import (
	"net/http"
	"strings"

	"gigslk_backend/internal/middleware"
	"gigslk_backend/internal/services"
	"gigslk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigRequestHandler struct {
	*BaseHandler
	gigRequestService services.GigRequestService
}

func NewGigRequestHandler(base *BaseHandler, gigRequestService services.GigRequestService) *GigRequestHandler {
	return &GigRequestHandler{
		BaseHandler:       base,
		gigRequestService: gigRequestService,
	}
}

// RegisterRoutes mounts the two request paths. They mix a parameter and a
// static first segment ("/:gigId/request" vs "/request/:requestId/respond"),
// which gin's routing tree cannot hold side by side, so a single catch-all
// dispatches both.
func (h *GigRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/gig-requests")
	requests.Use(middleware.AuthMiddleware())
	requests.POST("/*action", h.dispatch)
}

func (h *GigRequestHandler) dispatch(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Param("action"), "/"), "/")
	switch {
	case len(parts) == 2 && parts[1] == "request":
		h.RequestGig(c, parts[0])
	case len(parts) == 3 && parts[0] == "request" && parts[2] == "respond":
		h.RespondToRequest(c, parts[1])
	default:
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found."})
	}
}

func (h *GigRequestHandler) RequestGig(c *gin.Context, gigID string) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.gigRequestService.RequestGig(db, userID, gigID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request sent and host notified."})
}

func (h *GigRequestHandler) RespondToRequest(c *gin.Context, requestID string) {
	var req dto.RespondToRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.gigRequestService.RespondToRequest(db, requestID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Response recorded."})
}
