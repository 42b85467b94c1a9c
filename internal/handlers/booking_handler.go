package handlers

import (
	"net/http"

	"gigslk_backend/internal/services"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BookingHandler covers bookings and their notification feed. These routes
// are unauthenticated, matching the frontend's direct booking flow.
type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/notifications", h.GetNotifications)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.bookingService.CreateBooking(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BookingHandler) GetNotifications(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing user_id"))
		return
	}

	db := h.GetDB(c)

	notifications, err := h.bookingService.GetNotifications(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}
