package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"gigslk_backend/internal/services/dto"
)

type stubBookingService struct {
	createResp *dto.CreateBookingResponse
	createErr  error
	notifs     []dto.NotificationResponse
	notifsErr  error

	gotUserID string
}

func (s *stubBookingService) CreateBooking(db *gorm.DB, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubBookingService) GetNotifications(db *gorm.DB, userID string) ([]dto.NotificationResponse, error) {
	s.gotUserID = userID
	return s.notifs, s.notifsErr
}

func bookingRouter(stub *stubBookingService) *gin.Engine {
	handler := NewBookingHandler(newTestBase(), stub)
	return newTestRouter(func(rg *gin.RouterGroup) {
		handler.RegisterRoutes(rg)
	})
}

func TestCreateBookingReturns201(t *testing.T) {
	router := bookingRouter(&stubBookingService{
		createResp: &dto.CreateBookingResponse{Message: "Booking created and artist notified", BookingID: "booking-1"},
	})

	w := doJSON(t, router, http.MethodPost, "/api/bookings", "", map[string]string{
		"performer_id":   "performer-user-1",
		"host_id":        "host-user-1",
		"event_date":     "2026-10-05",
		"event_time":     "19:00",
		"event_location": "Colombo",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Booking created and artist notified")
}

func TestCreateBookingValidatesRequiredFields(t *testing.T) {
	router := bookingRouter(&stubBookingService{})

	w := doJSON(t, router, http.MethodPost, "/api/bookings", "", map[string]string{
		"performer_id": "performer-user-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "host_id")
}

func TestGetNotificationsRequiresUserID(t *testing.T) {
	router := bookingRouter(&stubBookingService{})

	w := doJSON(t, router, http.MethodGet, "/api/bookings/notifications", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing user_id")
}

func TestGetNotificationsPassesUserID(t *testing.T) {
	stub := &stubBookingService{
		notifs: []dto.NotificationResponse{{
			ID:        "notif-1",
			UserID:    "performer-user-1",
			Type:      "booking",
			Title:     "New booking received",
			Message:   "You were booked for 2026-10-05 at Colombo.",
			CreatedAt: time.Now(),
		}},
	}
	router := bookingRouter(stub)

	w := doJSON(t, router, http.MethodGet, "/api/bookings/notifications?user_id=performer-user-1", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "performer-user-1", stub.gotUserID)
	assert.Contains(t, w.Body.String(), "New booking received")
}
