package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"gigslk_backend/internal/services/dto"
)

type stubGigRequestService struct {
	gotPerformerUserID string
	gotGigID           string
	gotRequestID       string
	gotResponse        string
}

func (s *stubGigRequestService) RequestGig(db *gorm.DB, performerUserID, gigID string) error {
	s.gotPerformerUserID = performerUserID
	s.gotGigID = gigID
	return nil
}

func (s *stubGigRequestService) RespondToRequest(db *gorm.DB, requestID string, req *dto.RespondToRequestRequest) error {
	s.gotRequestID = requestID
	s.gotResponse = req.Response
	return nil
}

func gigRequestRouter(stub *stubGigRequestService) *gin.Engine {
	handler := NewGigRequestHandler(newTestBase(), stub)
	return newTestRouter(func(rg *gin.RouterGroup) {
		handler.RegisterRoutes(rg)
	})
}

func TestRequestGigRoutesThroughDispatch(t *testing.T) {
	stub := &stubGigRequestService{}
	router := gigRequestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/api/gig-requests/gig-1/request", performerToken(t), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "performer-user-1", stub.gotPerformerUserID)
	assert.Equal(t, "gig-1", stub.gotGigID)
	assert.Contains(t, w.Body.String(), "Request sent and host notified.")
}

func TestRespondRoutesThroughDispatch(t *testing.T) {
	stub := &stubGigRequestService{}
	router := gigRequestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/api/gig-requests/request/req-1/respond", hostToken(t), map[string]string{
		"response": "accepted",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", stub.gotRequestID)
	assert.Equal(t, "accepted", stub.gotResponse)
}

func TestDispatchUnknownPathIs404(t *testing.T) {
	stub := &stubGigRequestService{}
	router := gigRequestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/api/gig-requests/gig-1/unknown", hostToken(t), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, stub.gotGigID)
	assert.Empty(t, stub.gotRequestID)
}

func TestGigRequestRoutesRequireToken(t *testing.T) {
	router := gigRequestRouter(&stubGigRequestService{})

	w := doJSON(t, router, http.MethodPost, "/api/gig-requests/gig-1/request", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
