package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gigslk_backend/internal/auth"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"
)

type stubGigService struct {
	createResp *dto.CreateGigResponse
	createErr  error
	listResp   []dto.GigResponse
	listErr    error
	getResp    *dto.GigResponse
	getErr     error

	gotHostUserID string
}

func (s *stubGigService) CreateGig(db *gorm.DB, hostUserID string, req *dto.CreateGigRequest) (*dto.CreateGigResponse, error) {
	s.gotHostUserID = hostUserID
	return s.createResp, s.createErr
}

func (s *stubGigService) ListGigs(db *gorm.DB, query *dto.GigListQuery, limit, offset int) ([]dto.GigResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubGigService) GetGig(db *gorm.DB, id string) (*dto.GigResponse, error) {
	return s.getResp, s.getErr
}

func gigRouter(stub *stubGigService) *gin.Engine {
	handler := NewGigHandler(newTestBase(), stub)
	return newTestRouter(func(rg *gin.RouterGroup) {
		handler.RegisterRoutes(rg)
	})
}

func hostToken(t *testing.T) string {
	t.Helper()
	require.NoError(t, auth.Init("test-secret", 60))
	token, err := auth.GenerateToken("host-user-1", "host")
	require.NoError(t, err)
	return token
}

func TestPostGigRequiresToken(t *testing.T) {
	router := gigRouter(&stubGigService{})

	w := doJSON(t, router, http.MethodPost, "/api/gigs/post", "", map[string]interface{}{
		"title": "Beach Party",
		"date":  "2026-10-05",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")
}

func TestPostGigUsesCallerIdentity(t *testing.T) {
	stub := &stubGigService{
		createResp: &dto.CreateGigResponse{Message: "Gig posted successfully!", GigID: "gig-1"},
	}
	router := gigRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/api/gigs/post", hostToken(t), map[string]interface{}{
		"title": "Beach Party",
		"date":  "2026-10-05",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "host-user-1", stub.gotHostUserID)
	body := decodeBody(t, w)
	assert.Equal(t, "gig-1", body["gigId"])
}

func TestListGigsIsPublic(t *testing.T) {
	router := gigRouter(&stubGigService{
		listResp: []dto.GigResponse{{ID: "gig-1", Title: "Beach Party", HostName: "VenueCorp"}},
	})

	w := doJSON(t, router, http.MethodGet, "/api/gigs?search=beach", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All gigs fetched successfully.")
	assert.Contains(t, w.Body.String(), "Beach Party")
}

func TestGetGigUnknownIs404(t *testing.T) {
	router := gigRouter(&stubGigService{getErr: apperrors.ErrGigNotFound})

	w := doJSON(t, router, http.MethodGet, "/api/gigs/missing", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Gig not found.")
}
