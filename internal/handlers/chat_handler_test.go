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
)

type stubChatService struct {
	contacts []dto.ChatContactResponse
	messages []dto.MessageResponse

	gotRole     string
	gotSenderID string
	gotOtherID  string
}

func (s *stubChatService) ListContacts(db *gorm.DB, role string) ([]dto.ChatContactResponse, error) {
	s.gotRole = role
	return s.contacts, nil
}

func (s *stubChatService) SendMessage(db *gorm.DB, senderID string, req *dto.SendMessageRequest) error {
	s.gotSenderID = senderID
	return nil
}

func (s *stubChatService) GetHistory(db *gorm.DB, userID, otherID string) ([]dto.MessageResponse, error) {
	s.gotSenderID = userID
	s.gotOtherID = otherID
	return s.messages, nil
}

func chatRouter(stub *stubChatService) *gin.Engine {
	handler := NewChatHandler(newTestBase(), stub)
	return newTestRouter(func(rg *gin.RouterGroup) {
		handler.RegisterRoutes(rg)
	})
}

func performerToken(t *testing.T) string {
	t.Helper()
	require.NoError(t, auth.Init("test-secret", 60))
	token, err := auth.GenerateToken("performer-user-1", "performer")
	require.NoError(t, err)
	return token
}

func TestChatRoutesRequireToken(t *testing.T) {
	router := chatRouter(&stubChatService{})

	w := doJSON(t, router, http.MethodGet, "/api/chat/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatContactsUseCallerRole(t *testing.T) {
	stub := &stubChatService{
		contacts: []dto.ChatContactResponse{{ID: "host-profile-1", Username: "venuecorp", DisplayName: "VenueCorp"}},
	}
	router := chatRouter(stub)

	w := doJSON(t, router, http.MethodGet, "/api/chat/users", performerToken(t), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "performer", stub.gotRole)
	assert.Contains(t, w.Body.String(), "VenueCorp")
}

func TestChatHistoryUsesCallerAndPathIDs(t *testing.T) {
	stub := &stubChatService{}
	router := chatRouter(stub)

	w := doJSON(t, router, http.MethodGet, "/api/chat/history/host-user-1", performerToken(t), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "performer-user-1", stub.gotSenderID)
	assert.Equal(t, "host-user-1", stub.gotOtherID)
}

func TestSendMessageValidatesBody(t *testing.T) {
	router := chatRouter(&stubChatService{})

	w := doJSON(t, router, http.MethodPost, "/api/chat/message", performerToken(t), map[string]string{
		"receiver_id": "host-user-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message_text")
}
