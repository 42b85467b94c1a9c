package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"
)

type stubAuthService struct {
	registerResp *dto.RegisterResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error
}

func (s *stubAuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func authRouter(stub *stubAuthService) *gin.Engine {
	handler := NewAuthHandler(newTestBase(), stub)
	return newTestRouter(func(rg *gin.RouterGroup) {
		handler.RegisterRoutes(rg)
	})
}

func TestRegisterReturns201(t *testing.T) {
	router := authRouter(&stubAuthService{
		registerResp: &dto.RegisterResponse{
			Message: "User registered successfully!",
			UserID:  "user-1",
			Role:    "performer",
		},
	})

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "new@example.com",
		"password": "secret1",
		"username": "newbie",
		"role":     "performer",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "user-1", body["userId"])
	assert.Equal(t, "performer", body["role"])
}

func TestRegisterValidatesBody(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "secret1",
		"username": "newbie",
		"role":     "performer",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "admin@example.com",
		"password": "secret1",
		"username": "sneaky",
		"role":     "admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginMapsInvalidCredentialsTo401(t *testing.T) {
	router := authRouter(&stubAuthService{
		loginErr: apperrors.ErrInvalidCredentials,
	})

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials.")
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	router := authRouter(&stubAuthService{
		loginResp: &dto.LoginResponse{
			Message: "Login successful!",
			Token:   "jwt-token",
			User:    dto.UserInfo{ID: "user-1", Email: "real@example.com", Role: "host"},
		},
	})

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "real@example.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "jwt-token", body["token"])
}
