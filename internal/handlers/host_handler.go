package handlers

import (
	"net/http"

	"gigslk_backend/internal/middleware"
	"gigslk_backend/internal/services"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/internal/storage"
	"gigslk_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type HostHandler struct {
	*BaseHandler
	profileService services.ProfileService
	storage        storage.Storage
}

func NewHostHandler(base *BaseHandler, profileService services.ProfileService, store storage.Storage) *HostHandler {
	return &HostHandler{
		BaseHandler:    base,
		profileService: profileService,
		storage:        store,
	}
}

func (h *HostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hosts := rg.Group("/hosts")
	hosts.Use(middleware.AuthMiddleware())
	{
		hosts.GET("/profile", h.GetProfile)
		hosts.PUT("/profile", h.UpdateProfile)
	}
}

func (h *HostHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.profileService.GetHostProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateProfile accepts the multipart profile form: scalar fields, JSON-string
// lists, an optional profile_picture file and any number of gallery_images
// files.
func (h *HostHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateHostProfileRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	newPicture, newGallery, err := collectUploads(c, h.storage)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	req.NewProfilePicturePath = newPicture
	req.NewGalleryPaths = newGallery

	db := h.GetDB(c)

	result, err := h.profileService.UpdateHostProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.Created {
		c.JSON(http.StatusCreated, gin.H{"message": "Host profile created successfully."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Host profile updated successfully."})
}
