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

type PerformerHandler struct {
	*BaseHandler
	profileService services.ProfileService
	storage        storage.Storage
}

func NewPerformerHandler(base *BaseHandler, profileService services.ProfileService, store storage.Storage) *PerformerHandler {
	return &PerformerHandler{
		BaseHandler:    base,
		profileService: profileService,
		storage:        store,
	}
}

func (h *PerformerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	performers := rg.Group("/performers")
	{
		// The directory is public; own-profile routes need a token.
		performers.GET("", h.ListPerformers)

		authed := performers.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)
		}
	}
}

func (h *PerformerHandler) ListPerformers(c *gin.Context) {
	db := h.GetDB(c)
	limit, offset := PaginationToLimitOffset(c)

	profiles, err := h.profileService.ListPerformers(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "All performer profiles fetched successfully.",
		"profiles": profiles,
	})
}

func (h *PerformerHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.profileService.GetPerformerProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PerformerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePerformerProfileRequest
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

	result, err := h.profileService.UpdatePerformerProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.Created {
		c.JSON(http.StatusCreated, gin.H{"message": "Performer profile created successfully."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Performer profile updated successfully."})
}
