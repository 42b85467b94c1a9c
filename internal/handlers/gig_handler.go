package handlers

import (
	"net/http"

	"gigslk_backend/internal/middleware"
	"gigslk_backend/internal/services"
	"gigslk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gigs := rg.Group("/gigs")
	{
		gigs.GET("", h.ListGigs)
		gigs.GET("/:id", h.GetGig)
		gigs.POST("/post", middleware.AuthMiddleware(), h.PostGig)
	}
}

func (h *GigHandler) PostGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.gigService.CreateGig(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *GigHandler) ListGigs(c *gin.Context) {
	var query dto.GigListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)
	limit, offset := PaginationToLimitOffset(c)

	gigs, err := h.gigService.ListGigs(db, &query, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GigListResponse{
		Message: "All gigs fetched successfully.",
		Gigs:    gigs,
	})
}

func (h *GigHandler) GetGig(c *gin.Context) {
	db := h.GetDB(c)

	gig, err := h.gigService.GetGig(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GigDetailResponse{
		Message: "Gig fetched successfully.",
		Gig:     *gig,
	})
}
