package handlers

import (
	"net/http"

	"gigslk_backend/internal/middleware"
	"gigslk_backend/internal/services"
	"gigslk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the user management surface. Every route requires an
// authenticated admin.
type AdminHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewAdminHandler(base *BaseHandler, userService services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.AddUser)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)
	limit, offset := PaginationToLimitOffset(c)

	response, err := h.userService.ListUsers(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) AddUser(c *gin.Context) {
	var req dto.AddUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	userID, err := h.userService.AddUser(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User added successfully!",
		"userId":  userID,
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.userService.DeleteUser(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
