package middleware

import (
	"net/http"
	"strings"

	"gigslk_backend/internal/auth"
	"gigslk_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT and stores its claims in the context.
// Tokens arrive either as "Authorization: Bearer <token>" or via the legacy
// x-auth-token header, which older clients still send.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.GetHeader("x-auth-token")
}

// AdminMiddleware guards the admin surface with its dedicated message.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if contextRole(c) != models.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin privileges required."})
			return
		}
		c.Next()
	}
}

func contextRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get("role")
	if !exists {
		return ""
	}
	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr)
	}
	return ""
}

// GetRole extracts the authenticated user's role from the context.
func GetRole(c *gin.Context) string {
	return string(contextRole(c))
}
