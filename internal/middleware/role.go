package middleware

import (
	"net/http"

	"mesareserva/internal/domain"
	"mesareserva/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has one of the given roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		role, ok := raw.(domain.UserRole)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly admits restaurant admins and superadmins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)
}

// ClientOnly admits plain clients.
func ClientOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleClient)
}
