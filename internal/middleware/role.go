package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/response"
)

// RequireRole ensures the authenticated staff member holds at least one of
// the given roles. Admins pass every gate.
func RequireRole(required ...domain.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("roles")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Roles not found in token")
			c.Abort()
			return
		}

		roles, ok := v.([]domain.StaffRole)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Roles not found in token")
			c.Abort()
			return
		}

		for _, have := range roles {
			if have == domain.RoleAdmin {
				c.Next()
				return
			}
			for _, want := range required {
				if have == want {
					c.Next()
					return
				}
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly middleware requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
