package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bwbackbone/internal/pkg/response"

	jwtsvc "bwbackbone/internal/pkg/jwt"
)

// Auth validates the bearer token and injects the authenticated staff
// identity (id + role set) into the request context. The domain layer trusts
// this identity; authentication itself happens only here.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}
