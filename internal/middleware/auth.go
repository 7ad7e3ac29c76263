package middleware

import (
	"net/http"
	"strings"

	"mesareserva/internal/domain"
	jwtsvc "mesareserva/internal/pkg/jwt"
	"mesareserva/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores user_id and role in the
// request context.
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

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// CurrentActor rebuilds the authenticated actor from the context values
// set by Auth. The role keeps its domain type end to end.
func CurrentActor(c *gin.Context) domain.Actor {
	actor := domain.Actor{UserID: c.GetInt64("user_id")}
	if raw, ok := c.Get("role"); ok {
		if role, ok := raw.(domain.UserRole); ok {
			actor.Role = role
		}
	}
	return actor
}
