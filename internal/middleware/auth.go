package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/model"
	"personal-task-tracker/pkg/response"
)

// Auth verifies the Bearer token and stores the resulting scope in the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, model.Scope{
			UserID:   payload.UserID,
			Username: payload.Username,
		})
		c.Next()
	}
}
