package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Register and
// login are the only unauthenticated routes in the API.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", mw.RateLimit(), h.Register)
		auth.POST("/login", mw.RateLimit(), h.Login)
		auth.GET("/me", mw.Auth(), h.Me)
	}
}
