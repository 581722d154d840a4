package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All voice routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	voice := rg.Group("/voice")
	{
		voice.POST("/parse", mw.Auth(), mw.RateLimit(), h.Parse)
		voice.GET("/history", mw.Auth(), h.History)
	}
}
