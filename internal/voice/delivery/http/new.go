package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/voice"
	pkgLog "personal-task-tracker/pkg/log"
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for the voice domain.
func New(l pkgLog.Logger, uc voice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
