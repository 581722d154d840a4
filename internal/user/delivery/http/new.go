package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/user"
	pkgLog "personal-task-tracker/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l pkgLog.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
