package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/task"
	"personal-task-tracker/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case task.ErrTaskNotFound:
		response.NotFound(c, err.Error())
	case task.ErrEmptyTitle, task.ErrInvalidStatus, task.ErrInvalidPriority:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
