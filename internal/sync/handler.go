package sync

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/middleware"
	pkgLog "personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/response"
)

// heartbeatInterval keeps intermediaries from closing idle SSE connections.
const heartbeatInterval = 30 * time.Second

type handler struct {
	l   pkgLog.Logger
	hub *Hub
}

// NewHandler creates the SSE delivery handler for the hub.
func NewHandler(l pkgLog.Logger, hub *Hub) *handler {
	return &handler{l: l, hub: hub}
}

// Events godoc
// @Summary     Subscribe to task change events
// @Description Opens a Server-Sent Events stream of the caller's task
// @Description changes. Events carry the changed task as JSON.
// @Tags        Sync
// @Produce     text/event-stream
// @Security    BearerAuth
// @Success     200 {string} string "SSE stream"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	events, unsubscribe := h.hub.Subscribe(sc.UserID)
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	h.l.Infof(ctx, "sync: session opened for user %s (%d active)", sc.UserID, h.hub.SessionCount(sc.UserID))

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.l.Infof(ctx, "sync: session closed for user %s", sc.UserID)
			return
		case <-heartbeat.C:
			c.Writer.WriteString(": heartbeat\n\n")
			c.Writer.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.l.Errorf(ctx, "sync: marshal event: %v", err)
				continue
			}
			c.Writer.WriteString("event: " + string(event.Type) + "\n")
			c.Writer.WriteString("data: " + string(payload) + "\n\n")
			c.Writer.Flush()
		}
	}
}

// RegisterRoutes maps the SSE endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/events", mw.Auth(), h.Events)
}
