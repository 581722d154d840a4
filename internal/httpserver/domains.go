package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/middleware"
	"personal-task-tracker/internal/sync"
	taskHTTP "personal-task-tracker/internal/task/delivery/http"
	taskRepo "personal-task-tracker/internal/task/repository/sqlite"
	taskUC "personal-task-tracker/internal/task/usecase"
	userHTTP "personal-task-tracker/internal/user/delivery/http"
	userRepo "personal-task-tracker/internal/user/repository/sqlite"
	userUC "personal-task-tracker/internal/user/usecase"
	voiceHTTP "personal-task-tracker/internal/voice/delivery/http"
	voiceRepo "personal-task-tracker/internal/voice/repository/sqlite"
	voiceUC "personal-task-tracker/internal/voice/usecase"
)

// setupUserDomain initializes auth and registers /api/v1/auth.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(repo, srv.jwtManager, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}

// setupTaskDomain initializes task CRUD and registers /api/v1/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(repo, srv.hub, srv.calendar, srv.timezone, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupVoiceDomain initializes the voice parsing pipeline and registers
// /api/v1/voice.
func (srv *HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := voiceRepo.New(srv.db, srv.l)
	uc := voiceUC.New(srv.l, srv.llm, srv.dates, repo, srv.timezone)
	h := voiceHTTP.New(srv.l, uc)
	voiceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}

// setupSyncRoutes registers the SSE stream at /api/v1/events.
func (srv *HTTPServer) setupSyncRoutes(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := sync.NewHandler(srv.l, srv.hub)
	sync.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Sync routes registered")
	return nil
}
