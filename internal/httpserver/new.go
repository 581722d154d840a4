package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-tracker/internal/sync"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/gcalendar"
	"personal-task-tracker/pkg/hfinference"
	"personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	db         *sql.DB
	jwtManager scope.Manager
	hub        *sync.Hub
	rateLimit  int

	// Voice pipeline
	llm      hfinference.IInference
	dates    *datemath.Resolver
	timezone string

	// Calendar export (optional)
	calendar *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	JWTManager scope.Manager
	Hub        *sync.Hub
	RateLimit  int // requests per minute per caller

	LLM      hfinference.IInference
	Dates    *datemath.Resolver
	Timezone string

	Calendar *gcalendar.Client // may be nil
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		hub:         cfg.Hub,
		rateLimit:   cfg.RateLimit,
		llm:         cfg.LLM,
		dates:       cfg.Dates,
		timezone:    cfg.Timezone,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.hub == nil {
		return errors.New("sync hub is required")
	}
	if srv.llm == nil {
		return errors.New("inference client is required")
	}
	if srv.dates == nil {
		return errors.New("date resolver is required")
	}
	return nil
}
