package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"personal-task-tracker/config"
	_ "personal-task-tracker/docs" // Swagger docs
	"personal-task-tracker/internal/httpserver"
	"personal-task-tracker/internal/store/sqlite"
	"personal-task-tracker/internal/sync"
	"personal-task-tracker/pkg/datemath"
	"personal-task-tracker/pkg/gcalendar"
	"personal-task-tracker/pkg/hfinference"
	"personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/scope"
)

// @title       Personal Task Tracker API
// @description Task tracking with voice-command parsing, JWT auth, and live sync.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Auth
	jwtManager, err := scope.NewManager(scope.Config{
		Secret:   cfg.JWT.Secret,
		TokenTTL: cfg.JWT.TokenTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 5. Voice parsing pipeline
	llm, err := hfinference.New(hfinference.Config{
		APIKey:  cfg.HuggingFace.APIKey,
		Model:   cfg.HuggingFace.Model,
		BaseURL: cfg.HuggingFace.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize inference client: ", err)
		return
	}
	logger.Infof(ctx, "Inference model: %s", llm.Model())

	timezone := cfg.Environment.Timezone
	dates, err := datemath.NewResolver(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		dates, _ = datemath.NewResolver(timezone)
	}

	// 6. Live sync hub
	hub := sync.NewHub(logger)

	// 7. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		JWTManager:  jwtManager,
		Hub:         hub,
		RateLimit:   cfg.HTTPServer.RateLimitPerMin,
		LLM:         llm,
		Dates:       dates,
		Timezone:    timezone,
		Calendar:    calendarClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
