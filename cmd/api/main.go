package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-copilot/config"
	_ "calendar-copilot/docs" // Swagger docs
	"calendar-copilot/internal/httpserver"
	"calendar-copilot/internal/schedule/repository"
	caldavRepo "calendar-copilot/internal/schedule/repository/caldav"
	gcalRepo "calendar-copilot/internal/schedule/repository/gcal"
	pkgCaldav "calendar-copilot/pkg/caldav"
	"calendar-copilot/pkg/dify"
	"calendar-copilot/pkg/gcalendar"
	"calendar-copilot/pkg/gtasks"
	"calendar-copilot/pkg/log"
)

// @title       Calendar Copilot API
// @description AI-assisted event scheduling over Google Calendar/Tasks or CalDAV, powered by a Dify completion workflow.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting Calendar Copilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store provider: %s", cfg.Store.Provider)

	// 3. Completion client
	aiClient, err := dify.New(dify.Config{
		BaseURL: cfg.Dify.BaseURL,
		APIKey:  cfg.Dify.APIKey,
		User:    cfg.Dify.User,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize completion client: ", err)
		return
	}

	// 4. Calendar store
	store, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize calendar store: ", err)
		return
	}

	timezone, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Schedule.Timezone, err)
		timezone = time.UTC
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Store:       store,
		AI:          aiClient,
		Timezone:    timezone,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildStore constructs the calendar store selected by store.provider.
func buildStore(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Store, error) {
	switch cfg.Store.Provider {
	case config.StoreProviderGoogle:
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar client: %w", err)
		}
		tasksClient, err := gtasks.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("google tasks client: %w", err)
		}
		logger.Info(ctx, "Google Calendar store initialized")
		return gcalRepo.New(
			calendarClient,
			tasksClient,
			cfg.GoogleCalendar.CalendarID,
			cfg.GoogleCalendar.TasksListID,
			cfg.Schedule.Timezone,
		), nil

	case config.StoreProviderCalDAV:
		client := pkgCaldav.NewClient(cfg.CalDAV.URL, cfg.CalDAV.Username, cfg.CalDAV.Password)
		logger.Info(ctx, "CalDAV store initialized")
		return caldavRepo.New(client, cfg.CalDAV.CalendarPath, cfg.CalDAV.TodoPath), nil

	default:
		return nil, fmt.Errorf("unknown store provider %q", cfg.Store.Provider)
	}
}
