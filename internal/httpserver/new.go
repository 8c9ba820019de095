package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-copilot/config"
	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/repository"
	"calendar-copilot/pkg/dify"
	"calendar-copilot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Schedule domain infrastructure
	store    repository.Store
	ai       dify.IDify
	timezone *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Schedule domain infrastructure
	Store    repository.Store
	AI       dify.IDify
	Timezone *time.Location
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		store:       cfg.Store,
		ai:          cfg.AI,
		timezone:    cfg.Timezone,
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
	switch model.Environment(srv.environment) {
	case model.EnvironmentDevelopment, model.EnvironmentProduction:
	default:
		return fmt.Errorf("unknown environment %q", srv.environment)
	}
	if srv.store == nil {
		return schedule.ErrStoreNotReady
	}
	if srv.ai == nil {
		return errors.New("completion client is required")
	}
	return nil
}
