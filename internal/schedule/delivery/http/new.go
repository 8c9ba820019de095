package http

import (
	"github.com/gin-gonic/gin"

	"calendar-copilot/internal/schedule"
	pkgLog "calendar-copilot/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
	GetRun(c *gin.Context)
	ListCalendars(c *gin.Context)
	ListEvents(c *gin.Context)
	CreateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
	ListReminders(c *gin.Context)
	CreateReminder(c *gin.Context)
	DeleteReminder(c *gin.Context)
}

type handler struct {
	l    pkgLog.Logger
	uc   schedule.UseCase
	runs *runRegistry
}

// New creates a new HTTP handler for the schedule domain.
func New(l pkgLog.Logger, uc schedule.UseCase) (*handler, error) {
	runs, err := newRunRegistry(defaultRunHistory)
	if err != nil {
		return nil, err
	}
	return &handler{
		l:    l,
		uc:   uc,
		runs: runs,
	}, nil
}
