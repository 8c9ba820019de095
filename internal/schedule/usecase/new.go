package usecase

import (
	"time"

	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/repository"
	"calendar-copilot/pkg/dify"
	pkgLog "calendar-copilot/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store repository.Store
	ai    dify.IDify
	loc   *time.Location
	now   func() time.Time
}

var _ schedule.UseCase = (*implUseCase)(nil)

// New creates a new schedule UseCase instance. The completion client is
// injected, constructed once at process start with its credential and
// endpoint; there is no process-wide shared instance.
func New(l pkgLog.Logger, store repository.Store, ai dify.IDify, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:     l,
		store: store,
		ai:    ai,
		loc:   loc,
		now:   time.Now,
	}
}
