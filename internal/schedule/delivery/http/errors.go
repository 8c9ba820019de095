package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-copilot/internal/schedule"
	"calendar-copilot/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses. The
// pipeline already separates user-facing messages from logged causes, so
// only the UserMessage of a PipelineError ever reaches the client.
func (h *handler) respondError(c *gin.Context, err error) {
	var pipeErr *schedule.PipelineError
	if errors.As(err, &pipeErr) {
		response.Error(c, errors.New(pipeErr.UserMessage), nil)
		return
	}

	switch {
	case errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, schedule.ErrEmptyTitle),
		errors.Is(err, schedule.ErrMissingID):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
