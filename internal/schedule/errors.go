package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrInvalidRange  = errors.New("date range start must be before end")
	ErrEmptyTitle    = errors.New("title is empty")
	ErrMissingID     = errors.New("identifier is required")
	ErrStoreNotReady = errors.New("calendar store is not configured")
)

// User-facing messages. Everything except a service-reported failure is
// surfaced with a generic message; the underlying cause is logged only.
const (
	// DefaultServiceErrorMessage is used when the service reports the
	// failure sentinel without a message of its own.
	DefaultServiceErrorMessage = "The scheduling service could not process your request."

	// GenericErrorMessage is shown for network, protocol, and
	// materialization failures.
	GenericErrorMessage = "Something went wrong while generating suggestions. Please try again."
)

// PipelineError is a terminal pipeline failure. UserMessage is safe to show
// to an end user; Err carries the full cause for logs.
type PipelineError struct {
	Stage       Stage
	UserMessage string
	Err         error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return string(e.Stage) + ": " + e.Err.Error()
	}
	return string(e.Stage) + ": " + e.UserMessage
}

func (e *PipelineError) Unwrap() error { return e.Err }
