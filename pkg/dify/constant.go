package dify

import "time"

const (
	// DefaultBaseURL is the default Dify API endpoint
	DefaultBaseURL = "https://api.dify.ai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// ResponseModeBlocking requests a single complete response body,
	// no streaming.
	ResponseModeBlocking = "blocking"

	// StatusFailure is the failure sentinel in the decoded answer. Any
	// nonzero status means the service produced a usable result.
	StatusFailure = 0

	// ProposedEventTimeLayout is the wire format for dtstart/dtend:
	// ISO-8601 with explicit offset, no fractional seconds.
	ProposedEventTimeLayout = "2006-01-02T15:04:05-07:00"
)
