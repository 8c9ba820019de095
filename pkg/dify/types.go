package dify

import (
	"errors"
	"net/http"
)

// Config holds the client configuration. The credential and endpoint are set
// once at construction; there is no process-wide shared instance.
type Config struct {
	APIKey     string
	BaseURL    string
	User       string // static caller identifier sent with every request
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("dify: api key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.User == "" {
		return errors.New("dify: user identifier is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// CompletionRequest carries the two formatted text blocks the scheduling
// workflow expects as named inputs.
type CompletionRequest struct {
	ExistedEvents string
	Plans         string
}

// CompletionResult is the decoded answer plus outer-envelope bookkeeping.
// When Status is StatusFailure the Events list is ignored; otherwise a nil
// Events list means the service had nothing to propose.
type CompletionResult struct {
	Status  int             `json:"status"`
	Message *string         `json:"message"`
	Events  []ProposedEvent `json:"events"`

	// Bookkeeping from the outer envelope, for logging only.
	TaskID string `json:"-"`
	Usage  Usage  `json:"-"`
}

// ProposedEvent is one event suggested by the service. It exists only
// between response decoding and materialization.
type ProposedEvent struct {
	DTStart     string  `json:"dtstart"`
	DTEnd       string  `json:"dtend"`
	Summary     string  `json:"summary"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// Usage is the token/cost accounting reported by the service.
type Usage struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	TotalPrice       string  `json:"total_price"`
	Currency         string  `json:"currency"`
	Latency          float64 `json:"latency"`
}

// --- wire types ---

type completionPayload struct {
	Inputs       completionInputs `json:"inputs"`
	ResponseMode string           `json:"response_mode"`
	User         string           `json:"user"`
}

type completionInputs struct {
	ExistedEvents string `json:"existed_events"`
	Plans         string `json:"plans"`
}

// completionEnvelope is the outer response object. Answer is a JSON-encoded
// string whose contents must be decoded a second time; the service contract
// never returns it as structured data.
type completionEnvelope struct {
	Event     string   `json:"event"`
	TaskID    string   `json:"task_id"`
	ID        string   `json:"id"`
	MessageID string   `json:"message_id"`
	Mode      string   `json:"mode"`
	Answer    string   `json:"answer"`
	CreatedAt int64    `json:"created_at"`
	Metadata  metadata `json:"metadata"`
}

type metadata struct {
	Usage Usage `json:"usage"`
}
