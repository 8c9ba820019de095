package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type difyImpl struct {
	apiKey     string
	baseURL    string
	user       string
	httpClient *http.Client
}

// newDifyImpl creates a new Dify implementation
func newDifyImpl(cfg Config) *difyImpl {
	return &difyImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		user:       cfg.User,
		httpClient: cfg.HTTPClient,
	}
}

// Complete sends one blocking completion request to the Dify API and decodes
// the two-layer response: the outer envelope, then the answer string inside it.
func (d *difyImpl) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	payload := completionPayload{
		Inputs: completionInputs{
			ExistedEvents: req.ExistedEvents,
			Plans:         req.Plans,
		},
		ResponseMode: ResponseModeBlocking,
		User:         d.user,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("dify: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		d.baseURL+"/completion-messages", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("dify: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: API call failed: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: API error %d: %s", ErrNetwork, resp.StatusCode, string(raw))
	}

	var envelope completionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode envelope: %v", ErrProtocol, err)
	}

	// Second decode layer: the answer field holds the actual result as a
	// JSON-encoded string.
	var result CompletionResult
	if err := json.Unmarshal([]byte(envelope.Answer), &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode answer: %v", ErrProtocol, err)
	}

	result.TaskID = envelope.TaskID
	result.Usage = envelope.Metadata.Usage

	return &result, nil
}
