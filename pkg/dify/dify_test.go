package dify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"calendar-copilot/pkg/dify"
)

func newTestClient(t *testing.T, baseURL string) dify.IDify {
	t.Helper()

	client, err := dify.New(dify.Config{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
		User:    "calendar-copilot-test",
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestConfigValidate(t *testing.T) {
	if _, err := dify.New(dify.Config{User: "u"}); err == nil {
		t.Error("expected error for missing api key")
	}
	if _, err := dify.New(dify.Config{APIKey: "k"}); err == nil {
		t.Error("expected error for missing user identifier")
	}
	if _, err := dify.New(dify.Config{APIKey: "k", User: "u"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestComplete(t *testing.T) {
	answer := `{"status":1,"message":null,"events":[{"dtstart":"2024-06-02T10:00:00+00:00","dtend":"2024-06-02T11:00:00+00:00","summary":"Review"}]}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/completion-messages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var payload struct {
			Inputs struct {
				ExistedEvents string `json:"existed_events"`
				Plans         string `json:"plans"`
			} `json:"inputs"`
			ResponseMode string `json:"response_mode"`
			User         string `json:"user"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.ResponseMode != "blocking" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.User != "calendar-copilot-test" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Test controls: input text selects the response shape.
		switch payload.Inputs.ExistedEvents {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "bad_outer":
			w.Write([]byte(`{not json`))
			return
		case "bad_answer":
			json.NewEncoder(w).Encode(map[string]any{"answer": "{not json either"})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"event":      "message",
			"task_id":    "task-123",
			"id":         "id-1",
			"message_id": "msg-1",
			"mode":       "completion",
			"answer":     answer,
			"created_at": 1717315200,
			"metadata": map[string]any{
				"usage": map[string]any{
					"prompt_tokens":     120,
					"completion_tokens": 60,
					"total_tokens":      180,
					"total_price":       "0.0009",
					"currency":          "USD",
					"latency":           1.23,
				},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	t.Run("success decodes both layers", func(t *testing.T) {
		result, err := client.Complete(context.Background(), dify.CompletionRequest{
			ExistedEvents: "existing agenda",
			Plans:         "plans",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Status == dify.StatusFailure {
			t.Fatalf("expected success status, got %d", result.Status)
		}
		if len(result.Events) != 1 {
			t.Fatalf("expected 1 proposed event, got %d", len(result.Events))
		}
		if result.Events[0].Summary != "Review" {
			t.Errorf("expected summary Review, got %q", result.Events[0].Summary)
		}
		if result.Events[0].DTStart != "2024-06-02T10:00:00+00:00" {
			t.Errorf("unexpected dtstart %q", result.Events[0].DTStart)
		}
		if result.TaskID != "task-123" {
			t.Errorf("expected task id from envelope, got %q", result.TaskID)
		}
		if result.Usage.TotalTokens != 180 {
			t.Errorf("expected usage from envelope, got %+v", result.Usage)
		}
	})

	t.Run("http error is a network error", func(t *testing.T) {
		_, err := client.Complete(context.Background(), dify.CompletionRequest{ExistedEvents: "cause_500"})
		if !errors.Is(err, dify.ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("malformed envelope is a protocol error", func(t *testing.T) {
		_, err := client.Complete(context.Background(), dify.CompletionRequest{ExistedEvents: "bad_outer"})
		if !errors.Is(err, dify.ErrProtocol) {
			t.Errorf("expected ErrProtocol, got %v", err)
		}
	})

	t.Run("malformed answer string is a protocol error", func(t *testing.T) {
		_, err := client.Complete(context.Background(), dify.CompletionRequest{ExistedEvents: "bad_answer"})
		if !errors.Is(err, dify.ErrProtocol) {
			t.Errorf("expected ErrProtocol, got %v", err)
		}
	})

	t.Run("unreachable server is a network error", func(t *testing.T) {
		dead := newTestClient(t, "http://127.0.0.1:1")
		_, err := dead.Complete(context.Background(), dify.CompletionRequest{})
		if !errors.Is(err, dify.ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})
}

func TestCompleteFailureStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"task_id": "task-q",
			"answer":  `{"status":0,"message":"quota exceeded"}`,
		})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	result, err := client.Complete(context.Background(), dify.CompletionRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A service-level failure is a decoded result, not a client error.
	if result.Status != dify.StatusFailure {
		t.Errorf("expected failure sentinel, got %d", result.Status)
	}
	if result.Message == nil || *result.Message != "quota exceeded" {
		t.Errorf("expected service message, got %v", result.Message)
	}
	if result.Events != nil {
		t.Errorf("expected no events on failure, got %v", result.Events)
	}
}
