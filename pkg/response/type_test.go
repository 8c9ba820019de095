package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-copilot/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	// Local-zone input so the Local() conversion inside MarshalJSON is a
	// no-op and the output is exact.
	tm := time.Date(2024, 6, 1, 15, 30, 0, 0, time.Local)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if got := string(b); got != `"2024-06-01"` {
		t.Errorf("Date marshaled as %s, want %q", got, "2024-06-01")
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 6, 1, 15, 30, 45, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if got := string(b); got != `"2024-06-01 15:30:45"` {
		t.Errorf("DateTime marshaled as %s, want %q", got, "2024-06-01 15:30:45")
	}
}

func TestNewOKResp(t *testing.T) {
	resp := response.NewOKResp(map[string]int{"count": 3})

	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("expected message %q, got %q", response.MessageSuccess, resp.Message)
	}
	if resp.Data == nil {
		t.Error("expected data to be set")
	}
}
