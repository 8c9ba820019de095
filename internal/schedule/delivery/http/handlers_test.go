package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-copilot/config"
	"calendar-copilot/internal/middleware"
	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	scheduleHTTP "calendar-copilot/internal/schedule/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	suggestOut schedule.SuggestOutput
	suggestErr error
	stages     []schedule.Stage

	calendars    []model.Calendar
	calendarsErr error

	listEventsOut schedule.ListEventsOutput
	listEventsErr error

	createdEvent   model.Event
	createEventErr error
	deleteEventErr error

	listRemindersOut schedule.ListRemindersOutput
	createdReminder  model.Reminder

	lastSuggestInput schedule.SuggestInput
	lastDeleteEvent  schedule.DeleteEventInput
}

func (m *mockUseCase) Suggest(ctx context.Context, input schedule.SuggestInput) (schedule.SuggestOutput, error) {
	m.lastSuggestInput = input
	if input.OnStage != nil {
		for _, s := range m.stages {
			input.OnStage(s)
		}
	}
	return m.suggestOut, m.suggestErr
}

func (m *mockUseCase) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	return m.calendars, m.calendarsErr
}

func (m *mockUseCase) ListEvents(ctx context.Context, input schedule.ListEventsInput) (schedule.ListEventsOutput, error) {
	return m.listEventsOut, m.listEventsErr
}

func (m *mockUseCase) CreateEvent(ctx context.Context, input schedule.CreateEventInput) (model.Event, error) {
	return m.createdEvent, m.createEventErr
}

func (m *mockUseCase) DeleteEvent(ctx context.Context, input schedule.DeleteEventInput) error {
	m.lastDeleteEvent = input
	return m.deleteEventErr
}

func (m *mockUseCase) ListReminders(ctx context.Context, input schedule.ListRemindersInput) (schedule.ListRemindersOutput, error) {
	return m.listRemindersOut, nil
}

func (m *mockUseCase) CreateReminder(ctx context.Context, input schedule.CreateReminderInput) (model.Reminder, error) {
	return m.createdReminder, nil
}

func (m *mockUseCase) DeleteReminder(ctx context.Context, input schedule.DeleteReminderInput) error {
	return nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newTestEngine(t *testing.T, muc *mockUseCase, ratePerMin int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	cfg := &config.Config{}
	cfg.Schedule.SuggestRatePerMin = ratePerMin
	mw := middleware.New(l, cfg)

	h, err := scheduleHTTP.New(l, muc)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	engine := gin.New()
	scheduleHTTP.RegisterRoutes(engine.Group("/api/v1"), h, mw)
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return resp
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestSuggestSuccess(t *testing.T) {
	created := model.Event{
		ID:         "ev-1",
		CalendarID: "cal-work",
		Title:      "Review",
		StartAt:    time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}
	muc := &mockUseCase{
		suggestOut: schedule.SuggestOutput{Created: []model.Event{created}, Count: 1},
		stages: []schedule.Stage{
			schedule.StageFormatting,
			schedule.StageAwaitingCompletion,
			schedule.StageMaterializing,
			schedule.StageIdle,
		},
	}
	engine := newTestEngine(t, muc, 60)

	w := doJSON(engine, http.MethodPost, "/api/v1/schedule/suggest", map[string]any{
		"from":         "2024-06-01T00:00:00Z",
		"to":           "2024-06-08T00:00:00Z",
		"calendar_ids": []string{"cal-work"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}

	resp := decodeResp(t, w)
	data, _ := resp["data"].(map[string]interface{})
	if data == nil {
		t.Fatalf("missing data in response: %q", w.Body.String())
	}
	runID, _ := data["run_id"].(string)
	if runID == "" {
		t.Error("expected a non-empty run_id")
	}
	if got := data["created"].(float64); got != 1 {
		t.Errorf("created = %v, want 1", got)
	}
	if len(muc.lastSuggestInput.CalendarIDs) != 1 || muc.lastSuggestInput.CalendarIDs[0] != "cal-work" {
		t.Errorf("calendar ids not forwarded: %v", muc.lastSuggestInput.CalendarIDs)
	}

	// The run record is inspectable afterwards and settled on the last stage.
	w = doJSON(engine, http.MethodGet, "/api/v1/schedule/runs/"+runID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("run status = %d, want 200", w.Code)
	}
	run, _ := decodeResp(t, w)["data"].(map[string]interface{})
	if run["stage"] != "idle" {
		t.Errorf("run stage = %v, want idle", run["stage"])
	}
	if run["busy"] != false {
		t.Errorf("run busy = %v, want false", run["busy"])
	}
	if _, hasErr := run["error"]; hasErr {
		t.Errorf("run error should be omitted on success, got %v", run["error"])
	}
}

func TestSuggestInvalidRange(t *testing.T) {
	muc := &mockUseCase{}
	engine := newTestEngine(t, muc, 60)

	w := doJSON(engine, http.MethodPost, "/api/v1/schedule/suggest", map[string]any{
		"from": "2024-06-08T00:00:00Z",
		"to":   "2024-06-01T00:00:00Z",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSuggestPipelineError(t *testing.T) {
	muc := &mockUseCase{
		suggestErr: &schedule.PipelineError{
			Stage:       schedule.StageAwaitingCompletion,
			UserMessage: "Please connect your calendar first.",
		},
		stages: []schedule.Stage{schedule.StageFormatting, schedule.StageError},
	}
	engine := newTestEngine(t, muc, 60)

	w := doJSON(engine, http.MethodPost, "/api/v1/schedule/suggest", map[string]any{
		"from": "2024-06-01T00:00:00Z",
		"to":   "2024-06-08T00:00:00Z",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %q)", w.Code, w.Body.String())
	}

	resp := decodeResp(t, w)
	if resp["message"] != "Please connect your calendar first." {
		t.Errorf("message = %v, want the pipeline user message", resp["message"])
	}
}

func TestSuggestRateLimit(t *testing.T) {
	muc := &mockUseCase{}
	engine := newTestEngine(t, muc, 1)

	body := map[string]any{
		"from": "2024-06-01T00:00:00Z",
		"to":   "2024-06-08T00:00:00Z",
	}
	if w := doJSON(engine, http.MethodPost, "/api/v1/schedule/suggest", body); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}
	if w := doJSON(engine, http.MethodPost, "/api/v1/schedule/suggest", body); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
}

func TestGetRunNotFound(t *testing.T) {
	engine := newTestEngine(t, &mockUseCase{}, 60)

	w := doJSON(engine, http.MethodGet, "/api/v1/schedule/runs/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListCalendars(t *testing.T) {
	muc := &mockUseCase{
		calendars: []model.Calendar{
			{ID: "cal-work", Name: "Work"},
			{ID: "cal-home", Name: "Home"},
		},
	}
	engine := newTestEngine(t, muc, 60)

	w := doJSON(engine, http.MethodGet, "/api/v1/calendars", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data, _ := decodeResp(t, w)["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("got %d calendars, want 2", len(data))
	}
	first, _ := data[0].(map[string]interface{})
	if first["name"] != "Work" {
		t.Errorf("first calendar name = %v, want Work", first["name"])
	}
}

func TestListEventsRequiresRange(t *testing.T) {
	engine := newTestEngine(t, &mockUseCase{}, 60)

	w := doJSON(engine, http.MethodGet, "/api/v1/events", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateEvent(t *testing.T) {
	muc := &mockUseCase{
		createdEvent: model.Event{
			ID:         "ev-9",
			CalendarID: "cal-work",
			Title:      "Standup",
			StartAt:    time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
		},
	}
	engine := newTestEngine(t, muc, 60)

	w := doJSON(engine, http.MethodPost, "/api/v1/events", map[string]any{
		"title":    "Standup",
		"start_at": "2024-06-03T09:00:00Z",
		"end_at":   "2024-06-03T09:30:00Z",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
	}

	data, _ := decodeResp(t, w)["data"].(map[string]interface{})
	if data["id"] != "ev-9" {
		t.Errorf("event id = %v, want ev-9", data["id"])
	}
}

func TestCreateEventMissingTitle(t *testing.T) {
	engine := newTestEngine(t, &mockUseCase{}, 60)

	w := doJSON(engine, http.MethodPost, "/api/v1/events", map[string]any{
		"start_at": "2024-06-03T09:00:00Z",
		"end_at":   "2024-06-03T09:30:00Z",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteEvent(t *testing.T) {
	muc := &mockUseCase{}
	engine := newTestEngine(t, muc, 60)

	w := doJSON(engine, http.MethodDelete, "/api/v1/events/ev-3?calendar_id=cal-home", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if muc.lastDeleteEvent.EventID != "ev-3" || muc.lastDeleteEvent.CalendarID != "cal-home" {
		t.Errorf("delete input = %+v", muc.lastDeleteEvent)
	}
}

func TestCreateReminder(t *testing.T) {
	// Local-zone inputs so the rendered strings are exact.
	due := time.Date(2024, 6, 5, 17, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		hasDueTime bool
		wantDueAt  string
	}{
		{name: "timed due renders as datetime", hasDueTime: true, wantDueAt: "2024-06-05 17:00:00"},
		{name: "day-precision due renders as date", hasDueTime: false, wantDueAt: "2024-06-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			muc := &mockUseCase{
				createdReminder: model.Reminder{
					ID:         "rem-1",
					CalendarID: "cal-work",
					Title:      "Send report",
					DueAt:      &due,
					HasDueTime: tt.hasDueTime,
				},
			}
			engine := newTestEngine(t, muc, 60)

			w := doJSON(engine, http.MethodPost, "/api/v1/reminders", map[string]any{
				"title":        "Send report",
				"due_at":       due.Format(time.RFC3339),
				"has_due_time": tt.hasDueTime,
			})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %q)", w.Code, w.Body.String())
			}

			data, _ := decodeResp(t, w)["data"].(map[string]interface{})
			if data["id"] != "rem-1" {
				t.Errorf("reminder id = %v, want rem-1", data["id"])
			}
			if data["has_due_time"] != tt.hasDueTime {
				t.Errorf("has_due_time = %v, want %v", data["has_due_time"], tt.hasDueTime)
			}
			if data["due_at"] != tt.wantDueAt {
				t.Errorf("due_at = %v, want %q", data["due_at"], tt.wantDueAt)
			}
		})
	}
}
