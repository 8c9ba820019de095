package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule/repository"
	"calendar-copilot/pkg/dify"
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

// mockStore is an in-memory repository.Store.
type mockStore struct {
	calendars []model.Calendar
	events    []model.Event
	reminders []model.Reminder

	defaultID string

	listErr   error
	createErr error
	deleteErr error

	nextID int
}

func newMockStore() *mockStore {
	return &mockStore{
		calendars: []model.Calendar{
			{ID: "cal-work", Name: "Work"},
			{ID: "cal-home", Name: "Home"},
		},
		defaultID: "cal-work",
	}
}

func (m *mockStore) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.calendars, nil
}

func (m *mockStore) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	selected := make(map[string]bool, len(opt.CalendarIDs))
	for _, id := range opt.CalendarIDs {
		selected[id] = true
	}

	var out []model.Event
	for _, ev := range m.events {
		if !selected[ev.CalendarID] {
			continue
		}
		if ev.StartAt.Before(opt.From) || !ev.StartAt.Before(opt.To) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out, nil
}

func (m *mockStore) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if m.createErr != nil {
		return model.Event{}, m.createErr
	}

	m.nextID++
	event := model.Event{
		ID:         fmt.Sprintf("ev-%d", m.nextID),
		CalendarID: opt.CalendarID,
		Title:      opt.Title,
		StartAt:    opt.StartAt,
		EndAt:      opt.EndAt,
		Location:   opt.Location,
		Notes:      opt.Notes,
	}
	for _, cal := range m.calendars {
		if cal.ID == opt.CalendarID {
			event.CalendarName = cal.Name
		}
	}
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockStore) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, ev := range m.events {
		if ev.ID == eventID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockStore) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var out []model.Reminder
	for _, rem := range m.reminders {
		if rem.Completed && !opt.IncludeCompleted {
			continue
		}
		out = append(out, rem)
	}
	return out, nil
}

func (m *mockStore) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	if m.createErr != nil {
		return model.Reminder{}, m.createErr
	}

	m.nextID++
	reminder := model.Reminder{
		ID:         fmt.Sprintf("rem-%d", m.nextID),
		CalendarID: opt.CalendarID,
		Title:      opt.Title,
		DueAt:      opt.DueAt,
		HasDueTime: opt.HasDueTime,
		Notes:      opt.Notes,
	}
	m.reminders = append(m.reminders, reminder)
	return reminder, nil
}

func (m *mockStore) DeleteReminder(ctx context.Context, calendarID, reminderID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, rem := range m.reminders {
		if rem.ID == reminderID {
			m.reminders = append(m.reminders[:i], m.reminders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockStore) DefaultCalendarID(ctx context.Context) (string, error) {
	if m.defaultID == "" {
		return "", errors.New("no default calendar")
	}
	return m.defaultID, nil
}

// mockDify returns a canned result or error and records the request.
type mockDify struct {
	result  *dify.CompletionResult
	err     error
	lastReq dify.CompletionRequest
	calls   int
}

func (m *mockDify) Complete(ctx context.Context, req dify.CompletionRequest) (*dify.CompletionResult, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func strPtr(s string) *string { return &s }
