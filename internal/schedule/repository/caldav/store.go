// Package caldav adapts a CalDAV server (VEVENT events, VTODO reminders) to
// the schedule store interface.
package caldav

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule/repository"
	pkgCaldav "calendar-copilot/pkg/caldav"
)

type store struct {
	client      *pkgCaldav.Client
	defaultPath string // calendar collection new events are written to
	todoPath    string // collection holding VTODO reminders
}

var _ repository.Store = (*store)(nil)

// New creates a CalDAV-backed store. todoPath defaults to defaultPath.
func New(client *pkgCaldav.Client, defaultPath, todoPath string) *store {
	if todoPath == "" {
		todoPath = defaultPath
	}
	return &store{
		client:      client,
		defaultPath: defaultPath,
		todoPath:    todoPath,
	}
}

func (s *store) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	cals, err := s.client.DiscoverCalendars(ctx)
	if err != nil {
		return nil, err
	}

	calendars := make([]model.Calendar, 0, len(cals))
	for _, cal := range cals {
		name := cal.DisplayName
		if name == "" {
			name = path.Base(strings.TrimSuffix(cal.Path, "/"))
		}
		calendars = append(calendars, model.Calendar{ID: cal.Path, Name: name})
	}
	return calendars, nil
}

func (s *store) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	names, err := s.calendarNames(ctx)
	if err != nil {
		return nil, err
	}

	var events []model.Event
	for _, calendarPath := range opt.CalendarIDs {
		items, err := s.client.GetEvents(ctx, calendarPath, opt.From, opt.To)
		if err != nil {
			return nil, fmt.Errorf("calendar %s: %w", calendarPath, err)
		}

		for _, item := range items {
			events = append(events, model.Event{
				ID:           item.UID,
				CalendarID:   calendarPath,
				CalendarName: names[calendarPath],
				Title:        item.Summary,
				StartAt:      item.StartTime,
				EndAt:        item.EndTime,
				Location:     item.Location,
				Notes:        item.Description,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].StartAt.Before(events[j].StartAt) })
	return events, nil
}

func (s *store) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	event := &pkgCaldav.Event{
		Summary:     opt.Title,
		Description: opt.Notes,
		Location:    opt.Location,
		StartTime:   opt.StartAt,
		EndTime:     opt.EndAt,
	}

	if err := s.client.CreateEvent(ctx, opt.CalendarID, event); err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}

	return model.Event{
		ID:         event.UID,
		CalendarID: opt.CalendarID,
		Title:      opt.Title,
		StartAt:    opt.StartAt,
		EndAt:      opt.EndAt,
		Location:   opt.Location,
		Notes:      opt.Notes,
	}, nil
}

func (s *store) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = s.defaultPath
	}
	return s.client.DeleteEvent(ctx, calendarID, eventID)
}

func (s *store) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	todos, err := s.client.GetTodos(ctx, s.todoPath, opt.IncludeCompleted)
	if err != nil {
		return nil, err
	}

	names, err := s.calendarNames(ctx)
	if err != nil {
		return nil, err
	}

	reminders := make([]model.Reminder, 0, len(todos))
	for _, todo := range todos {
		reminders = append(reminders, model.Reminder{
			ID:           todo.UID,
			CalendarID:   s.todoPath,
			CalendarName: names[s.todoPath],
			Title:        todo.Summary,
			DueAt:        todo.Due,
			HasDueTime:   todo.HasDueTime,
			Completed:    todo.Completed,
			Notes:        todo.Notes,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i].DueAt, reminders[j].DueAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return reminders, nil
}

func (s *store) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	calendarPath := opt.CalendarID
	if calendarPath == "" {
		calendarPath = s.todoPath
	}

	todo := &pkgCaldav.Todo{
		Summary:    opt.Title,
		Notes:      opt.Notes,
		Due:        opt.DueAt,
		HasDueTime: opt.HasDueTime,
	}

	if err := s.client.CreateTodo(ctx, calendarPath, todo); err != nil {
		return model.Reminder{}, fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}

	return model.Reminder{
		ID:         todo.UID,
		CalendarID: calendarPath,
		Title:      opt.Title,
		DueAt:      opt.DueAt,
		HasDueTime: opt.HasDueTime,
		Notes:      opt.Notes,
	}, nil
}

func (s *store) DeleteReminder(ctx context.Context, calendarID, reminderID string) error {
	if calendarID == "" {
		calendarID = s.todoPath
	}
	return s.client.DeleteTodo(ctx, calendarID, reminderID)
}

func (s *store) DefaultCalendarID(ctx context.Context) (string, error) {
	if s.defaultPath == "" {
		return "", fmt.Errorf("no default calendar configured")
	}
	return s.defaultPath, nil
}

func (s *store) calendarNames(ctx context.Context) (map[string]string, error) {
	calendars, err := s.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(calendars))
	for _, cal := range calendars {
		names[cal.ID] = cal.Name
	}
	return names, nil
}
