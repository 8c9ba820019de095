// Package gcal adapts Google Calendar (events) and Google Tasks (reminders)
// to the schedule store interface.
package gcal

import (
	"context"
	"fmt"
	"sort"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule/repository"
	"calendar-copilot/pkg/gcalendar"
	"calendar-copilot/pkg/gtasks"
)

type store struct {
	calendar   *gcalendar.Client
	tasks      *gtasks.Client
	defaultID  string
	taskListID string
	timezone   string
}

var _ repository.Store = (*store)(nil)

// New creates a Google-backed store. defaultCalendarID is the calendar new
// events are written to; empty means the account's primary calendar.
func New(calendar *gcalendar.Client, tasks *gtasks.Client, defaultCalendarID, taskListID, timezone string) *store {
	if defaultCalendarID == "" {
		defaultCalendarID = "primary"
	}
	return &store{
		calendar:   calendar,
		tasks:      tasks,
		defaultID:  defaultCalendarID,
		taskListID: taskListID,
		timezone:   timezone,
	}
}

func (s *store) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	entries, err := s.calendar.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	calendars := make([]model.Calendar, 0, len(entries))
	for _, entry := range entries {
		calendars = append(calendars, model.Calendar{ID: entry.ID, Name: entry.Summary})
	}
	return calendars, nil
}

func (s *store) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	names, err := s.calendarNames(ctx)
	if err != nil {
		return nil, err
	}

	var events []model.Event
	for _, calendarID := range opt.CalendarIDs {
		items, err := s.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: calendarID,
			TimeMin:    opt.From,
			TimeMax:    opt.To,
		})
		if err != nil {
			return nil, fmt.Errorf("calendar %s: %w", calendarID, err)
		}

		for _, item := range items {
			events = append(events, model.Event{
				ID:           item.ID,
				CalendarID:   calendarID,
				CalendarName: names[calendarID],
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
	created, err := s.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  opt.CalendarID,
		Summary:     opt.Title,
		Description: opt.Notes,
		Location:    opt.Location,
		StartTime:   opt.StartAt,
		EndTime:     opt.EndAt,
		Timezone:    s.timezone,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}

	return model.Event{
		ID:         created.ID,
		CalendarID: created.CalendarID,
		Title:      created.Summary,
		StartAt:    created.StartTime,
		EndAt:      created.EndTime,
		Location:   created.Location,
		Notes:      created.Description,
	}, nil
}

func (s *store) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return s.calendar.DeleteEvent(ctx, calendarID, eventID)
}

func (s *store) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	items, err := s.tasks.ListTasks(ctx, gtasks.ListTasksRequest{
		ListID:        s.taskListID,
		ShowCompleted: opt.IncludeCompleted,
	})
	if err != nil {
		return nil, err
	}

	reminders := make([]model.Reminder, 0, len(items))
	for _, item := range items {
		reminders = append(reminders, model.Reminder{
			ID:           item.ID,
			CalendarID:   item.ListID,
			CalendarName: "Tasks",
			Title:        item.Title,
			DueAt:        item.Due,
			// Google Tasks keeps day precision only.
			HasDueTime: false,
			Completed:  item.Completed,
			Notes:      item.Notes,
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
	created, err := s.tasks.CreateTask(ctx, gtasks.CreateTaskRequest{
		ListID: s.taskListID,
		Title:  opt.Title,
		Notes:  opt.Notes,
		Due:    opt.DueAt,
	})
	if err != nil {
		return model.Reminder{}, fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}

	return model.Reminder{
		ID:           created.ID,
		CalendarID:   created.ListID,
		CalendarName: "Tasks",
		Title:        created.Title,
		DueAt:        created.Due,
		Notes:        created.Notes,
	}, nil
}

func (s *store) DeleteReminder(ctx context.Context, calendarID, reminderID string) error {
	listID := calendarID
	if listID == "" {
		listID = s.taskListID
	}
	return s.tasks.DeleteTask(ctx, listID, reminderID)
}

func (s *store) DefaultCalendarID(ctx context.Context) (string, error) {
	return s.defaultID, nil
}

// calendarNames resolves display names for event mapping. This is a lookup
// per call: event and reminder data is never cached.
func (s *store) calendarNames(ctx context.Context) (map[string]string, error) {
	entries, err := s.calendar.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(entries))
	for _, entry := range entries {
		names[entry.ID] = entry.Summary
	}
	return names, nil
}
