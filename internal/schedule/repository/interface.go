package repository

import (
	"context"

	"calendar-copilot/internal/model"
)

// Store is the capability interface over the host calendar/reminders store.
// Every read is a fresh snapshot; implementations must not cache event or
// reminder data across calls. The store provides its own internal
// consistency for concurrent reads and writes.
type Store interface {
	// ListCalendars returns all calendars visible to the account.
	ListCalendars(ctx context.Context) ([]model.Calendar, error)

	// ListEvents returns events sorted by start time ascending.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)

	// CreateEvent writes a fully formed event to the given calendar.
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error

	// ListReminders returns reminders sorted by due time ascending,
	// reminders without a due time last.
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, error)

	// CreateReminder writes a reminder.
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)

	// DeleteReminder removes a reminder.
	DeleteReminder(ctx context.Context, calendarID, reminderID string) error

	// DefaultCalendarID returns the calendar new events are written to when
	// the caller does not pick one.
	DefaultCalendarID(ctx context.Context) (string, error)
}
