package schedule

import (
	"context"

	"calendar-copilot/internal/model"
)

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Suggest runs the export-and-AI-scheduling pipeline: read events and
	// reminders for the range, format them, call the completion service, and
	// materialize accepted proposals into the store's default calendar.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// ListCalendars returns all calendars known to the host store.
	ListCalendars(ctx context.Context) ([]model.Calendar, error)

	// ListEvents returns events for a date range, restricted to the selected
	// calendars when any are given.
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)

	// CreateEvent writes a fully formed event to the store.
	CreateEvent(ctx context.Context, input CreateEventInput) (model.Event, error)

	// DeleteEvent removes an event from the store.
	DeleteEvent(ctx context.Context, input DeleteEventInput) error

	// ListReminders returns reminders, optionally including completed ones.
	ListReminders(ctx context.Context, input ListRemindersInput) (ListRemindersOutput, error)

	// CreateReminder writes a reminder to the store.
	CreateReminder(ctx context.Context, input CreateReminderInput) (model.Reminder, error)

	// DeleteReminder removes a reminder from the store.
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
}
