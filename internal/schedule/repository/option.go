package repository

import "time"

// ListEventsOptions selects events by range and calendar set. From is
// inclusive, To exclusive. An empty CalendarIDs set selects no calendars and
// yields an empty result, not an error.
type ListEventsOptions struct {
	From        time.Time
	To          time.Time
	CalendarIDs []string
}

// CreateEventOptions is a fully formed event record for a create.
type CreateEventOptions struct {
	CalendarID string
	Title      string
	StartAt    time.Time
	EndAt      time.Time
	Location   string
	Notes      string
}

// ListRemindersOptions selects reminders. Reminders live in a single
// backend-configured collection (a Google Tasks list or a CalDAV VTODO
// collection), so there is no per-calendar selection here.
type ListRemindersOptions struct {
	IncludeCompleted bool
}

// CreateReminderOptions is a reminder record for a create.
type CreateReminderOptions struct {
	CalendarID string
	Title      string
	DueAt      *time.Time
	HasDueTime bool
	Notes      string
}
