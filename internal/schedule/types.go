package schedule

import (
	"time"

	"calendar-copilot/internal/model"
)

// Stage identifies where a pipeline run currently is. A run moves
// idle → formatting → awaiting_completion → materializing → idle; the error
// stage absorbs from any working stage.
type Stage string

const (
	StageIdle               Stage = "idle"
	StageFormatting         Stage = "formatting"
	StageAwaitingCompletion Stage = "awaiting_completion"
	StageMaterializing      Stage = "materializing"
	StageError              Stage = "error"
)

// SuggestInput is the input for one pipeline run. From is inclusive, To is
// exclusive. An empty CalendarIDs set yields empty collections, not an error.
type SuggestInput struct {
	From        time.Time
	To          time.Time
	CalendarIDs []string

	// OnStage, when set, is called on every stage transition. Callers use it
	// to drive a busy indicator; it must not block.
	OnStage func(Stage)
}

// SuggestOutput is the result of a pipeline run. On a failed materialization
// Created still lists the events that were written before the run was
// reported as failed.
type SuggestOutput struct {
	Created  []model.Event
	Count    int
	Failures []MaterializeFailure
}

// MaterializeFailure records one proposal that could not be written.
type MaterializeFailure struct {
	Summary string
	Reason  string
}

// ListEventsInput is the input for listing events in a range.
type ListEventsInput struct {
	From        time.Time
	To          time.Time
	CalendarIDs []string
}

// ListEventsOutput is the result of listing events.
type ListEventsOutput struct {
	Events []model.Event
	Count  int
}

// CreateEventInput is the input for creating an event. An empty CalendarID
// targets the store's default calendar for new events.
type CreateEventInput struct {
	CalendarID string
	Title      string
	StartAt    time.Time
	EndAt      time.Time
	Location   string
	Notes      string
}

// DeleteEventInput identifies the event to delete.
type DeleteEventInput struct {
	CalendarID string
	EventID    string
}

// ListRemindersInput is the input for listing reminders.
type ListRemindersInput struct {
	IncludeCompleted bool
}

// ListRemindersOutput is the result of listing reminders.
type ListRemindersOutput struct {
	Reminders []model.Reminder
	Count     int
}

// CreateReminderInput is the input for creating a reminder.
type CreateReminderInput struct {
	CalendarID string
	Title      string
	DueAt      *time.Time
	HasDueTime bool
	Notes      string
}

// DeleteReminderInput identifies the reminder to delete.
type DeleteReminderInput struct {
	CalendarID string
	ReminderID string
}
