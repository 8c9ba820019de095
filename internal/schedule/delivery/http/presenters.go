package http

import (
	"time"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	"calendar-copilot/pkg/response"
)

// --- Request DTOs ---

type suggestReq struct {
	From        time.Time `json:"from"         binding:"required"`
	To          time.Time `json:"to"           binding:"required"`
	CalendarIDs []string  `json:"calendar_ids"`
}

func (r suggestReq) toInput() schedule.SuggestInput {
	return schedule.SuggestInput{
		From:        r.From,
		To:          r.To,
		CalendarIDs: r.CalendarIDs,
	}
}

type listEventsReq struct {
	From        time.Time `form:"from"         binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To          time.Time `form:"to"           binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CalendarIDs []string  `form:"calendar_ids"`
}

func (r listEventsReq) toInput() schedule.ListEventsInput {
	return schedule.ListEventsInput{
		From:        r.From,
		To:          r.To,
		CalendarIDs: r.CalendarIDs,
	}
}

type createEventReq struct {
	CalendarID string    `json:"calendar_id"`
	Title      string    `json:"title"    binding:"required,min=1,max=255"`
	StartAt    time.Time `json:"start_at" binding:"required"`
	EndAt      time.Time `json:"end_at"   binding:"required"`
	Location   string    `json:"location" binding:"max=1000"`
	Notes      string    `json:"notes"    binding:"max=4000"`
}

func (r createEventReq) toInput() schedule.CreateEventInput {
	return schedule.CreateEventInput{
		CalendarID: r.CalendarID,
		Title:      r.Title,
		StartAt:    r.StartAt,
		EndAt:      r.EndAt,
		Location:   r.Location,
		Notes:      r.Notes,
	}
}

type listRemindersReq struct {
	IncludeCompleted bool `form:"include_completed"`
}

type createReminderReq struct {
	CalendarID string     `json:"calendar_id"`
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	DueAt      *time.Time `json:"due_at"`
	HasDueTime bool       `json:"has_due_time"`
	Notes      string     `json:"notes" binding:"max=4000"`
}

func (r createReminderReq) toInput() schedule.CreateReminderInput {
	return schedule.CreateReminderInput{
		CalendarID: r.CalendarID,
		Title:      r.Title,
		DueAt:      r.DueAt,
		HasDueTime: r.HasDueTime,
		Notes:      r.Notes,
	}
}

// --- Response DTOs ---

type calendarResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type eventResp struct {
	ID           string    `json:"id"`
	CalendarID   string    `json:"calendar_id"`
	CalendarName string    `json:"calendar_name,omitempty"`
	Title        string    `json:"title"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:           ev.ID,
		CalendarID:   ev.CalendarID,
		CalendarName: ev.CalendarName,
		Title:        ev.Title,
		StartAt:      ev.StartAt,
		EndAt:        ev.EndAt,
		Location:     ev.Location,
		Notes:        ev.Notes,
	}
}

type reminderResp struct {
	ID           string `json:"id"`
	CalendarID   string `json:"calendar_id"`
	CalendarName string `json:"calendar_name,omitempty"`
	Title        string `json:"title"`
	// DueAt renders as response.Date for day-precision reminders and
	// response.DateTime when a time of day is set.
	DueAt      any    `json:"due_at,omitempty" swaggertype:"string"`
	HasDueTime bool   `json:"has_due_time"`
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes,omitempty"`
}

func newReminderResp(rem model.Reminder) reminderResp {
	resp := reminderResp{
		ID:           rem.ID,
		CalendarID:   rem.CalendarID,
		CalendarName: rem.CalendarName,
		Title:        rem.Title,
		HasDueTime:   rem.HasDueTime,
		Completed:    rem.Completed,
		Notes:        rem.Notes,
	}
	if rem.DueAt != nil {
		if rem.HasDueTime {
			resp.DueAt = response.DateTime(*rem.DueAt)
		} else {
			resp.DueAt = response.Date(*rem.DueAt)
		}
	}
	return resp
}

type suggestResp struct {
	RunID   string      `json:"run_id"`
	Created int         `json:"created"`
	Events  []eventResp `json:"events"`
}

func newSuggestResp(runID string, out schedule.SuggestOutput) suggestResp {
	events := make([]eventResp, len(out.Created))
	for i, ev := range out.Created {
		events[i] = newEventResp(ev)
	}
	return suggestResp{
		RunID:   runID,
		Created: out.Count,
		Events:  events,
	}
}

type runResp struct {
	ID         string     `json:"id"`
	Stage      string     `json:"stage"`
	Busy       bool       `json:"busy"`
	Created    int        `json:"created"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func newListEventsResp(out schedule.ListEventsOutput) listEventsResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listEventsResp{Events: events, Count: out.Count}
}

type listRemindersResp struct {
	Reminders []reminderResp `json:"reminders"`
	Count     int            `json:"count"`
}

func newListRemindersResp(out schedule.ListRemindersOutput) listRemindersResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, rem := range out.Reminders {
		reminders[i] = newReminderResp(rem)
	}
	return listRemindersResp{Reminders: reminders, Count: out.Count}
}
