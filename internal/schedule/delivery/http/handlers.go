package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-copilot/internal/schedule"
	"calendar-copilot/pkg/response"
)

// Suggest godoc
// @Summary     Generate AI event suggestions
// @Description Exports events and reminders for a date range, asks the completion service for new events, and writes accepted proposals into the default calendar.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Date range and calendar selection"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Pipeline failure with a user-facing message"
// @Router      /api/v1/schedule/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	runID := uuid.NewString()
	record := h.runs.start(runID)

	input := req.toInput()
	input.OnStage = record.setStage

	output, err := h.uc.Suggest(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: run=%s: %v", runID, err)
		record.finish(output.Count, userMessage(err))
		h.respondError(c, err)
		return
	}

	record.finish(output.Count, "")
	response.OK(c, newSuggestResp(runID, output))
}

// GetRun godoc
// @Summary     Inspect a pipeline run
// @Description Returns the stage, busy flag, and outcome of a recent suggestion run.
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Run ID"
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "Unknown or evicted run"
// @Router      /api/v1/schedule/runs/{id} [GET]
func (h *handler) GetRun(c *gin.Context) {
	record, ok := h.runs.get(c.Param("id"))
	if !ok {
		response.NotFound(c, "run not found")
		return
	}
	response.OK(c, record.snapshot())
}

// ListCalendars godoc
// @Summary     List calendars
// @Tags        Calendars
// @Produce     json
// @Success     200 {array} calendarResp
// @Router      /api/v1/calendars [GET]
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	calendars, err := h.uc.ListCalendars(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCalendars: %v", err)
		h.respondError(c, err)
		return
	}

	resp := make([]calendarResp, len(calendars))
	for i, cal := range calendars {
		resp[i] = calendarResp{ID: cal.ID, Name: cal.Name}
	}
	response.OK(c, resp)
}

// ListEvents godoc
// @Summary     List events
// @Description Returns events in a date range, optionally restricted to selected calendars.
// @Tags        Events
// @Produce     json
// @Param       from         query string   true  "Range start (RFC3339, inclusive)"
// @Param       to           query string   true  "Range end (RFC3339, exclusive)"
// @Param       calendar_ids query []string false "Calendar IDs"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListEventsResp(output))
}

// CreateEvent godoc
// @Summary     Create an event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	event, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newEventResp(event))
}

// DeleteEvent godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       id          path  string true  "Event ID"
// @Param       calendar_id query string false "Calendar ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	err := h.uc.DeleteEvent(ctx, schedule.DeleteEventInput{
		CalendarID: c.Query("calendar_id"),
		EventID:    c.Param("id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListReminders godoc
// @Summary     List reminders
// @Tags        Reminders
// @Produce     json
// @Param       include_completed query bool false "Include completed reminders"
// @Success     200 {object} listRemindersResp
// @Router      /api/v1/reminders [GET]
func (h *handler) ListReminders(c *gin.Context) {
	ctx := c.Request.Context()

	var req listRemindersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListReminders(ctx, schedule.ListRemindersInput{
		IncludeCompleted: req.IncludeCompleted,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListReminders: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListRemindersResp(output))
}

// CreateReminder godoc
// @Summary     Create a reminder
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body createReminderReq true "Reminder data"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/reminders [POST]
func (h *handler) CreateReminder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReminderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reminder, err := h.uc.CreateReminder(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateReminder: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newReminderResp(reminder))
}

// DeleteReminder godoc
// @Summary     Delete a reminder
// @Tags        Reminders
// @Produce     json
// @Param       id          path  string true  "Reminder ID"
// @Param       calendar_id query string false "Calendar ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/reminders/{id} [DELETE]
func (h *handler) DeleteReminder(c *gin.Context) {
	ctx := c.Request.Context()

	err := h.uc.DeleteReminder(ctx, schedule.DeleteReminderInput{
		CalendarID: c.Query("calendar_id"),
		ReminderID: c.Param("id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteReminder: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// userMessage extracts the message safe to persist in the run record.
func userMessage(err error) string {
	var pipeErr *schedule.PipelineError
	if errors.As(err, &pipeErr) {
		return pipeErr.UserMessage
	}
	return schedule.GenericErrorMessage
}
