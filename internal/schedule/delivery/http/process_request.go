package http

import (
	"github.com/gin-gonic/gin"

	"calendar-copilot/internal/schedule"
)

// processSuggestReq binds and validates the suggest request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if !req.From.Before(req.To) {
		return req, schedule.ErrInvalidRange
	}
	return req, nil
}

// processListEventsReq binds the list events query parameters.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if !req.From.Before(req.To) {
		return req, schedule.ErrInvalidRange
	}
	return req, nil
}

// processCreateEventReq binds and validates the create event request body.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if !req.StartAt.Before(req.EndAt) {
		return req, schedule.ErrInvalidRange
	}
	return req, nil
}

// processCreateReminderReq binds the create reminder request body.
func (h *handler) processCreateReminderReq(c *gin.Context) (createReminderReq, error) {
	var req createReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
