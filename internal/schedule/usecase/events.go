package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/repository"
)

// ListCalendars returns all calendars known to the host store.
func (uc *implUseCase) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	calendars, err := uc.store.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	return calendars, nil
}

// ListEvents returns events for the range, restricted to the selected
// calendars. An empty selection means all calendars.
func (uc *implUseCase) ListEvents(ctx context.Context, input schedule.ListEventsInput) (schedule.ListEventsOutput, error) {
	if !input.From.Before(input.To) {
		return schedule.ListEventsOutput{}, schedule.ErrInvalidRange
	}

	calendarIDs := input.CalendarIDs
	if len(calendarIDs) == 0 {
		calendars, err := uc.store.ListCalendars(ctx)
		if err != nil {
			return schedule.ListEventsOutput{}, fmt.Errorf("list calendars: %w", err)
		}
		for _, cal := range calendars {
			calendarIDs = append(calendarIDs, cal.ID)
		}
	}

	events, err := uc.store.ListEvents(ctx, repository.ListEventsOptions{
		From:        input.From,
		To:          input.To,
		CalendarIDs: calendarIDs,
	})
	if err != nil {
		return schedule.ListEventsOutput{}, fmt.Errorf("list events: %w", err)
	}

	return schedule.ListEventsOutput{Events: events, Count: len(events)}, nil
}

// CreateEvent writes an event. An empty calendar id targets the store's
// default calendar for new events.
func (uc *implUseCase) CreateEvent(ctx context.Context, input schedule.CreateEventInput) (model.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Event{}, schedule.ErrEmptyTitle
	}
	if !input.StartAt.Before(input.EndAt) {
		return model.Event{}, schedule.ErrInvalidRange
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		var err error
		calendarID, err = uc.store.DefaultCalendarID(ctx)
		if err != nil {
			return model.Event{}, fmt.Errorf("default calendar: %w", err)
		}
	}

	event, err := uc.store.CreateEvent(ctx, repository.CreateEventOptions{
		CalendarID: calendarID,
		Title:      input.Title,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
		Location:   input.Location,
		Notes:      input.Notes,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}

	uc.l.Infof(ctx, "CreateEvent: created %q in calendar %s", event.Title, calendarID)
	return event, nil
}

// DeleteEvent removes an event from the store.
func (uc *implUseCase) DeleteEvent(ctx context.Context, input schedule.DeleteEventInput) error {
	if input.EventID == "" {
		return schedule.ErrMissingID
	}

	if err := uc.store.DeleteEvent(ctx, input.CalendarID, input.EventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	uc.l.Infof(ctx, "DeleteEvent: deleted %s", input.EventID)
	return nil
}
