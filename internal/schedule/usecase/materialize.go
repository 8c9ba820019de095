package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/repository"
	"calendar-copilot/pkg/dify"
)

// materialize writes proposed events into the store's default calendar for
// new events — deliberately not the export-selected calendars. A parse or
// write failure for one proposal is recorded and skipped; it never aborts
// the remaining proposals.
func (uc *implUseCase) materialize(ctx context.Context, proposals []dify.ProposedEvent) ([]model.Event, []schedule.MaterializeFailure) {
	created := make([]model.Event, 0, len(proposals))
	var failures []schedule.MaterializeFailure

	calendarID, err := uc.store.DefaultCalendarID(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "materialize: default calendar lookup failed: %v", err)
		for _, p := range proposals {
			failures = append(failures, schedule.MaterializeFailure{
				Summary: p.Summary,
				Reason:  "default calendar unavailable",
			})
		}
		return created, failures
	}

	for _, p := range proposals {
		start, err := time.Parse(dify.ProposedEventTimeLayout, p.DTStart)
		if err != nil {
			uc.l.Warnf(ctx, "materialize: skip %q: bad dtstart %q: %v", p.Summary, p.DTStart, err)
			failures = append(failures, schedule.MaterializeFailure{
				Summary: p.Summary,
				Reason:  fmt.Sprintf("unparsable start time %q", p.DTStart),
			})
			continue
		}

		end, err := time.Parse(dify.ProposedEventTimeLayout, p.DTEnd)
		if err != nil {
			uc.l.Warnf(ctx, "materialize: skip %q: bad dtend %q: %v", p.Summary, p.DTEnd, err)
			failures = append(failures, schedule.MaterializeFailure{
				Summary: p.Summary,
				Reason:  fmt.Sprintf("unparsable end time %q", p.DTEnd),
			})
			continue
		}

		opt := repository.CreateEventOptions{
			CalendarID: calendarID,
			Title:      p.Summary,
			StartAt:    start,
			EndAt:      end,
		}
		if p.Location != nil {
			opt.Location = *p.Location
		}
		if p.Description != nil {
			opt.Notes = *p.Description
		}

		event, err := uc.store.CreateEvent(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "materialize: write failed for %q: %v", p.Summary, err)
			failures = append(failures, schedule.MaterializeFailure{
				Summary: p.Summary,
				Reason:  "store rejected the event",
			})
			continue
		}

		created = append(created, event)
	}

	return created, failures
}
