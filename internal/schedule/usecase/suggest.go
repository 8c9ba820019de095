package usecase

import (
	"context"
	"fmt"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/repository"
	"calendar-copilot/pkg/dify"
)

// Suggest runs the export-and-AI-scheduling pipeline in strict sequence:
// read → format → complete → materialize. There is no retry at any stage; a
// failed run must be re-initiated by the caller from idle. Concurrent runs
// are not serialized here — the delivery layer exposes a busy flag so the
// triggering action can be disabled while a run is in flight.
func (uc *implUseCase) Suggest(ctx context.Context, input schedule.SuggestInput) (schedule.SuggestOutput, error) {
	if !input.From.Before(input.To) {
		return schedule.SuggestOutput{}, schedule.ErrInvalidRange
	}

	setStage := func(s schedule.Stage) {
		uc.l.Infof(ctx, "Suggest: stage=%s", s)
		if input.OnStage != nil {
			input.OnStage(s)
		}
	}

	fail := func(stage schedule.Stage, userMsg string, err error) (schedule.SuggestOutput, error) {
		setStage(schedule.StageError)
		uc.l.Errorf(ctx, "Suggest: stage=%s failed: %v", stage, err)
		return schedule.SuggestOutput{}, &schedule.PipelineError{
			Stage:       stage,
			UserMessage: userMsg,
			Err:         err,
		}
	}

	// Formatting: read a fresh snapshot and render the two text blocks. An
	// empty calendar selection proceeds with empty collections.
	setStage(schedule.StageFormatting)

	var events []model.Event
	var reminders []model.Reminder

	if len(input.CalendarIDs) > 0 {
		var err error
		events, err = uc.store.ListEvents(ctx, repository.ListEventsOptions{
			From:        input.From,
			To:          input.To,
			CalendarIDs: input.CalendarIDs,
		})
		if err != nil {
			return fail(schedule.StageFormatting, schedule.GenericErrorMessage,
				fmt.Errorf("list events: %w", err))
		}

		reminders, err = uc.store.ListReminders(ctx, repository.ListRemindersOptions{})
		if err != nil {
			return fail(schedule.StageFormatting, schedule.GenericErrorMessage,
				fmt.Errorf("list reminders: %w", err))
		}
	}

	now := uc.now()
	existedEvents := schedule.FormatAgenda(events, nil, uc.loc, now)
	plans := schedule.FormatAgenda(nil, reminders, uc.loc, now)

	uc.l.Infof(ctx, "Suggest: formatted %d events, %d reminders", len(events), len(reminders))

	// Awaiting completion: the single suspension point of the run.
	setStage(schedule.StageAwaitingCompletion)

	result, err := uc.ai.Complete(ctx, dify.CompletionRequest{
		ExistedEvents: existedEvents,
		Plans:         plans,
	})
	if err != nil {
		// Network and protocol causes are logged, never shown verbatim.
		return fail(schedule.StageAwaitingCompletion, schedule.GenericErrorMessage, err)
	}

	uc.l.Infof(ctx, "Suggest: completion task=%s tokens=%d latency=%.2fs",
		result.TaskID, result.Usage.TotalTokens, result.Usage.Latency)

	if result.Status == dify.StatusFailure {
		// The service-supplied message is shown verbatim when present.
		msg := schedule.DefaultServiceErrorMessage
		if result.Message != nil && *result.Message != "" {
			msg = *result.Message
		}
		return fail(schedule.StageAwaitingCompletion, msg,
			fmt.Errorf("service reported failure status: %s", msg))
	}

	// Success with no event list is a no-op success.
	if len(result.Events) == 0 {
		setStage(schedule.StageIdle)
		uc.l.Infof(ctx, "Suggest: success with no proposed events")
		return schedule.SuggestOutput{}, nil
	}

	setStage(schedule.StageMaterializing)

	created, failures := uc.materialize(ctx, result.Events)

	output := schedule.SuggestOutput{
		Created:  created,
		Count:    len(created),
		Failures: failures,
	}

	// Any single failure flips the whole run to failure even though earlier
	// proposals were written; the created list is still reported.
	if len(failures) > 0 {
		setStage(schedule.StageError)
		uc.l.Errorf(ctx, "Suggest: materialized %d/%d proposals", len(created), len(result.Events))
		return output, &schedule.PipelineError{
			Stage:       schedule.StageMaterializing,
			UserMessage: schedule.GenericErrorMessage,
			Err:         fmt.Errorf("%d of %d proposals failed", len(failures), len(result.Events)),
		}
	}

	setStage(schedule.StageIdle)
	uc.l.Infof(ctx, "Suggest: created %d events", len(created))
	return output, nil
}
