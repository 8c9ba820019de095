package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-copilot/internal/model"
	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/repository"
)

// ListReminders returns reminders, optionally including completed ones.
func (uc *implUseCase) ListReminders(ctx context.Context, input schedule.ListRemindersInput) (schedule.ListRemindersOutput, error) {
	reminders, err := uc.store.ListReminders(ctx, repository.ListRemindersOptions{
		IncludeCompleted: input.IncludeCompleted,
	})
	if err != nil {
		return schedule.ListRemindersOutput{}, fmt.Errorf("list reminders: %w", err)
	}

	return schedule.ListRemindersOutput{Reminders: reminders, Count: len(reminders)}, nil
}

// CreateReminder writes a reminder to the store.
func (uc *implUseCase) CreateReminder(ctx context.Context, input schedule.CreateReminderInput) (model.Reminder, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Reminder{}, schedule.ErrEmptyTitle
	}

	reminder, err := uc.store.CreateReminder(ctx, repository.CreateReminderOptions{
		CalendarID: input.CalendarID,
		Title:      input.Title,
		DueAt:      input.DueAt,
		HasDueTime: input.HasDueTime,
		Notes:      input.Notes,
	})
	if err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}

	uc.l.Infof(ctx, "CreateReminder: created %q", reminder.Title)
	return reminder, nil
}

// DeleteReminder removes a reminder from the store.
func (uc *implUseCase) DeleteReminder(ctx context.Context, input schedule.DeleteReminderInput) error {
	if input.ReminderID == "" {
		return schedule.ErrMissingID
	}

	if err := uc.store.DeleteReminder(ctx, input.CalendarID, input.ReminderID); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	uc.l.Infof(ctx, "DeleteReminder: deleted %s", input.ReminderID)
	return nil
}
