package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-copilot/internal/schedule"
	"calendar-copilot/internal/schedule/usecase"
	"calendar-copilot/pkg/dify"
)

// The materializer is exercised through Suggest; these cases pin its
// per-proposal partial-success behavior.

func TestMaterializeSkipsUnparsableProposal(t *testing.T) {
	store := newMockStore()
	ai := &mockDify{result: &dify.CompletionResult{
		Status: 1,
		Events: []dify.ProposedEvent{
			{DTStart: "not-a-timestamp", DTEnd: "2024-06-02T11:00:00+00:00", Summary: "Broken"},
			{DTStart: "2024-06-02T10:00:00+00:00", DTEnd: "2024-06-02T11:00:00+00:00", Summary: "Valid"},
		},
	}}
	uc := usecase.New(&mockLogger{}, store, ai, time.UTC)

	from, to := suggestRange()
	out, err := uc.Suggest(context.Background(), schedule.SuggestInput{
		From: from, To: to, CalendarIDs: []string{"cal-work"},
	})

	// One failure flips the run to failure, but the valid proposal was
	// still written and is reported.
	if err == nil {
		t.Fatal("expected overall failure when any proposal fails")
	}
	var pipeErr *schedule.PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("expected PipelineError, got %T", err)
	}
	if pipeErr.Stage != schedule.StageMaterializing {
		t.Errorf("expected materializing stage, got %s", pipeErr.Stage)
	}

	if out.Count != 1 {
		t.Fatalf("expected 1 created event, got %d", out.Count)
	}
	if out.Created[0].Title != "Valid" {
		t.Errorf("expected the valid proposal to land, got %q", out.Created[0].Title)
	}
	if len(out.Failures) != 1 || out.Failures[0].Summary != "Broken" {
		t.Errorf("expected one recorded failure for Broken, got %+v", out.Failures)
	}
	if len(store.events) != 1 {
		t.Errorf("expected exactly one store write, got %d", len(store.events))
	}
}

func TestMaterializeRoundTrip(t *testing.T) {
	store := newMockStore()
	ai := &mockDify{result: &dify.CompletionResult{
		Status: 1,
		Events: []dify.ProposedEvent{{
			DTStart:     "2024-06-02T09:30:00+08:00",
			DTEnd:       "2024-06-02T10:30:00+08:00",
			Summary:     "Planning",
			Location:    strPtr("Room 4"),
			Description: strPtr("Quarterly planning"),
		}},
	}}
	uc := usecase.New(&mockLogger{}, store, ai, time.UTC)

	from, to := suggestRange()
	if _, err := uc.Suggest(context.Background(), schedule.SuggestInput{
		From: from, To: to, CalendarIDs: []string{"cal-work"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reading the event back from the store yields the proposal's fields.
	listed, err := uc.ListEvents(context.Background(), schedule.ListEventsInput{
		From: from, To: to, CalendarIDs: []string{"cal-work"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listed.Count != 1 {
		t.Fatalf("expected 1 event, got %d", listed.Count)
	}

	got := listed.Events[0]
	if got.Title != "Planning" {
		t.Errorf("title mismatch: %q", got.Title)
	}
	if got.Location != "Room 4" {
		t.Errorf("location mismatch: %q", got.Location)
	}
	if got.Notes != "Quarterly planning" {
		t.Errorf("notes mismatch: %q", got.Notes)
	}

	wantStart, _ := time.Parse(dify.ProposedEventTimeLayout, "2024-06-02T09:30:00+08:00")
	if !got.StartAt.Equal(wantStart) {
		t.Errorf("start mismatch: got %v want %v", got.StartAt, wantStart)
	}
	wantEnd, _ := time.Parse(dify.ProposedEventTimeLayout, "2024-06-02T10:30:00+08:00")
	if !got.EndAt.Equal(wantEnd) {
		t.Errorf("end mismatch: got %v want %v", got.EndAt, wantEnd)
	}
}

func TestMaterializeStoreWriteFailure(t *testing.T) {
	store := newMockStore()
	store.createErr = errors.New("store unavailable")

	ai := &mockDify{result: &dify.CompletionResult{
		Status: 1,
		Events: []dify.ProposedEvent{{
			DTStart: "2024-06-02T10:00:00+00:00",
			DTEnd:   "2024-06-02T11:00:00+00:00",
			Summary: "Review",
		}},
	}}
	uc := usecase.New(&mockLogger{}, store, ai, time.UTC)

	from, to := suggestRange()
	out, err := uc.Suggest(context.Background(), schedule.SuggestInput{
		From: from, To: to, CalendarIDs: []string{"cal-work"},
	})

	var pipeErr *schedule.PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pipeErr.UserMessage != schedule.GenericErrorMessage {
		t.Errorf("store detail must not leak to the user: %q", pipeErr.UserMessage)
	}
	if out.Count != 0 || len(out.Failures) != 1 {
		t.Errorf("expected 0 created / 1 failure, got %d / %d", out.Count, len(out.Failures))
	}
}
