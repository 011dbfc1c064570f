package core

import (
	"errors"
	"testing"
)

func TestRegistry_CreateAssignsPendingStatus(t *testing.T) {
	r := NewRegistry()
	task := r.Create(TaskTypeResearch, "Research attractions in kyoto",
		ResearchParams{Location: "kyoto", StartDate: "2024-04-01", EndDate: "2024-04-03"},
		AgentResearcher)

	if task.ID == "" {
		t.Fatal("Create did not assign an id")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", r.Len())
	}

	st, err := r.Status(task.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != StatusPending {
		t.Fatalf("expected pending status, got %s", st.Status)
	}
	if st.UpdatedAt.IsZero() {
		t.Fatal("status has no timestamp")
	}
}

func TestRegistry_ForwardOnlyTransitions(t *testing.T) {
	r := NewRegistry()
	task := r.Create(TaskTypeBook, "Book hotel", BookParams{Location: "kyoto"}, AgentBooker)

	// pending may not jump straight to a terminal status
	if err := r.MarkCompleted(task.ID, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for pending -> completed, got %v", err)
	}
	if err := r.MarkFailed(task.ID, errors.New("boom")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for pending -> failed, got %v", err)
	}

	if err := r.MarkInProgress(task.ID); err != nil {
		t.Fatalf("pending -> in_progress: %v", err)
	}
	if err := r.MarkInProgress(task.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for repeated in_progress, got %v", err)
	}
	if err := r.MarkCompleted(task.ID, map[string]any{"ok": true}); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}

	// completed is terminal
	if err := r.MarkFailed(task.ID, errors.New("late failure")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for completed -> failed, got %v", err)
	}
	if err := r.MarkInProgress(task.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for completed -> in_progress, got %v", err)
	}

	st, err := r.Status(task.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Status != StatusCompleted {
		t.Fatalf("rejected transitions must not mutate status, got %s", st.Status)
	}
}

func TestRegistry_FailedIsTerminal(t *testing.T) {
	r := NewRegistry()
	task := r.Create(TaskTypeResearch, "Research", ResearchParams{Location: "kyoto"}, AgentResearcher)

	if err := r.MarkInProgress(task.ID); err != nil {
		t.Fatalf("MarkInProgress: %v", err)
	}
	if err := r.MarkFailed(task.ID, errors.New("adapter down")); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}

	if err := r.MarkCompleted(task.ID, nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for failed -> completed, got %v", err)
	}

	st, _ := r.Status(task.ID)
	result, ok := st.Result.(map[string]any)
	if !ok {
		t.Fatalf("expected error payload map, got %T", st.Result)
	}
	if result["error"] != "adapter down" {
		t.Fatalf("expected captured error message, got %v", result["error"])
	}
}

func TestRegistry_UnknownTask(t *testing.T) {
	r := NewRegistry()
	if err := r.MarkInProgress("nope"); !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask, got %v", err)
	}
	if _, err := r.Status("nope"); !errors.Is(err, ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask from Status, got %v", err)
	}
}

func TestRegistry_AllCompleted(t *testing.T) {
	r := NewRegistry()
	if !r.AllCompleted() {
		t.Fatal("empty registry should be vacuously complete")
	}

	a := r.Create(TaskTypeResearch, "Research", ResearchParams{Location: "kyoto"}, AgentResearcher)
	b := r.Create(TaskTypeBook, "Book", BookParams{Location: "kyoto"}, AgentBooker)
	if r.AllCompleted() {
		t.Fatal("pending tasks should not count as complete")
	}

	r.MarkInProgress(a.ID)
	r.MarkCompleted(a.ID, nil)
	if r.AllCompleted() {
		t.Fatal("one completed of two should not be complete")
	}

	r.MarkInProgress(b.ID)
	r.MarkFailed(b.ID, errors.New("boom"))
	if r.AllCompleted() {
		t.Fatal("a failed task makes AllCompleted false permanently")
	}
}

func TestRegistry_PendingLookupOrder(t *testing.T) {
	r := NewRegistry()
	first := r.Create(TaskTypeResearch, "Research", ResearchParams{Location: "kyoto"}, AgentResearcher)
	second := r.Create(TaskTypeBook, "Book", BookParams{Location: "kyoto"}, AgentBooker)

	task, ok := r.FirstPending()
	if !ok || task.ID != first.ID {
		t.Fatalf("FirstPending should prefer creation order, got %+v", task)
	}

	task, ok = r.FindPending(AgentBooker)
	if !ok || task.ID != second.ID {
		t.Fatalf("FindPending(booker) should find the booking task, got %+v", task)
	}

	r.MarkInProgress(first.ID)
	task, ok = r.FirstPending()
	if !ok || task.ID != second.ID {
		t.Fatalf("in_progress tasks are not pending, got %+v", task)
	}

	if _, ok := r.FindPending("nobody"); ok {
		t.Fatal("FindPending for unknown assignee should report none")
	}
}
