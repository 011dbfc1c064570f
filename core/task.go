package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TaskType categorizes the work a task represents.
type TaskType string

const (
	// TaskTypeResearch marks attraction / weather research work.
	TaskTypeResearch TaskType = "research"
	// TaskTypeBook marks hotel booking work.
	TaskTypeBook TaskType = "book"
)

// Status is the lifecycle state of a task. Transitions are strictly forward:
// pending -> in_progress -> {completed, failed}.
type Status string

const (
	// StatusPending is the initial status assigned at task creation.
	StatusPending Status = "pending"
	// StatusInProgress marks a task claimed by its assignee.
	StatusInProgress Status = "in_progress"
	// StatusCompleted is a terminal success status.
	StatusCompleted Status = "completed"
	// StatusFailed is a terminal failure status.
	StatusFailed Status = "failed"
)

// canTransition reports whether moving from -> to is a legal forward step.
func canTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted || to == StatusFailed
	default:
		// completed / failed are terminal
		return false
	}
}

// TaskParams is the tagged payload attached to a task at creation time.
// Concrete shapes exist per task type; the interface keeps the registry
// agnostic of them.
type TaskParams interface{ isTaskParams() }

// ResearchParams parameterizes an attraction / weather research task.
type ResearchParams struct {
	Location  string `json:"location"`
	StartDate string `json:"start_date"` // ISO 8601 calendar date
	EndDate   string `json:"end_date"`
}

func (ResearchParams) isTaskParams() {}

// BookParams parameterizes a hotel booking task.
type BookParams struct {
	Location string `json:"location"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

func (BookParams) isTaskParams() {}

// Task is a unit of assigned work routed to exactly one agent. Tasks are
// immutable after creation; progress is tracked separately in TaskStatus.
type Task struct {
	ID          string     `json:"id"`
	Type        TaskType   `json:"type"`
	Description string     `json:"description"`
	Params      TaskParams `json:"params"`
	AssignedTo  string     `json:"assigned_to"`
}

// TaskStatus tracks the mutable progress of a single task. Result carries the
// success payload or the failure message once a terminal status is reached.
type TaskStatus struct {
	TaskID    string    `json:"task_id"`
	Status    Status    `json:"status"`
	Result    any       `json:"result,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewID generates a fresh unique identifier for tasks and board entries.
func NewID() string { return uuid.NewString() }

// Registry tracks tasks and their per-task status. Every task has exactly one
// status record, created alongside the task with StatusPending. The registry
// enforces the forward-only transition invariant on all status mutations.
//
// It is safe for concurrent access, though the orchestration loop drives it
// strictly turn-by-turn.
type Registry struct {
	mu     sync.RWMutex
	tasks  []Task
	status map[string]*TaskStatus
}

// NewRegistry constructs an empty task registry.
func NewRegistry() *Registry {
	return &Registry{status: make(map[string]*TaskStatus)}
}

// Create registers a new task with a generated id and an initial pending
// status. Insertion order is preserved and used as the deterministic
// tie-break for FindPending.
func (r *Registry) Create(taskType TaskType, description string, params TaskParams, assignedTo string) Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := Task{
		ID:          NewID(),
		Type:        taskType,
		Description: description,
		Params:      params,
		AssignedTo:  assignedTo,
	}
	r.tasks = append(r.tasks, task)
	r.status[task.ID] = &TaskStatus{TaskID: task.ID, Status: StatusPending, UpdatedAt: time.Now()}

	return task
}

// Tasks returns a copy of all tasks in creation order.
func (r *Registry) Tasks() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// Status returns a snapshot of the status record for a task.
func (r *Registry) Status(taskID string) (TaskStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.status[taskID]
	if !ok {
		return TaskStatus{}, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	return *st, nil
}

// FindPending returns the first pending task (creation order) assigned to the
// given agent. The boolean is false when no such task exists; that is a
// normal no-op condition, not an error.
func (r *Registry) FindPending(assignedTo string) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.AssignedTo == assignedTo && r.status[t.ID].Status == StatusPending {
			return t, true
		}
	}
	return Task{}, false
}

// FirstPending returns the earliest pending task regardless of assignee.
func (r *Registry) FirstPending() (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if r.status[t.ID].Status == StatusPending {
			return t, true
		}
	}
	return Task{}, false
}

// MarkInProgress transitions a pending task to in_progress.
func (r *Registry) MarkInProgress(taskID string) error {
	return r.transition(taskID, StatusInProgress, nil)
}

// MarkCompleted transitions an in_progress task to completed, recording the
// result payload.
func (r *Registry) MarkCompleted(taskID string, result any) error {
	return r.transition(taskID, StatusCompleted, result)
}

// MarkFailed transitions an in_progress task to failed, capturing the error
// message as the result payload.
func (r *Registry) MarkFailed(taskID string, taskErr error) error {
	var result any
	if taskErr != nil {
		result = map[string]any{"error": taskErr.Error()}
	}
	return r.transition(taskID, StatusFailed, result)
}

func (r *Registry) transition(taskID string, to Status, result any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.status[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if !canTransition(st.Status, to) {
		return fmt.Errorf("%w: %s -> %s (task %s)", ErrInvalidTransition, st.Status, to, taskID)
	}

	st.Status = to
	if result != nil {
		st.Result = result
	}
	st.UpdatedAt = time.Now()

	return nil
}

// AllCompleted reports whether every registered task is exactly completed.
// A single failed task makes this false permanently; failure is terminal for
// the registry's done predicate. An empty registry is vacuously complete.
func (r *Registry) AllCompleted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, st := range r.status {
		if st.Status != StatusCompleted {
			return false
		}
	}
	return true
}
