package core

import "fmt"

var (
	// ErrInvalidTransition is returned when a task status change would move
	// backwards (e.g. completed -> in_progress). Transitions are forward only.
	ErrInvalidTransition = fmt.Errorf("invalid task status transition")

	// ErrUnknownTask is returned when a task id has no entry in the registry.
	ErrUnknownTask = fmt.Errorf("unknown task")
)
