package coordinator

import (
	"context"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/logging"
)

// TaskCoordinator is the deterministic, task-driven selection strategy. It
// walks a three-state machine over the registry: no tasks yet routes to the
// planner (to trigger task creation), a pending task routes to its assignee
// (earliest creation order wins), and a fully completed registry routes to
// the terminal summarize actor.
type TaskCoordinator struct {
	terminal string
	logger   logging.Logger
}

// TaskCoordinatorOptions configure a TaskCoordinator.
type TaskCoordinatorOptions struct {
	// Terminal is the actor emitted once all work is done or the volley
	// budget is exhausted. Defaults to core.ActorSummarize.
	Terminal string
	// Logger receives decision traces. Defaults to NoOpLogger.
	Logger logging.Logger
}

// NewTaskCoordinator constructs a task-driven coordinator.
func NewTaskCoordinator(optFns ...func(o *TaskCoordinatorOptions)) *TaskCoordinator {
	opts := TaskCoordinatorOptions{
		Terminal: core.ActorSummarize,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &TaskCoordinator{terminal: opts.Terminal, logger: opts.Logger}
}

// SelectNext implements Coordinator. It consumes one volley, inspects the
// registry, announces the selection on the board and returns it. With the
// volley budget exhausted it emits the terminal actor without consulting the
// registry at all.
func (c *TaskCoordinator) SelectNext(ctx context.Context, state *core.OrchestrationState) Decision {
	if state.Volleys.Exhausted() {
		c.logger.Info("volley budget exhausted, forcing termination", "terminal", c.terminal)
		return Decision{NextAgent: c.terminal, Remaining: 0}
	}
	remaining := state.Volleys.Consume()

	registry := state.Shared.Registry
	next := core.AgentPlanner
	switch {
	case registry.Len() == 0:
		// keep planner: no tasks exist yet
	case registry.AllCompleted():
		next = c.terminal
	default:
		if task, ok := registry.FirstPending(); ok {
			next = task.AssignedTo
		}
		// otherwise tasks are in progress or failed; planner decides
	}

	state.Board.Postf(core.AgentCoordinator, "Coordinator requests %s to begin their tasks.", next)
	c.logger.Debug("coordinator selected next agent", "next", next, "remaining", remaining)

	return Decision{NextAgent: next, Remaining: remaining}
}
