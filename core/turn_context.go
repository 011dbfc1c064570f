package core

import (
	"context"

	"github.com/hupe1980/tripmesh/logging"
)

// TurnContext carries the execution scope for a single agent turn. It
// aggregates the ambient cancellation Context, the root orchestration state
// and a logger. The loop hands one TurnContext to exactly one node at a time;
// no two nodes ever hold one concurrently.
type TurnContext struct {
	Context context.Context
	State   *OrchestrationState

	*loggerAdapter
}

// NewTurnContext constructs a TurnContext for a node turn.
func NewTurnContext(ctx context.Context, state *OrchestrationState, logger logging.Logger) *TurnContext {
	return &TurnContext{
		Context:       ctx,
		State:         state,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Node is the common contract of all agent nodes (planner, researcher,
// booker, persona participants). Run executes one turn against the shared
// state and returns the delta the loop should merge back. Finding no work is
// a no-op, not an error: nodes return a zero Update in that case.
type Node interface {
	// Name returns the actor identifier coordinators route to.
	Name() string

	// Run executes one turn. The returned Update is merged by the
	// orchestration loop before the next turn begins.
	Run(tc *TurnContext) (Update, error)
}
