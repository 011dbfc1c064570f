// Package coordinator implements next-actor selection for the orchestration
// loop. Two interchangeable strategies exist behind one interface: the
// task-driven TaskCoordinator routing on pending task assignments, and the
// model-driven ModelCoordinator asking a reasoning model to pick the next
// speaker. Both strategies consume exactly one volley per decision and emit
// their terminal actor once the volley budget is exhausted.
package coordinator

import (
	"context"

	"github.com/hupe1980/tripmesh/core"
)

// Decision is the outcome of one coordinator invocation.
type Decision struct {
	// NextAgent is the actor identifier that should run next. It is always a
	// member of the coordinator's valid actor set or its terminal actor.
	NextAgent string
	// Remaining is the number of volleys left after this decision.
	Remaining int
}

// Coordinator chooses the next actor for the orchestration loop. A
// coordinator never returns an error: failure of any underlying collaborator
// is absorbed by a fallback selection inside the valid actor set.
type Coordinator interface {
	SelectNext(ctx context.Context, state *core.OrchestrationState) Decision
}
