// Package engine implements the orchestration loop: the single-threaded,
// turn-based driver that alternates coordinator decisions and agent turns
// until a termination condition is met. The engine is the sole authority for
// committing a turn's Update back into the shared state; agent nodes never
// see the state concurrently.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/tripmesh/coordinator"
	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/logging"
)

// Finalizer produces the terminal report of a run. It must be a pure reader
// of the orchestration state.
type Finalizer interface {
	Report(state *core.OrchestrationState) string
}

// BoardSink receives incremental message board entries after every turn for
// display. Entries are passed exactly once, in insertion order.
type BoardSink func(entries []core.Entry)

// Options configure an Engine.
type Options struct {
	// Logger receives engine traces. Defaults to NoOpLogger.
	Logger logging.Logger
	// BoardSink, when set, is called with new board entries after each turn.
	BoardSink BoardSink
	// Output, when set, receives the final report verbatim.
	Output io.Writer
}

// Engine drives one orchestration run: coordinator decision, agent dispatch,
// update merge, repeat. Termination conditions, checked each iteration:
//
//   - a session error is recorded (failed task short-circuits to summary)
//   - the phase reached summary
//   - all tasks completed with non-empty results and at least one booking
//   - the volley budget is exhausted
//   - the coordinator emitted its terminal actor
//   - the context was cancelled (operator interrupt)
//
// Every exit path runs the Finalizer against whatever state exists.
type Engine struct {
	coordinator coordinator.Coordinator
	finalizer   Finalizer
	nodes       map[string]core.Node
	logger      logging.Logger
	sink        BoardSink
	output      io.Writer
}

// New constructs an engine over a coordinator, a finalizer and the agent
// nodes the coordinator may route to.
func New(coord coordinator.Coordinator, finalizer Finalizer, nodes []core.Node, optFns ...func(o *Options)) *Engine {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	index := make(map[string]core.Node, len(nodes))
	for _, n := range nodes {
		index[n.Name()] = n
	}

	return &Engine{
		coordinator: coord,
		finalizer:   finalizer,
		nodes:       index,
		logger:      opts.Logger,
		sink:        opts.BoardSink,
		output:      opts.Output,
	}
}

// Run executes the loop against the given state until termination and
// returns the final report. A cancelled context is treated as an operator
// interrupt: the run summarizes immediately with the state it has. Only
// programming errors (e.g. an illegal status transition) abort the run.
func (e *Engine) Run(ctx context.Context, state *core.OrchestrationState) (string, error) {
	cursor := 0

	for {
		cursor = e.flush(state, cursor)

		if reason, done := e.shouldFinalize(state); done {
			e.logger.Info("run finalizing", "reason", reason)
			break
		}
		if ctx.Err() != nil {
			state.Board.Post(core.AgentCoordinator, "Planning interrupted. Generating summary...", nil)
			e.logger.Warn("run interrupted, summarizing with current state")
			break
		}
		if state.Volleys.Exhausted() {
			state.Board.Post(core.AgentCoordinator, "Volley exhausted, generating summary...", nil)
			e.logger.Info("volley budget exhausted")
			break
		}

		decision := e.coordinator.SelectNext(ctx, state)
		if decision.NextAgent == core.ActorSummarize || decision.NextAgent == core.ActorHuman {
			e.logger.Info("coordinator emitted terminal actor", "actor", decision.NextAgent)
			break
		}

		node, ok := e.nodes[decision.NextAgent]
		if !ok {
			// The coordinator contract confines selections to the valid
			// actor set; an unroutable name means a miswired engine.
			state.SetErr(fmt.Sprintf("no node registered for agent %q", decision.NextAgent))
			e.logger.Error("unroutable agent selection", "agent", decision.NextAgent)
			continue
		}
		state.SetNextAgent(decision.NextAgent)

		update, err := node.Run(core.NewTurnContext(ctx, state, e.logger))
		if err != nil {
			return "", fmt.Errorf("agent %s: %w", decision.NextAgent, err)
		}
		e.merge(state, update)
	}

	e.flush(state, cursor)

	report := e.finalizer.Report(state)
	if e.output != nil {
		fmt.Fprint(e.output, report)
	}
	return report, nil
}

// shouldFinalize evaluates the completion conditions against the state.
func (e *Engine) shouldFinalize(state *core.OrchestrationState) (string, bool) {
	if state.Err() != "" {
		return "session error", true
	}
	if state.Phase() == core.PhaseSummary {
		return "summary phase reached", true
	}
	// A task that completed with an empty payload does not count as done on
	// its own; results and bookings must exist as well.
	registry := state.Shared.Registry
	if registry.Len() > 0 && registry.AllCompleted() &&
		state.Shared.ResultCount() > 0 && len(state.Shared.Bookings()) > 0 {
		return "all tasks completed", true
	}
	return "", false
}

// merge commits an agent's Update into the state. It runs strictly between
// turns; this is the only place deltas are applied.
func (e *Engine) merge(state *core.OrchestrationState, update core.Update) {
	if update.Err != nil {
		state.SetErr(update.Err.Error())
	}
	if update.Phase != "" {
		state.SetPhase(update.Phase)
	}
	if update.NextAgent != "" {
		state.SetNextAgent(update.NextAgent)
	}
}

// flush pushes unseen board entries to the sink and returns the new cursor.
func (e *Engine) flush(state *core.OrchestrationState, cursor int) int {
	entries := state.Board.Snapshot(cursor)
	if len(entries) == 0 {
		return cursor
	}
	if e.sink != nil {
		e.sink(entries)
	}
	return cursor + len(entries)
}
