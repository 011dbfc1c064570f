package agent

import (
	"fmt"

	"github.com/hupe1980/tripmesh/core"
)

// Planner creates and assigns the initial tasks and monitors their progress.
// On its first turn with an empty registry it synthesizes exactly one
// research task and one booking task from the travel request; on later turns
// it flips the session to the summary phase once every task completed.
type Planner struct{}

var _ core.Node = (*Planner)(nil)

// NewPlanner constructs the planner node.
func NewPlanner() *Planner { return &Planner{} }

// Name implements core.Node.
func (p *Planner) Name() string { return core.AgentPlanner }

// Run implements core.Node.
func (p *Planner) Run(tc *core.TurnContext) (core.Update, error) {
	state := tc.State
	board := state.Board
	registry := state.Shared.Registry
	req := state.Request

	board.Post(core.AgentPlanner, "Planner: reviewing state and preparing tasks", nil)

	if registry.Len() == 0 {
		tc.LogInfo("no tasks found, creating initial tasks", "destination", req.Destination)
		board.Post(core.AgentPlanner,
			"Thought: I should create tasks for research and booking. Action: create tasks and assign to researcher and booker.", nil)

		research := registry.Create(
			core.TaskTypeResearch,
			fmt.Sprintf("Research attractions and weather in %s", req.Destination),
			core.ResearchParams{
				Location:  req.Destination,
				StartDate: req.CheckIn,
				EndDate:   req.CheckOut,
			},
			core.AgentResearcher,
		)
		book := registry.Create(
			core.TaskTypeBook,
			fmt.Sprintf("Book hotel in %s", req.Destination),
			core.BookParams{
				Location: req.Destination,
				CheckIn:  req.CheckIn,
				CheckOut: req.CheckOut,
				Guests:   req.Guests,
			},
			core.AgentBooker,
		)

		board.Post(core.AgentPlanner, "Created and assigned initial tasks",
			map[string]any{"tasks": []core.Task{research, book}})
	}

	var update core.Update
	if registry.Len() > 0 && registry.AllCompleted() {
		update.Phase = core.PhaseSummary
		board.Post(core.AgentPlanner, "All tasks completed. Moving to summary phase.", nil)
	}

	if task, ok := registry.FirstPending(); ok {
		update.NextAgent = task.AssignedTo
	}

	return update, nil
}
