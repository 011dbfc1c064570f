package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/logging"
)

func newTurnContext(state *core.OrchestrationState) *core.TurnContext {
	return core.NewTurnContext(context.Background(), state, logging.NoOpLogger{})
}

func TestPlanner_CreatesInitialTasks(t *testing.T) {
	state := core.NewOrchestrationState(core.TravelRequest{
		Destination: "kyoto",
		CheckIn:     "2024-04-01",
		CheckOut:    "2024-04-03",
		Guests:      2,
	}, 6)

	update, err := NewPlanner().Run(newTurnContext(state))
	require.NoError(t, err)

	registry := state.Shared.Registry
	require.Equal(t, 2, registry.Len())

	tasks := registry.Tasks()
	assert.Equal(t, core.TaskTypeResearch, tasks[0].Type)
	assert.Equal(t, core.AgentResearcher, tasks[0].AssignedTo)
	research, ok := tasks[0].Params.(core.ResearchParams)
	require.True(t, ok)
	assert.Equal(t, "kyoto", research.Location)
	assert.Equal(t, "2024-04-01", research.StartDate)
	assert.Equal(t, "2024-04-03", research.EndDate)

	assert.Equal(t, core.TaskTypeBook, tasks[1].Type)
	assert.Equal(t, core.AgentBooker, tasks[1].AssignedTo)
	book, ok := tasks[1].Params.(core.BookParams)
	require.True(t, ok)
	assert.Equal(t, 2, book.Guests)

	// first pending task drives the next-agent hint
	assert.Equal(t, core.AgentResearcher, update.NextAgent)
	assert.Empty(t, update.Phase)
}

func TestPlanner_SecondTurnDoesNotDuplicateTasks(t *testing.T) {
	state := core.NewOrchestrationState(core.TravelRequest{Destination: "kyoto"}, 6)
	planner := NewPlanner()

	_, err := planner.Run(newTurnContext(state))
	require.NoError(t, err)
	_, err = planner.Run(newTurnContext(state))
	require.NoError(t, err)

	assert.Equal(t, 2, state.Shared.Registry.Len())
}

func TestPlanner_FlipsToSummaryWhenAllCompleted(t *testing.T) {
	state := core.NewOrchestrationState(core.TravelRequest{Destination: "kyoto"}, 6)
	registry := state.Shared.Registry

	task := registry.Create(core.TaskTypeResearch, "Research",
		core.ResearchParams{Location: "kyoto"}, core.AgentResearcher)
	require.NoError(t, registry.MarkInProgress(task.ID))
	require.NoError(t, registry.MarkCompleted(task.ID, nil))

	update, err := NewPlanner().Run(newTurnContext(state))
	require.NoError(t, err)
	assert.Equal(t, core.PhaseSummary, update.Phase)
	assert.Empty(t, update.NextAgent)
}
