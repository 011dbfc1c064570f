package persona

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/logging"
	"github.com/hupe1980/tripmesh/model"
	"github.com/hupe1980/tripmesh/tool"
)

func kopitiamState() *core.OrchestrationState {
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)
	state.Board.Post(core.ActorHuman, "Eh, nice morning hor?", nil)
	return state
}

func testLocalInfo() tool.LocalInfo {
	return tool.NewSimulatedLocalInfo(func(o *tool.SimulatedLocalInfoOptions) {
		o.Seed = 42
		o.Now = func() time.Time { return time.Date(2024, 4, 1, 1, 0, 0, 0, time.UTC) }
	})
}

func ahSeng() Persona {
	return Defaults()[0]
}

func TestParticipant_DirectMessage(t *testing.T) {
	m := model.NewMockModel("test")
	m.Script("Thought: Just greet back.\nMessage: Wah, morning ah! Kopi or teh?")

	p := NewParticipant(ahSeng(), m, testLocalInfo())
	state := kopitiamState()

	update, err := p.Run(core.NewTurnContext(context.Background(), state, logging.NoOpLogger{}))
	require.NoError(t, err)
	assert.Equal(t, core.Update{}, update)
	assert.Equal(t, 1, m.Calls())

	entries := state.Board.Snapshot(0)
	require.Len(t, entries, 2)
	assert.Equal(t, "ah_seng", entries[1].Agent)
	assert.Equal(t, "Wah, morning ah! Kopi or teh?", entries[1].Content)
}

func TestParticipant_ActionObservationLoop(t *testing.T) {
	m := model.NewMockModel("test")
	m.Script(
		"Thought: Customer asks about weather, better check.\nAction: weather",
		"Thought: Got the observation already.\nMessage: Today very hot leh, 31 degrees!",
	)

	p := NewParticipant(ahSeng(), m, testLocalInfo())
	state := kopitiamState()

	_, err := p.Run(core.NewTurnContext(context.Background(), state, logging.NoOpLogger{}))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Calls())

	entries := state.Board.Snapshot(0)
	require.Len(t, entries, 2)
	assert.Equal(t, "Today very hot leh, 31 degrees!", entries[1].Content)
}

func TestParticipant_UngrantedTool(t *testing.T) {
	m := model.NewMockModel("test")
	// ah_seng has time and weather but not news
	m.Script(
		"Thought: What's in the papers?\nAction: news",
		"Thought: Cannot check news myself.\nMessage: Aiyah, I don't follow news one.",
	)

	p := NewParticipant(ahSeng(), m, testLocalInfo())
	state := kopitiamState()

	_, err := p.Run(core.NewTurnContext(context.Background(), state, logging.NoOpLogger{}))
	require.NoError(t, err)

	entries := state.Board.Snapshot(0)
	assert.Equal(t, "Aiyah, I don't follow news one.", entries[1].Content)
}

func TestParticipant_ModelFailureSpeaksFallback(t *testing.T) {
	m := model.NewMockModel("test")
	m.FailWith(errors.New("transport down"))

	p := NewParticipant(ahSeng(), m, testLocalInfo())
	state := kopitiamState()

	_, err := p.Run(core.NewTurnContext(context.Background(), state, logging.NoOpLogger{}))
	require.NoError(t, err)

	entries := state.Board.Snapshot(0)
	require.Len(t, entries, 2)
	assert.Equal(t, "Sorry ah, my mind a bit blur now...", entries[1].Content)
}

func TestParticipant_TransitionBudgetExhausted(t *testing.T) {
	m := model.NewMockModel("test")
	// endless actions, never a message
	m.Script(
		"Thought: Check time.\nAction: time",
		"Thought: Check weather.\nAction: weather",
		"Thought: Check time again.\nAction: time",
	)

	p := NewParticipant(ahSeng(), m, testLocalInfo(), func(o *ParticipantOptions) {
		o.MaxTransitions = 4
	})
	state := kopitiamState()

	_, err := p.Run(core.NewTurnContext(context.Background(), state, logging.NoOpLogger{}))
	require.NoError(t, err)

	entries := state.Board.Snapshot(0)
	require.Len(t, entries, 2)
	assert.Equal(t, "Well, that's interesting lah...", entries[1].Content)
}

func TestPersona_Defaults(t *testing.T) {
	personas := Defaults()
	require.Len(t, personas, 4)

	assert.Equal(t, []string{"ah_seng", "mei_qi", "bala", "dr_tan"}, IDs(personas))

	assert.True(t, personas[0].HasTool(ToolWeather))
	assert.False(t, personas[0].HasTool(ToolNews))
	assert.True(t, personas[3].HasTool(ToolNews))

	instructions := CoordinatorInstructions(personas)
	assert.Contains(t, instructions, "ah_seng, mei_qi, bala, dr_tan")
	assert.Contains(t, instructions, "Uncle Ah Seng")
}

func TestTranscript_FiltersCoordinatorEntries(t *testing.T) {
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)
	state.Board.Post(core.ActorHuman, "Morning all!", nil)
	state.Board.Post(core.AgentCoordinator, "Coordinator selected ah_seng to speak next.", nil)
	state.Board.Post("ah_seng", "Wah, morning ah!", nil)

	report := NewTranscript().Report(state)
	assert.Contains(t, report, "human: Morning all!")
	assert.Contains(t, report, "ah_seng: Wah, morning ah!")
	assert.NotContains(t, report, "Coordinator selected")
}
