package coordinator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/model"
)

var testActors = []string{"ah_seng", "mei_qi", "bala", "dr_tan"}

func TestModelCoordinator_ValidSelection(t *testing.T) {
	m := model.NewMockModel("test")
	m.Script("mei_qi")

	c := NewModelCoordinator(m, func(o *ModelCoordinatorOptions) {
		o.Actors = testActors
	})
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)

	decision := c.SelectNext(context.Background(), state)
	assert.Equal(t, "mei_qi", decision.NextAgent)
	assert.Equal(t, 7, decision.Remaining)

	entries := state.Board.Snapshot(0)
	require.Len(t, entries, 1)
	assert.Equal(t, "Coordinator selected mei_qi to speak next.", entries[0].Content)
}

func TestModelCoordinator_NormalizesResponse(t *testing.T) {
	m := model.NewMockModel("test")
	m.Script("  Bala \n")

	c := NewModelCoordinator(m, func(o *ModelCoordinatorOptions) {
		o.Actors = testActors
	})
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)

	decision := c.SelectNext(context.Background(), state)
	assert.Equal(t, "bala", decision.NextAgent)
}

func TestModelCoordinator_InvalidSpeakerFallsBackToValidSet(t *testing.T) {
	m := model.NewMockModel("test")
	m.Script("the narrator")

	c := NewModelCoordinator(m, func(o *ModelCoordinatorOptions) {
		o.Actors = testActors
	})
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)

	decision := c.SelectNext(context.Background(), state)
	assert.Contains(t, testActors, decision.NextAgent)
}

func TestModelCoordinator_ModelErrorFallsBackToValidSet(t *testing.T) {
	m := model.NewMockModel("test")
	m.FailWith(errors.New("transport down"))

	c := NewModelCoordinator(m, func(o *ModelCoordinatorOptions) {
		o.Actors = testActors
	})
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)

	decision := c.SelectNext(context.Background(), state)
	assert.Contains(t, testActors, decision.NextAgent)
	assert.Equal(t, 1, m.Calls())
}

func TestModelCoordinator_ExhaustedBudgetSkipsModel(t *testing.T) {
	m := model.NewMockModel("test")

	c := NewModelCoordinator(m, func(o *ModelCoordinatorOptions) {
		o.Actors = testActors
	})
	state := core.NewOrchestrationState(core.TravelRequest{}, 0)

	decision := c.SelectNext(context.Background(), state)
	assert.Equal(t, core.ActorHuman, decision.NextAgent)
	assert.Equal(t, 0, decision.Remaining)
	assert.Zero(t, m.Calls())
}

func TestModelCoordinator_DeterministicFallbackPick(t *testing.T) {
	m := model.NewMockModel("test")
	m.FailWith(errors.New("down"))

	c := NewModelCoordinator(m, func(o *ModelCoordinatorOptions) {
		o.Actors = testActors
	})
	c.intn = func(n int) int { return 2 }
	state := core.NewOrchestrationState(core.TravelRequest{}, 8)

	decision := c.SelectNext(context.Background(), state)
	assert.Equal(t, "bala", decision.NextAgent)
}
