package coordinator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/logging"
	"github.com/hupe1980/tripmesh/model"
)

// ModelCoordinator asks a reasoning model who should act next. The model
// receives the rendered board history plus an enumerated valid actor set and
// must answer with exactly one member. Any deviation (transport error,
// timeout, empty reply, or an identifier outside the set) is absorbed by a
// uniformly random pick from the valid set; the underlying failure never
// reaches the caller.
type ModelCoordinator struct {
	model        model.Model
	actors       []string
	terminal     string
	instructions string
	timeout      time.Duration
	logger       logging.Logger
	intn         func(n int) int
}

// ModelCoordinatorOptions configure a ModelCoordinator.
type ModelCoordinatorOptions struct {
	// Actors is the enumerated set of valid next speakers. Required.
	Actors []string
	// Terminal is the actor emitted once the volley budget runs out.
	// Defaults to core.ActorHuman.
	Terminal string
	// Instructions is the system prompt framing the selection. A generic
	// default is used when empty.
	Instructions string
	// Timeout bounds the model call. Defaults to 30s.
	Timeout time.Duration
	// Logger receives decision traces. Defaults to NoOpLogger.
	Logger logging.Logger
}

// NewModelCoordinator constructs a model-driven coordinator over the given
// model and actor set.
func NewModelCoordinator(m model.Model, optFns ...func(o *ModelCoordinatorOptions)) *ModelCoordinator {
	opts := ModelCoordinatorOptions{
		Terminal: core.ActorHuman,
		Timeout:  30 * time.Second,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Instructions == "" {
		opts.Instructions = fmt.Sprintf(
			"You are managing a lively group conversation. Based on the conversation flow, select who should speak next. Respond with ONLY the speaker ID (%s).",
			strings.Join(opts.Actors, ", "))
	}
	return &ModelCoordinator{
		model:        m,
		actors:       opts.Actors,
		terminal:     opts.Terminal,
		instructions: opts.Instructions,
		timeout:      opts.Timeout,
		logger:       opts.Logger,
		intn:         rand.IntN,
	}
}

// SelectNext implements Coordinator.
func (c *ModelCoordinator) SelectNext(ctx context.Context, state *core.OrchestrationState) Decision {
	if state.Volleys.Exhausted() {
		c.logger.Info("volley budget exhausted, returning to terminal actor", "terminal", c.terminal)
		return Decision{NextAgent: c.terminal, Remaining: 0}
	}
	remaining := state.Volleys.Consume()

	selected := c.choose(ctx, state.Board.History())
	state.Board.Postf(core.AgentCoordinator, "Coordinator selected %s to speak next.", selected)
	c.logger.Debug("coordinator selected next speaker", "next", selected, "remaining", remaining)

	return Decision{NextAgent: selected, Remaining: remaining}
}

// choose asks the model for a speaker and validates membership, falling back
// to a random valid actor on any failure.
func (c *ModelCoordinator) choose(ctx context.Context, history string) string {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Recent conversation:\n%s\n\nWho should speak next to keep this conversation lively?", history)

	resp, err := c.model.Complete(callCtx, model.Request{Instructions: c.instructions, Prompt: prompt})
	if err != nil {
		c.logger.Warn("model selection failed, falling back to random choice", "error", err)
		return c.random()
	}

	selected := strings.ToLower(strings.TrimSpace(resp))
	for _, actor := range c.actors {
		if selected == actor {
			return selected
		}
	}

	c.logger.Warn("model returned invalid speaker, falling back to random choice", "selected", selected)
	return c.random()
}

func (c *ModelCoordinator) random() string {
	return c.actors[c.intn(len(c.actors))]
}
