// Package tripmesh provides a high-level façade over the orchestration
// engine and its collaborators, enabling a complete travel-planning or
// kopitiam-conversation run in one call. Most applications interact with
// this package by:
//  1. Building a core.TravelRequest (or an opening line for the conversation
//     variant)
//  2. Calling Plan (task-driven) or Kopitiam (model-driven) with optional
//     overrides for adapters, logging, output and the volley budget
//
// All defaults are safe for local development: simulated tool adapters, a
// NoOp logger and a volley budget derived from the stay length.
package tripmesh

import (
	"context"
	"io"

	"github.com/hupe1980/tripmesh/agent"
	"github.com/hupe1980/tripmesh/coordinator"
	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/engine"
	"github.com/hupe1980/tripmesh/logging"
	"github.com/hupe1980/tripmesh/model"
	"github.com/hupe1980/tripmesh/persona"
	"github.com/hupe1980/tripmesh/tool"
)

// Options configure a façade run.
type Options struct {
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
	// Volleys bounds coordinator decisions. Zero derives a budget from the
	// request (travel: max(6, nights*3); conversation: 8).
	Volleys int
	// BoardSink receives incremental board entries for display.
	BoardSink engine.BoardSink
	// Output receives the final report verbatim.
	Output io.Writer

	// Adapters; simulated implementations are used when nil.
	Attractions tool.AttractionSearcher
	Weather     tool.WeatherProvider
	Hotels      tool.HotelBooker
	LocalInfo   tool.LocalInfo
}

func defaultOptions() Options {
	return Options{Logger: logging.NoOpLogger{}}
}

// Plan runs the task-driven travel variant for the given request and returns
// the final itinerary report. Cancelling ctx interrupts the run and
// summarizes with whatever state exists.
func Plan(ctx context.Context, req core.TravelRequest, optFns ...func(o *Options)) (string, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Attractions == nil {
		opts.Attractions = tool.NewSimulatedAttractions()
	}
	if opts.Weather == nil {
		opts.Weather = tool.NewSimulatedWeather()
	}
	if opts.Hotels == nil {
		opts.Hotels = tool.NewSimulatedHotels()
	}

	volleys := opts.Volleys
	if volleys <= 0 {
		volleys = max(6, req.Nights()*3)
	}

	state := core.NewOrchestrationState(req, volleys)

	coord := coordinator.NewTaskCoordinator(func(o *coordinator.TaskCoordinatorOptions) {
		o.Logger = opts.Logger
	})

	nodes := []core.Node{
		agent.NewPlanner(),
		agent.NewResearcher(opts.Attractions, opts.Weather),
		agent.NewBooker(opts.Hotels),
	}

	eng := engine.New(coord, agent.NewSummarizer(), nodes, func(o *engine.Options) {
		o.Logger = opts.Logger
		o.BoardSink = opts.BoardSink
		o.Output = opts.Output
	})

	return eng.Run(ctx, state)
}

// Kopitiam runs the model-driven conversation variant: the given model picks
// the next speaker among the default persona cast until the volley budget
// runs out, then the transcript is reported. The opener seeds the board as
// the human's first line.
func Kopitiam(ctx context.Context, m model.Model, opener string, optFns ...func(o *Options)) (string, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.LocalInfo == nil {
		opts.LocalInfo = tool.NewSimulatedLocalInfo()
	}

	volleys := opts.Volleys
	if volleys <= 0 {
		volleys = 8
	}

	// The conversation variant reuses the orchestration aggregate with an
	// empty travel request; only the board and volley counter matter.
	state := core.NewOrchestrationState(core.TravelRequest{}, volleys)
	if opener != "" {
		state.Board.Post(core.ActorHuman, opener, nil)
	}

	cast := persona.Defaults()
	coord := coordinator.NewModelCoordinator(m, func(o *coordinator.ModelCoordinatorOptions) {
		o.Actors = persona.IDs(cast)
		o.Terminal = core.ActorHuman
		o.Instructions = persona.CoordinatorInstructions(cast)
		o.Logger = opts.Logger
	})

	nodes := make([]core.Node, 0, len(cast))
	for _, p := range cast {
		nodes = append(nodes, persona.NewParticipant(p, m, opts.LocalInfo))
	}

	eng := engine.New(coord, persona.NewTranscript(), nodes, func(o *engine.Options) {
		o.Logger = opts.Logger
		o.BoardSink = opts.BoardSink
		o.Output = opts.Output
	})

	return eng.Run(ctx, state)
}
