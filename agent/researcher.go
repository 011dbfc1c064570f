package agent

import (
	"fmt"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/tool"
)

// Researcher executes research tasks: attraction search followed by a
// weather lookup at the first result's coordinates. Results merge into the
// shared results map under "attractions" and "weather".
type Researcher struct {
	attractions tool.AttractionSearcher
	weather     tool.WeatherProvider
	radiusKM    float64
	topN        int
}

var _ core.Node = (*Researcher)(nil)

// ResearcherOptions configure the researcher node.
type ResearcherOptions struct {
	// RadiusKM is the attraction search radius. Defaults to 5.
	RadiusKM float64
	// TopN caps the number of attractions fetched. Defaults to 5.
	TopN int
}

// NewResearcher constructs the researcher node over the given adapters.
func NewResearcher(attractions tool.AttractionSearcher, weather tool.WeatherProvider, optFns ...func(o *ResearcherOptions)) *Researcher {
	opts := ResearcherOptions{RadiusKM: 5, TopN: 5}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Researcher{
		attractions: attractions,
		weather:     weather,
		radiusKM:    opts.RadiusKM,
		topN:        opts.TopN,
	}
}

// Name implements core.Node.
func (r *Researcher) Name() string { return core.AgentResearcher }

// Run implements core.Node.
func (r *Researcher) Run(tc *core.TurnContext) (core.Update, error) {
	state := tc.State
	board := state.Board
	registry := state.Shared.Registry

	board.Post(core.AgentResearcher, "Researcher: scanning for pending research task", nil)

	task, ok := registry.FindPending(core.AgentResearcher)
	if !ok {
		tc.LogDebug("no pending research task found")
		return core.Update{}, nil
	}

	if err := registry.MarkInProgress(task.ID); err != nil {
		return core.Update{}, err
	}

	board.Post(core.AgentResearcher,
		"Thought: Identify top attractions and check weather. Action: call places API then weather API.",
		map[string]any{"task_id": task.ID})

	params, ok := task.Params.(core.ResearchParams)
	if !ok {
		return r.fail(tc, task.ID, fmt.Errorf("task %s carries no research params", task.ID))
	}

	pois, err := r.attractions.SearchAttractions(tc.Context, params.Location, r.radiusKM, r.topN)
	if err != nil {
		return r.fail(tc, task.ID, err)
	}

	topExample := "n/a"
	if len(pois) > 0 {
		topExample = pois[0].Name
	}
	board.Post(core.AgentResearcher,
		fmt.Sprintf("Observation: found %d attractions (top example: %s)", len(pois), topExample),
		map[string]any{"attractions_count": len(pois)})

	result := map[string]any{"attractions": pois}

	if len(pois) > 0 {
		forecast, err := r.weather.GetWeather(tc.Context, pois[0].Lat, pois[0].Lon, params.StartDate, params.EndDate)
		if err != nil {
			return r.fail(tc, task.ID, err)
		}
		result["weather"] = forecast

		board.Post(core.AgentResearcher,
			fmt.Sprintf("Observation: retrieved weather for %s to %s", params.StartDate, params.EndDate),
			map[string]any{"days": len(forecast.Daily)})
	}

	state.Shared.MergeResults(result)
	if err := registry.MarkCompleted(task.ID, result); err != nil {
		return core.Update{}, err
	}

	board.Post(core.AgentResearcher, fmt.Sprintf("Completed research for %s", params.Location), result)
	tc.LogInfo("research task completed", "task_id", task.ID, "attractions", len(pois))

	return core.Update{}, nil
}

// fail marks the task failed and surfaces the adapter error as the session
// error. The failure is terminal; no retry is attempted.
func (r *Researcher) fail(tc *core.TurnContext, taskID string, taskErr error) (core.Update, error) {
	if err := tc.State.Shared.Registry.MarkFailed(taskID, taskErr); err != nil {
		return core.Update{}, err
	}
	tc.State.Board.Postf(core.AgentResearcher, "Failed to complete research: %v", taskErr)
	tc.LogWarn("research task failed", "task_id", taskID, "error", taskErr)
	return core.Update{Err: taskErr}, nil
}
