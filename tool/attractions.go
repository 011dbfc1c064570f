package tool

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/hupe1980/tripmesh/core"
)

// kyotoAttractions is the simulated POI inventory. Only kyoto carries data;
// every other location returns an empty result set.
var kyotoAttractions = []core.POI{
	{
		Name:               "Kinkaku-ji (Golden Pavilion)",
		Type:               "temple",
		Rating:             4.8,
		Lat:                35.0394,
		Lon:                135.7292,
		Description:        "Famous Zen temple covered in gold leaf",
		VisitDurationHours: 2,
	},
	{
		Name:               "Fushimi Inari Shrine",
		Type:               "shrine",
		Rating:             4.7,
		Lat:                34.9671,
		Lon:                135.7726,
		Description:        "Famous for thousands of vermillion torii gates",
		VisitDurationHours: 3,
	},
	{
		Name:               "Arashiyama Bamboo Grove",
		Type:               "nature",
		Rating:             4.6,
		Lat:                35.0170,
		Lon:                135.6711,
		Description:        "Iconic bamboo forest pathway",
		VisitDurationHours: 1.5,
	},
	{
		Name:               "Nishiki Market",
		Type:               "market",
		Rating:             4.5,
		Lat:                35.0048,
		Lon:                135.7639,
		Description:        "Historic market street with food vendors",
		VisitDurationHours: 2,
	},
	{
		Name:               "Gion District",
		Type:               "district",
		Rating:             4.7,
		Lat:                35.0039,
		Lon:                135.7761,
		Description:        "Historic geisha district with traditional architecture",
		VisitDurationHours: 3,
	},
}

// SimulatedAttractions is an in-process AttractionSearcher backed by a small
// static POI dataset with randomized ordering and crowd forecasts.
type SimulatedAttractions struct {
	rng *rand.Rand
	now func() time.Time
}

// SimulatedAttractionsOptions configure the simulated searcher.
type SimulatedAttractionsOptions struct {
	// Seed fixes the shuffle / crowd forecast randomness for reproducible runs.
	Seed uint64
	// Now overrides the clock used for crowd forecast dates.
	Now func() time.Time
}

// NewSimulatedAttractions constructs the simulated attraction searcher.
func NewSimulatedAttractions(optFns ...func(o *SimulatedAttractionsOptions)) *SimulatedAttractions {
	opts := SimulatedAttractionsOptions{
		Seed: rand.Uint64(),
		Now:  time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SimulatedAttractions{
		rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		now: opts.Now,
	}
}

// SearchAttractions implements AttractionSearcher. Unknown locations return
// an empty slice, never an error. The result order is shuffled per call and
// each POI carries a seven day crowd forecast.
func (s *SimulatedAttractions) SearchAttractions(ctx context.Context, location string, radiusKM float64, topN int) ([]core.POI, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var inventory []core.POI
	switch strings.ToLower(strings.TrimSpace(location)) {
	case "kyoto":
		inventory = kyotoAttractions
	default:
		return []core.POI{}, nil
	}

	pois := make([]core.POI, len(inventory))
	copy(pois, inventory)
	s.rng.Shuffle(len(pois), func(i, j int) { pois[i], pois[j] = pois[j], pois[i] })

	if topN > 0 && topN < len(pois) {
		pois = pois[:topN]
	}

	levels := []string{"low", "medium", "high"}
	times := []string{"morning", "afternoon", "evening"}
	now := s.now()
	for i := range pois {
		forecast := make([]core.CrowdDay, 0, 7)
		for d := 0; d < 7; d++ {
			forecast = append(forecast, core.CrowdDay{
				Date:     now.AddDate(0, 0, d).Format("2006-01-02"),
				Level:    levels[s.rng.IntN(len(levels))],
				BestTime: times[s.rng.IntN(len(times))],
			})
		}
		pois[i].CrowdForecast = forecast
	}

	return pois, nil
}
