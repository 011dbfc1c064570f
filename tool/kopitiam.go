package tool

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// LocalInfo provides the ambient Singapore utilities persona participants may
// call during their reasoning loop: current time, weather and news headlines.
type LocalInfo interface {
	Time() string
	Weather() string
	News() string
}

var (
	sgWeather = []string{
		"31°C, partly cloudy with high humidity",
		"29°C, thunderstorms expected in the afternoon",
		"33°C, hazy with light winds",
		"30°C, short passing showers",
	}
	sgNews = []string{
		"MRT ridership hits new record as new Thomson-East Coast stations open",
		"Hawker culture documentary wins regional award",
		"COE premiums dip slightly after last bidding exercise",
		"New heritage trail launched around Tiong Bahru",
	}
)

// SimulatedLocalInfo is an in-process LocalInfo with canned weather and news
// rotated pseudo-randomly, and a real (or injected) clock for Singapore time.
type SimulatedLocalInfo struct {
	rng *rand.Rand
	now func() time.Time
}

// SimulatedLocalInfoOptions configure the simulated provider.
type SimulatedLocalInfoOptions struct {
	Seed uint64
	Now  func() time.Time
}

// NewSimulatedLocalInfo constructs the simulated local info provider.
func NewSimulatedLocalInfo(optFns ...func(o *SimulatedLocalInfoOptions)) *SimulatedLocalInfo {
	opts := SimulatedLocalInfoOptions{Seed: rand.Uint64(), Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SimulatedLocalInfo{rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed)), now: opts.Now}
}

// Time returns the current Singapore time as a human readable string.
func (s *SimulatedLocalInfo) Time() string {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		loc = time.FixedZone("SGT", 8*60*60)
	}
	return fmt.Sprintf("Time in Singapore now: %s", s.now().In(loc).Format("Monday 3:04 PM"))
}

// Weather returns the current simulated Singapore weather.
func (s *SimulatedLocalInfo) Weather() string {
	return fmt.Sprintf("Weather in Singapore now: %s", sgWeather[s.rng.IntN(len(sgWeather))])
}

// News returns a simulated Singapore news headline.
func (s *SimulatedLocalInfo) News() string {
	return fmt.Sprintf("Singapore news: %s", sgNews[s.rng.IntN(len(sgNews))])
}
