package tool

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/tripmesh/core"
)

var weatherCodes = []string{"clear", "partly_cloudy", "cloudy", "rain", "heavy_rain"}

// SimulatedWeather is an in-process WeatherProvider producing seasonal
// forecasts. The daily slice always covers the inclusive day span of the
// requested dates.
type SimulatedWeather struct {
	rng *rand.Rand
}

// SimulatedWeatherOptions configure the simulated provider.
type SimulatedWeatherOptions struct {
	// Seed fixes the generated temperatures and codes for reproducible runs.
	Seed uint64
}

// NewSimulatedWeather constructs the simulated weather provider.
func NewSimulatedWeather(optFns ...func(o *SimulatedWeatherOptions)) *SimulatedWeather {
	opts := SimulatedWeatherOptions{Seed: rand.Uint64()}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SimulatedWeather{rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed))}
}

// GetWeather implements WeatherProvider. Dates are ISO 8601 calendar dates;
// an end date before the start date is an invalid range.
func (w *SimulatedWeather) GetWeather(ctx context.Context, lat, lon float64, startDate, endDate string) (core.Forecast, error) {
	if err := ctx.Err(); err != nil {
		return core.Forecast{}, err
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return core.Forecast{}, NewToolError("get_weather", fmt.Sprintf("invalid start date %q", startDate), CodeInvalidDateRange)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return core.Forecast{}, NewToolError("get_weather", fmt.Sprintf("invalid end date %q", endDate), CodeInvalidDateRange)
	}
	if end.Before(start) {
		return core.Forecast{}, NewToolError("get_weather", "end date before start date", CodeInvalidDateRange)
	}

	days := int(end.Sub(start).Hours()/24) + 1 // inclusive span
	daily := make([]core.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		high, low, precip := w.seasonal(date.Month())
		daily = append(daily, core.ForecastDay{
			Date:                     date.Format("2006-01-02"),
			TemperatureMax:           round1(high),
			TemperatureMin:           round1(low),
			PrecipitationProbability: round2(precip),
			WeatherCode:              weatherCodes[w.rng.IntN(len(weatherCodes))],
		})
	}

	return core.Forecast{Latitude: lat, Longitude: lon, Daily: daily}, nil
}

// seasonal returns plausible high/low temperatures and precipitation
// probability for the given month.
func (w *SimulatedWeather) seasonal(month time.Month) (high, low, precip float64) {
	switch month {
	case time.June, time.July, time.August:
		return w.between(28, 35), w.between(20, 25), w.between(0.3, 0.7)
	case time.December, time.January, time.February:
		return w.between(8, 15), w.between(1, 7), w.between(0.2, 0.4)
	default:
		return w.between(18, 25), w.between(10, 17), w.between(0.1, 0.3)
	}
}

func (w *SimulatedWeather) between(min, max float64) float64 {
	return min + w.rng.Float64()*(max-min)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
