package agent

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hupe1980/tripmesh/core"
)

// Summarizer renders the final trip report. It is a pure reader: it never
// mutates state and produces either a deterministic itinerary from the
// collected results and first booking, or a "cannot complete" report when the
// session errored or required data is missing. Partial results are discarded
// rather than partially rendered.
type Summarizer struct{}

// NewSummarizer constructs the summarizer.
func NewSummarizer() *Summarizer { return &Summarizer{} }

// Name returns the terminal actor identifier.
func (s *Summarizer) Name() string { return core.ActorSummarize }

// Report renders the textual trip summary for the given state.
func (s *Summarizer) Report(state *core.OrchestrationState) string {
	var sb strings.Builder
	sb.WriteString("=== TRIP SUMMARY ===\n\n")

	if errMsg := state.Err(); errMsg != "" {
		fmt.Fprintf(&sb, "Error occurred: %s\n", errMsg)
		sb.WriteString("\nUnable to complete trip planning. Please try again.\n")
		return sb.String()
	}

	attractions := resultAttractions(state.Shared)
	forecast, haveForecast := resultForecast(state.Shared)
	bookings := state.Shared.Bookings()

	if len(attractions) == 0 || !haveForecast || len(forecast.Daily) == 0 || len(bookings) == 0 {
		sb.WriteString("Missing required information. Please try again.\n")
		return sb.String()
	}

	req := state.Request
	booking := bookings[0]

	fmt.Fprintf(&sb, "Trip to %s\n", titleCase(req.Destination))
	fmt.Fprintf(&sb, "Dates: %s to %s\n", req.CheckIn, req.CheckOut)
	fmt.Fprintf(&sb, "Guests: %d\n\n", req.Guests)

	sb.WriteString("Hotel:\n")
	fmt.Fprintf(&sb, "- %s\n", booking.Hotel.Name)
	fmt.Fprintf(&sb, "- Confirmation: %s\n", booking.ConfirmationCode)
	fmt.Fprintf(&sb, "- Total: $%.2f %s\n", booking.TotalPrice, booking.Currency)
	fmt.Fprintf(&sb, "- %s\n\n", booking.CancellationPolicy)

	sb.WriteString("Top Attractions:\n")
	for i, poi := range attractions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, poi.Name)
		fmt.Fprintf(&sb, "   %s\n", poi.Description)
		fmt.Fprintf(&sb, "   Visit duration: %g hours\n\n", poi.VisitDurationHours)
	}

	sb.WriteString("Weather Forecast:\n")
	for _, day := range forecast.Daily {
		fmt.Fprintf(&sb, "- %s: %s\n", day.Date, titleCase(strings.ReplaceAll(day.WeatherCode, "_", " ")))
		fmt.Fprintf(&sb, "  High: %.1f°C, Low: %.1f°C\n", day.TemperatureMax, day.TemperatureMin)
		fmt.Fprintf(&sb, "  Rain chance: %d%%\n\n", int(day.PrecipitationProbability*100))
	}

	sb.WriteString("\nHave a great trip!\n")
	return sb.String()
}

func resultAttractions(shared *core.SharedState) []core.POI {
	v, ok := shared.Result("attractions")
	if !ok {
		return nil
	}
	pois, ok := v.([]core.POI)
	if !ok {
		return nil
	}
	return pois
}

func resultForecast(shared *core.SharedState) (core.Forecast, bool) {
	v, ok := shared.Result("weather")
	if !ok {
		return core.Forecast{}, false
	}
	forecast, ok := v.(core.Forecast)
	return forecast, ok
}

// titleCase capitalizes the first letter of each space separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
