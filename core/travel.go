package core

import (
	"fmt"
	"time"
)

// TravelRequest is the immutable snapshot of the user's input, created once
// at session start.
type TravelRequest struct {
	Destination string         `json:"destination"`
	CheckIn     string         `json:"check_in"` // ISO 8601 calendar date
	CheckOut    string         `json:"check_out"`
	Guests      int            `json:"guests"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// Nights returns the stay length in nights, falling back to a default of 3
// when the dates do not parse. Used to size the volley budget.
func (r TravelRequest) Nights() int {
	in, err1 := time.Parse("2006-01-02", r.CheckIn)
	out, err2 := time.Parse("2006-01-02", r.CheckOut)
	if err1 != nil || err2 != nil {
		return 3
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// POI is a point of interest returned by the attraction search adapter.
type POI struct {
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Rating             float64    `json:"rating"`
	Lat                float64    `json:"lat"`
	Lon                float64    `json:"lon"`
	Description        string     `json:"description"`
	VisitDurationHours float64    `json:"visit_duration_hours"`
	CrowdForecast      []CrowdDay `json:"crowd_forecast,omitempty"`
}

// CrowdDay is a single day of simulated crowd forecasting for a POI.
type CrowdDay struct {
	Date     string `json:"date"`
	Level    string `json:"crowd_level"` // low, medium, high
	BestTime string `json:"best_time"`   // morning, afternoon, evening
}

// Forecast is the weather adapter's response for a coordinate and date span.
type Forecast struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Daily     []ForecastDay `json:"daily"`
}

// ForecastDay holds one calendar day of forecast data.
type ForecastDay struct {
	Date                     string  `json:"date"`
	TemperatureMax           float64 `json:"temperature_max"`
	TemperatureMin           float64 `json:"temperature_min"`
	PrecipitationProbability float64 `json:"precipitation_probability"`
	WeatherCode              string  `json:"weather_code"`
}

// Hotel describes a bookable property.
type Hotel struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     int      `json:"rating"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Amenities  []string `json:"amenities"`
	PriceRange string   `json:"price_range"`
}

// Booking is a confirmed hotel reservation returned by the booking adapter.
type Booking struct {
	BookingID          string  `json:"booking_id"`
	Hotel              Hotel   `json:"hotel"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	Guests             int     `json:"guests"`
	Nights             int     `json:"nights"`
	TotalPrice         float64 `json:"total_price"`
	Currency           string  `json:"currency"`
	Status             string  `json:"status"`
	ConfirmationCode   string  `json:"confirmation_code"`
	CancellationPolicy string  `json:"cancellation_policy"`
}

// String implements fmt.Stringer for compact booking traces.
func (b Booking) String() string {
	return fmt.Sprintf("%s (%d nights, %.2f %s, confirmation %s)",
		b.Hotel.Name, b.Nights, b.TotalPrice, b.Currency, b.ConfirmationCode)
}
