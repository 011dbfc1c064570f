// Package tool implements the external collaborator boundary: attraction
// search, weather forecasts and hotel booking for the travel variant, plus
// the local-colour utilities persona participants call. All providers here
// are in-process simulations honouring the same contracts a real integration
// would: unknown locations yield empty results or typed errors, never panics.
package tool

import (
	"context"
	"fmt"

	"github.com/hupe1980/tripmesh/core"
)

// Error codes used to categorize tool failures.
const (
	CodeInvalidDateRange = "INVALID_DATE_RANGE"
	CodeLocationNotFound = "LOCATION_NOT_FOUND"
	CodeHotelNotFound    = "HOTEL_NOT_FOUND"
)

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}

// ErrCode extracts the ToolError code from err, or "" when err is not a
// ToolError.
func ErrCode(err error) string {
	var te *ToolError
	if ok := asToolError(err, &te); ok {
		return te.Code
	}
	return ""
}

func asToolError(err error, target **ToolError) bool {
	for err != nil {
		if te, ok := err.(*ToolError); ok {
			*target = te
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// AttractionSearcher finds points of interest around a location. An unknown
// location yields an empty slice, not an error.
type AttractionSearcher interface {
	SearchAttractions(ctx context.Context, location string, radiusKM float64, topN int) ([]core.POI, error)
}

// WeatherProvider returns a daily forecast for a coordinate and inclusive
// date span.
type WeatherProvider interface {
	GetWeather(ctx context.Context, lat, lon float64, startDate, endDate string) (core.Forecast, error)
}

// BookingRequest carries the parameters of a hotel booking attempt. HotelID
// is optional; when empty the booker picks an available property.
type BookingRequest struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
	HotelID  string
}

// HotelBooker reserves a hotel and returns the confirmed booking record.
// Failure modes are typed: CodeInvalidDateRange when checkout <= checkin,
// CodeLocationNotFound when the location has no inventory, CodeHotelNotFound
// when an explicit hotel id is absent.
type HotelBooker interface {
	BookHotel(ctx context.Context, req BookingRequest) (core.Booking, error)
}
