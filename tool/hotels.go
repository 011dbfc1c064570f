package tool

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/hupe1980/tripmesh/core"
)

// kyotoHotels is the simulated booking inventory.
var kyotoHotels = []core.Hotel{
	{
		ID:         "KYT001",
		Name:       "The Ritz-Carlton Kyoto",
		Rating:     5,
		Lat:        35.0262,
		Lon:        135.7721,
		Amenities:  []string{"spa", "pool", "restaurant", "bar"},
		PriceRange: "luxury",
	},
	{
		ID:         "KYT002",
		Name:       "Hotel Granvia Kyoto",
		Rating:     4,
		Lat:        34.9858,
		Lon:        135.7588,
		Amenities:  []string{"restaurant", "bar", "fitness-center"},
		PriceRange: "upscale",
	},
	{
		ID:         "KYT003",
		Name:       "Kyoto Tower Hotel",
		Rating:     3,
		Lat:        34.9875,
		Lon:        135.7593,
		Amenities:  []string{"restaurant", "laundry"},
		PriceRange: "moderate",
	},
}

// nightly base rates per price range. Unknown ranges fall back to 200.
var baseRates = map[string]float64{
	"luxury":   500,
	"upscale":  250,
	"moderate": 150,
}

// SimulatedHotels is an in-process HotelBooker with a static inventory and
// deterministic pricing: base rate times nights, plus 50% per additional
// guest.
type SimulatedHotels struct {
	rng *rand.Rand
}

// SimulatedHotelsOptions configure the simulated booker.
type SimulatedHotelsOptions struct {
	// Seed fixes hotel selection and confirmation codes for reproducible runs.
	Seed uint64
}

// NewSimulatedHotels constructs the simulated hotel booker.
func NewSimulatedHotels(optFns ...func(o *SimulatedHotelsOptions)) *SimulatedHotels {
	opts := SimulatedHotelsOptions{Seed: rand.Uint64()}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &SimulatedHotels{rng: rand.New(rand.NewPCG(opts.Seed, opts.Seed))}
}

// BookHotel implements HotelBooker.
func (h *SimulatedHotels) BookHotel(ctx context.Context, req BookingRequest) (core.Booking, error) {
	if err := ctx.Err(); err != nil {
		return core.Booking{}, err
	}

	location := strings.ToLower(strings.TrimSpace(req.Location))
	var inventory []core.Hotel
	switch location {
	case "kyoto":
		inventory = kyotoHotels
	default:
		return core.Booking{}, NewToolError("book_hotel", fmt.Sprintf("no hotels found in %s", location), CodeLocationNotFound)
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return core.Booking{}, NewToolError("book_hotel", fmt.Sprintf("invalid check-in date %q", req.CheckIn), CodeInvalidDateRange)
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return core.Booking{}, NewToolError("book_hotel", fmt.Sprintf("invalid check-out date %q", req.CheckOut), CodeInvalidDateRange)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return core.Booking{}, NewToolError("book_hotel", "check-out must be after check-in", CodeInvalidDateRange)
	}

	var hotel core.Hotel
	if req.HotelID != "" {
		found := false
		for _, candidate := range inventory {
			if candidate.ID == req.HotelID {
				hotel = candidate
				found = true
				break
			}
		}
		if !found {
			return core.Booking{}, NewToolError("book_hotel", fmt.Sprintf("hotel %s not found", req.HotelID), CodeHotelNotFound)
		}
	} else {
		hotel = inventory[h.rng.IntN(len(inventory))]
	}

	base, ok := baseRates[hotel.PriceRange]
	if !ok {
		base = 200
	}
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}
	total := base * float64(nights) * (1 + float64(guests-1)*0.5)

	return core.Booking{
		BookingID:          fmt.Sprintf("BK%05d", h.rng.IntN(90000)+10000),
		Hotel:              hotel,
		CheckIn:            req.CheckIn,
		CheckOut:           req.CheckOut,
		Guests:             guests,
		Nights:             nights,
		TotalPrice:         math.Round(total*100) / 100,
		Currency:           "USD",
		Status:             "confirmed",
		ConfirmationCode:   fmt.Sprintf("HTL%06d", h.rng.IntN(900000)+100000),
		CancellationPolicy: "Free cancellation until 24 hours before check-in",
	}, nil
}
