package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/tool"
)

type failingHotels struct{ err error }

func (f *failingHotels) BookHotel(ctx context.Context, req tool.BookingRequest) (core.Booking, error) {
	return core.Booking{}, f.err
}

func bookingState(t *testing.T, location string) (*core.OrchestrationState, core.Task) {
	t.Helper()
	state := core.NewOrchestrationState(core.TravelRequest{
		Destination: location,
		CheckIn:     "2024-04-01",
		CheckOut:    "2024-04-03",
		Guests:      2,
	}, 6)
	task := state.Shared.Registry.Create(core.TaskTypeBook, "Book hotel",
		core.BookParams{Location: location, CheckIn: "2024-04-01", CheckOut: "2024-04-03", Guests: 2},
		core.AgentBooker)
	return state, task
}

func TestBooker_CompletesBookingTask(t *testing.T) {
	state, task := bookingState(t, "kyoto")

	hotels := tool.NewSimulatedHotels(func(o *tool.SimulatedHotelsOptions) { o.Seed = 42 })
	update, err := NewBooker(hotels).Run(newTurnContext(state))
	require.NoError(t, err)
	assert.Nil(t, update.Err)

	st, err := state.Shared.Registry.Status(task.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCompleted, st.Status)

	bookings := state.Shared.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, 2, bookings[0].Nights)
	assert.Equal(t, 2, bookings[0].Guests)
	assert.Equal(t, "confirmed", bookings[0].Status)

	assert.Contains(t, state.Board.History(), "Booked "+bookings[0].Hotel.Name+" for 2 nights")
}

func TestBooker_NoPendingTaskIsNoOp(t *testing.T) {
	state := core.NewOrchestrationState(core.TravelRequest{Destination: "kyoto"}, 6)

	update, err := NewBooker(tool.NewSimulatedHotels()).Run(newTurnContext(state))
	require.NoError(t, err)
	assert.Equal(t, core.Update{}, update)
	assert.Empty(t, state.Shared.Bookings())
}

func TestBooker_UnknownLocationFailsTask(t *testing.T) {
	state, task := bookingState(t, "atlantis")

	update, err := NewBooker(tool.NewSimulatedHotels()).Run(newTurnContext(state))
	require.NoError(t, err)
	require.Error(t, update.Err)
	assert.Equal(t, tool.CodeLocationNotFound, tool.ErrCode(update.Err))

	st, _ := state.Shared.Registry.Status(task.ID)
	assert.Equal(t, core.StatusFailed, st.Status)
	assert.Empty(t, state.Shared.Bookings())
}

func TestBooker_AdapterFailureMarksTaskFailed(t *testing.T) {
	state, task := bookingState(t, "kyoto")

	bookErr := tool.NewToolError("book_hotel", "inventory service down", "UPSTREAM_DOWN")
	update, err := NewBooker(&failingHotels{err: bookErr}).Run(newTurnContext(state))
	require.NoError(t, err)
	require.Error(t, update.Err)

	st, _ := state.Shared.Registry.Status(task.ID)
	assert.Equal(t, core.StatusFailed, st.Status)
	assert.Contains(t, state.Board.History(), "Failed to complete booking")
}
