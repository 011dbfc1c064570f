package agent

import (
	"fmt"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/tool"
)

// Booker executes booking tasks: it reserves a hotel for the task's location,
// dates and guest count, and appends the confirmed booking record to the
// shared state.
type Booker struct {
	hotels tool.HotelBooker
}

var _ core.Node = (*Booker)(nil)

// NewBooker constructs the booker node over the given booking adapter.
func NewBooker(hotels tool.HotelBooker) *Booker {
	return &Booker{hotels: hotels}
}

// Name implements core.Node.
func (b *Booker) Name() string { return core.AgentBooker }

// Run implements core.Node.
func (b *Booker) Run(tc *core.TurnContext) (core.Update, error) {
	state := tc.State
	board := state.Board
	registry := state.Shared.Registry

	board.Post(core.AgentBooker, "Booker: looking for booking opportunities", nil)

	task, ok := registry.FindPending(core.AgentBooker)
	if !ok {
		tc.LogDebug("no pending booking task found")
		return core.Update{}, nil
	}

	if err := registry.MarkInProgress(task.ID); err != nil {
		return core.Update{}, err
	}

	board.Post(core.AgentBooker,
		"Thought: find best available hotels for the dates and guests. Action: call hotel search API.",
		map[string]any{"task_id": task.ID})

	params, ok := task.Params.(core.BookParams)
	if !ok {
		return b.fail(tc, task.ID, fmt.Errorf("task %s carries no booking params", task.ID))
	}

	booking, err := b.hotels.BookHotel(tc.Context, tool.BookingRequest{
		Location: params.Location,
		CheckIn:  params.CheckIn,
		CheckOut: params.CheckOut,
		Guests:   params.Guests,
	})
	if err != nil {
		return b.fail(tc, task.ID, err)
	}

	state.Shared.AddBooking(booking)

	board.Post(core.AgentBooker,
		fmt.Sprintf("Observation: selected hotel %s with total %.2f", booking.Hotel.Name, booking.TotalPrice),
		map[string]any{"booking": booking})

	result := map[string]any{"booking": booking}
	if err := registry.MarkCompleted(task.ID, result); err != nil {
		return core.Update{}, err
	}

	board.Post(core.AgentBooker,
		fmt.Sprintf("Booked %s for %d nights", booking.Hotel.Name, booking.Nights),
		map[string]any{"booking": booking})
	tc.LogInfo("booking task completed", "task_id", task.ID, "booking_id", booking.BookingID)

	return core.Update{}, nil
}

func (b *Booker) fail(tc *core.TurnContext, taskID string, taskErr error) (core.Update, error) {
	if err := tc.State.Shared.Registry.MarkFailed(taskID, taskErr); err != nil {
		return core.Update{}, err
	}
	tc.State.Board.Postf(core.AgentBooker, "Failed to complete booking: %v", taskErr)
	tc.LogWarn("booking task failed", "task_id", taskID, "error", taskErr)
	return core.Update{Err: taskErr}, nil
}
