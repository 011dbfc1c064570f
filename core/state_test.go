package core

import "testing"

func TestSharedState_MergeResultsLastWriteWins(t *testing.T) {
	s := NewSharedState()
	s.MergeResults(map[string]any{"attractions": []POI{{Name: "Kinkaku-ji"}}, "weather": "old"})
	s.MergeResults(map[string]any{"weather": "new"})

	if s.ResultCount() != 2 {
		t.Fatalf("expected 2 result keys, got %d", s.ResultCount())
	}
	v, ok := s.Result("weather")
	if !ok || v != "new" {
		t.Fatalf("later merge should win, got %v", v)
	}
	if _, ok := s.Result("attractions"); !ok {
		t.Fatal("unrelated key lost during merge")
	}
}

func TestSharedState_Bookings(t *testing.T) {
	s := NewSharedState()
	s.AddBooking(Booking{BookingID: "BK00001"})

	got := s.Bookings()
	if len(got) != 1 || got[0].BookingID != "BK00001" {
		t.Fatalf("unexpected bookings: %+v", got)
	}

	got[0].BookingID = "mutated"
	if s.Bookings()[0].BookingID != "BK00001" {
		t.Fatal("Bookings returned a live reference to shared internals")
	}
}

func TestOrchestrationState_InitialHints(t *testing.T) {
	st := NewOrchestrationState(TravelRequest{Destination: "kyoto"}, 6)
	if st.Phase() != PhasePlanning {
		t.Fatalf("expected planning phase, got %s", st.Phase())
	}
	if st.NextAgent() != AgentPlanner {
		t.Fatalf("expected planner hint, got %s", st.NextAgent())
	}
	if st.Volleys.Remaining() != 6 {
		t.Fatalf("expected 6 volleys, got %d", st.Volleys.Remaining())
	}
}

func TestOrchestrationState_FirstErrorWins(t *testing.T) {
	st := NewOrchestrationState(TravelRequest{}, 1)
	if st.Err() != "" {
		t.Fatal("fresh state should carry no error")
	}

	st.SetErr("first failure")
	st.SetErr("second failure")
	if st.Err() != "first failure" {
		t.Fatalf("error should be sticky, got %q", st.Err())
	}
}

func TestTravelRequest_Nights(t *testing.T) {
	req := TravelRequest{CheckIn: "2024-04-01", CheckOut: "2024-04-03"}
	if got := req.Nights(); got != 2 {
		t.Fatalf("expected 2 nights, got %d", got)
	}

	bad := TravelRequest{CheckIn: "soon", CheckOut: "later"}
	if got := bad.Nights(); got != 3 {
		t.Fatalf("unparseable dates should fall back to 3, got %d", got)
	}
}
