package core

import "testing"

func TestVolleyCounter_ConsumeToZero(t *testing.T) {
	v := NewVolleyCounter(3)
	if v.Remaining() != 3 || v.Exhausted() {
		t.Fatalf("fresh counter: remaining=%d exhausted=%v", v.Remaining(), v.Exhausted())
	}

	for want := 2; want >= 0; want-- {
		if got := v.Consume(); got != want {
			t.Fatalf("Consume returned %d, want %d", got, want)
		}
	}
	if !v.Exhausted() {
		t.Fatal("counter should be exhausted at zero")
	}

	// floor at zero, never negative
	if got := v.Consume(); got != 0 {
		t.Fatalf("Consume past zero returned %d", got)
	}
	if v.Remaining() != 0 {
		t.Fatalf("Remaining went negative: %d", v.Remaining())
	}
}

func TestVolleyCounter_ZeroBudget(t *testing.T) {
	v := NewVolleyCounter(0)
	if !v.Exhausted() {
		t.Fatal("zero budget should start exhausted")
	}
}
