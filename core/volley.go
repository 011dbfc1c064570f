package core

import "sync"

// VolleyCounter bounds the total number of coordinator decisions in a run.
// It only ever counts down and floors at zero, making it the cooperative
// timeout mechanism for an otherwise open-ended turn loop.
type VolleyCounter struct {
	mu        sync.Mutex
	remaining int
}

// NewVolleyCounter creates a counter permitting max decisions. A non-positive
// max yields an already exhausted counter.
func NewVolleyCounter(max int) *VolleyCounter {
	if max < 0 {
		max = 0
	}
	return &VolleyCounter{remaining: max}
}

// Consume decrements the counter by one and returns the remaining volleys.
// Consuming an exhausted counter is a no-op returning zero.
func (v *VolleyCounter) Consume() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.remaining > 0 {
		v.remaining--
	}
	return v.remaining
}

// Remaining returns the number of volleys left.
func (v *VolleyCounter) Remaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.remaining
}

// Exhausted reports whether no volleys remain.
func (v *VolleyCounter) Exhausted() bool { return v.Remaining() <= 0 }
