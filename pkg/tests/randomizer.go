package tests

import (
	"sync"
)

// Randomizer replays a fixed sequence of draws, cycling when exhausted, so
// code behind a random source becomes deterministic in tests.
type Randomizer struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewRandomizer(values ...float64) *Randomizer {
	if len(values) == 0 {
		values = []float64{0}
	}

	return &Randomizer{values: values}
}

func (r *Randomizer) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.values[r.next%len(r.values)]
	r.next++

	return v
}

// Draws reports how many values have been consumed.
func (r *Randomizer) Draws() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next
}
