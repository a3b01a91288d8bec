// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import "sync"

// History is a fixed-capacity circular series of scalar samples, one
// instance per graphed signal. Appending beyond capacity evicts the
// oldest sample; the buffer is allocated once and never cleared. A
// period with no accepted samples produces no appends, so the series
// reflects true arrival gaps.
//
// History is safe for one concurrent writer (the ingestion goroutine)
// and any number of readers (the render loop).
type History struct {
	mutex         sync.Mutex
	values        []float64
	writePosition int
	count         int
}

// NewHistory returns an empty History. Capacity is fixed for the life
// of the buffer and must be positive; it is a tuning constant chosen
// to bound memory and graph width, never derived from data.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		panic("telemetry: History capacity must be positive")
	}
	return &History{values: make([]float64, capacity)}
}

// Append adds a sample, evicting the oldest if the buffer is full.
// O(1).
func (h *History) Append(value float64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.values[h.writePosition] = value
	h.writePosition = (h.writePosition + 1) % len(h.values)
	if h.count < len(h.values) {
		h.count++
	}
}

// Values returns a copy of the buffered samples, oldest first.
func (h *History) Values() []float64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	ordered := make([]float64, h.count)
	if h.count < len(h.values) {
		copy(ordered, h.values[:h.count])
		return ordered
	}
	split := copy(ordered, h.values[h.writePosition:])
	copy(ordered[split:], h.values[:h.writePosition])
	return ordered
}

// Latest returns the most recently appended sample, if any.
func (h *History) Latest() (float64, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.count == 0 {
		return 0, false
	}
	last := h.writePosition - 1
	if last < 0 {
		last = len(h.values) - 1
	}
	return h.values[last], true
}

// Len returns the number of buffered samples.
func (h *History) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.count
}

// Cap returns the fixed capacity.
func (h *History) Cap() int {
	return len(h.values)
}
