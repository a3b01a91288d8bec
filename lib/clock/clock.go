// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for testability. Production code
// injects Real(); tests inject Fake() and advance it deterministically
// — staleness display and replay pacing are tested without real
// sleeps.
package clock

import "time"

// Clock is the time surface the rest of the module depends on.
// Anything that would call time.Now, time.After, time.NewTicker, or
// time.Sleep takes a Clock instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once d
	// has elapsed. If d <= 0, the channel receives immediately.
	After(d time.Duration) <-chan time.Time

	// NewTicker returns a Ticker delivering on its C channel every d.
	// Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker

	// Sleep pauses the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// Ticker wraps a periodic timer. C has capacity 1, matching
// time.Ticker: if the consumer falls behind, ticks are dropped, not
// queued.
type Ticker struct {
	C <-chan time.Time

	stopFunc func()
}

// Stop turns the ticker off. No more ticks arrive on C after Stop
// returns; C is not closed.
func (t *Ticker) Stop() { t.stopFunc() }
