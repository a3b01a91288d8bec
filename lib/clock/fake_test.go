// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNowAdvances(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	fake := Fake(start)

	if got := fake.Now(); !got.Equal(start) {
		t.Errorf("Now: got %v, want %v", got, start)
	}
	fake.Advance(90 * time.Second)
	if got, want := fake.Now(), start.Add(90*time.Second); !got.Equal(want) {
		t.Errorf("Now after Advance: got %v, want %v", got, want)
	}
}

func TestFakeAfterFiresAtDeadline(t *testing.T) {
	t.Parallel()

	fake := Fake(time.Unix(0, 0))
	done := fake.After(5 * time.Second)

	fake.Advance(4 * time.Second)
	select {
	case <-done:
		t.Fatal("After fired before its deadline")
	default:
	}

	fake.Advance(1 * time.Second)
	select {
	case <-done:
	default:
		t.Fatal("After did not fire at its deadline")
	}
}

func TestFakeAfterNonPositiveFiresImmediately(t *testing.T) {
	t.Parallel()

	fake := Fake(time.Unix(0, 0))
	select {
	case <-fake.After(0):
	default:
		t.Fatal("After(0) did not fire immediately")
	}
}

func TestFakeTickerFiresPerInterval(t *testing.T) {
	t.Parallel()

	fake := Fake(time.Unix(0, 0))
	ticker := fake.NewTicker(time.Second)
	defer ticker.Stop()

	ticks := 0
	for i := 0; i < 3; i++ {
		fake.Advance(time.Second)
		select {
		case <-ticker.C:
			ticks++
		default:
		}
	}
	if ticks != 3 {
		t.Errorf("ticks: got %d, want 3", ticks)
	}
}

func TestFakeTickerStop(t *testing.T) {
	t.Parallel()

	fake := Fake(time.Unix(0, 0))
	ticker := fake.NewTicker(time.Second)
	ticker.Stop()

	fake.Advance(10 * time.Second)
	select {
	case <-ticker.C:
		t.Fatal("stopped ticker delivered a tick")
	default:
	}
}

func TestFakeSleepBlocksUntilAdvance(t *testing.T) {
	t.Parallel()

	fake := Fake(time.Unix(0, 0))
	woke := make(chan struct{})
	go func() {
		fake.Sleep(3 * time.Second)
		close(woke)
	}()

	fake.WaitForWaiters(1)
	fake.Advance(3 * time.Second)

	select {
	case <-woke:
	case <-time.After(5 * time.Second):
		t.Fatal("Sleep did not wake after Advance past its deadline")
	}
}
