// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/telemetry"
)

func TestMoveFocus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     Panel
		direction focusDirection
		want      Panel
	}{
		{"right along top row", PanelFlight, focusRight, PanelAttitude},
		{"right to row end", PanelAttitude, focusRight, PanelSystems},
		{"right wraps top row", PanelSystems, focusRight, PanelFlight},
		{"left wraps top row", PanelFlight, focusLeft, PanelSystems},
		{"right swaps charts", PanelAirspeed, focusRight, PanelAltitude},
		{"left swaps charts", PanelAltitude, focusLeft, PanelAirspeed},
		{"down from flight", PanelFlight, focusDown, PanelAirspeed},
		{"down from attitude", PanelAttitude, focusDown, PanelAirspeed},
		{"down from systems", PanelSystems, focusDown, PanelAltitude},
		{"up from airspeed", PanelAirspeed, focusUp, PanelFlight},
		{"up from altitude", PanelAltitude, focusUp, PanelSystems},
		{"up at top edge stays", PanelAttitude, focusUp, PanelAttitude},
		{"down at bottom edge stays", PanelAltitude, focusDown, PanelAltitude},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := moveFocus(test.start, test.direction); got != test.want {
				t.Errorf("moveFocus(%v, %v) = %v, want %v",
					test.start, test.direction, got, test.want)
			}
		})
	}
}

func TestModelFocusKeys(t *testing.T) {
	model := NewModel(Options{Store: telemetry.NewStore()})

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	model = updated.(Model)
	if model.focused != PanelAttitude {
		t.Errorf("after l: focused = %v, want %v", model.focused, PanelAttitude)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(Model)
	if model.focused != PanelAirspeed {
		t.Errorf("after down: focused = %v, want %v", model.focused, PanelAirspeed)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	model = updated.(Model)
	if model.focused != PanelFlight {
		t.Errorf("after k: focused = %v, want %v", model.focused, PanelFlight)
	}
}

func TestModelQuitKeys(t *testing.T) {
	quitKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEscape},
		{Type: tea.KeyCtrlC},
	}
	for _, message := range quitKeys {
		model := NewModel(Options{Store: telemetry.NewStore()})
		_, command := model.Update(message)
		if command == nil {
			t.Fatalf("%s should return a command", message)
		}
		if _, isQuit := command().(tea.QuitMsg); !isQuit {
			t.Errorf("%s: expected QuitMsg, got %T", message, command())
		}
	}
}

func TestModelShutdownMessage(t *testing.T) {
	model := NewModel(Options{Store: telemetry.NewStore()})
	_, command := model.Update(ShutdownMsg{})
	if command == nil {
		t.Fatal("shutdown should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Errorf("expected QuitMsg, got %T", command())
	}
}

func TestModelFullscreenToggle(t *testing.T) {
	model := NewModel(Options{Store: telemetry.NewStore()})

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	model = updated.(Model)
	if !model.fullscreen {
		t.Error("f should enter fullscreen")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	if model.fullscreen {
		t.Error("enter should leave fullscreen")
	}
}

func TestModelWindowSize(t *testing.T) {
	model := NewModel(Options{Store: telemetry.NewStore()})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)
	if !model.ready {
		t.Error("window size should mark the model ready")
	}
	if model.width != 120 || model.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", model.width, model.height)
	}
}

func TestModelTickCapturesState(t *testing.T) {
	store := telemetry.NewStore()
	fake := clock.Fake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	airspeed := telemetry.NewHistory(16)
	model := NewModel(Options{
		Store:    store,
		Airspeed: airspeed,
		Clock:    fake,
	})

	if model.snapshot.Flight.IndicatedAirspeed.Present {
		t.Fatal("airspeed should start absent")
	}

	store.Update(telemetry.GroupFlight, fake.Now(), func(snapshot *telemetry.Snapshot) {
		snapshot.Flight.IndicatedAirspeed = telemetry.Measurement(128.6)
	})
	airspeed.Append(128.6)
	fake.Advance(time.Second)

	updated, command := model.Update(tickMsg{})
	model = updated.(Model)

	if !model.snapshot.Flight.IndicatedAirspeed.Present {
		t.Error("tick should pick up the store update")
	}
	if got, want := len(model.airspeedSeries), 1; got != want {
		t.Errorf("airspeed series length = %d, want %d", got, want)
	}
	if !model.now.Equal(fake.Now()) {
		t.Errorf("tick should capture the clock: got %v, want %v", model.now, fake.Now())
	}
	if command == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelStaleness(t *testing.T) {
	store := telemetry.NewStore()
	fake := clock.Fake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	model := NewModel(Options{
		Store:      store,
		Clock:      fake,
		StaleAfter: 3 * time.Second,
	})

	// A panel whose groups never updated shows placeholders, not a
	// stale marker.
	if _, stale := model.panelStale(PanelFlight); stale {
		t.Error("untouched panel should not be stale")
	}

	store.Update(telemetry.GroupFlight, fake.Now(), func(snapshot *telemetry.Snapshot) {
		snapshot.Flight.AltitudeMSL = telemetry.Measurement(1200)
	})

	fake.Advance(2 * time.Second)
	updated, _ := model.Update(tickMsg{})
	model = updated.(Model)
	if _, stale := model.panelStale(PanelFlight); stale {
		t.Error("fresh panel should not be stale at 2s")
	}

	fake.Advance(5 * time.Second)
	updated, _ = model.Update(tickMsg{})
	model = updated.(Model)
	age, stale := model.panelStale(PanelFlight)
	if !stale {
		t.Fatal("panel should be stale at 7s")
	}
	if age != 7*time.Second {
		t.Errorf("stale age = %v, want %v", age, 7*time.Second)
	}
}

func TestModelSystemsStalenessUsesOlderGroup(t *testing.T) {
	store := telemetry.NewStore()
	fake := clock.Fake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	model := NewModel(Options{
		Store:      store,
		Clock:      fake,
		StaleAfter: 3 * time.Second,
	})

	store.Update(telemetry.GroupEngine, fake.Now(), func(snapshot *telemetry.Snapshot) {
		snapshot.Engine.Left.RPM = telemetry.Measurement(80)
	})
	fake.Advance(4 * time.Second)
	store.Update(telemetry.GroupMech, fake.Now(), func(snapshot *telemetry.Snapshot) {
		snapshot.Mech.Gear = telemetry.Measurement(1)
	})

	updated, _ := model.Update(tickMsg{})
	model = updated.(Model)

	// Mech is fresh but engine is 4s old; the panel marker follows
	// the older group.
	age, stale := model.panelStale(PanelSystems)
	if !stale {
		t.Fatal("systems panel should be stale")
	}
	if age != 4*time.Second {
		t.Errorf("stale age = %v, want %v", age, 4*time.Second)
	}
}

func TestModelDefaults(t *testing.T) {
	model := NewModel(Options{Store: telemetry.NewStore()})

	if model.tick != 100*time.Millisecond {
		t.Errorf("tick = %v, want 100ms", model.tick)
	}
	if model.staleAfter != 3*time.Second {
		t.Errorf("staleAfter = %v, want 3s", model.staleAfter)
	}
	if model.clock == nil {
		t.Error("clock should default to the real clock")
	}
	if model.focused != PanelFlight {
		t.Errorf("initial focus = %v, want %v", model.focused, PanelFlight)
	}
	if model.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}
