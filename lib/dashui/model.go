// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/ingest"
	"github.com/simdash-project/simdash/lib/telemetry"
)

// Panel identifies one dashboard panel for focus and fullscreen.
type Panel int

const (
	// PanelFlight shows airspeed, altitude, and rate figures.
	PanelFlight Panel = iota
	// PanelAttitude shows attitude angles and load factor.
	PanelAttitude
	// PanelSystems shows engine channels and mechanical state.
	PanelSystems
	// PanelAirspeed is the indicated airspeed history chart.
	PanelAirspeed
	// PanelAltitude is the MSL altitude history chart.
	PanelAltitude

	panelCount
)

// String returns the panel name used in the status bar.
func (p Panel) String() string {
	switch p {
	case PanelFlight:
		return "Flight"
	case PanelAttitude:
		return "Attitude"
	case PanelSystems:
		return "Systems"
	case PanelAirspeed:
		return "Airspeed"
	case PanelAltitude:
		return "Altitude"
	default:
		return "?"
	}
}

// title returns the panel frame title. Charts carry their display
// unit so the axis needs no separate legend.
func (p Panel) title() string {
	switch p {
	case PanelAirspeed:
		return "IAS kt"
	case PanelAltitude:
		return "Alt m"
	default:
		return p.String()
	}
}

// focusDirection is a focus movement request.
type focusDirection int

const (
	focusUp focusDirection = iota
	focusDown
	focusLeft
	focusRight
)

// moveFocus returns the panel reached by moving from panel in the
// given direction. The grid is two rows: Flight, Attitude, Systems on
// top; the airspeed and altitude charts below. Horizontal movement
// wraps within a row; vertical movement stops at the edges.
func moveFocus(panel Panel, direction focusDirection) Panel {
	switch direction {
	case focusLeft:
		switch panel {
		case PanelFlight:
			return PanelSystems
		case PanelAttitude:
			return PanelFlight
		case PanelSystems:
			return PanelAttitude
		case PanelAirspeed:
			return PanelAltitude
		case PanelAltitude:
			return PanelAirspeed
		}
	case focusRight:
		switch panel {
		case PanelFlight:
			return PanelAttitude
		case PanelAttitude:
			return PanelSystems
		case PanelSystems:
			return PanelFlight
		case PanelAirspeed:
			return PanelAltitude
		case PanelAltitude:
			return PanelAirspeed
		}
	case focusUp:
		switch panel {
		case PanelAirspeed:
			return PanelFlight
		case PanelAltitude:
			return PanelSystems
		}
	case focusDown:
		switch panel {
		case PanelFlight, PanelAttitude:
			return PanelAirspeed
		case PanelSystems:
			return PanelAltitude
		}
	}
	return panel
}

// tickMsg drives the render cadence. Each tick re-reads the shared
// state and schedules the next tick.
type tickMsg struct{}

// ShutdownMsg asks the dashboard to exit. The process lifecycle sends
// it when the ingest side fails or a termination signal arrives, so
// the terminal is restored through the normal program teardown.
type ShutdownMsg struct{}

// Options wires a Model to the shared telemetry state.
type Options struct {
	// Store is the snapshot store the ingest loop writes.
	Store *telemetry.Store

	// Airspeed and Altitude are the graphed history buffers.
	Airspeed *telemetry.History
	Altitude *telemetry.History

	// Stats reports ingest counters for the status bar. Optional.
	Stats func() ingest.Stats

	// Clock supplies the time used for staleness ages. Defaults to
	// the real clock.
	Clock clock.Clock

	// Tick is the render period. Defaults to 100ms.
	Tick time.Duration

	// StaleAfter is the threshold beyond which a group with no
	// accepted sample is marked stale. Defaults to 3s.
	StaleAfter time.Duration

	// Endpoint is the listen address shown in the header.
	Endpoint string
}

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	store    *telemetry.Store
	airspeed *telemetry.History
	altitude *telemetry.History
	statsFn  func() ingest.Stats
	clock    clock.Clock
	theme    Theme
	keys     KeyMap

	tick       time.Duration
	staleAfter time.Duration
	endpoint   string

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Panel focus and fullscreen state.
	focused    Panel
	fullscreen bool

	// State captured at the last tick. View renders from these, so a
	// frame is internally consistent even while ingest keeps writing.
	now            time.Time
	snapshot       telemetry.Snapshot
	times          telemetry.GroupTimes
	airspeedSeries []float64
	altitudeSeries []float64
	stats          ingest.Stats
}

// NewModel creates a Model over the given shared state.
func NewModel(options Options) Model {
	model := Model{
		store:      options.Store,
		airspeed:   options.Airspeed,
		altitude:   options.Altitude,
		statsFn:    options.Stats,
		clock:      options.Clock,
		theme:      DefaultTheme,
		keys:       DefaultKeyMap,
		tick:       options.Tick,
		staleAfter: options.StaleAfter,
		endpoint:   options.Endpoint,
		focused:    PanelFlight,
	}
	if model.clock == nil {
		model.clock = clock.Real()
	}
	if model.tick <= 0 {
		model.tick = 100 * time.Millisecond
	}
	if model.staleAfter <= 0 {
		model.staleAfter = 3 * time.Second
	}
	model.refresh()
	return model
}

// Init implements tea.Model. Starts the render cadence.
func (model Model) Init() tea.Cmd {
	return model.scheduleTick()
}

// scheduleTick returns a tea.Cmd that sends the next tickMsg after
// the render period.
func (model Model) scheduleTick() tea.Cmd {
	return tea.Tick(model.tick, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.Fullscreen):
			model.fullscreen = !model.fullscreen

		case key.Matches(message, model.keys.Up):
			model.focused = moveFocus(model.focused, focusUp)

		case key.Matches(message, model.keys.Down):
			model.focused = moveFocus(model.focused, focusDown)

		case key.Matches(message, model.keys.Left):
			model.focused = moveFocus(model.focused, focusLeft)

		case key.Matches(message, model.keys.Right):
			model.focused = moveFocus(model.focused, focusRight)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case tickMsg:
		model.refresh()
		return model, model.scheduleTick()

	case ShutdownMsg:
		return model, tea.Quit
	}
	return model, nil
}

// refresh captures a consistent view of the shared state for the next
// frame.
func (model *Model) refresh() {
	model.now = model.clock.Now()
	if model.store != nil {
		model.snapshot, model.times = model.store.Read()
	}
	if model.airspeed != nil {
		model.airspeedSeries = model.airspeed.Values()
	}
	if model.altitude != nil {
		model.altitudeSeries = model.altitude.Values()
	}
	if model.statsFn != nil {
		model.stats = model.statsFn()
	}
}

// groupAge returns how long ago an accepted sample last touched the
// group, and whether any ever has.
func (model Model) groupAge(group telemetry.Group) (time.Duration, bool) {
	updated := model.times.For(group)
	if updated.IsZero() {
		return 0, false
	}
	return model.now.Sub(updated), true
}

// panelStale returns the staleness marker age for a panel: the age of
// its most stale contributing group, and whether the marker should
// show. Panels over groups that have never been touched show the
// placeholder content instead of a stale marker.
func (model Model) panelStale(panel Panel) (time.Duration, bool) {
	groups := panelGroups(panel)
	worst := time.Duration(0)
	seen := false
	for _, group := range groups {
		age, ok := model.groupAge(group)
		if !ok {
			continue
		}
		seen = true
		if age > worst {
			worst = age
		}
	}
	return worst, seen && worst > model.staleAfter
}

// panelGroups maps a panel to the snapshot groups it displays.
func panelGroups(panel Panel) []telemetry.Group {
	switch panel {
	case PanelSystems:
		return []telemetry.Group{telemetry.GroupEngine, telemetry.GroupMech}
	default:
		return []telemetry.Group{telemetry.GroupFlight}
	}
}
