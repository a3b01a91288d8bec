// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Minimum terminal size the grid layout can render into. Below this
// the view degrades to a single message instead of a broken frame.
const (
	minViewWidth  = 60
	minViewHeight = 16
)

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Initializing..."
	}
	if model.width < minViewWidth || model.height < minViewHeight {
		return fmt.Sprintf("Terminal too small: %dx%d (need %dx%d)",
			model.width, model.height, minViewWidth, minViewHeight)
	}

	header := model.renderHeader()
	status := model.renderStatus()

	// Header and status bar each take one row.
	contentHeight := model.height - 2

	var content string
	if model.fullscreen {
		content = model.renderPanel(model.focused, model.width, contentHeight)
	} else {
		content = model.renderGrid(contentHeight)
	}

	return strings.Join([]string{header, content, status}, "\n")
}

// renderGrid lays out the five panels: three readout panels on top,
// the two history charts below.
func (model Model) renderGrid(contentHeight int) string {
	chartHeight := contentHeight * 2 / 5
	if chartHeight < 4 {
		chartHeight = 4
	}
	topHeight := contentHeight - chartHeight

	third := model.width / 3
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		model.renderPanel(PanelFlight, third, topHeight),
		model.renderPanel(PanelAttitude, third, topHeight),
		model.renderPanel(PanelSystems, model.width-2*third, topHeight),
	)

	half := model.width / 2
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		model.renderPanel(PanelAirspeed, half, chartHeight),
		model.renderPanel(PanelAltitude, model.width-half, chartHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// renderPanel frames a panel: rounded border, title row, content rows
// truncated and padded to the interior size. The focused panel gets
// the accent border.
func (model Model) renderPanel(panel Panel, width, height int) string {
	// The border eats one cell on every side.
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}

	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render(panel.title())
	if age, stale := model.panelStale(panel); stale {
		titleLine += lipgloss.NewStyle().
			Foreground(model.theme.StaleText).
			Render(fmt.Sprintf("  stale %s", age.Truncate(time.Second)))
	}

	rows := append([]string{titleLine}, model.panelLines(panel, innerWidth, innerHeight-1)...)
	if len(rows) > innerHeight {
		rows = rows[:innerHeight]
	}
	for len(rows) < innerHeight {
		rows = append(rows, "")
	}
	for index, row := range rows {
		rows[index] = padLine(row, innerWidth)
	}

	borderColor := model.theme.BorderColor
	if panel == model.focused {
		borderColor = model.theme.FocusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(strings.Join(rows, "\n"))
}

// padLine truncates a row to the interior width and pads it back out,
// so every row is exactly width cells and the border stays straight.
func padLine(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if gap := width - ansi.StringWidth(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}

// renderHeader renders the top line: program name, vehicle identity,
// position, and the listen endpoint.
func (model Model) renderHeader() string {
	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(" │ ")

	parts := []string{
		lipgloss.NewStyle().
			Bold(true).
			Foreground(model.theme.HeaderForeground).
			Render("simdash"),
	}
	if model.snapshot.Vehicle.Present {
		parts = append(parts, model.snapshot.Vehicle.Value)
	}
	flight := model.snapshot.Flight
	if flight.Latitude.Present && flight.Longitude.Present {
		parts = append(parts,
			formatCoordinate(flight.Latitude)+" "+formatCoordinate(flight.Longitude))
	}
	if flight.AltitudeMSL.Present {
		parts = append(parts, formatField(flight.AltitudeMSL, 1, 0, "m MSL"))
	}
	parts = append(parts, lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render("udp "+model.endpoint))

	return ansi.Truncate(strings.Join(parts, separator), model.width, "")
}

// renderStatus renders the bottom line: focus and key help on the
// left, receive counters on the right.
func (model Model) renderStatus() string {
	left := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(fmt.Sprintf("[%s]  h/j/k/l focus  f fullscreen  q quit", model.focused))

	counterStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	if model.stats.Malformed > 0 {
		counterStyle = lipgloss.NewStyle().Foreground(model.theme.ErrorText)
	}
	right := counterStyle.Render(
		fmt.Sprintf("rx %d  drop %d", model.stats.Datagrams, model.stats.Malformed))

	gap := model.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left, model.width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}
