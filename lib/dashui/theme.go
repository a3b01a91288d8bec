// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors. Labels use FaintText, values use NormalText.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	FocusedBorder    lipgloss.Color
	HelpText         lipgloss.Color

	// Value provenance: values the dashboard computed rather than
	// received.
	EstimatedValue lipgloss.Color
	InferredValue  lipgloss.Color

	// StaleText marks panel groups that have not been touched by an
	// accepted sample within the staleness threshold.
	StaleText lipgloss.Color

	// Chart series.
	AirspeedSeries lipgloss.Color
	AltitudeSeries lipgloss.Color

	// ErrorText marks the malformed-frame counter when non-zero.
	ErrorText lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	FocusedBorder:    lipgloss.Color("75"), // blue
	HelpText:         lipgloss.Color("241"),

	EstimatedValue: lipgloss.Color("220"), // yellow/amber
	InferredValue:  lipgloss.Color("141"), // light purple

	StaleText: lipgloss.Color("208"), // orange

	AirspeedSeries: lipgloss.Color("114"), // green
	AltitudeSeries: lipgloss.Color("75"),  // blue

	ErrorText: lipgloss.Color("196"), // bright red
}
