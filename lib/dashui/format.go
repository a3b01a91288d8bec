// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"fmt"

	"github.com/simdash-project/simdash/lib/telemetry"
)

// placeholder is rendered for any value the exporter has never sent.
// Absence is a state of its own — it must never display as zero.
const placeholder = "---"

// provenanceSuffix returns the display marker for values the
// dashboard computed rather than received.
func provenanceSuffix(source telemetry.Provenance) string {
	switch source {
	case telemetry.Estimated:
		return " (est)"
	case telemetry.Inferred:
		return " (guess)"
	default:
		return ""
	}
}

// formatField renders a numeric field. scale converts from the
// canonical unit to the display unit; unit is the display suffix,
// empty for unitless values.
func formatField(field telemetry.Field, scale float64, precision int, unit string) string {
	if !field.Present {
		return placeholder
	}
	text := fmt.Sprintf("%.*f", precision, field.Value*scale)
	if unit != "" {
		text += " " + unit
	}
	return text + provenanceSuffix(field.Source)
}

// formatRatio renders a [0,1] ratio as a percentage.
func formatRatio(field telemetry.Field) string {
	if !field.Present {
		return placeholder
	}
	return fmt.Sprintf("%.0f%%", field.Value*100) + provenanceSuffix(field.Source)
}

// formatPercent renders a value already on a percent scale (RPM).
func formatPercent(field telemetry.Field) string {
	if !field.Present {
		return placeholder
	}
	return fmt.Sprintf("%.0f%%", field.Value) + provenanceSuffix(field.Source)
}

// formatWeightOnWheels renders the on-ground flag: WOW on the ground,
// AIR otherwise.
func formatWeightOnWheels(field telemetry.Field) string {
	if !field.Present {
		return placeholder
	}
	label := "AIR"
	if field.Value >= 0.5 {
		label = "WOW"
	}
	return label + provenanceSuffix(field.Source)
}

// formatCoordinate renders a latitude or longitude in signed decimal
// degrees.
func formatCoordinate(field telemetry.Field) string {
	if !field.Present {
		return placeholder
	}
	return fmt.Sprintf("%.5f", field.Value)
}
