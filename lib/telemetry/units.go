// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

// Conversion factors between the canonical wire units and display
// units.
const (
	knotsPerMeterPerSecond             = 1.943844
	kilometersPerHourPerMeterPerSecond = 3.6
	degreesPerRadian                   = 57.2957795
)

// MetersPerSecondToKnots converts a speed for display.
func MetersPerSecondToKnots(metersPerSecond float64) float64 {
	return metersPerSecond * knotsPerMeterPerSecond
}

// MetersPerSecondToKilometersPerHour converts a speed for display.
func MetersPerSecondToKilometersPerHour(metersPerSecond float64) float64 {
	return metersPerSecond * kilometersPerHourPerMeterPerSecond
}

// RadiansToDegrees converts an angle for display.
func RadiansToDegrees(radians float64) float64 {
	return radians * degreesPerRadian
}

// Clamp01 clamps a ratio to [0,1]. Out-of-range exporter values are
// clamped, never rejected. Idempotent: an in-range value passes
// through unchanged.
func Clamp01(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 1:
		return 1
	default:
		return value
	}
}
