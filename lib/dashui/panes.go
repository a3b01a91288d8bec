// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/simdash-project/simdash/lib/telemetry"
)

var (
	knotsPerMeterPerSecond             = telemetry.MetersPerSecondToKnots(1)
	kilometersPerHourPerMeterPerSecond = telemetry.MetersPerSecondToKilometersPerHour(1)
	degreesPerRadian                   = telemetry.RadiansToDegrees(1)
)

// panelLines returns the content rows for a panel. Charts size their
// drawing to the given interior dimensions; the readout panels ignore
// them and let the frame truncate.
func (model Model) panelLines(panel Panel, width, height int) []string {
	switch panel {
	case PanelFlight:
		return model.flightLines()
	case PanelAttitude:
		return model.attitudeLines()
	case PanelSystems:
		return model.systemsLines()
	case PanelAirspeed:
		return model.chartLines(model.airspeedSeries, knotsPerMeterPerSecond, 0, "kt",
			model.theme.AirspeedSeries, width, height)
	case PanelAltitude:
		return model.chartLines(model.altitudeSeries, 1, 0, "m",
			model.theme.AltitudeSeries, width, height)
	default:
		return nil
	}
}

// row formats one readout line. The value keeps whatever styling the
// formatter applied; only the label is padded, so alignment survives
// ANSI sequences in the value.
func (model Model) row(label string, field telemetry.Field, value string) string {
	return fmt.Sprintf("%-9s %s", label, model.styleValue(field, value))
}

// styleValue colors a value by its provenance: estimates and
// inferences get their own colors, absent values render faint.
func (model Model) styleValue(field telemetry.Field, value string) string {
	if !field.Present {
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(value)
	}
	switch field.Source {
	case telemetry.Estimated:
		return lipgloss.NewStyle().Foreground(model.theme.EstimatedValue).Render(value)
	case telemetry.Inferred:
		return lipgloss.NewStyle().Foreground(model.theme.InferredValue).Render(value)
	default:
		return value
	}
}

func (model Model) flightLines() []string {
	flight := model.snapshot.Flight

	ias := formatField(flight.IndicatedAirspeed, knotsPerMeterPerSecond, 0, "kt")
	if flight.IndicatedAirspeed.Present {
		ias = fmt.Sprintf("%s (%.0f km/h)", ias,
			flight.IndicatedAirspeed.Value*kilometersPerHourPerMeterPerSecond)
	}

	return []string{
		model.row("IAS", flight.IndicatedAirspeed, ias),
		model.row("TAS", flight.TrueAirspeed,
			formatField(flight.TrueAirspeed, knotsPerMeterPerSecond, 0, "kt")),
		model.row("Mach", flight.Mach, formatField(flight.Mach, 1, 2, "")),
		model.row("Alt MSL", flight.AltitudeMSL, formatField(flight.AltitudeMSL, 1, 0, "m")),
		model.row("Alt AGL", flight.AltitudeAGL, formatField(flight.AltitudeAGL, 1, 0, "m")),
		model.row("V/S", flight.VerticalSpeed, formatField(flight.VerticalSpeed, 1, 1, "m/s")),
		model.row("AoA", flight.AngleOfAttack,
			formatField(flight.AngleOfAttack, degreesPerRadian, 1, "deg")),
	}
}

func (model Model) attitudeLines() []string {
	flight := model.snapshot.Flight
	return []string{
		model.row("Pitch", flight.Pitch, formatField(flight.Pitch, degreesPerRadian, 1, "deg")),
		model.row("Bank", flight.Bank, formatField(flight.Bank, degreesPerRadian, 1, "deg")),
		model.row("Yaw", flight.Yaw, formatField(flight.Yaw, degreesPerRadian, 1, "deg")),
		model.row("G", flight.AccelZ, formatField(flight.AccelZ, 1, 1, "G")),
		model.row("Lateral", flight.AccelY, formatField(flight.AccelY, 1, 1, "G")),
		model.row("Axial", flight.AccelX, formatField(flight.AccelX, 1, 1, "G")),
	}
}

func (model Model) systemsLines() []string {
	engine := model.snapshot.Engine
	mech := model.snapshot.Mech
	dual := channelActive(engine.Right)

	lines := []string{
		model.enginePair("RPM", engine.Left.RPM, engine.Right.RPM, dual, formatPercent),
		model.enginePair("Throttle", engine.Left.Throttle, engine.Right.Throttle, dual, formatRatio),
	}
	if engine.NozzleFitted {
		lines = append(lines,
			model.enginePair("Nozzle", engine.Left.Nozzle, engine.Right.Nozzle, dual, formatRatio))
	}
	lines = append(lines,
		model.enginePair("Temp", engine.Left.Temperature, engine.Right.Temperature, dual,
			func(field telemetry.Field) string { return formatField(field, 1, 0, "") }),
		model.enginePair("Fuel flow", engine.Left.FuelFlow, engine.Right.FuelFlow, dual,
			func(field telemetry.Field) string { return formatField(field, 1, 0, "") }),
	)
	if engine.ManifoldFitted {
		lines = append(lines,
			model.enginePair("Manifold", engine.Left.ManifoldPressure, engine.Right.ManifoldPressure, dual,
				func(field telemetry.Field) string { return formatField(field, 1, 2, "") }))
	}

	lines = append(lines,
		"",
		model.row("Gear", mech.Gear, formatRatio(mech.Gear)),
		model.row("Flaps", mech.Flaps, formatRatio(mech.Flaps)),
		model.row("Airbrake", mech.Airbrake, formatRatio(mech.Airbrake)),
		model.row("Hook", mech.Hook, formatRatio(mech.Hook)),
		model.row("Wing swp", mech.WingSweep, formatRatio(mech.WingSweep)),
		model.row("WoW", mech.WeightOnWheels, formatWeightOnWheels(mech.WeightOnWheels)),
	)
	return lines
}

// enginePair renders one engine row: a single value on single-engine
// airframes, "left / right" once the right channel has reported.
func (model Model) enginePair(label string, left, right telemetry.Field, dual bool, format func(telemetry.Field) string) string {
	value := model.styleValue(left, format(left))
	if dual {
		value += " / " + model.styleValue(right, format(right))
	}
	return fmt.Sprintf("%-9s %s", label, value)
}

// channelActive reports whether any gauge on the channel has ever
// reported. Gates the second column of the engine rows.
func channelActive(channel telemetry.EngineChannel) bool {
	return channel.RPM.Present ||
		channel.Throttle.Present ||
		channel.Nozzle.Present ||
		channel.Temperature.Present ||
		channel.FuelFlow.Present ||
		channel.ManifoldPressure.Present
}

// chartLines renders a history chart: the latest value as a headline,
// then a sparkline over the remaining rows.
func (model Model) chartLines(series []float64, scale float64, precision int, unit string, color lipgloss.Color, width, height int) []string {
	if height < 1 || width < 1 {
		return nil
	}

	headline := placeholder
	if len(series) > 0 {
		headline = fmt.Sprintf("%.*f %s", precision, series[len(series)-1]*scale, unit)
	}
	lines := []string{headline}

	graphHeight := height - 1
	if graphHeight < 1 {
		return lines
	}
	style := lipgloss.NewStyle().Foreground(color)
	for _, graphRow := range Sparkline(series, width, graphHeight) {
		lines = append(lines, style.Render(graphRow))
	}
	return lines
}
