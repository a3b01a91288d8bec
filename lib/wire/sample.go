// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Sample is one decoded telemetry frame. Every field is optional: a
// nil pointer (or a Pair with Kind PairAbsent) means the exporter did
// not supply the value in this frame, which is normal — the active
// vehicle's schema decides which keys exist at all.
type Sample struct {
	// Name is the vehicle type identifier, e.g. "FA-18C_hornet".
	Name *string `json:"name"`

	// Latitude and Longitude in decimal degrees.
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`

	// AltitudeMSL is altitude above mean sea level in meters.
	AltitudeMSL *float64 `json:"alt_msl"`

	// AltitudeAGL is altitude above ground level in meters.
	AltitudeAGL *float64 `json:"alt_agl"`

	// IndicatedAirspeed in meters per second.
	IndicatedAirspeed *float64 `json:"ias_ms"`

	// TrueAirspeed in meters per second.
	TrueAirspeed *float64 `json:"tas_ms"`

	// Mach number, dimensionless.
	Mach *float64 `json:"mach"`

	// AngleOfAttack in radians.
	AngleOfAttack *float64 `json:"aoa_rad"`

	// VerticalSpeed in meters per second, positive up.
	VerticalSpeed *float64 `json:"vv_ms"`

	// Attitude angles, radians.
	Attitude *Attitude `json:"att"`

	// Acceleration in airframe axes, G.
	Acceleration *Acceleration `json:"accel"`

	// Engine state, per channel where the airframe is twin-engine.
	Engine *Engine `json:"engine"`

	// Mech is mechanical systems state (gear, flaps, and so on), each
	// value a ratio of travel.
	Mech *Mech `json:"mech"`
}

// Attitude is the airframe's orientation in radians.
type Attitude struct {
	Pitch *float64 `json:"pitch"`
	Bank  *float64 `json:"bank"`
	Yaw   *float64 `json:"yaw"`
}

// Acceleration is the load factor along the airframe axes in G.
type Acceleration struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// Engine is per-channel engine state. Pair fields carry one value for
// single-engine airframes and a left/right split for twins.
type Engine struct {
	// RPM as a percentage of rated speed, nominally 0-100 but not
	// bounded by the wire contract (overspeed reads above 100).
	RPM Pair `json:"rpm"`

	// Throttle lever position as a ratio of travel.
	Throttle Pair `json:"thrtl"`

	// ThrottleEstimated reports that the exporter derived Throttle
	// from another quantity rather than reading the lever directly.
	ThrottleEstimated *bool `json:"thrtl_est"`

	// Nozzle position as a ratio, for airframes with variable exhaust
	// nozzles.
	Nozzle Pair `json:"noz"`

	// NozzleFitted reports whether the airframe has a nozzle gauge at
	// all. Distinct from Nozzle being absent in one frame.
	NozzleFitted *bool `json:"noz_present"`

	// Temperature is exhaust or cylinder-head temperature in degrees
	// Celsius, whichever the airframe instruments.
	Temperature Pair `json:"temp"`

	// FuelFlow in the airframe's native unit (typically kg/h or pph;
	// the exporter does not normalize it).
	FuelFlow Pair `json:"fuelf"`

	// ManifoldPressure for piston airframes, in the airframe's native
	// unit.
	ManifoldPressure Pair `json:"map"`

	// ManifoldFitted reports whether the airframe has a manifold
	// pressure gauge.
	ManifoldFitted *bool `json:"map_present"`
}

// Mech is mechanical systems state. Every value is a ratio of travel:
// 0 retracted/up/closed, 1 extended/down/open. The wire contract does
// not clamp; consumers must.
type Mech struct {
	Gear      *float64 `json:"gear"`
	Flaps     *float64 `json:"flaps"`
	Airbrake  *float64 `json:"airbrake"`
	Hook      *float64 `json:"hook"`
	WingSweep *float64 `json:"wing"`

	// WeightOnWheels is 1 when the suspension is compressed, 0
	// airborne. Some exporters report intermediate values during
	// touchdown.
	WeightOnWheels *float64 `json:"wow"`

	// WeightOnWheelsGuess reports that the exporter inferred
	// WeightOnWheels rather than reading a squat switch.
	WeightOnWheelsGuess *bool `json:"wow_guess"`
}
