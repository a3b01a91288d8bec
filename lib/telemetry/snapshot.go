// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import "fmt"

// Group identifies a top-level snapshot group. Groups update
// independently — one wire sample may carry flight data only — so
// update times and staleness are tracked per group.
type Group uint8

const (
	GroupFlight Group = iota
	GroupEngine
	GroupMech

	groupCount
)

// String returns the group name used in logs and panel titles.
func (g Group) String() string {
	switch g {
	case GroupFlight:
		return "flight"
	case GroupEngine:
		return "engine"
	case GroupMech:
		return "mech"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(g))
	}
}

// Snapshot is the canonical latest-known flight state. It is a plain
// value type with no interior pointers, so an assignment is a deep,
// consistent copy — the property the Store's copy-on-read depends on.
type Snapshot struct {
	// Vehicle is the airframe identity, part of the flight group for
	// staleness purposes.
	Vehicle Text

	Flight Flight
	Engine Engine
	Mech   Mech
}

// Flight is position, kinematics, attitude, and load factor.
// Distances are meters, speeds meters per second, angles radians,
// accelerations G.
type Flight struct {
	Latitude  Field
	Longitude Field

	AltitudeMSL Field
	AltitudeAGL Field

	IndicatedAirspeed Field
	TrueAirspeed      Field
	Mach              Field
	AngleOfAttack     Field
	VerticalSpeed     Field

	Pitch Field
	Bank  Field
	Yaw   Field

	AccelX Field
	AccelY Field
	AccelZ Field
}

// EngineChannel is one engine's state. Throttle and Nozzle are ratios
// in [0,1] once present; RPM is a percentage of rated speed;
// Temperature, FuelFlow, and ManifoldPressure are in the airframe's
// native units.
type EngineChannel struct {
	RPM              Field
	Throttle         Field
	Nozzle           Field
	Temperature      Field
	FuelFlow         Field
	ManifoldPressure Field
}

// Engine is both channels plus the airframe's gauge fit. On
// single-engine airframes only Left is ever populated.
type Engine struct {
	Left  EngineChannel
	Right EngineChannel

	// NozzleFitted and ManifoldFitted latch true the first time the
	// exporter reports the gauge exists. They gate whether the
	// dashboard shows the corresponding row at all.
	NozzleFitted   bool
	ManifoldFitted bool
}

// Mech is mechanical systems state. Every field is a ratio in [0,1]
// once present: 0 retracted/up, 1 extended/down.
type Mech struct {
	Gear           Field
	Flaps          Field
	Airbrake       Field
	Hook           Field
	WingSweep      Field
	WeightOnWheels Field
}
