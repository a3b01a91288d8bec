// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"math"

	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/wire"
)

// Weight-on-wheels inference thresholds: the airframe is taken to be
// on the ground when it is this low, this level, and this slow, all at
// once in the same sample.
const (
	wowInferMaxAGLMeters       = 0.5
	wowInferMaxVerticalSpeed   = 1.0
	wowInferMaxTrueAirspeed    = 2.0
	rpmPercentPerThrottleRatio = 100.0
)

// Normalizer folds decoded wire samples into the canonical state. It
// resolves paired-channel shapes, fills estimated and inferred values,
// clamps ratios, and appends the graphed signals to their History
// buffers. It never fails: absent or non-finite inputs leave the
// corresponding snapshot fields untouched.
//
// Apply is called from the ingestion goroutine only.
type Normalizer struct {
	store    *Store
	airspeed *History
	altitude *History
	clock    clock.Clock
}

// NewNormalizer returns a Normalizer writing to store and to the two
// graphed-signal histories (indicated airspeed and altitude MSL, in
// wire units).
func NewNormalizer(store *Store, airspeed, altitude *History, clk clock.Clock) *Normalizer {
	return &Normalizer{
		store:    store,
		airspeed: airspeed,
		altitude: altitude,
		clock:    clk,
	}
}

// Apply merges one sample into the snapshot. Each group the sample
// touches is written atomically and stamped with the current time;
// groups the sample does not touch keep their previous values and
// update times.
func (n *Normalizer) Apply(sample *wire.Sample) {
	if sample == nil {
		return
	}
	now := n.clock.Now()

	if sampleHasFlight(sample) {
		n.store.Update(GroupFlight, now, func(snapshot *Snapshot) {
			applyFlight(&snapshot.Vehicle, &snapshot.Flight, sample)
		})
	}
	if sample.Engine != nil {
		n.store.Update(GroupEngine, now, func(snapshot *Snapshot) {
			applyEngine(&snapshot.Engine, sample.Engine)
		})
	}
	wowInferred := weightOnWheelsInferred(sample)
	if sample.Mech != nil || wowInferred {
		n.store.Update(GroupMech, now, func(snapshot *Snapshot) {
			applyMech(&snapshot.Mech, sample.Mech, wowInferred)
		})
	}

	if present(sample.IndicatedAirspeed) {
		n.airspeed.Append(*sample.IndicatedAirspeed)
	}
	if present(sample.AltitudeMSL) {
		n.altitude.Append(*sample.AltitudeMSL)
	}
}

// sampleHasFlight reports whether the sample carries anything in the
// flight group (identity, position, kinematics, attitude, or load).
func sampleHasFlight(sample *wire.Sample) bool {
	return sample.Name != nil ||
		sample.Latitude != nil || sample.Longitude != nil ||
		sample.AltitudeMSL != nil || sample.AltitudeAGL != nil ||
		sample.IndicatedAirspeed != nil || sample.TrueAirspeed != nil ||
		sample.Mach != nil || sample.AngleOfAttack != nil ||
		sample.VerticalSpeed != nil ||
		sample.Attitude != nil || sample.Acceleration != nil
}

func applyFlight(vehicle *Text, flight *Flight, sample *wire.Sample) {
	if sample.Name != nil {
		*vehicle = Text{Value: *sample.Name, Present: true}
	}

	setMeasured(&flight.Latitude, sample.Latitude)
	setMeasured(&flight.Longitude, sample.Longitude)
	setMeasured(&flight.AltitudeMSL, sample.AltitudeMSL)
	setMeasured(&flight.AltitudeAGL, sample.AltitudeAGL)
	setMeasured(&flight.IndicatedAirspeed, sample.IndicatedAirspeed)
	setMeasured(&flight.TrueAirspeed, sample.TrueAirspeed)
	setMeasured(&flight.Mach, sample.Mach)
	setMeasured(&flight.AngleOfAttack, sample.AngleOfAttack)
	setMeasured(&flight.VerticalSpeed, sample.VerticalSpeed)

	if attitude := sample.Attitude; attitude != nil {
		setMeasured(&flight.Pitch, attitude.Pitch)
		setMeasured(&flight.Bank, attitude.Bank)
		setMeasured(&flight.Yaw, attitude.Yaw)
	}
	if acceleration := sample.Acceleration; acceleration != nil {
		setMeasured(&flight.AccelX, acceleration.X)
		setMeasured(&flight.AccelY, acceleration.Y)
		setMeasured(&flight.AccelZ, acceleration.Z)
	}
}

func applyEngine(engine *Engine, sample *wire.Engine) {
	if sample.NozzleFitted != nil && *sample.NozzleFitted {
		engine.NozzleFitted = true
	}
	if sample.ManifoldFitted != nil && *sample.ManifoldFitted {
		engine.ManifoldFitted = true
	}

	rpmLeft, rpmRight := channelSlots(sample.RPM)
	setMeasured(&engine.Left.RPM, rpmLeft)
	setMeasured(&engine.Right.RPM, rpmRight)

	// An explicit throttle wins. The exporter may flag its own value
	// as derived; otherwise the lever reading is a measurement.
	throttleSource := Measured
	if sample.ThrottleEstimated != nil && *sample.ThrottleEstimated {
		throttleSource = Estimated
	}
	throttleLeft, throttleRight := channelSlots(sample.Throttle)
	setRatio(&engine.Left.Throttle, throttleLeft, throttleSource)
	setRatio(&engine.Right.Throttle, throttleRight, throttleSource)
	estimateThrottle(&engine.Left.Throttle, throttleLeft, rpmLeft)
	estimateThrottle(&engine.Right.Throttle, throttleRight, rpmRight)

	nozzleLeft, nozzleRight := channelSlots(sample.Nozzle)
	setRatio(&engine.Left.Nozzle, nozzleLeft, Measured)
	setRatio(&engine.Right.Nozzle, nozzleRight, Measured)

	temperatureLeft, temperatureRight := channelSlots(sample.Temperature)
	setMeasured(&engine.Left.Temperature, temperatureLeft)
	setMeasured(&engine.Right.Temperature, temperatureRight)

	fuelFlowLeft, fuelFlowRight := channelSlots(sample.FuelFlow)
	setMeasured(&engine.Left.FuelFlow, fuelFlowLeft)
	setMeasured(&engine.Right.FuelFlow, fuelFlowRight)

	manifoldLeft, manifoldRight := channelSlots(sample.ManifoldPressure)
	setMeasured(&engine.Left.ManifoldPressure, manifoldLeft)
	setMeasured(&engine.Right.ManifoldPressure, manifoldRight)
}

func applyMech(mech *Mech, sample *wire.Mech, wowInferred bool) {
	if sample != nil {
		setRatio(&mech.Gear, sample.Gear, Measured)
		setRatio(&mech.Flaps, sample.Flaps, Measured)
		setRatio(&mech.Airbrake, sample.Airbrake, Measured)
		setRatio(&mech.Hook, sample.Hook, Measured)
		setRatio(&mech.WingSweep, sample.WingSweep, Measured)

		wowSource := Measured
		if sample.WeightOnWheelsGuess != nil && *sample.WeightOnWheelsGuess {
			wowSource = Inferred
		}
		setRatio(&mech.WeightOnWheels, sample.WeightOnWheels, wowSource)
	}
	if wowInferred {
		mech.WeightOnWheels = Field{Value: 1, Present: true, Source: Inferred}
	}
}

// weightOnWheelsInferred reports whether this sample's kinematics pin
// the airframe to the ground. The inference fires only when the sample
// has no direct weight-on-wheels value, and never fires in the
// negative direction — airborne kinematics leave the field untouched.
func weightOnWheelsInferred(sample *wire.Sample) bool {
	if sample.Mech != nil && sample.Mech.WeightOnWheels != nil {
		return false
	}
	if !present(sample.AltitudeAGL) || !present(sample.VerticalSpeed) || !present(sample.TrueAirspeed) {
		return false
	}
	return *sample.AltitudeAGL < wowInferMaxAGLMeters &&
		math.Abs(*sample.VerticalSpeed) < wowInferMaxVerticalSpeed &&
		*sample.TrueAirspeed < wowInferMaxTrueAirspeed
}

// channelSlots resolves a wire Pair into per-channel slots. Policy for
// the scalar shape: the value applies to the left channel only and the
// right stays absent, so a single-engine airframe populates exactly
// one column.
func channelSlots(pair wire.Pair) (left, right *float64) {
	switch pair.Kind {
	case wire.PairScalar:
		value := pair.Value
		return &value, nil
	case wire.PairSplit:
		return pair.Left, pair.Right
	default:
		return nil, nil
	}
}

// estimateThrottle fills a channel's throttle from its RPM when the
// sample carried no explicit throttle for that channel. RPM is a
// percentage of rated speed, so the ratio estimate is RPM/100,
// clamped.
func estimateThrottle(field *Field, explicit, rpm *float64) {
	if explicit != nil || !present(rpm) {
		return
	}
	*field = Field{
		Value:   Clamp01(*rpm / rpmPercentPerThrottleRatio),
		Present: true,
		Source:  Estimated,
	}
}

// setMeasured assigns a measured value. Nil leaves the field
// untouched. The wire contract encodes non-finite numbers as null, but
// a misbehaving exporter could still deliver one; those are treated as
// absent too.
func setMeasured(field *Field, value *float64) {
	if !present(value) {
		return
	}
	*field = Field{Value: *value, Present: true, Source: Measured}
}

// setRatio assigns a ratio-typed value, clamped to [0,1].
func setRatio(field *Field, value *float64, source Provenance) {
	if !present(value) {
		return
	}
	*field = Field{Value: Clamp01(*value), Present: true, Source: source}
}

// present reports whether the wire supplied a usable (finite) value.
func present(value *float64) bool {
	return value != nil && !math.IsNaN(*value) && !math.IsInf(*value, 0)
}
