// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import "fmt"

// Provenance records how a field's value was obtained. It matters for
// display: a throttle derived from RPM is labeled differently from a
// throttle read off the lever.
type Provenance uint8

const (
	// Measured means the exporter supplied the value directly.
	Measured Provenance = iota

	// Estimated means the value was derived from another measured
	// quantity (throttle from RPM).
	Estimated

	// Inferred means the value was concluded from circumstantial
	// evidence (weight on wheels from low-and-slow kinematics).
	Inferred
)

// String returns the provenance name.
func (p Provenance) String() string {
	switch p {
	case Measured:
		return "measured"
	case Estimated:
		return "estimated"
	case Inferred:
		return "inferred"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// Field is an optional numeric value. Present reports whether the
// exporter has ever supplied it this session; Value is meaningless
// while Present is false. Absence is a normal state, never encoded as
// a sentinel number.
type Field struct {
	Value   float64
	Present bool
	Source  Provenance
}

// Measurement returns a present Field with Measured provenance.
func Measurement(value float64) Field {
	return Field{Value: value, Present: true, Source: Measured}
}

// Text is an optional string, used for the vehicle identity.
type Text struct {
	Value   string
	Present bool
}
