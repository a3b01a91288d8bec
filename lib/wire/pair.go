// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/json"
	"fmt"
)

// PairKind tags which wire shape a paired engine quantity arrived in.
type PairKind uint8

const (
	// PairAbsent means the key was missing or null.
	PairAbsent PairKind = iota

	// PairScalar means a bare number: a single-engine airframe, or an
	// exporter that reports one value for both channels.
	PairScalar

	// PairSplit means an explicit left/right split, from either the
	// keyed object form or the two-element array form.
	PairSplit
)

// String returns the kind name for diagnostics.
func (k PairKind) String() string {
	switch k {
	case PairAbsent:
		return "absent"
	case PairScalar:
		return "scalar"
	case PairSplit:
		return "split"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Pair is a paired engine quantity as it arrived on the wire. The zero
// value is PairAbsent. Value holds the scalar payload for PairScalar;
// Left and Right hold the split payloads for PairSplit, either of
// which may individually be nil (a null slot in the array form, or a
// missing key in the object form).
type Pair struct {
	Kind  PairKind
	Value float64
	Left  *float64
	Right *float64
}

// pairObject is the keyed wire form. The exporter writes "L"/"R" but
// some builds write "left"/"right"; both are accepted, uppercase
// winning when a frame carries both.
type pairObject struct {
	L     *float64 `json:"L"`
	R     *float64 `json:"R"`
	Left  *float64 `json:"left"`
	Right *float64 `json:"right"`
}

// UnmarshalJSON decodes any of the three wire shapes. A JSON null
// leaves the Pair absent.
func (p *Pair) UnmarshalJSON(data []byte) error {
	*p = Pair{}
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case 'n': // null
		return nil

	case '{':
		var object pairObject
		if err := json.Unmarshal(data, &object); err != nil {
			return fmt.Errorf("pair object: %w", err)
		}
		p.Kind = PairSplit
		p.Left = object.L
		if p.Left == nil {
			p.Left = object.Left
		}
		p.Right = object.R
		if p.Right == nil {
			p.Right = object.Right
		}
		return nil

	case '[':
		var slots []*float64
		if err := json.Unmarshal(data, &slots); err != nil {
			return fmt.Errorf("pair array: %w", err)
		}
		if len(slots) != 2 {
			return fmt.Errorf("pair array has %d elements, want 2", len(slots))
		}
		p.Kind = PairSplit
		p.Left = slots[0]
		p.Right = slots[1]
		return nil

	default:
		var value float64
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("pair scalar: %w", err)
		}
		p.Kind = PairScalar
		p.Value = value
		return nil
	}
}
