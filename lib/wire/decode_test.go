// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeFullFrame(t *testing.T) {
	t.Parallel()

	frame := []byte(`{
		"name": "FA-18C_hornet",
		"lat": 41.6103, "lon": 41.6001,
		"alt_msl": 2389.5, "alt_agl": 2380.1,
		"ias_ms": 154.2, "tas_ms": 171.8, "mach": 0.52,
		"aoa_rad": 0.061, "vv_ms": -2.4,
		"att": {"pitch": 0.05, "bank": -0.61, "yaw": 3.1},
		"accel": {"x": 0.1, "y": 0.02, "z": 4.6},
		"engine": {
			"rpm": {"L": 91.0, "R": 90.5},
			"thrtl": {"L": 0.82, "R": 0.81},
			"noz": {"L": 0.3, "R": 0.31},
			"noz_present": true,
			"temp": {"L": 620.0, "R": 615.0},
			"fuelf": {"L": 3100.0, "R": 3050.0}
		},
		"mech": {"gear": 0.0, "flaps": 0.5, "airbrake": 0.0, "hook": 0.0, "wow": 0.0}
	}`)

	sample, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if sample.Name == nil || *sample.Name != "FA-18C_hornet" {
		t.Errorf("Name: got %v, want FA-18C_hornet", sample.Name)
	}
	if sample.IndicatedAirspeed == nil || *sample.IndicatedAirspeed != 154.2 {
		t.Errorf("IndicatedAirspeed: got %v, want 154.2", sample.IndicatedAirspeed)
	}
	if sample.Attitude == nil || sample.Attitude.Bank == nil || *sample.Attitude.Bank != -0.61 {
		t.Errorf("Attitude.Bank: got %v, want -0.61", sample.Attitude)
	}
	if sample.Engine == nil {
		t.Fatal("Engine: got nil, want decoded engine block")
	}
	if sample.Engine.RPM.Kind != PairSplit {
		t.Errorf("Engine.RPM.Kind: got %v, want split", sample.Engine.RPM.Kind)
	}
	if sample.Engine.RPM.Left == nil || *sample.Engine.RPM.Left != 91.0 {
		t.Errorf("Engine.RPM.Left: got %v, want 91.0", sample.Engine.RPM.Left)
	}
	if sample.Engine.NozzleFitted == nil || !*sample.Engine.NozzleFitted {
		t.Errorf("Engine.NozzleFitted: got %v, want true", sample.Engine.NozzleFitted)
	}
	if sample.Engine.ManifoldPressure.Kind != PairAbsent {
		t.Errorf("Engine.ManifoldPressure.Kind: got %v, want absent", sample.Engine.ManifoldPressure.Kind)
	}
	if sample.Mech == nil || sample.Mech.Flaps == nil || *sample.Mech.Flaps != 0.5 {
		t.Errorf("Mech.Flaps: got %v, want 0.5", sample.Mech)
	}
	if sample.Mech.WeightOnWheels == nil || *sample.Mech.WeightOnWheels != 0.0 {
		t.Errorf("Mech.WeightOnWheels: got %v, want present 0.0", sample.Mech.WeightOnWheels)
	}
}

func TestDecodeNullIsAbsentNotZero(t *testing.T) {
	t.Parallel()

	// The exporter encodes NaN and Infinity as null. A null must decode
	// to an absent field, indistinguishable from a missing key.
	frame := []byte(`{"ias_ms": null, "alt_msl": null, "mach": 0.0, "att": null}`)

	sample, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if sample.IndicatedAirspeed != nil {
		t.Errorf("IndicatedAirspeed: got %v, want absent", *sample.IndicatedAirspeed)
	}
	if sample.AltitudeMSL != nil {
		t.Errorf("AltitudeMSL: got %v, want absent", *sample.AltitudeMSL)
	}
	if sample.Attitude != nil {
		t.Errorf("Attitude: got %+v, want absent", sample.Attitude)
	}
	// An explicit zero stays a present zero.
	if sample.Mach == nil || *sample.Mach != 0.0 {
		t.Errorf("Mach: got %v, want present 0.0", sample.Mach)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	frame := []byte(`{"ias_ms": 10.0, "radar_mode": "RWS", "weapons": {"count": 4}}`)
	sample, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sample.IndicatedAirspeed == nil || *sample.IndicatedAirspeed != 10.0 {
		t.Errorf("IndicatedAirspeed: got %v, want 10.0", sample.IndicatedAirspeed)
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		frame string
	}{
		{"truncated object", `{"ias_ms": 12.`},
		{"bare word", `garbage`},
		{"top-level array", `[1, 2, 3]`},
		{"wrong scalar type", `{"ias_ms": "fast"}`},
		{"pair array arity", `{"engine": {"rpm": [1.0, 2.0, 3.0]}}`},
		{"pair wrong type", `{"engine": {"rpm": "high"}}`},
		{"empty frame", ``},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(testCase.frame))
			if err == nil {
				t.Fatalf("Decode(%q): got nil error, want malformed frame", testCase.frame)
			}
			var malformed *MalformedFrameError
			if !errors.As(err, &malformed) {
				t.Errorf("Decode(%q): error %v is not a MalformedFrameError", testCase.frame, err)
			}
		})
	}
}

func TestPairShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		data      string
		wantKind  PairKind
		wantValue float64
		wantLeft  *float64
		wantRight *float64
	}{
		{"scalar", `87.5`, PairScalar, 87.5, nil, nil},
		{"keyed uppercase", `{"L": 1.0, "R": 2.0}`, PairSplit, 0, floatPointer(1.0), floatPointer(2.0)},
		{"keyed lowercase", `{"left": 1.0, "right": 2.0}`, PairSplit, 0, floatPointer(1.0), floatPointer(2.0)},
		{"keyed left only", `{"L": 1.0}`, PairSplit, 0, floatPointer(1.0), nil},
		{"keyed null right", `{"L": 1.0, "R": null}`, PairSplit, 0, floatPointer(1.0), nil},
		{"array", `[3.0, 4.0]`, PairSplit, 0, floatPointer(3.0), floatPointer(4.0)},
		{"array null slot", `[null, 4.0]`, PairSplit, 0, nil, floatPointer(4.0)},
		{"null", `null`, PairAbsent, 0, nil, nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var pair Pair
			if err := json.Unmarshal([]byte(testCase.data), &pair); err != nil {
				t.Fatalf("Unmarshal(%q): %v", testCase.data, err)
			}
			if pair.Kind != testCase.wantKind {
				t.Errorf("Kind: got %v, want %v", pair.Kind, testCase.wantKind)
			}
			if pair.Kind == PairScalar && pair.Value != testCase.wantValue {
				t.Errorf("Value: got %v, want %v", pair.Value, testCase.wantValue)
			}
			checkSlot(t, "Left", pair.Left, testCase.wantLeft)
			checkSlot(t, "Right", pair.Right, testCase.wantRight)
		})
	}
}

func TestPairReusedDecoderResets(t *testing.T) {
	t.Parallel()

	// A Pair decoded into twice must not leak the first shape into the
	// second decode.
	var pair Pair
	if err := json.Unmarshal([]byte(`{"L": 1.0, "R": 2.0}`), &pair); err != nil {
		t.Fatalf("first Unmarshal: %v", err)
	}
	if err := json.Unmarshal([]byte(`null`), &pair); err != nil {
		t.Fatalf("second Unmarshal: %v", err)
	}
	if pair.Kind != PairAbsent || pair.Left != nil || pair.Right != nil {
		t.Errorf("after null: got %+v, want zero Pair", pair)
	}
}

func TestFrames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		datagram string
		want     []string
	}{
		{"single with trailing newline", "{\"a\":1}\n", []string{`{"a":1}`}},
		{"multiple frames", "{\"a\":1}\n{\"b\":2}\n", []string{`{"a":1}`, `{"b":2}`}},
		{"crlf", "{\"a\":1}\r\n", []string{`{"a":1}`}},
		{"blank interior lines", "{\"a\":1}\n\n  \n{\"b\":2}", []string{`{"a":1}`, `{"b":2}`}},
		{"empty datagram", "", nil},
		{"whitespace only", " \n \r\n", nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			frames := Frames([]byte(testCase.datagram))
			if len(frames) != len(testCase.want) {
				t.Fatalf("frame count: got %d (%q), want %d", len(frames), frames, len(testCase.want))
			}
			for i, frame := range frames {
				if string(frame) != testCase.want[i] {
					t.Errorf("frame %d: got %q, want %q", i, frame, testCase.want[i])
				}
			}
		})
	}
}

func checkSlot(t *testing.T, side string, got, want *float64) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s: got %v, want %v", side, formatSlot(got), formatSlot(want))
	case *got != *want:
		t.Errorf("%s: got %v, want %v", side, *got, *want)
	}
}

func formatSlot(slot *float64) string {
	if slot == nil {
		return "absent"
	}
	return "present"
}

func floatPointer(v float64) *float64 { return &v }
