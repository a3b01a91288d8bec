// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
)

// Scenario is a scripted flight, authored on disk as JSONC (JSON
// extended with comments and trailing commas). Segment states hold
// wire keys, flattened with dots: "ias_ms", "att.pitch",
// "engine.rpm.L". A handful of keys are wire booleans and are emitted
// as value != 0: engine.thrtl_est, engine.noz_present,
// engine.map_present, mech.wow_guess.
type Scenario struct {
	// Name is the vehicle identity stamped on every frame.
	Name string `json:"name"`

	// RateHz is the frame rate. Zero means 20.
	RateHz float64 `json:"rate_hz"`

	// Loop restarts the scenario when it ends, ramping from the last
	// segment's state back into the first.
	Loop bool `json:"loop"`

	Segments []Segment `json:"segments"`
}

// Segment is one leg of the flight: over DurationSeconds, every key
// listed in State ramps linearly from its previous value to the
// listed one. Keys with no previous value step immediately; keys not
// listed hold. A zero duration makes the whole segment a step.
type Segment struct {
	DurationSeconds float64            `json:"duration_s"`
	State           map[string]float64 `json:"state"`
}

// boolKeys are wire booleans: the frame builder emits true for any
// non-zero value.
var boolKeys = map[string]bool{
	"engine.thrtl_est":   true,
	"engine.noz_present": true,
	"engine.map_present": true,
	"mech.wow_guess":     true,
}

// ParseScenario strips JSONC comments and trailing commas from data,
// unmarshals the result, and validates it.
func ParseScenario(data []byte) (*Scenario, error) {
	stripped := jsonc.ToJSON(data)

	var scenario Scenario
	if err := json.Unmarshal(stripped, &scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := scenario.validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// ReadScenario reads a JSONC scenario file from disk.
func ReadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

func (s *Scenario) validate() error {
	if s.RateHz == 0 {
		s.RateHz = 20
	}
	if s.RateHz < 0.1 || s.RateHz > 200 {
		return fmt.Errorf("rate_hz %g out of range [0.1, 200]", s.RateHz)
	}
	if len(s.Segments) == 0 {
		return fmt.Errorf("scenario has no segments")
	}

	keys := make(map[string]bool)
	for index, segment := range s.Segments {
		if segment.DurationSeconds < 0 {
			return fmt.Errorf("segment %d: negative duration", index)
		}
		for key, value := range segment.State {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return fmt.Errorf("segment %d: key %q is not finite", index, key)
			}
			keys[key] = true
		}
	}

	// A key that is a dot-prefix of another would make one frame
	// field both a number and an object.
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)
	for i, key := range sorted {
		for _, other := range sorted[i+1:] {
			if strings.HasPrefix(other, key+".") {
				return fmt.Errorf("key %q conflicts with %q", key, other)
			}
		}
	}
	return nil
}

// Playback evaluates a scenario's state at a point in time.
type Playback struct {
	scenario *Scenario

	// effective[i] is the state at the end of segment i: every key
	// seen so far, latest value winning.
	effective []map[string]float64

	// starts[i] is the elapsed time at which segment i begins.
	starts []float64
	total  float64
}

// NewPlayback precomputes the segment overlay states.
func NewPlayback(scenario *Scenario) *Playback {
	playback := &Playback{
		scenario:  scenario,
		effective: make([]map[string]float64, len(scenario.Segments)),
		starts:    make([]float64, len(scenario.Segments)),
	}
	previous := map[string]float64{}
	for index, segment := range scenario.Segments {
		merged := make(map[string]float64, len(previous)+len(segment.State))
		for key, value := range previous {
			merged[key] = value
		}
		for key, value := range segment.State {
			merged[key] = value
		}
		playback.effective[index] = merged
		playback.starts[index] = playback.total
		playback.total += segment.DurationSeconds
		previous = merged
	}
	return playback
}

// At returns the state at the given elapsed time. Past the end of a
// non-looping scenario the final state holds; a looping scenario
// wraps, ramping from the final state back into the first segment.
func (p *Playback) At(elapsed time.Duration) map[string]float64 {
	last := len(p.scenario.Segments) - 1
	seconds := elapsed.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	if p.total <= 0 {
		return copyState(p.effective[last])
	}
	if p.scenario.Loop {
		seconds = math.Mod(seconds, p.total)
	} else if seconds >= p.total {
		return copyState(p.effective[last])
	}

	index := last
	for i, segment := range p.scenario.Segments {
		if seconds < p.starts[i]+segment.DurationSeconds {
			index = i
			break
		}
	}

	state := copyState(p.effective[index])

	// Ramp the keys this segment lists, when they have a previous
	// value to ramp from.
	var from map[string]float64
	switch {
	case index > 0:
		from = p.effective[index-1]
	case p.scenario.Loop:
		from = p.effective[last]
	}
	if from == nil {
		return state
	}
	segment := p.scenario.Segments[index]
	if segment.DurationSeconds <= 0 {
		return state
	}
	fraction := (seconds - p.starts[index]) / segment.DurationSeconds
	for key, target := range segment.State {
		if source, ok := from[key]; ok {
			state[key] = source + (target-source)*fraction
		}
	}
	return state
}

// Total returns the scenario length.
func (p *Playback) Total() time.Duration {
	return time.Duration(p.total * float64(time.Second))
}

func copyState(state map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(state))
	for key, value := range state {
		out[key] = value
	}
	return out
}

// BuildFrame encodes a state map as one wire frame: dotted keys
// become nested objects, bool keys become booleans, and a non-finite
// value becomes an explicit null. The caller appends the newline.
func BuildFrame(name string, state map[string]float64) ([]byte, error) {
	frame := make(map[string]any, len(state)+1)
	if name != "" {
		frame["name"] = name
	}
	for key, value := range state {
		var leaf any
		switch {
		case boolKeys[key]:
			leaf = value != 0
		case math.IsNaN(value) || math.IsInf(value, 0):
			leaf = nil
		default:
			leaf = value
		}
		placeKey(frame, key, leaf)
	}
	return json.Marshal(frame)
}

func placeKey(frame map[string]any, key string, leaf any) {
	parts := strings.Split(key, ".")
	node := frame
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = leaf
}
