// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MalformedFrameError reports a frame that is not valid JSON or does
// not have the contract's object shape. The frame is dropped whole;
// the receive loop counts the drop and continues.
type MalformedFrameError struct {
	Err error
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("malformed frame: %v", e.Err)
}

func (e *MalformedFrameError) Unwrap() error { return e.Err }

// Frames splits a datagram payload into individual frames. Frames are
// newline-delimited; carriage returns and blank lines (including a
// trailing newline, which the exporter always emits) are discarded.
// The returned slices alias the datagram buffer and are only valid
// until the caller's next socket read.
func Frames(datagram []byte) [][]byte {
	var frames [][]byte
	for _, line := range bytes.Split(datagram, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		frames = append(frames, line)
	}
	return frames
}

// Decode parses one frame into a Sample. Unknown keys are ignored —
// the schema is open and vehicle-dependent. Missing and null fields
// decode to absent, never to zero. Any syntax or shape error returns a
// MalformedFrameError and no Sample.
func Decode(frame []byte) (*Sample, error) {
	var sample Sample
	if err := json.Unmarshal(frame, &sample); err != nil {
		return nil, &MalformedFrameError{Err: err}
	}
	return &sample, nil
}
