// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire decodes the telemetry exporter's datagram format.
//
// The exporter emits newline-delimited UTF-8 JSON over UDP, one object
// per frame, at a nominal 10 Hz. The schema is optional-field and
// vehicle-dependent: a trainer reports no nozzle position, a warbird
// reports manifold pressure, and most airframes supply only a subset of
// the recognized keys. Absence and the JSON null literal both mean "not
// available" — the exporter also encodes non-finite numbers (NaN,
// Infinity) as null, so a null token must never be read as zero.
//
// Engine quantities are paired per channel (left/right) on twin-engine
// airframes and scalar on single-engine ones. The wire shape varies
// accordingly: a bare number, an {"L":…,"R":…} or {"left":…,"right":…}
// object, or a two-element array. Decode resolves all three shapes into
// the Pair variant; consumers branch on Pair.Kind exactly once and
// never inspect raw JSON shapes.
//
// Decoding is all-or-nothing per frame: a syntactically invalid frame
// yields a MalformedFrameError and is discarded whole. There is no
// partial-record salvage beyond ordinary optional-field parsing.
package wire
