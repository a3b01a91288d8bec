// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry holds the canonical flight state: the live
// Snapshot, the Normalizer that folds decoded wire samples into it,
// and the fixed-capacity History series behind the dashboard graphs.
//
// The Snapshot is the system's one shared mutable resource. The
// ingestion goroutine writes it through the Store, group by group; the
// render loop reads consistent copies on its own cadence. Every field
// is optional: values start absent, become present when the exporter
// first supplies them, and are never reset — a field that stops
// arriving keeps its last value while the group's update time drives
// staleness display.
//
// Canonical units are the wire's: meters, meters per second, radians,
// and [0,1] ratios. Display conversions (knots, km/h, degrees,
// percent) are pure functions in this package applied at render time.
package telemetry
