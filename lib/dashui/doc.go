// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashui implements the simdash terminal dashboard.
//
// The package is organized around the bubbletea model:
//
//   - model.go: the Model, its messages, and the update loop
//   - view.go: frame layout — header, panel grid, status bar
//   - panes.go: per-panel content lines
//   - format.go: value formatting (placeholders, units, provenance)
//   - sparkline.go: block-character series rendering
//   - keys.go: key bindings
//   - theme.go: the color palette
//
// The dashboard renders on its own fixed cadence, independent of
// telemetry arrival: every tick it reads the current snapshot and
// history buffers and redraws. Values the exporter has never sent
// render as "---"; values it has sent persist until overwritten,
// with a per-group stale marker once no accepted sample has touched
// the group for the configured threshold.
package dashui
