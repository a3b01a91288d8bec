// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli carries helpers shared by the command-line tools.
package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewToolLogger creates a structured logger for tool diagnostics. When
// stderr is a terminal, uses slog.TextHandler for human-readable
// output. When stderr is piped or redirected (scripts, CI, long
// capture sessions), uses slog.JSONHandler for machine-parseable
// output. Verbose lowers the level to Debug, which the tools use for
// per-frame diagnostics.
func NewToolLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
