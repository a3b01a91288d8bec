// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package ingest owns the telemetry socket. The Listener binds a UDP
// endpoint at startup (bind failure is fatal to the process, reported
// before the terminal UI starts) and then runs a receive loop that
// drives decode → normalize → snapshot for every frame until its
// context is cancelled.
//
// The loop never stops on bad input: a malformed frame is counted and
// dropped, and the next frame is processed normally. UDP has no
// connection to retry, so there is no retry logic of any kind. The
// datagram counters are exported for the dashboard's status bar.
package ingest
