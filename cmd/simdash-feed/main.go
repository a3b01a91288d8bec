// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Simdash-feed sends synthetic exporter telemetry to a dashboard: one
// newline-terminated JSON frame per UDP datagram, paced at the
// scenario's frame rate. With no --scenario it plays a built-in
// looping pattern circuit, so a dashboard can be driven with no
// simulator and no files.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simdash-project/simdash/lib/cli"
	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var showVersion bool
	var target string
	var scenarioPath string
	var rateOverride float64
	var verbose bool

	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.StringVar(&target, "target", "127.0.0.1:5010", "UDP endpoint of the dashboard")
	flag.StringVar(&scenarioPath, "scenario", "", "JSONC scenario file (default: built-in circuit)")
	flag.Float64Var(&rateOverride, "rate", 0, "frames per second (overrides the scenario)")
	flag.BoolVar(&verbose, "verbose", false, "enable per-frame debug logging")
	flag.Parse()

	if showVersion {
		version.Print("simdash-feed")
		return nil
	}

	scenario := defaultScenario()
	if scenarioPath != "" {
		loaded, err := ReadScenario(scenarioPath)
		if err != nil {
			return err
		}
		scenario = loaded
	}
	if rateOverride != 0 {
		scenario.RateHz = rateOverride
		if scenario.RateHz < 0.1 || scenario.RateHz > 200 {
			return fmt.Errorf("rate %g out of range [0.1, 200]", scenario.RateHz)
		}
	}

	logger := cli.NewToolLogger(verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := net.Dial("udp", target)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	defer conn.Close()

	playback := NewPlayback(scenario)
	clk := clock.Real()
	period := time.Duration(float64(time.Second) / scenario.RateHz)

	logger.Info("feed running",
		"target", target,
		"scenario", scenario.Name,
		"segments", len(scenario.Segments),
		"length", playback.Total(),
		"loop", scenario.Loop,
		"rate_hz", scenario.RateHz,
	)

	ticker := clk.NewTicker(period)
	defer ticker.Stop()
	start := clk.Now()

	var sent, failed uint64
	for {
		select {
		case <-ctx.Done():
			logger.Info("feed stopped", "frames", sent, "send_failures", failed)
			return nil
		case now := <-ticker.C:
			frame, err := BuildFrame(scenario.Name, playback.At(now.Sub(start)))
			if err != nil {
				return fmt.Errorf("encode frame: %w", err)
			}
			// A dashboard that is not up yet surfaces as a send
			// error on the connected socket. Keep feeding; it can
			// attach at any time.
			if _, err := conn.Write(append(frame, '\n')); err != nil {
				failed++
				logger.Debug("send failed", "error", err)
				continue
			}
			sent++
		}
	}
}
