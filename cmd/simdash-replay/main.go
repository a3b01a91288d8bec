// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Simdash-replay plays a recorded flight log back to a dashboard,
// reproducing the original frame timing (optionally scaled). With
// --inspect it prints the log's session metadata and a frame quality
// summary instead of sending anything.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simdash-project/simdash/lib/cli"
	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/flightlog"
	"github.com/simdash-project/simdash/lib/version"
	"github.com/simdash-project/simdash/lib/wire"
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
	var speed float64
	var inspect bool
	var verbose bool

	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.StringVar(&target, "target", "127.0.0.1:5010", "UDP endpoint of the dashboard")
	flag.Float64Var(&speed, "speed", 1.0, "playback speed multiplier")
	flag.BoolVar(&inspect, "inspect", false, "print log metadata and exit without sending")
	flag.BoolVar(&verbose, "verbose", false, "enable per-frame debug logging")
	flag.Parse()

	if showVersion {
		version.Print("simdash-replay")
		return nil
	}
	if speed <= 0 {
		return fmt.Errorf("speed %g must be positive", speed)
	}
	if flag.NArg() != 1 {
		return errors.New("usage: simdash-replay [flags] <flight-log>")
	}
	path := flag.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader, err := flightlog.NewReader(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer reader.Close()

	if inspect {
		return inspectLog(path, reader)
	}

	logger := cli.NewToolLogger(verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := net.Dial("udp", target)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	defer conn.Close()

	info := reader.Info()
	logger.Info("replaying",
		"log", path,
		"recorded_at", info.RecordedAt,
		"source", info.Source,
		"target", target,
		"speed", speed,
	)

	sent, err := replay(ctx, reader, conn, clock.Real(), speed, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if ctx.Err() != nil {
		logger.Info("replay interrupted", "frames", sent)
		return nil
	}
	logger.Info("replay finished", "frames", sent)
	return nil
}

// replay sends frames one per datagram, waiting out each frame's
// scaled arrival offset first. Returns early without error when ctx
// is cancelled.
func replay(ctx context.Context, reader *flightlog.Reader, conn net.Conn, clk clock.Clock, speed float64, logger *slog.Logger) (uint64, error) {
	start := clk.Now()
	var sent uint64
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return sent, nil
		}
		if err != nil {
			return sent, err
		}

		due := start.Add(time.Duration(float64(frame.Elapsed) / speed))
		if wait := due.Sub(clk.Now()); wait > 0 {
			logger.Debug("frame due", "elapsed", frame.Elapsed, "wait", wait)
			select {
			case <-ctx.Done():
				return sent, nil
			case <-clk.After(wait):
			}
		} else if ctx.Err() != nil {
			return sent, nil
		}

		if _, err := conn.Write(append(frame.Data, '\n')); err != nil {
			return sent, fmt.Errorf("send frame: %w", err)
		}
		sent++
	}
}

// inspectLog drains the log, validating the trailer digest on the
// way, and prints the session metadata and a frame quality summary.
func inspectLog(path string, reader *flightlog.Reader) error {
	var valid, malformed uint64
	var length time.Duration
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if _, err := wire.Decode(frame.Data); err != nil {
			malformed++
		} else {
			valid++
		}
		length = frame.Elapsed
	}

	info := reader.Info()
	compression := "none"
	if info.Compressed {
		compression = "zstd"
	}
	fmt.Printf("%s\n", path)
	fmt.Printf("  recorded:    %s\n", info.RecordedAt.Format(time.RFC3339))
	if info.Source != "" {
		fmt.Printf("  source:      %s\n", info.Source)
	}
	fmt.Printf("  compression: %s\n", compression)
	fmt.Printf("  frames:      %d (%d valid, %d malformed)\n", valid+malformed, valid, malformed)
	fmt.Printf("  length:      %s\n", length.Round(time.Millisecond))
	fmt.Printf("  digest:      ok\n")
	return nil
}
