// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Simdash-record captures raw exporter frames from a UDP endpoint
// into a flight log file. Frames are stored verbatim with their
// arrival offsets, so simdash-replay can reproduce the session —
// including its timing and any malformed frames — against a live
// dashboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
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

const receiveBufferBytes = 8192

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var showVersion bool
	var listen string
	var output string
	var source string
	var compress bool
	var verbose bool

	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.StringVar(&listen, "listen", "127.0.0.1:5010", "UDP endpoint to capture")
	flag.StringVar(&output, "output", "", "flight log file to write (required)")
	flag.StringVar(&source, "source", "", "session label stored in the log (default: hostname)")
	flag.BoolVar(&compress, "compress", true, "zstd-compress the log body")
	flag.BoolVar(&verbose, "verbose", false, "enable per-datagram debug logging")
	flag.Parse()

	if showVersion {
		version.Print("simdash-record")
		return nil
	}
	if output == "" {
		return errors.New("--output is required")
	}
	if source == "" {
		source, _ = os.Hostname()
	}

	logger := cli.NewToolLogger(verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	udpAddress, err := net.ResolveUDPAddr("udp", listen)
	if err != nil {
		return fmt.Errorf("resolve listen address %q: %w", listen, err)
	}
	conn, err := net.ListenUDP("udp", udpAddress)
	if err != nil {
		return fmt.Errorf("bind %q: %w", listen, err)
	}

	file, err := os.Create(output)
	if err != nil {
		conn.Close()
		return fmt.Errorf("create %s: %w", output, err)
	}
	writer, err := flightlog.NewWriter(file, flightlog.WriterOptions{
		Source:   source,
		Compress: compress,
	})
	if err != nil {
		conn.Close()
		file.Close()
		return err
	}

	logger.Info("recording",
		"listen", listen,
		"output", output,
		"source", source,
		"compress", compress,
	)

	datagrams, receiveErr := record(ctx, conn, writer, clock.Real(), logger)

	// An interrupted capture is still a valid log: the trailer seals
	// whatever arrived.
	if err := writer.Close(); err != nil && receiveErr == nil {
		receiveErr = fmt.Errorf("finalize log: %w", err)
	}
	if err := file.Close(); err != nil && receiveErr == nil {
		receiveErr = fmt.Errorf("close %s: %w", output, err)
	}

	logger.Info("recording stopped",
		"datagrams", datagrams,
		"frames", writer.Frames(),
	)
	return receiveErr
}

// record receives datagrams until ctx is cancelled, appending every
// non-empty frame to the log. The elapsed clock starts at the first
// datagram, so replays begin immediately instead of reproducing the
// wait before the exporter showed up.
func record(ctx context.Context, conn *net.UDPConn, writer *flightlog.Writer, clk clock.Clock, logger *slog.Logger) (uint64, error) {
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-watchDone:
		}
	}()

	var datagrams uint64
	var start time.Time
	buffer := make([]byte, receiveBufferBytes)
	for {
		length, _, err := conn.ReadFromUDP(buffer)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return datagrams, nil
			}
			return datagrams, fmt.Errorf("udp receive: %w", err)
		}
		datagrams++

		now := clk.Now()
		if start.IsZero() {
			start = now
		}
		frames := wire.Frames(buffer[:length])
		logger.Debug("datagram", "bytes", length, "frames", len(frames))
		for _, frame := range frames {
			if err := writer.WriteFrame(now.Sub(start), frame); err != nil {
				return datagrams, fmt.Errorf("append frame: %w", err)
			}
		}
	}
}
