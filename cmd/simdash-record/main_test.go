// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/flightlog"
)

func TestRecordCapturesFrames(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	var buffer bytes.Buffer
	writer, err := flightlog.NewWriter(&buffer, flightlog.WriterOptions{Source: "test"})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	type result struct {
		datagrams uint64
		err       error
	}
	done := make(chan result, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() {
		datagrams, err := record(ctx, conn, writer, clock.Real(), logger)
		done <- result{datagrams, err}
	}()

	sender, err := net.Dial("udp", conn.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer sender.Close()

	// One datagram carrying two frames, then a second datagram after
	// a gap the log must preserve.
	if _, err := sender.Write([]byte("{\"mach\":0.5}\n{\"mach\":0.6}\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	if _, err := sender.Write([]byte("{\"mach\":0.7}\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Loopback delivery is immediate; the settle time covers scheduler
	// latency before the capture is stopped.
	time.Sleep(250 * time.Millisecond)
	cancel()

	outcome := <-done
	if outcome.err != nil {
		t.Fatalf("record: %v", outcome.err)
	}
	if outcome.datagrams != 2 {
		t.Errorf("datagrams = %d, want 2", outcome.datagrams)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reader, err := flightlog.NewReader(bytes.NewReader(buffer.Bytes()))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if got := reader.Info().Source; got != "test" {
		t.Errorf("source = %q, want test", got)
	}

	var frames []flightlog.Frame
	for {
		frame, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		frames = append(frames, frame)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(frames))
	}

	if got, want := string(frames[0].Data), `{"mach":0.5}`; got != want {
		t.Errorf("frame 0 = %q, want %q", got, want)
	}
	if got, want := string(frames[1].Data), `{"mach":0.6}`; got != want {
		t.Errorf("frame 1 = %q, want %q", got, want)
	}
	if got, want := string(frames[2].Data), `{"mach":0.7}`; got != want {
		t.Errorf("frame 2 = %q, want %q", got, want)
	}

	// The elapsed clock starts at the first datagram: both of its
	// frames are at offset zero, and the second datagram's frame
	// carries the gap.
	if frames[0].Elapsed != 0 {
		t.Errorf("frame 0 elapsed = %v, want 0", frames[0].Elapsed)
	}
	if frames[1].Elapsed != 0 {
		t.Errorf("frame 1 elapsed = %v, want 0", frames[1].Elapsed)
	}
	if frames[2].Elapsed < 50*time.Millisecond {
		t.Errorf("frame 2 elapsed = %v, want at least 50ms", frames[2].Elapsed)
	}
}

func TestRecordStopsOnCancelWithNoTraffic(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	var buffer bytes.Buffer
	writer, err := flightlog.NewWriter(&buffer, flightlog.WriterOptions{})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	done := make(chan error, 1)
	go func() {
		_, err := record(ctx, conn, writer, clock.Real(), logger)
		done <- err
	}()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("record: %v", err)
	}
	if writer.Frames() != 0 {
		t.Errorf("frames = %d, want 0", writer.Frames())
	}

	// An empty capture still seals into a readable log.
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	reader, err := flightlog.NewReader(bytes.NewReader(buffer.Bytes()))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next = %v, want io.EOF", err)
	}
}
