// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/flightlog"
)

// buildLog returns a sealed in-memory flight log with the given
// frames.
func buildLog(t *testing.T, frames []flightlog.Frame) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer, err := flightlog.NewWriter(&buffer, flightlog.WriterOptions{
		RecordedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	for _, frame := range frames {
		if err := writer.WriteFrame(frame.Elapsed, frame.Data); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buffer.Bytes()
}

// udpSink binds a localhost receiver and returns it with a connected
// sender.
func udpSink(t *testing.T) (net.PacketConn, net.Conn) {
	t.Helper()
	receiver, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket: %v", err)
	}
	t.Cleanup(func() { receiver.Close() })

	sender, err := net.Dial("udp", receiver.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { sender.Close() })
	return receiver, sender
}

func TestReplayTimingAndPayloads(t *testing.T) {
	data := buildLog(t, []flightlog.Frame{
		{Elapsed: 0, Data: []byte(`{"mach":0.1}`)},
		{Elapsed: 100 * time.Millisecond, Data: []byte(`{"mach":0.2}`)},
		{Elapsed: 250 * time.Millisecond, Data: []byte(`{"mach":0.3}`)},
	})
	reader, err := flightlog.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	receiver, sender := udpSink(t)
	fake := clock.Fake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	type result struct {
		sent uint64
		err  error
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	done := make(chan result, 1)
	go func() {
		// Speed 2 halves every wait: 100ms becomes 50ms, 250ms
		// becomes 125ms.
		sent, err := replay(context.Background(), reader, sender, fake, 2, logger)
		done <- result{sent, err}
	}()

	read := func() string {
		t.Helper()
		receiver.SetReadDeadline(time.Now().Add(5 * time.Second))
		buffer := make([]byte, 256)
		length, _, err := receiver.ReadFrom(buffer)
		if err != nil {
			t.Fatalf("ReadFrom: %v", err)
		}
		return string(buffer[:length])
	}

	// The first frame is due immediately.
	if got, want := read(), `{"mach":0.1}`+"\n"; got != want {
		t.Errorf("first datagram = %q, want %q", got, want)
	}

	fake.WaitForWaiters(1)
	fake.Advance(50 * time.Millisecond)
	if got, want := read(), `{"mach":0.2}`+"\n"; got != want {
		t.Errorf("second datagram = %q, want %q", got, want)
	}

	fake.WaitForWaiters(1)
	fake.Advance(75 * time.Millisecond)
	if got, want := read(), `{"mach":0.3}`+"\n"; got != want {
		t.Errorf("third datagram = %q, want %q", got, want)
	}

	outcome := <-done
	if outcome.err != nil {
		t.Fatalf("replay: %v", outcome.err)
	}
	if outcome.sent != 3 {
		t.Errorf("sent = %d, want 3", outcome.sent)
	}
}

func TestReplayCancelledWhileWaiting(t *testing.T) {
	data := buildLog(t, []flightlog.Frame{
		{Elapsed: 0, Data: []byte(`{"mach":0.1}`)},
		{Elapsed: time.Hour, Data: []byte(`{"mach":0.2}`)},
	})
	reader, err := flightlog.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	receiver, sender := udpSink(t)
	fake := clock.Fake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(context.Background())

	type result struct {
		sent uint64
		err  error
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	done := make(chan result, 1)
	go func() {
		sent, err := replay(ctx, reader, sender, fake, 1, logger)
		done <- result{sent, err}
	}()

	receiver.SetReadDeadline(time.Now().Add(5 * time.Second))
	buffer := make([]byte, 256)
	if _, _, err := receiver.ReadFrom(buffer); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	// The second frame is an hour out; cancel instead of advancing.
	fake.WaitForWaiters(1)
	cancel()

	outcome := <-done
	if outcome.err != nil {
		t.Fatalf("replay: %v", outcome.err)
	}
	if outcome.sent != 1 {
		t.Errorf("sent = %d, want 1", outcome.sent)
	}
}
