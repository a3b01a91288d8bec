// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/simdash-project/simdash/lib/telemetry"
	"github.com/simdash-project/simdash/lib/wire"
)

// receiveBufferBytes is the per-read buffer size. The exporter keeps
// datagrams well under 8 KB; anything larger is truncated by the
// socket and will fail frame decoding rather than crash the loop.
const receiveBufferBytes = 8192

// Listener receives exporter datagrams and applies them to the shared
// telemetry state. One Listener runs per process, on one goroutine.
type Listener struct {
	conn       *net.UDPConn
	normalizer *telemetry.Normalizer
	logger     *slog.Logger
	closeOnce  sync.Once
	closeErr   error

	datagrams atomic.Uint64
	malformed atomic.Uint64
	applied   atomic.Uint64
}

// Stats is a point-in-time copy of the receive counters.
type Stats struct {
	// Datagrams is the number of UDP reads that returned data.
	Datagrams uint64

	// Malformed is the number of frames dropped by the decoder.
	Malformed uint64

	// Applied is the number of frames folded into the snapshot.
	Applied uint64
}

// Listen binds the UDP endpoint and returns a ready Listener. The
// returned error is the fatal bind-failure path: the caller reports it
// and exits non-zero.
func Listen(address string, normalizer *telemetry.Normalizer, logger *slog.Logger) (*Listener, error) {
	udpAddress, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, fmt.Errorf("resolve listen address %q: %w", address, err)
	}
	conn, err := net.ListenUDP("udp", udpAddress)
	if err != nil {
		return nil, fmt.Errorf("bind %q: %w", address, err)
	}
	return &Listener{
		conn:       conn,
		normalizer: normalizer,
		logger:     logger,
	}, nil
}

// Addr returns the bound local address. Useful when listening on port
// 0.
func (l *Listener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

// Run receives datagrams until ctx is cancelled or the socket is
// closed, then returns nil. Any other receive error is returned as-is;
// decode failures are never errors here.
func (l *Listener) Run(ctx context.Context) error {
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			// Closing the socket is the cancellation mechanism: it
			// unblocks the pending ReadFromUDP immediately.
			l.Close()
		case <-watchDone:
		}
	}()

	buffer := make([]byte, receiveBufferBytes)
	for {
		length, _, err := l.conn.ReadFromUDP(buffer)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("udp receive: %w", err)
		}
		l.datagrams.Add(1)

		for _, frame := range wire.Frames(buffer[:length]) {
			sample, err := wire.Decode(frame)
			if err != nil {
				l.malformed.Add(1)
				l.logger.Debug("dropped malformed frame", "error", err)
				continue
			}
			l.normalizer.Apply(sample)
			l.applied.Add(1)
		}
	}
}

// Close releases the socket. Safe to call more than once and
// concurrently with Run.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.conn.Close()
	})
	return l.closeErr
}

// Stats returns a copy of the receive counters.
func (l *Listener) Stats() Stats {
	return Stats{
		Datagrams: l.datagrams.Load(),
		Malformed: l.malformed.Load(),
		Applied:   l.applied.Load(),
	}
}
