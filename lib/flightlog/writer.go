// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package flightlog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/simdash-project/simdash/lib/codec"
)

// WriterOptions configures a flight log writer.
type WriterOptions struct {
	// Source notes where the frames were captured, typically the
	// listen endpoint. Stored in the session record.
	Source string

	// Compress wraps the record stream in zstd.
	Compress bool

	// RecordedAt is the session start time stored in the session
	// record. The zero value means time.Now().
	RecordedAt time.Time
}

// Writer appends wire frames to a flight log. It is not safe for
// concurrent use.
type Writer struct {
	// output is where framed records go: the zstd encoder when
	// compressing, otherwise the underlying writer directly.
	output io.Writer
	zstd   *zstd.Encoder
	hasher *blake3.Hasher
	frames uint64
	closed bool
}

// NewWriter writes the file header and session record to w and
// returns a writer for appending frames. The caller owns w and must
// close it after Close.
func NewWriter(w io.Writer, options WriterOptions) (*Writer, error) {
	var header [headerLength]byte
	copy(header[:4], magic[:])
	header[4] = formatVersion
	if options.Compress {
		header[5] = flagCompressed
	}
	if _, err := w.Write(header[:]); err != nil {
		return nil, fmt.Errorf("write log header: %w", err)
	}

	output := w
	var encoder *zstd.Encoder
	if options.Compress {
		var err error
		encoder, err = zstd.NewWriter(w,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
		)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		output = encoder
	}

	hasher, err := blake3.NewKeyed(logDomainKey[:])
	if err != nil {
		return nil, fmt.Errorf("digest initialization: %w", err)
	}

	writer := &Writer{output: output, zstd: encoder, hasher: hasher}

	recordedAt := options.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	session := sessionRecord{
		RecordedUnixMilli: recordedAt.UnixMilli(),
		Source:            options.Source,
	}
	if err := writer.writeRecord(recordSession, session, true); err != nil {
		return nil, err
	}
	return writer, nil
}

// WriteFrame appends one wire frame: the exact frame bytes as
// received, without a trailing newline, and its offset from the
// session start.
func (w *Writer) WriteFrame(elapsed time.Duration, data []byte) error {
	if w.closed {
		return errors.New("write to closed flight log")
	}
	record := frameRecord{Elapsed: elapsed, Data: data}
	if err := w.writeRecord(recordFrame, record, true); err != nil {
		return err
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() uint64 {
	return w.frames
}

// Close writes the trailer record and flushes any compression stream.
// It does not close the underlying writer. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	trailer := trailerRecord{
		Frames: w.frames,
		Digest: w.hasher.Sum(nil),
	}
	if err := w.writeRecord(recordTrailer, trailer, false); err != nil {
		return err
	}
	if w.zstd != nil {
		if err := w.zstd.Close(); err != nil {
			return fmt.Errorf("close zstd stream: %w", err)
		}
	}
	return nil
}

// writeRecord encodes value to CBOR and writes it as a framed record.
// When digest is true the record bytes are also fed to the hasher;
// every record except the trailer is digested.
func (w *Writer) writeRecord(recordType byte, value any, digest bool) error {
	payload, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	var header [recordHeaderLength]byte
	header[0] = recordType
	binary.BigEndian.PutUint32(header[1:5], uint32(len(payload)))
	if _, err := w.output.Write(header[:]); err != nil {
		return fmt.Errorf("write record header: %w", err)
	}
	if _, err := w.output.Write(payload); err != nil {
		return fmt.Errorf("write record payload: %w", err)
	}
	if digest {
		w.hasher.Write(header[:])
		w.hasher.Write(payload)
	}
	return nil
}
