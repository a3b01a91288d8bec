// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package flightlog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/simdash-project/simdash/lib/codec"
)

// Reader reads frames back from a flight log, verifying the trailer
// digest as a side effect of reading to the end. It is not safe for
// concurrent use.
type Reader struct {
	body     io.Reader
	zstd     *zstd.Decoder
	hasher   *blake3.Hasher
	info     Info
	frames   uint64
	finished bool
}

// NewReader reads the file header and session record from r. The
// caller owns r and must close it after Close.
func NewReader(r io.Reader) (*Reader, error) {
	var header [headerLength]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrTruncated)
	}
	if !bytes.Equal(header[:4], magic[:]) {
		return nil, ErrNotFlightLog
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}
	compressed := header[5]&flagCompressed != 0

	body := r
	var decoder *zstd.Decoder
	if compressed {
		var err error
		decoder, err = zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		body = decoder
	}

	hasher, err := blake3.NewKeyed(logDomainKey[:])
	if err != nil {
		return nil, fmt.Errorf("digest initialization: %w", err)
	}

	reader := &Reader{body: body, zstd: decoder, hasher: hasher}

	recordType, payload, err := reader.readRecord()
	if err != nil {
		return nil, err
	}
	if recordType != recordSession {
		return nil, fmt.Errorf("log does not begin with a session record (got type 0x%02x)", recordType)
	}
	var session sessionRecord
	if err := codec.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	reader.info = Info{
		RecordedAt: time.UnixMilli(session.RecordedUnixMilli),
		Source:     session.Source,
		Compressed: compressed,
	}
	return reader, nil
}

// Info returns the session description read from the log header.
func (r *Reader) Info() Info {
	return r.info
}

// Next returns the next recorded frame. After the trailer record has
// been read and verified it returns io.EOF; a log that ends without a
// trailer yields ErrTruncated, and a trailer that disagrees with the
// body yields ErrDigestMismatch.
func (r *Reader) Next() (Frame, error) {
	if r.finished {
		return Frame{}, io.EOF
	}

	recordType, payload, err := r.readRecord()
	if err != nil {
		return Frame{}, err
	}

	switch recordType {
	case recordFrame:
		var record frameRecord
		if err := codec.Unmarshal(payload, &record); err != nil {
			return Frame{}, fmt.Errorf("decode frame record: %w", err)
		}
		r.frames++
		return Frame{Elapsed: record.Elapsed, Data: record.Data}, nil

	case recordTrailer:
		r.finished = true
		var trailer trailerRecord
		if err := codec.Unmarshal(payload, &trailer); err != nil {
			return Frame{}, fmt.Errorf("decode trailer record: %w", err)
		}
		if trailer.Frames != r.frames {
			return Frame{}, fmt.Errorf("%w: trailer counts %d frames, log carries %d",
				ErrDigestMismatch, trailer.Frames, r.frames)
		}
		if !bytes.Equal(trailer.Digest, r.hasher.Sum(nil)) {
			return Frame{}, ErrDigestMismatch
		}
		return Frame{}, io.EOF

	case recordSession:
		return Frame{}, errors.New("unexpected second session record")

	default:
		return Frame{}, fmt.Errorf("unknown record type 0x%02x", recordType)
	}
}

// Frames returns the number of frame records read so far.
func (r *Reader) Frames() uint64 {
	return r.frames
}

// Close releases the decompressor, if any. It does not close the
// underlying reader.
func (r *Reader) Close() error {
	if r.zstd != nil {
		r.zstd.Close()
		r.zstd = nil
	}
	return nil
}

// readRecord reads one framed record and feeds its bytes to the
// digest, except for the trailer record which the digest covers
// everything before.
func (r *Reader) readRecord() (byte, []byte, error) {
	var header [recordHeaderLength]byte
	if _, err := io.ReadFull(r.body, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil, fmt.Errorf("%w: log ends without trailer", ErrTruncated)
		}
		return 0, nil, fmt.Errorf("read record header: %w", err)
	}

	length := binary.BigEndian.Uint32(header[1:5])
	if length > maxRecordLength {
		return 0, nil, fmt.Errorf("record length %d exceeds maximum %d", length, maxRecordLength)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r.body, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil, fmt.Errorf("%w: record cut short", ErrTruncated)
		}
		return 0, nil, fmt.Errorf("read record payload: %w", err)
	}

	if header[0] != recordTrailer {
		r.hasher.Write(header[:])
		r.hasher.Write(payload)
	}
	return header[0], payload, nil
}
