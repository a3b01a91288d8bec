// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package flightlog

import (
	"errors"
	"time"
)

// magic identifies a flight log file. The first four bytes of every
// log are exactly these.
var magic = [4]byte{'S', 'D', 'F', 'L'}

// formatVersion is the current file format version. Readers reject
// any other value.
const formatVersion = 1

// flagCompressed marks a zstd-compressed body. The header itself is
// never compressed.
const flagCompressed byte = 0x01

// headerLength is the fixed size of the file header: 4 bytes magic +
// 1 byte version + 1 byte flags + 2 reserved bytes.
const headerLength = 8

// Record type constants. Each record is a 5-byte header (1 byte type
// + 4 byte big-endian payload length) followed by a CBOR payload.
// These values are format constants — changing them breaks existing
// logs.
const (
	// recordSession opens the body. Payload is a sessionRecord.
	recordSession byte = 0x01

	// recordFrame carries one wire frame. Payload is a frameRecord.
	recordFrame byte = 0x02

	// recordTrailer closes the body. Payload is a trailerRecord. The
	// trailer is the only record excluded from the digest.
	recordTrailer byte = 0x7F
)

// recordHeaderLength is the fixed size of a record header.
const recordHeaderLength = 5

// maxRecordLength bounds a single record payload. A frame record
// carries at most one UDP datagram's worth of JSON, so 1 MB is
// generous.
const maxRecordLength = 1 << 20

// logDomainKey is the 32-byte key for BLAKE3 keyed hashing of record
// bytes. The byte values are the ASCII encoding of the domain name,
// zero-padded to 32 bytes, so the key is inspectable in hex dumps
// without sacrificing any property of the keyed mode.
var logDomainKey = [32]byte{
	's', 'i', 'm', 'd', 'a', 's', 'h', '.', 'f', 'l', 'i', 'g', 'h', 't', 'l', 'o',
	'g', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sentinel errors for the failure classes callers branch on. All are
// matched with errors.Is; reader errors may wrap them with detail.
var (
	// ErrNotFlightLog means the input does not begin with the flight
	// log magic.
	ErrNotFlightLog = errors.New("not a flight log file")

	// ErrUnsupportedVersion means the header carries a format version
	// this reader does not understand.
	ErrUnsupportedVersion = errors.New("unsupported flight log version")

	// ErrTruncated means the input ended before the trailer record.
	// Everything read up to that point was structurally valid.
	ErrTruncated = errors.New("truncated flight log")

	// ErrDigestMismatch means the trailer disagrees with the body:
	// the frame count or the keyed digest does not match what was
	// read.
	ErrDigestMismatch = errors.New("flight log digest mismatch")
)

// Frame is one recorded wire frame.
type Frame struct {
	// Elapsed is the offset from the session start at which the frame
	// arrived.
	Elapsed time.Duration

	// Data is the exact frame bytes as received: one JSON object,
	// no trailing newline.
	Data []byte
}

// Info describes a recorded session, from the session record and the
// file header.
type Info struct {
	// RecordedAt is the wall-clock start of the recording.
	RecordedAt time.Time

	// Source is the endpoint the frames were captured on. Informational.
	Source string

	// Compressed reports whether the body is a zstd stream.
	Compressed bool
}

// sessionRecord is the CBOR payload of the session record.
type sessionRecord struct {
	RecordedUnixMilli int64  `cbor:"recorded_ms"`
	Source            string `cbor:"source,omitempty"`
}

// frameRecord is the CBOR payload of a frame record.
type frameRecord struct {
	Elapsed time.Duration `cbor:"elapsed_ns"`
	Data    []byte        `cbor:"data"`
}

// trailerRecord is the CBOR payload of the trailer record.
type trailerRecord struct {
	Frames uint64 `cbor:"frames"`
	Digest []byte `cbor:"digest"`
}
