// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package flightlog reads and writes recorded telemetry sessions.
//
// A flight log captures the exact wire frames of a telemetry session
// together with their arrival offsets, so a session can be replayed
// later against a running dashboard at the original pacing (or
// faster). simdash-record writes these files; simdash-replay reads
// them back.
//
// # File layout
//
// The file opens with an 8-byte uncompressed header: the magic bytes
// "SDFL", a format version byte, a flags byte, and two reserved
// bytes. Bit 0 of the flags byte marks a zstd-compressed body.
//
// The body is a sequence of framed records, optionally inside a
// single zstd stream. Each record is a 1-byte type and a 4-byte
// big-endian payload length followed by a CBOR payload. The body
// opens with a session record (recording time, source endpoint),
// carries one frame record per wire frame, and ends with a trailer
// record holding the frame count and a keyed BLAKE3 digest over every
// preceding record byte. The digest is computed on uncompressed
// record bytes, so it is invariant to the compression flag. The key
// is a fixed domain constant; the digest detects corruption and
// truncation, not tampering by an adversary who can rewrite the
// trailer.
package flightlog
