// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides simdash's standard CBOR encoding configuration.
//
// Simdash uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: the newline-delimited telemetry
//     wire frames sent by exporters, and feed scenario files.
//   - CBOR for internal containers: flight log records written by
//     simdash-record and read back by simdash-replay.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every simdash package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, which is what makes flight log digests reproducible.
//
// For buffer-oriented operations (log records):
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization format:
//
//   - `cbor` tag: this type is ONLY ever serialized as CBOR. It will
//     never be marshaled to JSON. Examples: flight log session, frame,
//     and trailer records.
//   - `json` tag: this type may be serialized as BOTH JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor`
//     tags are absent, so a single `json` tag controls field naming
//     and omitempty for both formats. Examples: wire frame types.
//
// Never use both `cbor` and `json` tags on the same field. The tag
// choice documents the contract.
package codec
