// Package blob implements the binary wire format for compressed curves.
//
// A curve blob is the host-facing serialization of a curve.Curve: a fixed
// 32-byte header followed by a segment payload, optionally compressed with
// one of the codecs from the compress package and always protected by an
// xxHash64 checksum of the uncompressed payload.
//
// Layout:
//
//	offset 0-1   flag word (always little-endian): magic number in bits 4-15,
//	             endianness bit for the payload fields
//	offset 2     payload compression type
//	offset 3     reserved
//	offset 4-11  curve start time (float64 bits)
//	offset 12-15 segment count (uint32)
//	offset 16-23 xxHash64 of the uncompressed payload
//	offset 24-27 payload byte length after compression (uint32)
//	offset 28-31 reserved
//
// The payload holds one record per segment: a type byte followed by the
// type-specific float64 fields (B-spline records carry a uint16 control point
// count). The engine core never touches this format; it exists solely so a
// host can persist or transmit curves without inventing its own encoding.
//
// Basic usage:
//
//	data, err := blob.Encode(c, blob.WithCompression(format.CompressionZstd))
//	...
//	c, err := blob.Decode(data)
package blob
