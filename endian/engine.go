// Package endian provides byte order utilities for the curve blob format.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary
// into one engine interface, so the blob encoder can both append to a growing
// buffer and read fixed offsets through a single value. Little-endian is the
// default for curve blobs; big-endian is available for interoperability.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder. It is
// satisfied by binary.LittleEndian and binary.BigEndian, and every returned
// engine is immutable and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default for
// curve blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
