// Package compress provides the payload codecs for the curve blob format.
//
// A serialized curve payload is small (tens of segments, a few hundred bytes)
// but highly regular: repeated float64 fields with shared exponents compress
// well. The codecs here are thin, allocation-conscious wrappers over the
// respective libraries; the blob encoder picks one via format.CompressionType.
package compress

import (
	"fmt"

	"github.com/HarukaKajita/curvecompress/format"
)

// Compressor compresses a curve payload.
//
// The returned slice is newly allocated and owned by the caller; the input is
// never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a curve payload compressed by the matching Compressor.
// It validates the data format and returns an error for corrupted or
// incompatible input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless values
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a fresh Codec for the given compression type. The
// target string names the payload being handled and only feeds error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
