package compress

// ZstdCompressor wraps Zstandard compression: the best ratio of the built-in
// codecs, suited to archived curve libraries where blobs are written once and
// decompressed rarely.
//
// The implementation is split by build tag: cgo builds use the libzstd
// binding, pure-Go builds fall back to the klauspost implementation with the
// same observable behavior.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
