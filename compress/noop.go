package compress

// NoOpCompressor bypasses compression entirely. It is the default for curve
// blobs: segment payloads are often so small that codec framing overhead
// outweighs the savings.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, sharing its memory with the caller.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, sharing its memory with the caller.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
