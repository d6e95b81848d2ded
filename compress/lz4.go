package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps
// internal match tables that benefit from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Leading marker byte of an LZ4 payload. The block format has no way to mark
// incompressible input (CompressBlock reports it as an empty block), and curve
// payloads are small enough to hit that case, so raw storage needs an explicit
// marker.
const (
	lz4MarkerRaw   = 0x00
	lz4MarkerBlock = 0x01
)

// LZ4Compressor wraps LZ4 block compression: a middle ground between NoOp and
// Zstd for curve payloads.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the payload as a single marked LZ4 block. Incompressible
// payloads are stored raw behind the marker byte.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))
	dst[0] = lz4MarkerBlock

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		raw := make([]byte, 1+len(data))
		raw[0] = lz4MarkerRaw
		copy(raw[1:], data)

		return raw, nil
	}

	return dst[:1+n], nil
}

// Decompress restores a marked LZ4 payload. The decompressed size is not
// stored in the block format, so the buffer starts at 4x the input and doubles
// on lz4.ErrInvalidSourceShortBuffer up to a 128MB safety limit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == lz4MarkerRaw {
		raw := make([]byte, len(data)-1)
		copy(raw, data[1:])

		return raw, nil
	}

	block := data[1:]
	bufSize := max(len(block)*4, 64)
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
