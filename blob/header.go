package blob

import (
	"math"

	"github.com/HarukaKajita/curvecompress/endian"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
)

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 32

	// MagicCurveV1Opt is the version 1 magic number for the curve blob format,
	// stored in bits 4-15 of the flag word.
	MagicCurveV1Opt = 0xEC10

	// MagicNumberMask selects the magic number bits of the flag word.
	MagicNumberMask = 0xFFF0

	// FlagBigEndian marks a blob whose payload fields are big-endian. The flag
	// word itself is always little-endian so it can be parsed before the
	// endianness is known.
	FlagBigEndian = 0x0002
)

// Header is the fixed-size section at the start of a curve blob.
type Header struct {
	// Options packs the magic number and the endianness flag.
	Options uint16

	// Compression identifies the payload codec.
	Compression format.CompressionType

	// StartTime is the curve's covered range start, as header metadata for
	// hosts that index blobs without decoding them.
	StartTime float64

	// SegmentCount is the number of segments in the payload.
	SegmentCount uint32

	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64

	// PayloadLength is the payload byte length after compression.
	PayloadLength uint32
}

// NewHeader creates a header for a blob with the given payload compression.
func NewHeader(compression format.CompressionType, bigEndian bool) *Header {
	options := uint16(MagicCurveV1Opt)
	if bigEndian {
		options |= FlagBigEndian
	}

	return &Header{
		Options:     options,
		Compression: compression,
	}
}

// Engine returns the byte order engine the payload fields use.
func (h *Header) Engine() endian.EndianEngine {
	if h.Options&FlagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Bytes serializes the header into a fresh HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	buf := make([]byte, HeaderSize)
	buf[0] = byte(h.Options)
	buf[1] = byte(h.Options >> 8)
	buf[2] = byte(h.Compression)

	engine := h.Engine()
	engine.PutUint64(buf[4:12], math.Float64bits(h.StartTime))
	engine.PutUint32(buf[12:16], h.SegmentCount)
	engine.PutUint64(buf[16:24], h.Checksum)
	engine.PutUint32(buf[24:28], h.PayloadLength)

	return buf
}

// Parse reads the header from data and validates the magic number and
// compression type.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The flag word is little-endian by definition.
	h.Options = uint16(data[0]) | uint16(data[1])<<8
	if h.Options&MagicNumberMask != MagicCurveV1Opt&MagicNumberMask {
		return errs.ErrInvalidMagicNumber
	}

	h.Compression = format.CompressionType(data[2])
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompressionType
	}

	engine := h.Engine()
	h.StartTime = math.Float64frombits(engine.Uint64(data[4:12]))
	h.SegmentCount = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	h.PayloadLength = engine.Uint32(data[24:28])

	return nil
}
