package blob

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/HarukaKajita/curvecompress/compress"
	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
	"github.com/HarukaKajita/curvecompress/internal/options"
)

// encoderConfig holds the encoding settings resolved from options.
type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures Encode.
type Option = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is CompressionNone:
// segment payloads are usually too small for codec framing to pay off.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression)
		}
	})
}

// WithLittleEndian encodes payload fields little-endian (the default).
func WithLittleEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian encodes payload fields big-endian, for hosts that want
// network byte order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// Encode serializes a curve into a blob.
//
// The curve is validated first, so a blob never carries a malformed segment
// sequence. The returned slice is freshly allocated and owned by the caller.
//
// Returns:
//   - []byte: The serialized blob (header + payload).
//   - error: Curve validation, option or codec errors.
func Encode(c *curve.Curve, opts ...Option) ([]byte, error) {
	if c == nil || len(c.Segments) == 0 {
		return nil, errs.ErrEmptyCurve
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &encoderConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := NewHeader(cfg.compression, cfg.bigEndian)
	header.StartTime = c.StartTime()
	header.SegmentCount = uint32(len(c.Segments))

	payload := appendSegments(nil, c.Segments, header)
	header.Checksum = xxhash.Sum64(payload)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("payload compression failed: %w", err)
	}
	header.PayloadLength = uint32(len(compressed))

	blob := make([]byte, 0, HeaderSize+len(compressed))
	blob = append(blob, header.Bytes()...)
	blob = append(blob, compressed...)

	return blob, nil
}

// appendSegments encodes every segment record into buf.
func appendSegments(buf []byte, segments []curve.Segment, header *Header) []byte {
	engine := header.Engine()

	appendFloat := func(buf []byte, v float64) []byte {
		return engine.AppendUint64(buf, math.Float64bits(v))
	}

	for i := range segments {
		seg := &segments[i]
		buf = append(buf, byte(seg.Type))

		switch seg.Type {
		case format.SegmentBSpline:
			buf = engine.AppendUint16(buf, uint16(len(seg.ControlPoints)))
			for _, p := range seg.ControlPoints {
				buf = appendFloat(buf, p.X)
				buf = appendFloat(buf, p.Y)
			}
		case format.SegmentBezier:
			buf = appendFloat(buf, seg.StartTime)
			buf = appendFloat(buf, seg.StartValue)
			buf = appendFloat(buf, seg.EndTime)
			buf = appendFloat(buf, seg.EndValue)
			buf = appendFloat(buf, seg.InTangent)
			buf = appendFloat(buf, seg.OutTangent)
		default: // linear, and the validated curve admits nothing else
			buf = appendFloat(buf, seg.StartTime)
			buf = appendFloat(buf, seg.StartValue)
			buf = appendFloat(buf, seg.EndTime)
			buf = appendFloat(buf, seg.EndValue)
		}
	}

	return buf
}
