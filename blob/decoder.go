package blob

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/HarukaKajita/curvecompress/compress"
	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
)

// Decode parses a blob back into a curve.
//
// Every structural property is verified before segments are trusted: header
// size and magic, payload length, checksum of the decompressed payload,
// segment record types and the curve-level invariants.
//
// Returns:
//   - *curve.Curve: The decoded curve.
//   - error: An errs sentinel (possibly wrapped) describing the corruption.
func Decode(data []byte) (*curve.Curve, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	if len(data)-HeaderSize != int(header.PayloadLength) {
		return nil, fmt.Errorf("%w: header says %d bytes, blob carries %d",
			errs.ErrInvalidPayloadLength, header.PayloadLength, len(data)-HeaderSize)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("payload decompression failed: %w", err)
	}

	if xxhash.Sum64(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	segments, err := parseSegments(payload, &header)
	if err != nil {
		return nil, err
	}

	return curve.NewCurve(segments)
}

// parseSegments decodes exactly header.SegmentCount segment records and
// requires the payload to end there.
func parseSegments(payload []byte, header *Header) ([]curve.Segment, error) {
	engine := header.Engine()

	pos := 0
	need := func(n int) error {
		if pos+n > len(payload) {
			return fmt.Errorf("%w: truncated segment record at offset %d", errs.ErrInvalidPayloadLength, pos)
		}

		return nil
	}
	readFloat := func() float64 {
		v := math.Float64frombits(engine.Uint64(payload[pos : pos+8]))
		pos += 8

		return v
	}

	segments := make([]curve.Segment, 0, header.SegmentCount)
	for seg := uint32(0); seg < header.SegmentCount; seg++ {
		if err := need(1); err != nil {
			return nil, err
		}
		segType := format.SegmentType(payload[pos])
		pos++

		switch segType {
		case format.SegmentLinear:
			if err := need(4 * 8); err != nil {
				return nil, err
			}
			segments = append(segments, curve.NewLinearSegment(
				readFloat(), readFloat(), readFloat(), readFloat()))

		case format.SegmentBezier:
			if err := need(6 * 8); err != nil {
				return nil, err
			}
			segments = append(segments, curve.NewBezierSegment(
				readFloat(), readFloat(), readFloat(), readFloat(), readFloat(), readFloat()))

		case format.SegmentBSpline:
			if err := need(2); err != nil {
				return nil, err
			}
			count := int(engine.Uint16(payload[pos : pos+2]))
			pos += 2
			if err := need(count * 16); err != nil {
				return nil, err
			}
			points := make([]curve.Point, count)
			for i := range points {
				points[i] = curve.Point{X: readFloat(), Y: readFloat()}
			}
			segments = append(segments, curve.NewBSplineSegment(points))

		default:
			return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidSegmentType, byte(segType))
		}
	}

	if pos != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayloadLength, len(payload)-pos)
	}

	return segments, nil
}
