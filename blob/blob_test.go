package blob

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
)

func mixedCurve(t *testing.T) *curve.Curve {
	t.Helper()

	c, err := curve.NewCurve([]curve.Segment{
		curve.NewLinearSegment(0, 0, 1, 2),
		curve.NewBezierSegment(1, 2, 3, 1, -0.5, 0.25),
		curve.NewBSplineSegment([]curve.Point{
			{X: 3, Y: 1}, {X: 3.5, Y: 2}, {X: 4.5, Y: 0}, {X: 5, Y: 1},
		}),
	})
	require.NoError(t, err)

	return c
}

func requireCurvesEqual(t *testing.T, want, got *curve.Curve) {
	t.Helper()

	require.Equal(t, want.SegmentCount(), got.SegmentCount())
	require.Equal(t, want.Segments, got.Segments)
}

func TestRoundTripDefault(t *testing.T) {
	c := mixedCurve(t)

	data, err := Encode(c)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), HeaderSize)

	decoded, err := Decode(data)
	require.NoError(t, err)
	requireCurvesEqual(t, c, decoded)
}

func TestRoundTripAllCodecs(t *testing.T) {
	c := mixedCurve(t)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := Encode(c, WithCompression(compression))
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			requireCurvesEqual(t, c, decoded)
		})
	}
}

func TestRoundTripBigEndian(t *testing.T) {
	c := mixedCurve(t)

	data, err := Encode(c, WithBigEndian())
	require.NoError(t, err)
	require.NotZero(t, data[0]&FlagBigEndian)

	decoded, err := Decode(data)
	require.NoError(t, err)
	requireCurvesEqual(t, c, decoded)
}

func TestHeaderMetadata(t *testing.T) {
	c := mixedCurve(t)

	data, err := Encode(c)
	require.NoError(t, err)

	var header Header
	require.NoError(t, header.Parse(data))
	require.Equal(t, c.StartTime(), header.StartTime)
	require.Equal(t, uint32(3), header.SegmentCount)
	require.Equal(t, format.CompressionNone, header.Compression)
	require.Equal(t, len(data)-HeaderSize, int(header.PayloadLength))
}

func TestEncodeRejectsEmptyCurve(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, errs.ErrEmptyCurve)

	_, err = Encode(&curve.Curve{})
	require.ErrorIs(t, err, errs.ErrEmptyCurve)
}

func TestEncodeRejectsUnknownCompression(t *testing.T) {
	_, err := Encode(mixedCurve(t), WithCompression(format.CompressionType(0xAA)))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestDecodeRejectsShortData(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = Decode(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data, err := Encode(mixedCurve(t))
	require.NoError(t, err)

	data[1] ^= 0xFF // clobber the magic bits of the flag word
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestDecodeRejectsBadCompressionByte(t *testing.T) {
	data, err := Encode(mixedCurve(t))
	require.NoError(t, err)

	data[2] = 0x7F
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestDecodeRejectsPayloadLengthMismatch(t *testing.T) {
	data, err := Encode(mixedCurve(t))
	require.NoError(t, err)

	_, err = Decode(append(data, 0x00))
	require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)

	_, err = Decode(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)
}

func TestDecodeRejectsCorruptPayload(t *testing.T) {
	// CompressionNone makes the flipped byte reach the checksum directly.
	data, err := Encode(mixedCurve(t), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	data[len(data)-1] ^= 0x01
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeRejectsUnknownSegmentType(t *testing.T) {
	c, err := curve.NewCurve([]curve.Segment{curve.NewLinearSegment(0, 0, 1, 1)})
	require.NoError(t, err)

	data, err := Encode(c)
	require.NoError(t, err)

	// First payload byte is the segment type; recompute nothing, the checksum
	// is over the (uncompressed) payload, so patch both.
	payload := append([]byte(nil), data[HeaderSize:]...)
	payload[0] = 0x7E

	var header Header
	require.NoError(t, header.Parse(data))
	header.Checksum = xxhash.Sum64(payload)
	patched := append(header.Bytes(), payload...)

	_, err = Decode(patched)
	require.ErrorIs(t, err, errs.ErrInvalidSegmentType)
}

func TestEncodeIsDeterministic(t *testing.T) {
	c := mixedCurve(t)

	first, err := Encode(c, WithCompression(format.CompressionS2))
	require.NoError(t, err)
	second, err := Encode(c, WithCompression(format.CompressionS2))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
