package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HarukaKajita/curvecompress/format"
)

func payloadFixture() []byte {
	// Repetitive float-field-like payload, the shape of a real segment stream.
	var buf bytes.Buffer
	for i := 0; i < 64; i++ {
		buf.WriteByte(0x01)
		for n := 0; n < 4; n++ {
			buf.Write([]byte{byte(i), 0, 0, 0, 0, 0, 0xF0, 0x3F})
		}
	}

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	payload := payloadFixture()

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCompressibleDataShrinks(t *testing.T) {
	payload := payloadFixture()

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), compression.String())
	}
}

func TestLZ4IncompressibleRoundTrip(t *testing.T) {
	// High-entropy bytes defeat the block compressor; the raw marker path must
	// still round-trip them exactly.
	payload := make([]byte, 48)
	state := uint64(0x9E3779B97F4A7C15)
	for i := range payload {
		state = state*6364136223846793005 + 1442695040888963407
		payload[i] = byte(state >> 56)
	}

	codec := NewLZ4Compressor()
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestNoOpSharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}

func TestGetCodecUnknownType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestCreateCodecMatchesGetCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionS2, "payload")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0x7F), "payload")
	require.Error(t, err)
}
