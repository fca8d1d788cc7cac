package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/cadbin/format"
	"github.com/stretchr/testify/require"
)

func samplePayload(size int) []byte {
	pattern := []byte("rectangle x=10 y=20 width=100 height=50 stroke=#000000 ")
	data := make([]byte, size)
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	sizes := []int{4096, 256 * 1024}

	for _, ct := range types {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for _, size := range sizes {
			t.Run(ct.String(), func(t *testing.T) {
				data := samplePayload(size)
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(data, restored), "%s: size %d", ct, size)
			})
		}
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	data := samplePayload(64 * 1024)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data)/4, "%s should shrink repetitive payloads", ct)
	}
}

func TestCodecs_Empty(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorContains(t, err, "unsupported compression type")

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestGetCodec_SizedDecompressors(t *testing.T) {
	for _, c := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(c)
		require.NoError(t, err)
		_, ok := codec.(SizedDecompressor)
		require.True(t, ok, c.String())
	}
}

func TestDecompressSized_ExactLength(t *testing.T) {
	data := samplePayload(10_000)
	codecs := map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
		"none": NewNoOpCompressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			sized := codec.(SizedDecompressor)
			out, err := sized.DecompressSized(compressed, len(data))
			require.NoError(t, err)
			require.Equal(t, data, out)

			_, err = sized.DecompressSized(compressed, len(data)-1)
			require.Error(t, err)

			_, err = sized.DecompressSized(compressed, len(data)+1)
			require.Error(t, err)
		})
	}
}

func TestDecompressSized_RejectsExpansionBomb(t *testing.T) {
	zeros := make([]byte, 16<<20)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(zeros)
			require.NoError(t, err)
			require.Less(t, len(compressed), 1<<20)

			out, err := codec.(SizedDecompressor).DecompressSized(compressed, 100)
			require.Error(t, err)
			require.Nil(t, out)
		})
	}
}

func TestNoOp_SharesMemory(t *testing.T) {
	data := []byte{1, 2, 3}
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestLZ4_DecompressSized(t *testing.T) {
	data := samplePayload(10_000)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	out, err := codec.DecompressSized(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, out)

	_, err = codec.DecompressSized(compressed, len(data)-1)
	require.Error(t, err)
}

func TestZstd_CorruptInput(t *testing.T) {
	_, err := NewZstdCompressor().Decompress([]byte("definitely not zstd"))
	require.Error(t, err)
}
