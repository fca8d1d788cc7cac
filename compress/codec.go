package compress

import (
	"fmt"

	"github.com/arloliu/cadbin/format"
)

// Compressor compresses one serialized document.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller, except for the no-op
	// codec which returns data itself. The input slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a document compressed by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Returns an error if data is corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor decompresses data whose original length is known in advance. The result
// is exactly size bytes long; input that would expand past size is rejected without
// allocating for it. Every built-in codec implements it, and the envelope reader uses only
// this path.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared Codec for an envelope compression type.
//
// Returns:
//   - Codec: the codec, safe for concurrent use
//   - error: unsupported compression type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type %s (0x%02x)", compressionType, uint8(compressionType))
}
