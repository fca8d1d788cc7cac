// Package compress provides the compression codecs used for the optional document envelope.
//
// A serialized document is a FlatBuffer. When the caller asks for compression, the whole
// FlatBuffer is compressed as one unit and wrapped in a small envelope header (see the section
// package). Large embedded payloads such as raster images dominate document size, so the
// choice of algorithm is a trade-off the caller makes per use case:
//   - None: bare FlatBuffer, readable in place without copying
//   - Zstd: best ratio, moderate speed; the default for archival
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate ratio
//
// # Architecture
//
// Every algorithm implements Codec (Compress plus Decompress). GetCodec hands out one shared
// instance per format.CompressionType; internal encoders and decoders are pooled, so those
// instances may be used from many goroutines. Codecs whose blocks do not record their own
// length also implement SizedDecompressor, which the envelope reader uses with the raw length
// stored in the header.
//
// # Build tags
//
// Zstd is implemented with github.com/klauspost/compress/zstd. Building with cgo and the
// gozstd tag switches to github.com/valyala/gozstd instead.
package compress
