// Package section defines the fixed-size envelope header that precedes a compressed document.
//
// A document is normally a bare FlatBuffer whose bytes 4..8 carry the file identifier. When
// the encoder is configured with compression, the FlatBuffer is compressed and prefixed with
// a 24-byte envelope header:
//
//	offset  size  field
//	0       4     magic "CDBZ"
//	4       1     envelope version (1)
//	5       1     compression type (format.CompressionType)
//	6       2     reserved, zero
//	8       4     payload length, uncompressed
//	12      4     payload length, as stored
//	16      8     xxHash64 of the uncompressed payload
//
// All integers are little-endian, matching the FlatBuffers wire order.
package section
