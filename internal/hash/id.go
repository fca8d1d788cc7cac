// Package hash provides the two digests the codec relies on: a fast non-cryptographic
// checksum for envelope integrity and a content address for external file payloads.
package hash

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ContentID returns the lowercase hex BLAKE3-256 digest of data. Equal payloads always map to
// the same id, which makes it usable as the key of a content-addressed file table.
func ContentID(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
