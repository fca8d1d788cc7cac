package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/cadbin/endian"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// EnvelopeHeader describes a compressed document payload.
type EnvelopeHeader struct {
	// Compression is the algorithm the stored payload was compressed with.
	Compression format.CompressionType
	// Version is the envelope layout version.
	Version uint8
	// RawLength is the length of the FlatBuffer before compression.
	RawLength uint32
	// StoredLength is the length of the payload following the header.
	StoredLength uint32
	// Checksum is the xxHash64 of the uncompressed FlatBuffer.
	Checksum uint64
}

var engine = endian.EnvelopeEngine()

// HasEnvelope reports whether data starts with the envelope magic.
func HasEnvelope(data []byte) bool {
	return len(data) >= len(EnvelopeMagic) && bytes.Equal(data[:len(EnvelopeMagic)], EnvelopeMagic[:])
}

// Bytes serializes the header into a new EnvelopeHeaderSize byte slice.
func (h *EnvelopeHeader) Bytes() []byte {
	b := make([]byte, EnvelopeHeaderSize)
	copy(b[0:4], EnvelopeMagic[:])
	b[4] = h.Version
	b[5] = uint8(h.Compression)
	engine.PutUint32(b[8:12], h.RawLength)
	engine.PutUint32(b[12:16], h.StoredLength)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// Parse parses the header from the first EnvelopeHeaderSize bytes of data.
//
// Returns:
//   - error: ErrInvalidEnvelope on short input, bad magic, unsupported version or unknown
//     compression type
func (h *EnvelopeHeader) Parse(data []byte) error {
	if len(data) < EnvelopeHeaderSize {
		return fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidEnvelope, EnvelopeHeaderSize, len(data))
	}
	if !HasEnvelope(data) {
		return fmt.Errorf("%w: bad magic %q", errs.ErrInvalidEnvelope, data[:4])
	}

	h.Version = data[4]
	h.Compression = format.CompressionType(data[5])
	h.RawLength = engine.Uint32(data[8:12])
	h.StoredLength = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Validate()
}

// Validate checks the header fields for consistency.
func (h *EnvelopeHeader) Validate() error {
	if h.Version != EnvelopeVersion {
		return fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidEnvelope, h.Version)
	}
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidEnvelope, uint8(h.Compression))
	}
	if h.Compression == format.CompressionNone && h.RawLength != h.StoredLength {
		return fmt.Errorf("%w: uncompressed payload length %d != stored length %d",
			errs.ErrInvalidEnvelope, h.RawLength, h.StoredLength)
	}

	return nil
}

// ParseEnvelopeHeader parses an EnvelopeHeader from a byte slice.
func ParseEnvelopeHeader(data []byte) (EnvelopeHeader, error) {
	h := EnvelopeHeader{}
	if err := h.Parse(data); err != nil {
		return EnvelopeHeader{}, err
	}

	return h, nil
}
