package codec

import (
	"github.com/arloliu/cadbin/compress"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/hash"
	"github.com/arloliu/cadbin/section"
)

// seal wraps a finished buffer in a compression envelope. When compression does not make
// the payload smaller, the raw buffer is stored and the header says CompressionNone.
func seal(raw []byte, c format.CompressionType) ([]byte, error) {
	if uint64(len(raw)) > section.MaxPayloadSize {
		return nil, errs.New(errs.PhaseEnvelope, errs.ErrEncodeFailure).
			Detail("document of %d bytes exceeds the envelope limit", len(raw)).
			Build()
	}

	codec, err := compress.GetCodec(c)
	if err != nil {
		return nil, errs.Wrap(errs.PhaseEnvelope, errs.ErrEncodeFailure, err, "select compression")
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, errs.Wrap(errs.PhaseEnvelope, errs.ErrEncodeFailure, err, "compress document")
	}

	stored := c
	if len(payload) == 0 || len(payload) >= len(raw) {
		payload = raw
		stored = format.CompressionNone
	}

	header := section.EnvelopeHeader{
		Compression:  stored,
		Version:      section.EnvelopeVersion,
		RawLength:    uint32(len(raw)),
		StoredLength: uint32(len(payload)),
		Checksum:     hash.Checksum(raw),
	}

	out := make([]byte, 0, section.EnvelopeHeaderSize+len(payload))
	out = append(out, header.Bytes()...)

	return append(out, payload...), nil
}

// open returns the FlatBuffer inside data. Data without the envelope magic is returned as is.
func open(data []byte, maxSize int) ([]byte, format.CompressionType, error) {
	if !section.HasEnvelope(data) {
		return data, format.CompressionNone, nil
	}

	header, err := section.ParseEnvelopeHeader(data)
	if err != nil {
		return nil, 0, errs.Wrap(errs.PhaseEnvelope, errs.ErrInvalidEnvelope, err, "parse envelope header")
	}

	payload := data[section.EnvelopeHeaderSize:]
	if uint64(len(payload)) != uint64(header.StoredLength) {
		return nil, 0, errs.New(errs.PhaseEnvelope, errs.ErrInvalidEnvelope).
			Detail("payload is %d bytes, header says %d", len(payload), header.StoredLength).
			Build()
	}
	if uint64(header.RawLength) > uint64(maxSize) {
		return nil, 0, errs.New(errs.PhaseEnvelope, errs.ErrInvalidEnvelope).
			Value(header.RawLength).
			Detail("document of %d bytes exceeds the limit of %d", header.RawLength, maxSize).
			Build()
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, 0, errs.Wrap(errs.PhaseEnvelope, errs.ErrInvalidEnvelope, err, "select compression")
	}

	sized, ok := codec.(compress.SizedDecompressor)
	if !ok {
		return nil, 0, errs.New(errs.PhaseEnvelope, errs.ErrInvalidEnvelope).
			Value(header.Compression).
			Detail("compression %s cannot be bounded by the declared length", header.Compression).
			Build()
	}

	// RawLength is already within maxSize, so it bounds the decompressed allocation.
	raw, err := sized.DecompressSized(payload, int(header.RawLength))
	if err != nil {
		return nil, 0, errs.Wrap(errs.PhaseEnvelope, errs.ErrMalformedBuffer, err, "decompress document")
	}

	if uint64(len(raw)) != uint64(header.RawLength) || hash.Checksum(raw) != header.Checksum {
		return nil, 0, errs.New(errs.PhaseEnvelope, errs.ErrChecksumMismatch).
			Detail("decompressed payload does not match the envelope header").
			Build()
	}

	return raw, header.Compression, nil
}
