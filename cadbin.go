// Package cadbin converts CAD and diagram documents to and from a compact FlatBuffers
// container.
//
// A document (model.Document) holds a list of polymorphic canvas elements drawn from a
// closed set of variants (rectangles, text, lines, tables, viewports and so on), together
// with reusable blocks, groups, layers, embedded files and an optional revision history.
// The codec writes it as a single buffer tagged with the "CADB" file identifier, optionally
// wrapped in a compression envelope.
//
// # Core Features
//
//   - Exhaustive dispatch over every element variant, with tag checks on decode
//   - Shared base structures flattened into each variant's table
//   - Explicit defaults: zero values survive a round trip, absent fields decode to named defaults
//   - Field-path errors for every encode and decode failure
//   - Optional envelope compression (Zstd, S2, LZ4) with an xxHash64 checksum
//
// # Basic Usage
//
//	doc := &model.Document{Elements: []model.Element{
//	    &model.Rectangle{ElementBase: model.ElementBase{ID: "r1", Width: 100, Height: 50, IsVisible: true}},
//	}}
//
//	buf, err := cadbin.Encode(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := cadbin.Decode(buf)
//
// # Package Structure
//
// This package provides top-level wrappers around the codec package for the common cases.
// For pooled encoders, loggers, enum policies and size limits, use codec directly; the
// config package builds those options from YAML or JSONC files and the history package
// records revisions into a document's version graph.
package cadbin

import (
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/cadbin/codec"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/hash"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/section"
)

var defaultCompressedOptions = []codec.EncoderOption{
	codec.WithCompression(format.CompressionZstd),
}

// NewEncoder creates an encoder that emits bare FlatBuffers unless options say otherwise.
//
// Parameters:
//   - opts: Optional configuration (see codec.EncoderOption)
//
// Returns:
//   - *codec.Encoder: The created encoder
//   - error: Every rejected option, combined
func NewEncoder(opts ...codec.EncoderOption) (*codec.Encoder, error) {
	return codec.NewEncoder(opts...)
}

// NewCompressedEncoder creates an encoder that wraps documents in a Zstd envelope.
//
// Options are applied after the default, so codec.WithCompression overrides the algorithm.
//
// Example:
//
//	enc, err := cadbin.NewCompressedEncoder(codec.WithCompression(format.CompressionLZ4))
func NewCompressedEncoder(opts ...codec.EncoderOption) (*codec.Encoder, error) {
	all := make([]codec.EncoderOption, 0, len(defaultCompressedOptions)+len(opts))
	all = append(all, defaultCompressedOptions...)
	all = append(all, opts...)

	return codec.NewEncoder(all...)
}

// NewDecoder creates a decoder. It reads both bare and enveloped buffers.
func NewDecoder(opts ...codec.DecoderOption) (*codec.Decoder, error) {
	return codec.NewDecoder(opts...)
}

// Encode converts doc into a buffer.
//
// Returns:
//   - []byte: The encoded buffer, never a partial one
//   - error: An error wrapping errs.ErrEncodeFailure, carrying the failing field path
func Encode(doc *model.Document, opts ...codec.EncoderOption) ([]byte, error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(doc)
}

// Decode converts a buffer produced by Encode back into a document.
func Decode(data []byte, opts ...codec.DecoderOption) (*model.Document, error) {
	dec, err := codec.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return dec.Decode(data)
}

// IsDocument reports whether data looks like a cadbin buffer: either a compression envelope
// or a FlatBuffer carrying the document file identifier. It does not validate the contents.
func IsDocument(data []byte) bool {
	if section.HasEnvelope(data) {
		return true
	}

	return len(data) >= flatbuffers.SizeUOffsetT+len(schema.FileIdentifier) &&
		flatbuffers.BufferHasIdentifier(data, schema.FileIdentifier)
}

// NewExternalFile creates a file entry whose id is the content address of data, so identical
// payloads embedded twice share one id.
//
// Parameters:
//   - mimeType: The MIME type of data, e.g. "image/png"
//   - data: The file content, stored as is
//   - created: The creation time, stored with millisecond precision
func NewExternalFile(mimeType string, data []byte, created time.Time) model.ExternalFile {
	return model.ExternalFile{
		ID:       hash.ContentID(data),
		MimeType: mimeType,
		Data:     data,
		Created:  created.UnixMilli(),
	}
}
