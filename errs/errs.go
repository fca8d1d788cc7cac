// Package errs defines the error taxonomy shared by every cadbin package.
//
// Errors come in two layers. Sentinel values (ErrUnknownVariant, ErrMissingRequiredField, ...)
// identify the failure class and are meant for errors.Is checks. The structured *Error type
// wraps a sentinel with the phase it happened in, the field path that failed and a
// human-readable detail:
//
//	err := errs.New(errs.PhaseDecode, errs.ErrMissingRequiredField).
//		Path("elements", "3", "id").
//		Detail("element id is required").
//		Build()
//
//	errors.Is(err, errs.ErrMissingRequiredField) // true
package errs

import "errors"

var (
	// ErrUnknownVariant is returned when a wire tag has no entry in the element registry.
	// It is fatal: decoding of the whole document stops.
	ErrUnknownVariant = errors.New("unknown element variant")

	// ErrVariantMismatch is returned when a wrapper tag disagrees with the kind recorded in
	// the payload table it points to.
	ErrVariantMismatch = errors.New("element variant mismatch")

	// ErrMissingRequiredField is returned when a required field has no wire representation
	// and no documented default.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMalformedBuffer is returned when an offset or length in the buffer is out of range.
	ErrMalformedBuffer = errors.New("malformed buffer")

	// ErrInvalidIdentifier is returned when the buffer does not carry the document file identifier.
	ErrInvalidIdentifier = errors.New("invalid file identifier")

	// ErrEncodeFailure wraps every error raised while encoding a document.
	ErrEncodeFailure = errors.New("encode failure")

	// ErrInvalidEnum is returned when an enumerated field lies outside its declared range.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrAmbiguousField is returned when two composed wire layers produce the same field name.
	ErrAmbiguousField = errors.New("ambiguous wire field")

	// ErrDuplicateID is returned when an identifier that must be unique appears twice.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidDocument is returned when a document fails validation before encoding.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrChecksumMismatch is returned when an envelope payload does not match its checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidEnvelope is returned when an envelope header cannot be parsed.
	ErrInvalidEnvelope = errors.New("invalid envelope header")

	// ErrInvalidVersion is returned when a schema version string or number cannot be parsed.
	ErrInvalidVersion = errors.New("invalid schema version")

	// ErrBrokenChain is returned when a revision references a parent that does not exist.
	ErrBrokenChain = errors.New("broken revision chain")
)
