package codec

import (
	"errors"

	flatbuffers "github.com/google/flatbuffers/go"
	"go.uber.org/zap"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/options"
	"github.com/arloliu/cadbin/internal/pool"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/wire"
)

// Encoder converts documents into self-describing FlatBuffers buffers.
//
// An Encoder is immutable after construction and safe for concurrent use. Each Encode call
// owns its builder for the duration of the call.
type Encoder struct {
	cfg *EncoderConfig
	log *zap.Logger
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Encoder: the encoder
//   - error: every rejected option, combined
//
// Example:
//
//	enc, err := codec.NewEncoder(codec.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	buf, err := enc.Encode(doc)
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	log := cfg.logger
	if log == nil {
		log = Logger()
	}

	return &Encoder{cfg: cfg, log: log}, nil
}

// Encode serializes doc.
//
// The document is validated first unless the encoder was built WithoutValidation. The
// returned buffer never aliases pooled memory. On failure no partial buffer is returned and
// the error wraps errs.ErrEncodeFailure together with the underlying cause.
//
// doc.Version is ignored: the encoder records its own schema version.
func (e *Encoder) Encode(doc *model.Document) ([]byte, error) {
	if doc == nil {
		return nil, errs.New(errs.PhaseEncode, errs.ErrEncodeFailure).Detail("nil document").Build()
	}

	if !e.cfg.skipValidation {
		if err := doc.Validate(); err != nil {
			e.log.Error("document validation failed", zap.Error(err))
			return nil, errs.Wrap(errs.PhaseEncode, errs.ErrEncodeFailure, err, "document failed validation")
		}
	}

	var b *flatbuffers.Builder
	if e.cfg.initialBufferSize > 0 {
		b = flatbuffers.NewBuilder(e.cfg.initialBufferSize)
	} else {
		b = pool.GetBuilder()
		defer pool.PutBuilder(b)
	}

	s := wire.NewSession(b)
	st := newEncodeState(s, e.log)
	root := st.document(doc, e.cfg)
	if st.err != nil {
		return nil, encodeFailure(st.err)
	}

	s.Finish(root)
	buf := s.FinishedBytes()

	if e.cfg.compression == format.CompressionNone {
		return buf, nil
	}

	sealed, err := seal(buf, e.cfg.compression)
	if err != nil {
		e.log.Error("document envelope failed", zap.Stringer("compression", e.cfg.compression), zap.Error(err))
		return nil, err
	}

	return sealed, nil
}

// encodeFailure wraps the first converter error, keeping its field path.
func encodeFailure(cause error) error {
	b := errs.New(errs.PhaseEncode, errs.ErrEncodeFailure).Cause(cause).Detail("encode document")

	var e *errs.Error
	if errors.As(cause, &e) {
		b.Path(e.Path...)
	}

	return b.Build()
}
