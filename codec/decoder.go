package codec

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/internal/options"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/wire"
)

// Decoder reconstructs documents from buffers produced by Encoder.
//
// A Decoder is immutable after construction and safe for concurrent use. The returned
// document never aliases the input buffer.
type Decoder struct {
	cfg *DecoderConfig
	log *zap.Logger
}

// NewDecoder creates a Decoder.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Decoder: the decoder
//   - error: every rejected option, combined
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	log := cfg.logger
	if log == nil {
		log = Logger()
	}

	return &Decoder{cfg: cfg, log: log}, nil
}

// Decode parses data, which may be a bare FlatBuffer or a compression envelope around one.
//
// Returns:
//   - *model.Document: the decoded document
//   - error: ErrInvalidIdentifier for a foreign buffer, ErrMalformedBuffer for out-of-range
//     offsets, ErrUnknownVariant or ErrVariantMismatch for bad element tags,
//     ErrMissingRequiredField, ErrInvalidEnum, or an envelope error. Errors carry the field
//     path where decoding stopped.
func (d *Decoder) Decode(data []byte) (*model.Document, error) {
	buf, compression, err := open(data, d.cfg.maxSize)
	if err != nil {
		return nil, err
	}

	root, err := wire.Root(buf)
	if err != nil {
		return nil, err
	}

	st := newDecodeState(d.cfg, d.log)
	doc, err := d.decodeRoot(st, root)
	if err != nil {
		return nil, err
	}

	d.log.Debug("document decoded",
		zap.String("schema_version", doc.Version),
		zap.Stringer("compression", compression),
		zap.Int("elements", len(doc.Elements)),
	)

	return doc, nil
}

// decodeRoot converts malformed-buffer panics raised while reading into errors located at
// the path being read.
func (d *Decoder) decodeRoot(st *decodeState, root wire.Table) (doc *model.Document, err error) {
	defer func() {
		wire.Recover(&err)

		var e *errs.Error
		if errors.As(err, &e) && len(e.Path) == 0 {
			e.Path = st.at()
		}
		if err != nil {
			doc = nil
		}
	}()

	doc = st.document(root)
	if st.err != nil {
		return nil, st.err
	}

	return doc, nil
}
