package codec

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func newTestEncoder(t *testing.T, opts ...EncoderOption) *Encoder {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	return enc
}

func newTestDecoder(t *testing.T, opts ...DecoderOption) *Decoder {
	t.Helper()

	dec, err := NewDecoder(opts...)
	require.NoError(t, err)

	return dec
}

func roundTrip(t *testing.T, doc *model.Document) *model.Document {
	t.Helper()

	buf, err := newTestEncoder(t).Encode(doc)
	require.NoError(t, err)

	got, err := newTestDecoder(t).Decode(buf)
	require.NoError(t, err)

	return got
}

// rawSession builds buffers by hand, bypassing Encode, to feed the decoder inputs the
// encoder never produces.
type rawSession struct {
	s  *wire.Session
	st *encodeState
}

func newRawSession() *rawSession {
	s := wire.NewSession(flatbuffers.NewBuilder(0))
	return &rawSession{s: s, st: newEncodeState(s, zap.NewNop())}
}

// payload writes the variant table of el, ignoring encode-time checks.
func (r *rawSession) payload(el model.Element) wire.Offset {
	return registry[el.Type()].encode(r.st, el)
}

// bare writes a variant table holding only the kind slot and, when id is non-empty, the id.
func (r *rawSession) bare(tag model.ElementType, id string) wire.Offset {
	var idRef wire.Offset
	if id != "" {
		idRef = r.s.String(id)
	}

	s := slotsOf(tag)
	r.s.StartTable(s.lay)
	r.s.Uint8(s.lay.Start(schema.LayerKind), uint8(tag))
	r.s.Ref(s.at(schema.LayerElementBase)+schema.BaseID, idRef)

	return r.s.EndTable()
}

func (r *rawSession) wrapper(tag uint8, payload wire.Offset) wire.Offset {
	r.s.StartTable(schema.ElementWrapperLayout)
	r.s.Uint8(schema.WrapperElementType, tag)
	r.s.Ref(schema.WrapperElement, payload)

	return r.s.EndTable()
}

// document finishes a root table holding only the given element wrappers.
func (r *rawSession) document(wrappers ...wire.Offset) []byte {
	elements := r.s.Offsets(wrappers)

	r.s.StartTable(schema.DocumentLayout)
	r.s.Ref(schema.RootElements, elements)
	r.s.Finish(r.s.EndTable())

	return r.s.FinishedBytes()
}
