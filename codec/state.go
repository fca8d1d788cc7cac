package codec

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/wire"
)

// walker tracks the field path of the value being converted and the first error raised.
//
// Converters record failures with fail and keep going; callers check failed() at element
// granularity and stop there, so one document never produces more than one error.
type walker struct {
	path []string
	err  error
}

// enter appends segments to the path and returns the mark to pass to leave.
func (w *walker) enter(segments ...string) int {
	n := len(w.path)
	w.path = append(w.path, segments...)

	return n
}

// enterIndex appends a field name and a slice index.
func (w *walker) enterIndex(field string, i int) int {
	return w.enter(field, strconv.Itoa(i))
}

func (w *walker) leave(mark int) {
	w.path = w.path[:mark]
}

// at returns a copy of the current path extended by segments.
func (w *walker) at(segments ...string) []string {
	out := make([]string, 0, len(w.path)+len(segments))
	out = append(out, w.path...)

	return append(out, segments...)
}

// fail records err unless an error is already recorded. An error without a path gets the
// current one.
func (w *walker) fail(err *errs.Error) {
	if w.err != nil {
		return
	}
	if len(err.Path) == 0 {
		err.Path = w.at()
	}
	w.err = err
}

func (w *walker) failed() bool { return w.err != nil }

// enumValue is the constraint satisfied by every model enumeration.
type enumValue interface {
	~uint8
	Valid() bool
	String() string
}

func enumTypeName[E enumValue](v E) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "model.")
}

// encodeState carries one Encode call: the builder session, the path and the first error.
type encodeState struct {
	walker

	s   *wire.Session
	log *zap.Logger
}

func newEncodeState(s *wire.Session, log *zap.Logger) *encodeState {
	return &encodeState{s: s, log: log}
}

// encodeEnum returns the wire code of v. Out-of-range values are always an encode error.
func encodeEnum[E enumValue](st *encodeState, field string, v E, maxValid E) uint8 {
	if !v.Valid() {
		st.fail(errs.InvalidEnum(errs.PhaseEncode, st.at(field), enumTypeName(v), uint8(v), uint8(maxValid)))
	}

	return uint8(v)
}

// encodeOptEnum returns the wire code of *v and whether it should be written.
func encodeOptEnum[E enumValue](st *encodeState, field string, v *E, maxValid E) (uint8, bool) {
	if v == nil {
		return 0, false
	}

	return encodeEnum(st, field, *v, maxValid), true
}

// decodeState carries one Decode call.
type decodeState struct {
	walker

	policy EnumPolicy
	log    *zap.Logger
}

func newDecodeState(cfg *DecoderConfig, log *zap.Logger) *decodeState {
	return &decodeState{policy: cfg.enumPolicy, log: log}
}

// missing records a required field that has no wire representation.
func (st *decodeState) missing(field string) {
	st.fail(errs.MissingField(errs.PhaseDecode, st.at(field), field))
}

// decodeEnum converts a wire code, applying the decoder's enum policy to out-of-range codes.
func decodeEnum[E enumValue](st *decodeState, field string, raw uint8, maxValid E) E {
	v := E(raw)
	if v.Valid() {
		return v
	}

	if st.policy == EnumClamp && raw > uint8(maxValid) {
		st.log.Debug("clamped out-of-range enum",
			zap.String("path", strings.Join(st.at(field), ".")),
			zap.String("enum", enumTypeName(v)),
			zap.Uint8("code", raw),
		)

		return maxValid
	}

	st.fail(errs.InvalidEnum(errs.PhaseDecode, st.at(field), enumTypeName(v), raw, uint8(maxValid)))

	return v
}

// decodeOptEnum decodes an optional enum slot; absent yields nil.
func decodeOptEnum[E enumValue](st *decodeState, field string, raw uint8, present bool, maxValid E) *E {
	if !present {
		return nil
	}
	v := decodeEnum(st, field, raw, maxValid)

	return &v
}

// elementIdentity returns the log fields naming el.
func elementIdentity(el model.Element) []zap.Field {
	if el == nil {
		return nil
	}

	return []zap.Field{
		zap.String("element_id", el.Common().ID),
		zap.Stringer("element_type", el.Type()),
	}
}

// encodeList writes items as a vector of tables. Empty input leaves the slot absent.
func encodeList[T any](st *encodeState, field string, items []T, fn func(*T) wire.Offset) wire.Offset {
	if len(items) == 0 {
		return 0
	}

	offs := make([]wire.Offset, len(items))
	for i := range items {
		mark := st.enterIndex(field, i)
		offs[i] = fn(&items[i])
		st.leave(mark)
	}

	return st.s.Offsets(offs)
}

// encodeSub writes one nested table.
func encodeSub[T any](st *encodeState, field string, v *T, fn func(*T) wire.Offset) wire.Offset {
	mark := st.enter(field)
	defer st.leave(mark)

	return fn(v)
}

// encodeOpt writes one nested table when v is non-nil.
func encodeOpt[T any](st *encodeState, field string, v *T, fn func(*T) wire.Offset) wire.Offset {
	if v == nil {
		return 0
	}

	return encodeSub(st, field, v, fn)
}

// decodeList reads a vector of tables. An absent or empty vector yields nil.
func decodeList[T any](st *decodeState, t wire.Table, slot int, field string, fn func(wire.Table) T) []T {
	vec := t.Tables(slot)
	if vec.Len() == 0 {
		return nil
	}

	out := make([]T, vec.Len())
	for i := range out {
		mark := st.enterIndex(field, i)
		out[i] = fn(vec.Table(i))
		st.leave(mark)
	}

	return out
}

// decodeSub reads a nested table, or returns def when the slot is absent.
func decodeSub[T any](st *decodeState, t wire.Table, slot int, field string, def T, fn func(wire.Table) T) T {
	sub, ok := t.Table(slot)
	if !ok {
		return def
	}

	mark := st.enter(field)
	defer st.leave(mark)

	return fn(sub)
}

// decodeOpt reads an optional nested table; absent yields nil.
func decodeOpt[T any](st *decodeState, t wire.Table, slot int, field string, fn func(wire.Table) T) *T {
	sub, ok := t.Table(slot)
	if !ok {
		return nil
	}

	mark := st.enter(field)
	v := fn(sub)
	st.leave(mark)

	return &v
}
