package wire

import (
	"runtime"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/schema"
)

// Table is a read-only view of one FlatBuffers table.
//
// Every accessor checks that the bytes it touches lie inside the buffer. A violation panics
// with an *errs.Error of kind ErrMalformedBuffer; decode entry points convert it back into
// an error with Recover, so callers of the codec only ever see returned errors.
type Table struct {
	t flatbuffers.Table
}

// Root returns the root table of a document buffer.
//
// Returns:
//   - Table: the root table
//   - error: ErrMalformedBuffer if buf is too short or the root table is out of range,
//     ErrInvalidIdentifier if buf does not carry the document file identifier
func Root(buf []byte) (tbl Table, err error) {
	defer Recover(&err)

	if len(buf) < flatbuffers.SizeUOffsetT+len(schema.FileIdentifier) {
		return Table{}, errs.Malformed(nil, "buffer of %d bytes is shorter than the header", len(buf))
	}
	if !flatbuffers.BufferHasIdentifier(buf, schema.FileIdentifier) {
		return Table{}, errs.New(errs.PhaseDecode, errs.ErrInvalidIdentifier).
			Value(flatbuffers.GetBufferIdentifier(buf)).
			Detail("expected %q", schema.FileIdentifier).
			Build()
	}

	return newTable(buf, flatbuffers.GetUOffsetT(buf)), nil
}

// newTable validates the table header and vtable at pos.
func newTable(buf []byte, pos flatbuffers.UOffsetT) Table {
	n := uint64(len(buf))
	if uint64(pos)+flatbuffers.SizeSOffsetT > n {
		panic(errs.Malformed(nil, "table at %d beyond buffer of %d bytes", pos, n))
	}

	tbl := Table{t: flatbuffers.Table{Bytes: buf, Pos: pos}}
	vtable := int64(pos) - int64(tbl.t.GetSOffsetT(pos))
	if vtable < 0 || uint64(vtable)+2*flatbuffers.SizeVOffsetT > n {
		panic(errs.Malformed(nil, "vtable of table at %d out of range", pos))
	}

	vsize := uint64(tbl.t.GetVOffsetT(flatbuffers.UOffsetT(vtable)))
	tsize := uint64(tbl.t.GetVOffsetT(flatbuffers.UOffsetT(vtable) + flatbuffers.SizeVOffsetT))
	if vsize < 4 || vsize%2 != 0 || uint64(vtable)+vsize > n || uint64(pos)+tsize > n {
		panic(errs.Malformed(nil, "vtable of table at %d has invalid size", pos))
	}

	return tbl
}

// IsZero reports whether t was never initialized, i.e. an absent sub-table.
func (t Table) IsZero() bool { return t.t.Bytes == nil }

// field returns the absolute position of slot's value, or 0 when the slot is absent.
func (t Table) field(slot, size int) flatbuffers.UOffsetT {
	o := t.t.Offset(flatbuffers.VOffsetT(schema.VTableOffset(slot)))
	if o == 0 {
		return 0
	}

	abs := t.t.Pos + flatbuffers.UOffsetT(o)
	if uint64(abs)+uint64(size) > uint64(len(t.t.Bytes)) {
		panic(errs.Malformed(nil, "field in slot %d at %d beyond buffer", slot, abs))
	}

	return abs
}

// indirect follows the offset stored at abs and checks that at least size bytes follow it.
func (t Table) indirect(abs flatbuffers.UOffsetT, size int) flatbuffers.UOffsetT {
	target := uint64(abs) + uint64(flatbuffers.GetUOffsetT(t.t.Bytes[abs:]))
	if target+uint64(size) > uint64(len(t.t.Bytes)) {
		panic(errs.Malformed(nil, "reference at %d points beyond buffer", abs))
	}

	return flatbuffers.UOffsetT(target)
}

// Has reports whether slot is present.
func (t Table) Has(slot int) bool {
	return t.t.Offset(flatbuffers.VOffsetT(schema.VTableOffset(slot))) != 0
}

func (t Table) Float64(slot int, def float64) float64 {
	if abs := t.field(slot, flatbuffers.SizeFloat64); abs != 0 {
		return t.t.GetFloat64(abs)
	}

	return def
}

func (t Table) Float32(slot int, def float32) float32 {
	if abs := t.field(slot, flatbuffers.SizeFloat32); abs != 0 {
		return t.t.GetFloat32(abs)
	}

	return def
}

func (t Table) Int32(slot int, def int32) int32 {
	if abs := t.field(slot, flatbuffers.SizeInt32); abs != 0 {
		return t.t.GetInt32(abs)
	}

	return def
}

func (t Table) Int64(slot int, def int64) int64 {
	if abs := t.field(slot, flatbuffers.SizeInt64); abs != 0 {
		return t.t.GetInt64(abs)
	}

	return def
}

func (t Table) Bool(slot int, def bool) bool {
	if abs := t.field(slot, flatbuffers.SizeBool); abs != 0 {
		return t.t.GetBool(abs)
	}

	return def
}

func (t Table) Uint8(slot int, def uint8) uint8 {
	if abs := t.field(slot, flatbuffers.SizeUint8); abs != 0 {
		return t.t.GetUint8(abs)
	}

	return def
}

// OptFloat64 returns nil when slot is absent.
func (t Table) OptFloat64(slot int) *float64 {
	if abs := t.field(slot, flatbuffers.SizeFloat64); abs != 0 {
		v := t.t.GetFloat64(abs)
		return &v
	}

	return nil
}

// OptInt64 returns nil when slot is absent.
func (t Table) OptInt64(slot int) *int64 {
	if abs := t.field(slot, flatbuffers.SizeInt64); abs != 0 {
		v := t.t.GetInt64(abs)
		return &v
	}

	return nil
}

// OptUint8 returns the value and whether slot is present.
func (t Table) OptUint8(slot int) (uint8, bool) {
	if abs := t.field(slot, flatbuffers.SizeUint8); abs != 0 {
		return t.t.GetUint8(abs), true
	}

	return 0, false
}

// vector resolves the vector referenced at abs and returns the position of its first element
// and its length.
func (t Table) vector(abs flatbuffers.UOffsetT, elemSize int) (flatbuffers.UOffsetT, int) {
	vec := t.indirect(abs, flatbuffers.SizeUOffsetT)
	n := uint64(flatbuffers.GetUOffsetT(t.t.Bytes[vec:]))
	start := uint64(vec) + flatbuffers.SizeUOffsetT
	if start+n*uint64(elemSize) > uint64(len(t.t.Bytes)) {
		panic(errs.Malformed(nil, "vector at %d with %d elements overruns buffer", vec, n))
	}

	return flatbuffers.UOffsetT(start), int(n)
}

// byteVector returns the raw bytes of the vector referenced at abs, without copying.
func (t Table) byteVector(abs flatbuffers.UOffsetT) []byte {
	start, n := t.vector(abs, 1)
	return t.t.Bytes[start : int(start)+n]
}

// String returns the string in slot, or "" when absent. The result does not alias the buffer.
func (t Table) String(slot int) string {
	if abs := t.field(slot, flatbuffers.SizeUOffsetT); abs != 0 {
		return string(t.byteVector(abs))
	}

	return ""
}

// OptString returns nil when slot is absent.
func (t Table) OptString(slot int) *string {
	if abs := t.field(slot, flatbuffers.SizeUOffsetT); abs != 0 {
		s := string(t.byteVector(abs))
		return &s
	}

	return nil
}

// Bytes returns a copy of the byte vector in slot, or nil when absent or empty.
func (t Table) Bytes(slot int) []byte {
	abs := t.field(slot, flatbuffers.SizeUOffsetT)
	if abs == 0 {
		return nil
	}

	raw := t.byteVector(abs)
	if len(raw) == 0 {
		return nil
	}

	out := make([]byte, len(raw))
	copy(out, raw)

	return out
}

// Table returns the sub-table in slot and whether it is present.
func (t Table) Table(slot int) (Table, bool) {
	abs := t.field(slot, flatbuffers.SizeUOffsetT)
	if abs == 0 {
		return Table{}, false
	}

	return newTable(t.t.Bytes, t.indirect(abs, flatbuffers.SizeSOffsetT)), true
}

// Vector returns the vector in slot. An absent vector has length zero.
func (t Table) Vector(slot, elemSize int) Vector {
	abs := t.field(slot, flatbuffers.SizeUOffsetT)
	if abs == 0 {
		return Vector{}
	}

	start, n := t.vector(abs, elemSize)

	return Vector{t: t.t, start: start, n: n}
}

// Tables returns the vector of tables in slot. An absent vector has length zero.
func (t Table) Tables(slot int) Vector {
	return t.Vector(slot, flatbuffers.SizeUOffsetT)
}

// Strings returns the string vector in slot, or nil when absent or empty.
func (t Table) Strings(slot int) []string {
	v := t.Vector(slot, flatbuffers.SizeUOffsetT)
	if v.Len() == 0 {
		return nil
	}

	out := make([]string, v.Len())
	for i := range out {
		out[i] = v.String(i)
	}

	return out
}

// Float64s returns the float64 vector in slot, or nil when absent or empty.
func (t Table) Float64s(slot int) []float64 {
	v := t.Vector(slot, flatbuffers.SizeFloat64)
	if v.Len() == 0 {
		return nil
	}

	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.Float64(i)
	}

	return out
}

// Float32s returns the float32 vector in slot, or nil when absent or empty.
func (t Table) Float32s(slot int) []float32 {
	v := t.Vector(slot, flatbuffers.SizeFloat32)
	if v.Len() == 0 {
		return nil
	}

	out := make([]float32, v.Len())
	for i := range out {
		out[i] = v.Float32(i)
	}

	return out
}

// Int32s returns the int32 vector in slot, or nil when absent or empty.
func (t Table) Int32s(slot int) []int32 {
	v := t.Vector(slot, flatbuffers.SizeInt32)
	if v.Len() == 0 {
		return nil
	}

	out := make([]int32, v.Len())
	for i := range out {
		out[i] = v.Int32(i)
	}

	return out
}

// Vector is a bounds-checked view of a FlatBuffers vector.
type Vector struct {
	t     flatbuffers.Table
	start flatbuffers.UOffsetT
	n     int
}

// Len returns the number of elements.
func (v Vector) Len() int { return v.n }

func (v Vector) at(i, elemSize int) flatbuffers.UOffsetT {
	if i < 0 || i >= v.n {
		panic(errs.Malformed(nil, "vector index %d out of range [0,%d)", i, v.n))
	}

	return v.start + flatbuffers.UOffsetT(i*elemSize)
}

// Table returns element i of a vector of tables.
func (v Vector) Table(i int) Table {
	tv := Table{t: v.t}
	return newTable(v.t.Bytes, tv.indirect(v.at(i, flatbuffers.SizeUOffsetT), flatbuffers.SizeSOffsetT))
}

// String returns element i of a vector of strings.
func (v Vector) String(i int) string {
	tv := Table{t: v.t}
	return string(tv.byteVector(v.at(i, flatbuffers.SizeUOffsetT)))
}

func (v Vector) Float64(i int) float64 { return v.t.GetFloat64(v.at(i, flatbuffers.SizeFloat64)) }
func (v Vector) Float32(i int) float32 { return v.t.GetFloat32(v.at(i, flatbuffers.SizeFloat32)) }
func (v Vector) Int32(i int) int32     { return v.t.GetInt32(v.at(i, flatbuffers.SizeInt32)) }

// Recover converts a panic raised by a malformed buffer into an error stored in *err.
// It must be deferred directly. Panics unrelated to buffer access are re-raised.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	switch e := r.(type) {
	case *errs.Error:
		*err = e
	case runtime.Error:
		*err = errs.New(errs.PhaseDecode, errs.ErrMalformedBuffer).Cause(e).Detail("buffer access failed").Build()
	default:
		panic(r)
	}
}
