package wire

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/cadbin/schema"
)

// Offset is the position of an already-written string, vector or table. Zero means "absent".
type Offset = flatbuffers.UOffsetT

// Session is the encode arena of one document.
//
// FlatBuffers forbids creating strings, vectors or tables while a table is open, so every
// writer follows the same two phases: create the children and keep their offsets, then
// StartTable, write slots, EndTable.
//
// Scalar slot writers always write the value, even when it equals the schema default, so a
// decoder never has to guess whether an absent slot meant "default" or "not set". Optional
// values are written only when present.
type Session struct {
	b *flatbuffers.Builder
}

// NewSession wraps b. The builder is not reset.
func NewSession(b *flatbuffers.Builder) *Session {
	return &Session{b: b}
}

// String writes a string. Identical strings are stored once.
func (s *Session) String(v string) Offset {
	return s.b.CreateSharedString(v)
}

// OptString writes *v, or returns 0 when v is nil.
func (s *Session) OptString(v *string) Offset {
	if v == nil {
		return 0
	}

	return s.b.CreateSharedString(*v)
}

// Bytes writes a byte vector. Empty input returns 0.
func (s *Session) Bytes(v []byte) Offset {
	if len(v) == 0 {
		return 0
	}

	return s.b.CreateByteVector(v)
}

// Strings writes a vector of strings. Empty input returns 0.
func (s *Session) Strings(v []string) Offset {
	if len(v) == 0 {
		return 0
	}

	offs := make([]Offset, len(v))
	for i, str := range v {
		offs[i] = s.b.CreateSharedString(str)
	}

	return s.Offsets(offs)
}

// Offsets writes a vector of previously created tables or strings. Empty input returns 0.
func (s *Session) Offsets(v []Offset) Offset {
	if len(v) == 0 {
		return 0
	}

	s.b.StartVector(flatbuffers.SizeUOffsetT, len(v), flatbuffers.SizeUOffsetT)
	for i := len(v) - 1; i >= 0; i-- {
		s.b.PrependUOffsetT(v[i])
	}

	return s.b.EndVector(len(v))
}

// Float64s writes a vector of float64. Empty input returns 0.
func (s *Session) Float64s(v []float64) Offset {
	if len(v) == 0 {
		return 0
	}

	s.b.StartVector(flatbuffers.SizeFloat64, len(v), flatbuffers.SizeFloat64)
	for i := len(v) - 1; i >= 0; i-- {
		s.b.PrependFloat64(v[i])
	}

	return s.b.EndVector(len(v))
}

// Float32s writes a vector of float32. Empty input returns 0.
func (s *Session) Float32s(v []float32) Offset {
	if len(v) == 0 {
		return 0
	}

	s.b.StartVector(flatbuffers.SizeFloat32, len(v), flatbuffers.SizeFloat32)
	for i := len(v) - 1; i >= 0; i-- {
		s.b.PrependFloat32(v[i])
	}

	return s.b.EndVector(len(v))
}

// Int32s writes a vector of int32. Empty input returns 0.
func (s *Session) Int32s(v []int32) Offset {
	if len(v) == 0 {
		return 0
	}

	s.b.StartVector(flatbuffers.SizeInt32, len(v), flatbuffers.SizeInt32)
	for i := len(v) - 1; i >= 0; i-- {
		s.b.PrependInt32(v[i])
	}

	return s.b.EndVector(len(v))
}

// StartTable opens a table with the slots of l.
func (s *Session) StartTable(l *schema.Layout) {
	s.b.StartObject(l.NumFields())
}

// EndTable closes the open table and returns its offset.
func (s *Session) EndTable() Offset {
	return s.b.EndObject()
}

func (s *Session) Float64(slot int, v float64) {
	s.b.PrependFloat64(v)
	s.b.Slot(slot)
}

func (s *Session) Float32(slot int, v float32) {
	s.b.PrependFloat32(v)
	s.b.Slot(slot)
}

func (s *Session) Int32(slot int, v int32) {
	s.b.PrependInt32(v)
	s.b.Slot(slot)
}

func (s *Session) Int64(slot int, v int64) {
	s.b.PrependInt64(v)
	s.b.Slot(slot)
}

func (s *Session) Bool(slot int, v bool) {
	s.b.PrependBool(v)
	s.b.Slot(slot)
}

func (s *Session) Uint8(slot int, v uint8) {
	s.b.PrependByte(v)
	s.b.Slot(slot)
}

// OptFloat64 writes *v when v is non-nil.
func (s *Session) OptFloat64(slot int, v *float64) {
	if v != nil {
		s.Float64(slot, *v)
	}
}

// OptInt64 writes *v when v is non-nil.
func (s *Session) OptInt64(slot int, v *int64) {
	if v != nil {
		s.Int64(slot, *v)
	}
}

// Ref stores an offset created before StartTable. A zero offset leaves the slot absent.
func (s *Session) Ref(slot int, off Offset) {
	if off != 0 {
		s.b.PrependUOffsetTSlot(slot, off, 0)
	}
}

// Finish completes the buffer with root as the root table and the document file identifier.
func (s *Session) Finish(root Offset) {
	s.b.FinishWithFileIdentifier(root, []byte(schema.FileIdentifier))
}

// FinishedBytes returns a copy of the finished buffer, safe to use after the builder is reused.
func (s *Session) FinishedBytes() []byte {
	fin := s.b.FinishedBytes()
	out := make([]byte, len(fin))
	copy(out, fin)

	return out
}
