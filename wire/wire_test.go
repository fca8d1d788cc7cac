package wire

import (
	"errors"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/schema"
)

const (
	slotName = iota
	slotWidth
	slotOpacity
	slotVisible
	slotKind
	slotCount
	slotStamp
	slotNote
	slotTags
	slotDash
	slotPressure
	slotIndices
	slotData
	slotChild
	slotChildren
	slotMiter
)

var testLayout = schema.MustCompose("fixture", schema.NewLayer("fixture", []string{
	slotName:     "name",
	slotWidth:    "width",
	slotOpacity:  "opacity",
	slotVisible:  "visible",
	slotKind:     "kind",
	slotCount:    "count",
	slotStamp:    "stamp",
	slotNote:     "note",
	slotTags:     "tags",
	slotDash:     "dash",
	slotPressure: "pressure",
	slotIndices:  "indices",
	slotData:     "data",
	slotChild:    "child",
	slotChildren: "children",
	slotMiter:    "miter",
}))

var childLayout = schema.MustCompose("child", schema.NewLayer("child", []string{0: "name"}))

func writeChild(s *Session, name string) Offset {
	n := s.String(name)
	s.StartTable(childLayout)
	s.Ref(0, n)

	return s.EndTable()
}

func buildFixture(t *testing.T) []byte {
	t.Helper()

	s := NewSession(flatbuffers.NewBuilder(0))

	name := s.String("fixture")
	tags := s.Strings([]string{"a", "b", "fixture"})
	dash := s.Float64s([]float64{1.5, 2.5})
	pressure := s.Float32s([]float32{0.25, 0.5, 0.75})
	indices := s.Int32s([]int32{3, 1, 2})
	data := s.Bytes([]byte{0xde, 0xad})
	child := writeChild(s, "only")
	children := s.Offsets([]Offset{writeChild(s, "c0"), writeChild(s, "c1")})

	s.StartTable(testLayout)
	s.Ref(slotName, name)
	s.Float64(slotWidth, 0) // equal to the schema default, must still be present
	s.Float64(slotOpacity, 1)
	s.Bool(slotVisible, false)
	s.Uint8(slotKind, 7)
	s.Int32(slotCount, -3)
	s.Int64(slotStamp, 1_700_000_000_000)
	s.Ref(slotNote, s.OptString(nil))
	s.Ref(slotTags, tags)
	s.Ref(slotDash, dash)
	s.Ref(slotPressure, pressure)
	s.Ref(slotIndices, indices)
	s.Ref(slotData, data)
	s.Ref(slotChild, child)
	s.Ref(slotChildren, children)
	s.OptFloat64(slotMiter, nil)
	root := s.EndTable()
	s.Finish(root)

	return s.FinishedBytes()
}

func TestSession_RoundTrip(t *testing.T) {
	buf := buildFixture(t)

	tbl, err := Root(buf)
	require.NoError(t, err)
	require.False(t, tbl.IsZero())

	require.Equal(t, "fixture", tbl.String(slotName))
	require.True(t, tbl.Has(slotWidth))
	require.Equal(t, 0.0, tbl.Float64(slotWidth, 99))
	require.Equal(t, 1.0, tbl.Float64(slotOpacity, 0))
	require.False(t, tbl.Bool(slotVisible, true))
	require.Equal(t, uint8(7), tbl.Uint8(slotKind, 0))
	require.Equal(t, int32(-3), tbl.Int32(slotCount, 0))
	require.Equal(t, int64(1_700_000_000_000), tbl.Int64(slotStamp, 0))

	require.False(t, tbl.Has(slotNote))
	require.Nil(t, tbl.OptString(slotNote))
	require.Equal(t, "", tbl.String(slotNote))
	require.Nil(t, tbl.OptFloat64(slotMiter))
	require.Equal(t, 4.0, tbl.Float64(slotMiter, 4))

	require.Equal(t, []string{"a", "b", "fixture"}, tbl.Strings(slotTags))
	require.Equal(t, []float64{1.5, 2.5}, tbl.Float64s(slotDash))
	require.Equal(t, []float32{0.25, 0.5, 0.75}, tbl.Float32s(slotPressure))
	require.Equal(t, []int32{3, 1, 2}, tbl.Int32s(slotIndices))
	require.Equal(t, []byte{0xde, 0xad}, tbl.Bytes(slotData))

	child, ok := tbl.Table(slotChild)
	require.True(t, ok)
	require.Equal(t, "only", child.String(0))

	vec := tbl.Tables(slotChildren)
	require.Equal(t, 2, vec.Len())
	require.Equal(t, "c0", vec.Table(0).String(0))
	require.Equal(t, "c1", vec.Table(1).String(0))
}

func TestSession_EmptyInputsAreAbsent(t *testing.T) {
	s := NewSession(flatbuffers.NewBuilder(0))
	require.Zero(t, s.Bytes(nil))
	require.Zero(t, s.Strings([]string{}))
	require.Zero(t, s.Float64s(nil))
	require.Zero(t, s.Float32s(nil))
	require.Zero(t, s.Int32s(nil))
	require.Zero(t, s.Offsets(nil))
	require.Zero(t, s.OptString(nil))
}

func TestTable_BytesAreCopied(t *testing.T) {
	buf := buildFixture(t)
	tbl, err := Root(buf)
	require.NoError(t, err)

	data := tbl.Bytes(slotData)
	name := tbl.String(slotName)
	for i := range buf {
		buf[i] = 0
	}

	require.Equal(t, []byte{0xde, 0xad}, data)
	require.Equal(t, "fixture", name)
}

func TestTable_AbsentSubTable(t *testing.T) {
	s := NewSession(flatbuffers.NewBuilder(0))
	s.StartTable(testLayout)
	s.Finish(s.EndTable())

	tbl, err := Root(s.FinishedBytes())
	require.NoError(t, err)

	sub, ok := tbl.Table(slotChild)
	require.False(t, ok)
	require.True(t, sub.IsZero())
	require.Zero(t, tbl.Vector(slotChildren, flatbuffers.SizeUOffsetT).Len())
	require.Nil(t, tbl.Strings(slotTags))
	require.Nil(t, tbl.Bytes(slotData))
}

func TestRoot_Errors(t *testing.T) {
	buf := buildFixture(t)

	_, err := Root(buf[:5])
	require.ErrorIs(t, err, errs.ErrMalformedBuffer)

	wrongID := append([]byte(nil), buf...)
	copy(wrongID[4:8], "XXXX")
	_, err = Root(wrongID)
	require.ErrorIs(t, err, errs.ErrInvalidIdentifier)

	badRoot := append([]byte(nil), buf...)
	badRoot[0], badRoot[1], badRoot[2], badRoot[3] = 0xff, 0xff, 0xff, 0x7f
	_, err = Root(badRoot)
	require.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func readAll(buf []byte) (err error) {
	defer Recover(&err)

	tbl, err := Root(buf)
	if err != nil {
		return err
	}

	_ = tbl.String(slotName)
	_ = tbl.Strings(slotTags)
	_ = tbl.Float64s(slotDash)
	_ = tbl.Float32s(slotPressure)
	_ = tbl.Int32s(slotIndices)
	_ = tbl.Bytes(slotData)
	if child, ok := tbl.Table(slotChild); ok {
		_ = child.String(0)
	}
	vec := tbl.Vector(slotChildren, flatbuffers.SizeUOffsetT)
	for i := 0; i < vec.Len(); i++ {
		_ = vec.Table(i).String(0)
	}

	return nil
}

func TestTable_TruncatedBuffers(t *testing.T) {
	buf := buildFixture(t)
	require.NoError(t, readAll(buf))

	for cut := 8; cut < len(buf); cut++ {
		err := readAll(buf[:cut])
		if err != nil {
			require.True(t, errors.Is(err, errs.ErrMalformedBuffer), "cut %d: %v", cut, err)
		}
	}
}

func TestVector_IndexOutOfRange(t *testing.T) {
	buf := buildFixture(t)

	err := func() (err error) {
		defer Recover(&err)
		tbl, _ := Root(buf)
		tbl.Vector(slotChildren, flatbuffers.SizeUOffsetT).Table(5)

		return nil
	}()
	require.ErrorIs(t, err, errs.ErrMalformedBuffer)
}

func TestRecover_RepanicsForeignValues(t *testing.T) {
	require.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("not a buffer problem")
	})
}
