package pool

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"
)

func TestBuilderPool_GetReturnsResetBuilder(t *testing.T) {
	p := NewBuilderPool(64, 1024)

	b := p.Get()
	s := b.CreateString("hello")
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, s, 0)
	b.Finish(b.EndObject())
	require.NotEmpty(t, b.FinishedBytes())
	p.Put(b)

	again := p.Get()
	require.Equal(t, flatbuffers.UOffsetT(0), again.Offset(), "builder must come back empty")
}

func TestBuilderPool_DropsOversized(t *testing.T) {
	p := NewBuilderPool(16, 32)

	b := p.Get()
	b.CreateByteVector(make([]byte, 4096))
	require.Greater(t, cap(b.Bytes), 32)

	// Put must not panic and must not retain the builder; a later Get still works.
	p.Put(b)
	require.NotNil(t, p.Get())
}

func TestBuilderPool_PutNil(t *testing.T) {
	p := NewBuilderPool(16, 0)
	require.NotPanics(t, func() { p.Put(nil) })
}
