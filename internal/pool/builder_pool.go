// Package pool keeps FlatBuffers builders warm between encode calls.
package pool

import (
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"
)

const (
	BuilderDefaultSize  = 1024 * 16       // 16KiB
	BuilderMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// BuilderPool is a pool of flatbuffers.Builder instances.
//
// Builders whose backing array grew beyond maxThreshold are dropped on Put instead of being
// retained, so one very large document does not pin its memory for the life of the process.
type BuilderPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBuilderPool creates a pool whose new builders start with defaultSize bytes of capacity.
func NewBuilderPool(defaultSize int, maxThreshold int) *BuilderPool {
	return &BuilderPool{
		pool: sync.Pool{
			New: func() any {
				return flatbuffers.NewBuilder(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset builder from the pool.
func (bp *BuilderPool) Get() *flatbuffers.Builder {
	b, _ := bp.pool.Get().(*flatbuffers.Builder)
	b.Reset()

	return b
}

// Put returns a builder to the pool. The caller must not touch the builder, or any slice
// obtained from FinishedBytes, afterwards.
func (bp *BuilderPool) Put(b *flatbuffers.Builder) {
	if b == nil {
		return
	}

	if bp.maxThreshold > 0 && cap(b.Bytes) > bp.maxThreshold {
		return
	}

	b.Reset()
	bp.pool.Put(b)
}

var defaultPool = NewBuilderPool(BuilderDefaultSize, BuilderMaxThreshold)

// GetBuilder retrieves a builder from the default pool.
func GetBuilder() *flatbuffers.Builder {
	return defaultPool.Get()
}

// PutBuilder returns a builder to the default pool.
func PutBuilder(b *flatbuffers.Builder) {
	defaultPool.Put(b)
}
