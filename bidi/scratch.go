package bidi

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// scratch holds the index buffers which W5/W6 and N1/N2 need while walking
// an isolating run sequence: positions of a pending run of ETs, and positions
// of a run of NIs. Both are bounded by the length of the sequence.
type scratch struct {
	etRun []int
	niRun []int
}

// Scratch buffers are short-lived objects. To avoid re-allocating them for
// every isolating run sequence we will pool them.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			s := &scratch{
				etRun: make([]int, 0, 16),
				niRun: make([]int, 0, 16),
			}
			return s, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns an empty scratch from the pool.
func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil || o == nil {
		T().Errorf("bidi: cannot borrow scratch buffers from pool: %v", err)
		return &scratch{}
	}
	return o.(*scratch)
}

// release clears the scratch and puts it back into the pool.
func (s *scratch) release() {
	s.etRun = s.etRun[:0]
	s.niRun = s.niRun[:0]
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
