package bufferpool

import (
	"math/bits"
	"sync"
)

const (
	maximumPoolCnt = 16
	minCapShift    = 5
)

// Pool recycles slices of T of various capacities.
//
//	pools[0] is for capacities from 0 upto 32
//	pools[1] is for capacities from 33 upto 64
//	pools[2] is for capacities from 65 upto 128
//	...
//	pools[n] is for capacities from 2^(n+4)+1 to 2^(n+5)
//
// The zero value is ready to use.
type Pool[T any] struct {
	pools [maximumPoolCnt]sync.Pool
}

// Get returns an empty slice able to hold at least dataLen elements.
func (p *Pool[T]) Get(dataLen int) []T {
	id, poolCap := getPoolIDAndCapacity(dataLen)
	if b := p.pools[id].Get(); b != nil {
		return *(b.(*[]T))
	}

	// if the pool is empty, then allocate new poolCap elements
	return make([]T, 0, poolCap)
}

// Put hands buf back. The buffer lands in the largest class it can fully
// serve, so Get never returns less than the class capacity.
func (p *Pool[T]) Put(buf []T) {
	capacity := cap(buf)
	if capacity < 1<<minCapShift {
		return
	}

	id := bits.Len(uint(capacity>>minCapShift)) - 1
	if id >= maximumPoolCnt {
		// there is no available pool that can handle this size
		return
	}

	clear(buf[:capacity])
	buf = buf[:0]
	p.pools[id].Put(&buf)
}

// getPoolIDAndCapacity predict the poolId from given data size
// and return the pool maximum capacity
func getPoolIDAndCapacity(size int) (int, int) {
	size--
	size = max(size, 0)
	size >>= minCapShift
	id := bits.Len(uint(size))
	id = min(id, maximumPoolCnt-1)
	return id, 1 << (id + minCapShift)
}
