package pool

import "sync"

// SlicePool pools slices of T. Get returns a slice of the requested length; the
// returned cleanup func hands the backing array back to the pool.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a slice with length size from the pool, allocating when the pooled
// slice is too small. Contents are not cleared.
//
// Example:
//
//	path, cleanup := pathPool.Get(depth + 1)
//	defer cleanup()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}
