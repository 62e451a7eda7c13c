package view

import (
	"fmt"
	"sync/atomic"

	"github.com/modelkit/grid/internal/layout"
)

// Store is the backing storage of a view: a fixed-size container indexed by
// linear position. The set of implementations is closed: Shared, Lease and
// the single-value cell behind scalars.
type Store[V any] interface {
	Len() int
	Load(idx int) V
	Store(idx int, v V)

	// attach is called once for every view that starts referencing the store.
	attach()
	// detach is called when such a view is released.
	detach()
}

// Shared is a reference-counted buffer. Views derived from one another share
// a single Shared and observe each other's writes; the data is dropped when
// the last view releases it.
type Shared[V any] struct {
	data []V
	refs atomic.Int32
}

// NewShared creates a zero-filled shared buffer of n elements with no references.
func NewShared[V any](n int) *Shared[V] {
	return &Shared[V]{data: make([]V, n)}
}

// SharedOf wraps data without copying it.
func SharedOf[V any](data []V) *Shared[V] {
	return &Shared[V]{data: data}
}

// Len returns the number of elements.
func (s *Shared[V]) Len() int { return len(s.data) }

// Load returns element idx.
func (s *Shared[V]) Load(idx int) V { return s.data[idx] }

// Store sets element idx.
func (s *Shared[V]) Store(idx int, v V) { s.data[idx] = v }

// Refs returns the number of views currently holding the buffer.
func (s *Shared[V]) Refs() int { return int(s.refs.Load()) }

// Unique reports whether at most one view holds the buffer.
func (s *Shared[V]) Unique() bool { return s.refs.Load() <= 1 }

// Data exposes the underlying slice.
//
// WARNING: writes through the slice are visible to every view on the buffer.
func (s *Shared[V]) Data() []V { return s.data }

func (s *Shared[V]) attach() { s.refs.Add(1) }

func (s *Shared[V]) detach() {
	if s.refs.Add(-1) == 0 {
		s.data = nil
	}
}

// Lease is a borrowed float64 buffer owned by the caller. Every view built on
// it is valid only until Release; later access panics with ErrReleased
// instead of reading memory the owner may have reused.
type Lease struct {
	data     []float64
	released atomic.Bool
	views    atomic.Int32
}

// Borrow wraps caller-owned data. The caller keeps ownership and must call
// Release once it stops guaranteeing the memory.
func Borrow(data []float64) *Lease {
	return &Lease{data: data}
}

// Len returns the number of elements.
func (l *Lease) Len() int { return len(l.data) }

// Load returns element idx.
func (l *Lease) Load(idx int) float64 {
	l.check()
	return l.data[idx]
}

// Store sets element idx in the caller's buffer.
func (l *Lease) Store(idx int, v float64) {
	l.check()
	l.data[idx] = v
}

// Release ends the lease. Views created from it must not be used afterwards.
func (l *Lease) Release() { l.released.Store(true) }

// Released reports whether Release was called.
func (l *Lease) Released() bool { return l.released.Load() }

// Views returns the number of live views on the lease.
func (l *Lease) Views() int { return int(l.views.Load()) }

func (l *Lease) check() {
	if l.released.Load() {
		panic(fmt.Sprintf("%v (len %d)", layout.ErrReleased, len(l.data)))
	}
}

func (l *Lease) attach() { l.views.Add(1) }
func (l *Lease) detach() { l.views.Add(-1) }

// cell holds one float64 by value and answers every index with it.
type cell struct {
	value float64
}

func (c *cell) Len() int               { return 1 }
func (c *cell) Load(int) float64       { return c.value }
func (c *cell) Store(_ int, v float64) { c.value = v }
func (c *cell) attach()                {}
func (c *cell) detach()                {}
