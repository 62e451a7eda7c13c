// Package view implements strided 2D windows over shared backing storage.
//
// A View couples a layout.MetaData with a Store. Slicing, transposing and
// mode changes derive new views on the same store without copying: a write
// through any of them is visible through all of them. Detach is the explicit
// way to obtain a private copy.
package view

import (
	"fmt"
	"strings"

	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
)

// View is a strided window of element type V.
type View[V any] struct {
	md    layout.MetaData
	env   *env.Env
	store Store[V]
}

// Attach creates a view of store described by md. Every position md can
// address must lie inside the store.
func Attach[V any](e *env.Env, md layout.MetaData, store Store[V]) (*View[V], error) {
	if err := layout.ValidateShape(md.Rows(), md.Cols()); err != nil {
		return nil, err
	}
	if lo, hi := md.Span(); lo < 0 || hi >= store.Len() {
		return nil, fmt.Errorf("%w: %s addresses [%d,%d] of a store of length %d",
			layout.ErrOutOfRange, md, lo, hi, store.Len())
	}
	return attach(e, md, store), nil
}

func attach[V any](e *env.Env, md layout.MetaData, store Store[V]) *View[V] {
	store.attach()
	return &View[V]{md: md, env: e, store: store}
}

// Alloc creates a view of md over a fresh zero-filled Shared buffer just
// large enough for every position md addresses.
func Alloc[V any](e *env.Env, md layout.MetaData) (*View[V], error) {
	if err := layout.ValidateShape(md.Rows(), md.Cols()); err != nil {
		return nil, err
	}
	lo, hi := md.Span()
	if lo < 0 {
		return nil, fmt.Errorf("%w: %s reaches below index 0", layout.ErrOutOfRange, md)
	}
	return attach[V](e, md, NewShared[V](hi+1)), nil
}

// Scalar creates a (1,1) array-mode view holding value by value.
func Scalar(e *env.Env, value float64) *View[float64] {
	return attach[float64](e, layout.New(layout.Array, 1, 1), &cell{value: value})
}

// Meta returns the view's metadata.
func (v *View[V]) Meta() layout.MetaData { return v.md }

// Env returns the environment the view was created in.
func (v *View[V]) Env() *env.Env { return v.env }

// Store returns the backing store.
func (v *View[V]) Store() Store[V] { return v.store }

// Mode returns the view's mode.
func (v *View[V]) Mode() layout.Mode { return v.md.Mode() }

// Shape returns (rows, cols).
func (v *View[V]) Shape() (int, int) { return v.md.Shape() }

// Size returns rows*cols.
func (v *View[V]) Size() int { return v.md.Size() }

// PreferReversedTraverse reports whether column-major traversal suits the
// view's layout better. Scalars never prefer it.
func (v *View[V]) PreferReversedTraverse() bool {
	return !v.md.IsScalar() && v.md.PreferReversedTraverse()
}

// Index resolves (i, j) to a linear store position. With env checks enabled
// an out-of-bounds coordinate or a strided scalar panics.
func (v *View[V]) Index(i, j int) int {
	if v.env.Checks() {
		v.mustContain(i, j)
	}
	return v.md.Index(i, j)
}

func (v *View[V]) mustContain(i, j int) {
	r, c := v.md.Shape()
	if i < 0 || i >= r || j < 0 || j >= c {
		panic(fmt.Sprintf("index (%d,%d) out of bounds for shape (%d,%d)", i, j, r, c))
	}
	if v.md.IsScalar() && (v.md.Stride(0) != 0 || v.md.Stride(1) != 0) {
		panic(fmt.Sprintf("scalar view with stride (%d,%d)", v.md.Stride(0), v.md.Stride(1)))
	}
}

// At returns element (i, j).
func (v *View[V]) At(i, j int) V {
	return v.store.Load(v.Index(i, j))
}

// Set stores value at (i, j).
func (v *View[V]) Set(i, j int, value V) {
	v.store.Store(v.Index(i, j), value)
}

// Get is At with bounds checking reported as ErrOutOfRange.
func (v *View[V]) Get(i, j int) (V, error) {
	if err := v.bounds(i, j); err != nil {
		var zero V
		return zero, err
	}
	return v.store.Load(v.md.Index(i, j)), nil
}

// Put is Set with bounds checking reported as ErrOutOfRange.
func (v *View[V]) Put(i, j int, value V) error {
	if err := v.bounds(i, j); err != nil {
		return err
	}
	v.store.Store(v.md.Index(i, j), value)
	return nil
}

func (v *View[V]) bounds(i, j int) error {
	r, c := v.md.Shape()
	if i < 0 || i >= r || j < 0 || j >= c {
		return fmt.Errorf("%w: (%d,%d) for shape (%d,%d)", layout.ErrOutOfRange, i, j, r, c)
	}
	return nil
}

// Slice derives the sub-view selected by r0 along rows and r1 along columns.
// Each range is validated against its axis and reduced to the most specific
// descriptor before derivation.
func (v *View[V]) Slice(r0, r1 layout.Range) (*View[V], error) {
	n0, err := r0.Normalize(v.md.Rows())
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	n1, err := r1.Normalize(v.md.Cols())
	if err != nil {
		return nil, fmt.Errorf("cols: %w", err)
	}
	return v.SliceWith(layout.Classify(n0, v.md.Rows()), layout.Classify(n1, v.md.Cols())), nil
}

// SliceWith derives a sub-view from already-validated descriptors.
func (v *View[V]) SliceWith(s0, s1 layout.Slice) *View[V] {
	return v.derive(layout.Derive(v.md, s0, s1))
}

// Row returns row i as a (1, cols) view.
func (v *View[V]) Row(i int) (*View[V], error) {
	return v.Slice(layout.At(i), layout.To(v.md.Cols()))
}

// Col returns column j as a (rows, 1) view.
func (v *View[V]) Col(j int) (*View[V], error) {
	return v.Slice(layout.To(v.md.Rows()), layout.At(j))
}

// Transpose returns the transposed view. No data moves.
func (v *View[V]) Transpose() *View[V] { return v.derive(v.md.Transposed()) }

// Copy returns another view with identical metadata on the same store.
func (v *View[V]) Copy() *View[V] { return v.derive(v.md) }

// AsArray returns an aliasing view in Array mode.
func (v *View[V]) AsArray() *View[V] { return v.WithMode(layout.Array) }

// AsMatrix returns an aliasing view in Matrix mode.
func (v *View[V]) AsMatrix() *View[V] { return v.WithMode(layout.Matrix) }

// WithMode returns an aliasing view carrying mode m.
func (v *View[V]) WithMode(m layout.Mode) *View[V] { return v.derive(v.md.WithMode(m)) }

func (v *View[V]) derive(md layout.MetaData) *View[V] {
	return attach(v.env, md, v.store)
}

// Detach returns a private, contiguous row-major copy. Writes to the copy
// are not visible through v and vice versa.
func (v *View[V]) Detach() *View[V] {
	r, c := v.md.Shape()
	md := layout.New(v.md.Mode(), r, c)
	return attach[V](v.env, md, SharedOf(v.Values()))
}

// Release drops this view's reference to its store. The view must not be
// used afterwards.
func (v *View[V]) Release() {
	if v.store != nil {
		v.store.detach()
		v.store = nil
	}
}

// Values returns a row-major snapshot of the view's elements.
func (v *View[V]) Values() []V {
	r, c := v.md.Shape()
	out := make([]V, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, v.store.Load(v.md.Index(i, j)))
		}
	}
	return out
}

// Fill sets every element of the view to value.
func (v *View[V]) Fill(value V) {
	Walk(v.md, func(i, j int) { v.store.Store(v.md.Index(i, j), value) })
}

// String renders the view row by row.
func (v *View[V]) String() string {
	var sb strings.Builder
	r, c := v.md.Shape()
	fmt.Fprintf(&sb, "%s(%d,%d)[", v.md.Mode(), r, c)
	for i := 0; i < r; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprint(&sb, v.store.Load(v.md.Index(i, j)))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

// Walk calls fn for every (i, j) of md, column-major when md prefers reversed
// traversal and row-major otherwise. Callers must not depend on the order.
func Walk(md layout.MetaData, fn func(i, j int)) {
	r, c := md.Shape()
	if md.PreferReversedTraverse() {
		for j := 0; j < c; j++ {
			for i := 0; i < r; i++ {
				fn(i, j)
			}
		}
		return
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fn(i, j)
		}
	}
}
