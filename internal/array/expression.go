// Package array binds the generic view to its concrete storage kinds:
// symbolic expressions, constraints, borrowed float64 buffers and scalars.
package array

import (
	"fmt"
	"slices"

	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// Expression is an array of symbolic expressions of type E over a shared,
// reference-counted buffer. An array built from decision variables also
// keeps the variables themselves as a read-only mirror.
type Expression[E any] struct {
	*view.View[E]
	vars *view.Shared[E]
}

// NewExpression allocates a rows x cols expression array in mode. Elements
// start as the zero value of E.
func NewExpression[E any](e *env.Env, mode layout.Mode, rows, cols int) (*Expression[E], error) {
	return ExpressionOf[E](e, layout.New(mode, rows, cols))
}

// ExpressionOf allocates an expression array described by md.
func ExpressionOf[E any](e *env.Env, md layout.MetaData) (*Expression[E], error) {
	v, err := view.Alloc[E](e, md)
	if err != nil {
		return nil, err
	}
	return &Expression[E]{View: v}, nil
}

// ExpressionFrom wraps an existing view.
func ExpressionFrom[E any](v *view.View[E]) *Expression[E] {
	return &Expression[E]{View: v}
}

// FromVariables creates an expression array whose elements start as the
// given variables, laid out row-major in md's shape. The variables are kept
// as the array's auxiliary buffer. len(vars) must equal rows*cols.
func FromVariables[E any](e *env.Env, mode layout.Mode, rows, cols int, vars []E) (*Expression[E], error) {
	if err := layout.ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(vars) != rows*cols {
		return nil, fmt.Errorf("%w: %d variables for shape (%d,%d)", layout.ErrSizeMismatch, len(vars), rows, cols)
	}
	v, err := view.Attach[E](e, layout.New(mode, rows, cols), view.SharedOf(slices.Clone(vars)))
	if err != nil {
		return nil, err
	}
	return &Expression[E]{View: v, vars: view.SharedOf(slices.Clone(vars))}, nil
}

// HasVars reports whether the array carries an auxiliary variable buffer.
// Only the array created by FromVariables does; derived views do not.
func (x *Expression[E]) HasVars() bool { return x.vars != nil }

// Variables returns a copy of the auxiliary variables, or false when the
// array has none.
func (x *Expression[E]) Variables() ([]E, bool) {
	if x.vars == nil {
		return nil, false
	}
	return slices.Clone(x.vars.Data()), true
}

// Expressions returns a copy of the whole backing buffer, in storage order.
func (x *Expression[E]) Expressions() []E {
	store := x.Store()
	out := make([]E, store.Len())
	for i := range out {
		out[i] = store.Load(i)
	}
	return out
}

// IsComplete reports whether the view starts at the beginning of its
// buffer and covers every element of it.
func (x *Expression[E]) IsComplete() bool {
	return x.Meta().Offset() == 0 && x.Store().Len() == x.Size()
}

// Slice derives an aliasing sub-array. See view.View.Slice.
func (x *Expression[E]) Slice(r0, r1 layout.Range) (*Expression[E], error) {
	v, err := x.View.Slice(r0, r1)
	if err != nil {
		return nil, err
	}
	return ExpressionFrom(v), nil
}

// SliceWith derives an aliasing sub-array from validated descriptors.
func (x *Expression[E]) SliceWith(s0, s1 layout.Slice) *Expression[E] {
	return ExpressionFrom(x.View.SliceWith(s0, s1))
}

// Transpose returns the aliasing transposed array.
func (x *Expression[E]) Transpose() *Expression[E] { return ExpressionFrom(x.View.Transpose()) }

// Copy returns an aliasing array with identical metadata.
func (x *Expression[E]) Copy() *Expression[E] { return ExpressionFrom(x.View.Copy()) }

// AsArray returns an aliasing array in Array mode.
func (x *Expression[E]) AsArray() *Expression[E] { return ExpressionFrom(x.View.AsArray()) }

// AsMatrix returns an aliasing array in Matrix mode.
func (x *Expression[E]) AsMatrix() *Expression[E] { return ExpressionFrom(x.View.AsMatrix()) }

// Detach returns a private contiguous copy.
func (x *Expression[E]) Detach() *Expression[E] { return ExpressionFrom(x.View.Detach()) }
