package array

import (
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// Constraint is an array of constraints (predicate results) of type C over
// a shared, reference-counted buffer.
type Constraint[C any] struct {
	*view.View[C]
}

// ConstraintOf allocates a constraint array described by md.
func ConstraintOf[C any](e *env.Env, md layout.MetaData) (*Constraint[C], error) {
	v, err := view.Alloc[C](e, md)
	if err != nil {
		return nil, err
	}
	return &Constraint[C]{View: v}, nil
}

// NewConstraint allocates a rows x cols constraint array.
func NewConstraint[C any](e *env.Env, mode layout.Mode, rows, cols int) (*Constraint[C], error) {
	return ConstraintOf[C](e, layout.New(mode, rows, cols))
}

// Constraints returns the viewed constraints in row-major order.
func (x *Constraint[C]) Constraints() []C { return x.Values() }

// Slice derives an aliasing sub-array.
func (x *Constraint[C]) Slice(r0, r1 layout.Range) (*Constraint[C], error) {
	v, err := x.View.Slice(r0, r1)
	if err != nil {
		return nil, err
	}
	return &Constraint[C]{View: v}, nil
}

// Transpose returns the aliasing transposed array.
func (x *Constraint[C]) Transpose() *Constraint[C] {
	return &Constraint[C]{View: x.View.Transpose()}
}

// Copy returns an aliasing array with identical metadata.
func (x *Constraint[C]) Copy() *Constraint[C] { return &Constraint[C]{View: x.View.Copy()} }

// AsArray returns an aliasing array in Array mode.
func (x *Constraint[C]) AsArray() *Constraint[C] { return &Constraint[C]{View: x.View.AsArray()} }

// AsMatrix returns an aliasing array in Matrix mode.
func (x *Constraint[C]) AsMatrix() *Constraint[C] { return &Constraint[C]{View: x.View.AsMatrix()} }

// Detach returns a private contiguous copy.
func (x *Constraint[C]) Detach() *Constraint[C] { return &Constraint[C]{View: x.View.Detach()} }
