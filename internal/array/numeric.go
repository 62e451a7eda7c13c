package array

import (
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// Numeric is a float64 array over a caller-owned buffer. The caller lends
// the buffer through a view.Lease and must keep it alive until it releases
// the lease; every Numeric derived from the lease becomes unusable then.
type Numeric struct {
	*view.View[float64]
}

// NewNumeric views lease through md. md may describe any strided layout as
// long as every addressed position lies inside the lease.
func NewNumeric(e *env.Env, lease *view.Lease, md layout.MetaData) (*Numeric, error) {
	v, err := view.Attach[float64](e, md, lease)
	if err != nil {
		return nil, err
	}
	return &Numeric{View: v}, nil
}

// Dense views lease as a row-major rows x cols array.
func Dense(e *env.Env, lease *view.Lease, mode layout.Mode, rows, cols int) (*Numeric, error) {
	return NewNumeric(e, lease, layout.New(mode, rows, cols))
}

// Slice derives an aliasing sub-array on the same lease.
func (x *Numeric) Slice(r0, r1 layout.Range) (*Numeric, error) {
	v, err := x.View.Slice(r0, r1)
	if err != nil {
		return nil, err
	}
	return &Numeric{View: v}, nil
}

// Transpose returns the aliasing transposed array.
func (x *Numeric) Transpose() *Numeric { return &Numeric{View: x.View.Transpose()} }

// AsArray returns an aliasing array in Array mode.
func (x *Numeric) AsArray() *Numeric { return &Numeric{View: x.View.AsArray()} }

// AsMatrix returns an aliasing array in Matrix mode.
func (x *Numeric) AsMatrix() *Numeric { return &Numeric{View: x.View.AsMatrix()} }

// Copy returns an aliasing array with identical metadata.
func (x *Numeric) Copy() *Numeric { return &Numeric{View: x.View.Copy()} }

// Detach copies the viewed elements into an owned expression array that
// stays valid after the lease is released.
func (x *Numeric) Detach() *Expression[float64] { return ExpressionFrom(x.View.Detach()) }
