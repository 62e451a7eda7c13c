package array

import (
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/view"
)

// Scalar holds a single float64 by value. It always reports shape (1,1),
// stride (0,0) and offset 0, so it broadcasts against any shape.
type Scalar struct {
	*view.View[float64]
}

// NewScalar creates a scalar holding value.
func NewScalar(e *env.Env, value float64) *Scalar {
	return &Scalar{View: view.Scalar(e, value)}
}

// Value returns the held value.
func (s *Scalar) Value() float64 { return s.At(0, 0) }

// SetValue replaces the held value.
func (s *Scalar) SetValue(v float64) { s.Set(0, 0, v) }
