package dispatch

import "github.com/modelkit/grid/internal/layout"

// Operand is anything the engine can read elements of type E from:
// expression arrays directly, numeric arrays and scalars through Lift.
type Operand[E any] interface {
	Meta() layout.MetaData
	At(i, j int) E
}

// Lift presents a float64 operand as an operand of E, promoting each element
// with conv as it is read.
func Lift[E any](src Operand[float64], conv func(float64) E) Operand[E] {
	return lifted[E]{src: src, conv: conv}
}

type lifted[E any] struct {
	src  Operand[float64]
	conv func(float64) E
}

func (l lifted[E]) Meta() layout.MetaData { return l.src.Meta() }
func (l lifted[E]) At(i, j int) E         { return l.conv(l.src.At(i, j)) }

// sink is a destination written one element at a time. Writes go through
// the destination's own metadata, so a sliced view is a valid sink.
type sink[D any] interface {
	Meta() layout.MetaData
	Set(i, j int, v D)
}
