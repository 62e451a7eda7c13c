package view

import (
	"fmt"

	"github.com/modelkit/grid/internal/layout"
)

// Fold combines the elements of src selected by s0 x s1 with fold, starting
// from the first selected element and proceeding in ascending index order
// (rows outer, columns inner). The selection must not be empty.
func Fold[V any](src *View[V], s0, s1 layout.Slice, fold func(acc, x V) V) V {
	md := src.md
	acc := src.store.Load(md.Index(s0.Start(), s1.Start()))
	first := true
	for a := 0; a < s0.Size(); a++ {
		i := s0.Start() + a*s0.Step()
		for b := 0; b < s1.Size(); b++ {
			if first {
				first = false
				continue
			}
			j := s1.Start() + b*s1.Step()
			acc = fold(acc, src.store.Load(md.Index(i, j)))
		}
	}
	return acc
}

// Reduce collapses src along axis with fold into a freshly allocated view
// shaped (1,cols), (rows,1) or (1,1), keeping src's mode.
func Reduce[V any](src *View[V], axis layout.Axis, fold func(acc, x V) V) (*View[V], error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("%w: reduction axis %d", layout.ErrOutOfRange, axis)
	}
	dest, err := Alloc[V](src.env, layout.Reduced(src.md, axis))
	if err != nil {
		return nil, err
	}
	ReduceInto(dest, src, axis, fold)
	return dest, nil
}

// ReduceInto writes the reduction of src along axis into dest, which must
// already have the reduced shape.
func ReduceInto[V any](dest, src *View[V], axis layout.Axis, fold func(acc, x V) V) {
	rows, cols := src.md.Shape()
	switch axis {
	case layout.AxisRows:
		for j := 0; j < cols; j++ {
			dest.Set(0, j, Fold(src, layout.Full{Len: rows}, layout.Single{Index: j}, fold))
		}
	case layout.AxisCols:
		for i := 0; i < rows; i++ {
			dest.Set(i, 0, Fold(src, layout.Single{Index: i}, layout.Full{Len: cols}, fold))
		}
	default:
		dest.Set(0, 0, Fold(src, layout.Full{Len: rows}, layout.Full{Len: cols}, fold))
	}
}
