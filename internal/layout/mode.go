// Package layout holds the shape/stride/offset model of 2D views: the
// MetaData value type, slice descriptors and the broadcasting resolver.
package layout

// Mode tags how an array takes part in multiplication and display.
type Mode int

// Supported modes.
const (
	Matrix Mode = iota
	Array
	Diagonal
	Constraint
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Matrix:
		return "matrix"
	case Array:
		return "array"
	case Diagonal:
		return "diagonal"
	case Constraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Axis selects the dimension collapsed by a reduction.
type Axis int

// Reduction axes. AxisRows collapses the row dimension (result is 1 x cols),
// AxisCols collapses columns (rows x 1) and AxisBoth yields a 1 x 1 result.
const (
	AxisRows Axis = iota
	AxisCols
	AxisBoth
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisCols:
		return "cols"
	case AxisBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the declared axes.
func (a Axis) Valid() bool {
	return a >= AxisRows && a <= AxisBoth
}
