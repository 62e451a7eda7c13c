package layout

import "fmt"

// ProductKind tells the resolver how a binary operator treats multiplication.
type ProductKind int

// Product kinds.
const (
	// Elementwise never forms a matrix product.
	Elementwise ProductKind = iota
	// Auto forms a matrix product when MatrixMultiplicationApplies.
	Auto
	// MatrixProduct always forms a matrix product.
	MatrixProduct
)

// String returns the product kind name.
func (k ProductKind) String() string {
	switch k {
	case Elementwise:
		return "elementwise"
	case Auto:
		return "auto"
	case MatrixProduct:
		return "matrix"
	default:
		return "unknown"
	}
}

// IsMatrixProduct reports whether combining a and b under k is a true
// matrix product rather than an elementwise operation.
func (k ProductKind) IsMatrixProduct(a, b MetaData) bool {
	return k == MatrixProduct || (k == Auto && a.MatrixMultiplicationApplies(b))
}

// ResultMode is Matrix when either operand is a Matrix, Array otherwise.
func ResultMode(a, b Mode) Mode {
	if a == Matrix || b == Matrix {
		return Matrix
	}
	return Array
}

// Resolve computes the metadata of the destination of a binary operation
// between a and b. ok is false when the shapes cannot be combined.
//
// Rules, in order:
//  1. matrix product: a.cols must equal b.rows, result is (a.rows, b.cols);
//  2. equal shapes: result keeps the shared stride when both strides match
//     and describe a dense layout, default stride otherwise;
//  3. a is (1,1): broadcast over b's shape;
//  4. b is (1,1): broadcast over a's shape.
//
// Any other combination is incompatible; broadcasting is limited to scalars.
func Resolve(kind ProductKind, a, b MetaData) (MetaData, bool) {
	mode := ResultMode(a.mode, b.mode)

	switch {
	case kind.IsMatrixProduct(a, b):
		if a.shape[1] != b.shape[0] {
			return MetaData{}, false
		}
		return New(mode, a.shape[0], b.shape[1]), true

	case a.shape == b.shape:
		// A sparse stride would address past a fresh rows*cols buffer.
		if a.stride == b.stride && a.IsDense() {
			return withStride(mode, a.shape[0], a.shape[1], a.stride[0], a.stride[1]), true
		}
		return New(mode, a.shape[0], a.shape[1]), true

	case a.IsScalar():
		if a.stride != [2]int{} {
			panic(fmt.Sprintf("resolve: scalar operand with stride (%d,%d)", a.stride[0], a.stride[1]))
		}
		return New(mode, b.shape[0], b.shape[1]), true

	case b.IsScalar():
		if b.stride != [2]int{} {
			panic(fmt.Sprintf("resolve: scalar operand with stride (%d,%d)", b.stride[0], b.stride[1]))
		}
		return New(mode, a.shape[0], a.shape[1]), true

	default:
		return MetaData{}, false
	}
}

// Combine is Resolve with the incompatible case turned into a descriptive
// ErrShapeMismatch for the end user.
func Combine(kind ProductKind, a, b MetaData) (MetaData, error) {
	md, ok := Resolve(kind, a, b)
	if ok {
		return md, nil
	}
	if kind.IsMatrixProduct(a, b) {
		return MetaData{}, fmt.Errorf("%w: matrix product (%d,%d) x (%d,%d): inner dimensions %d != %d",
			ErrShapeMismatch, a.shape[0], a.shape[1], b.shape[0], b.shape[1], a.shape[1], b.shape[0])
	}
	return MetaData{}, fmt.Errorf("%w: (%d,%d) and (%d,%d) are neither equal nor scalar",
		ErrShapeMismatch, a.shape[0], a.shape[1], b.shape[0], b.shape[1])
}

// Reduced returns the destination metadata for reducing md along axis.
func Reduced(md MetaData, axis Axis) MetaData {
	rows, cols := 1, 1
	switch axis {
	case AxisRows:
		cols = md.shape[1]
	case AxisCols:
		rows = md.shape[0]
	}
	return New(md.mode, rows, cols)
}
