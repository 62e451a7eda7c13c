package layout

import "fmt"

// MetaData describes how a 2D view maps logical (i, j) coordinates onto a
// linear backing store. It is a plain value: copies never share state.
//
// Offsets and strides count elements, not bytes. A (1,1) shape always carries
// a (0,0) stride.
type MetaData struct {
	mode   Mode
	offset int
	shape  [2]int
	stride [2]int
}

// New returns metadata for a fresh, contiguous row-major view of rows x cols.
func New(mode Mode, rows, cols int) MetaData {
	md := MetaData{mode: mode, shape: [2]int{rows, cols}}
	if rows*cols != 1 {
		md.stride = [2]int{cols, 1}
	}
	return md
}

// NewStrided returns metadata with an explicit offset and stride pair.
// A (1,1) shape must be declared with a zero stride.
func NewStrided(mode Mode, offset, rows, cols, stride0, stride1 int) (MetaData, error) {
	if rows == 1 && cols == 1 && (stride0 != 0 || stride1 != 0) {
		return MetaData{}, fmt.Errorf("%w: got (%d,%d)", ErrScalarStride, stride0, stride1)
	}
	return MetaData{
		mode:   mode,
		offset: offset,
		shape:  [2]int{rows, cols},
		stride: [2]int{stride0, stride1},
	}, nil
}

// withStride builds metadata at offset 0, zeroing the stride for a scalar shape.
func withStride(mode Mode, rows, cols, stride0, stride1 int) MetaData {
	md := MetaData{mode: mode, shape: [2]int{rows, cols}}
	if rows != 1 || cols != 1 {
		md.stride = [2]int{stride0, stride1}
	}
	return md
}

// Derive computes the metadata of the sub-view selected by s0 along rows and
// s1 along columns. Bounds are the caller's responsibility; use
// Range.Normalize to validate user-supplied slices first.
func Derive(md MetaData, s0, s1 Slice) MetaData {
	out := MetaData{
		mode:   md.mode,
		offset: md.offset + s0.Start()*md.stride[0] + s1.Start()*md.stride[1],
		shape:  [2]int{s0.Size(), s1.Size()},
	}
	if out.shape[0]*out.shape[1] != 1 {
		out.stride = [2]int{md.stride[0] * s0.Step(), md.stride[1] * s1.Step()}
	}
	return out
}

// ValidateShape checks that both dimensions are positive.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: (%d,%d) (dimensions must be > 0)", ErrBadShape, rows, cols)
	}
	return nil
}

// Mode returns the logical mode tag.
func (md MetaData) Mode() Mode { return md.mode }

// WithMode returns a copy of md carrying mode m.
func (md MetaData) WithMode(m Mode) MetaData {
	md.mode = m
	return md
}

// Offset returns the linear index of element (0,0).
func (md MetaData) Offset() int { return md.offset }

// Shape returns (rows, cols).
func (md MetaData) Shape() (int, int) { return md.shape[0], md.shape[1] }

// Rows returns the number of rows.
func (md MetaData) Rows() int { return md.shape[0] }

// Cols returns the number of columns.
func (md MetaData) Cols() int { return md.shape[1] }

// Dim returns the extent of axis i (0 or 1); any other axis reports 0.
func (md MetaData) Dim(i int) int {
	if i == 0 || i == 1 {
		return md.shape[i]
	}
	return 0
}

// Stride returns the stride of axis i (0 or 1); any other axis reports 0.
func (md MetaData) Stride(i int) int {
	if i == 0 || i == 1 {
		return md.stride[i]
	}
	return 0
}

// Size returns rows*cols.
func (md MetaData) Size() int { return md.shape[0] * md.shape[1] }

// IsScalar reports whether the shape is (1,1).
func (md MetaData) IsScalar() bool { return md.shape[0] == 1 && md.shape[1] == 1 }

// Index resolves (i, j) to a linear index. No bounds checking is done here.
func (md MetaData) Index(i, j int) int {
	return md.offset + md.stride[0]*i + md.stride[1]*j
}

// Span returns the smallest and largest linear index the view can address.
func (md MetaData) Span() (lo, hi int) {
	lo, hi = md.offset, md.offset
	for axis := 0; axis < 2; axis++ {
		reach := md.stride[axis] * (md.shape[axis] - 1)
		if reach < 0 {
			lo += reach
		} else {
			hi += reach
		}
	}
	return lo, hi
}

// Transposed swaps shape and stride pairs. No data moves.
func (md MetaData) Transposed() MetaData {
	md.shape[0], md.shape[1] = md.shape[1], md.shape[0]
	md.stride[0], md.stride[1] = md.stride[1], md.stride[0]
	return md
}

// MatrixMultiplicationApplies reports whether a multiply between md and
// right is a true matrix product: at least one side is in Matrix mode and
// neither side is a (1,1) scalar.
func (md MetaData) MatrixMultiplicationApplies(right MetaData) bool {
	return (md.mode == Matrix || right.mode == Matrix) &&
		!md.IsScalar() && !right.IsScalar()
}

// PreferReversedTraverse reports whether column-major traversal (j outer,
// i inner) has better locality. It is a hint only.
func (md MetaData) PreferReversedTraverse() bool {
	return md.stride[0] < md.stride[1]
}

// IsDense reports whether the view addresses exactly the linear range
// [offset, offset+Size()) in row-major or column-major order.
func (md MetaData) IsDense() bool {
	r, c := md.shape[0], md.shape[1]
	switch {
	case r == 1 && c == 1:
		return true
	case r == 1:
		return md.stride[1] == 1
	case c == 1:
		return md.stride[0] == 1
	default:
		return (md.stride[0] == c && md.stride[1] == 1) ||
			(md.stride[0] == 1 && md.stride[1] == r)
	}
}

// Equal reports whether two metadata values are identical.
func (md MetaData) Equal(other MetaData) bool {
	return md == other
}

// SameShape reports whether md and other have equal (rows, cols).
func (md MetaData) SameShape(other MetaData) bool {
	return md.shape == other.shape
}

// String renders md for diagnostics.
func (md MetaData) String() string {
	return fmt.Sprintf("MetaData{mode=%s offset=%d shape=(%d,%d) stride=(%d,%d)}",
		md.mode, md.offset, md.shape[0], md.shape[1], md.stride[0], md.stride[1])
}
