package layout

import "errors"

// Sentinel errors shared by every grid package. Callers match them with
// errors.Is; producers wrap them with fmt.Errorf("%w: ...") when extra
// context (shapes, indices) helps the end user.
var (
	// ErrBadShape is returned when a requested shape has a non-positive dimension.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates an index or slice bound outside the viewed axis.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBadSlice indicates a slice with a zero step or an empty extent.
	ErrBadSlice = errors.New("grid: invalid slice")

	// ErrShapeMismatch is the user-facing form of an incompatible combination:
	// shapes neither equal nor scalar-broadcastable, or a matrix product whose
	// inner dimensions disagree.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrScalarStride signals a (1,1) shape declared with a non-zero stride.
	ErrScalarStride = errors.New("grid: scalar view must have zero stride")

	// ErrSizeMismatch indicates a supplied buffer whose length disagrees with
	// the declared shape.
	ErrSizeMismatch = errors.New("grid: buffer size mismatch")

	// ErrUnknownOp is returned for an operator code outside its closed enumeration.
	ErrUnknownOp = errors.New("grid: unknown operator")

	// ErrReleased marks access through a borrowed buffer after its owner released it.
	ErrReleased = errors.New("grid: borrowed buffer released")
)
