package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEqualShapes(t *testing.T) {
	a := New(Array, 3, 4)
	b := New(Array, 3, 4)

	md, ok := Resolve(Elementwise, a, b)
	require.True(t, ok)
	assert.Equal(t, a.Stride(0), md.Stride(0))
	assert.Equal(t, a.Stride(1), md.Stride(1))
	assert.Equal(t, Array, md.Mode())
}

func TestResolveKeepsDenseColumnMajorStride(t *testing.T) {
	a := New(Array, 4, 3).Transposed() // (3,4) stride (1,3)
	b := New(Array, 4, 3).Transposed()

	md, ok := Resolve(Elementwise, a, b)
	require.True(t, ok)
	assert.Equal(t, 1, md.Stride(0))
	assert.Equal(t, 3, md.Stride(1))
	assert.Equal(t, 0, md.Offset())
}

func TestResolveSparseStrideGetsDefault(t *testing.T) {
	parent := New(Array, 6, 8)
	a := Derive(parent, Span(0, 6, 2), Span(0, 8, 2)) // (3,4) stride (16,2)
	b := Derive(parent, Span(1, 6, 2), Span(1, 8, 2))

	md, ok := Resolve(Elementwise, a, b)
	require.True(t, ok)
	assert.Equal(t, 4, md.Stride(0))
	assert.Equal(t, 1, md.Stride(1))
	assert.Equal(t, 0, md.Offset())
}

func TestResolveDifferentStrides(t *testing.T) {
	a := New(Array, 3, 4)
	b := New(Array, 4, 3).Transposed()

	md, ok := Resolve(Elementwise, a, b)
	require.True(t, ok)
	assert.Equal(t, 4, md.Stride(0))
	assert.Equal(t, 1, md.Stride(1))
}

func TestResolveIncompatible(t *testing.T) {
	_, ok := Resolve(Elementwise, New(Array, 3, 4), New(Array, 4, 3))
	assert.False(t, ok)

	_, ok = Resolve(Auto, New(Array, 3, 4), New(Array, 4, 3))
	assert.False(t, ok, "array mode multiply is elementwise")

	_, err := Combine(Elementwise, New(Array, 3, 4), New(Array, 3, 5))
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "(3,4) and (3,5)")
}

func TestResolveScalarBroadcast(t *testing.T) {
	scalar := New(Array, 1, 1)
	square := New(Array, 5, 5)

	md, ok := Resolve(Elementwise, scalar, square)
	require.True(t, ok)
	r, c := md.Shape()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)

	md, ok = Resolve(Elementwise, square, scalar)
	require.True(t, ok)
	assert.Equal(t, 25, md.Size())

	md, ok = Resolve(Auto, New(Matrix, 3, 2), scalar)
	require.True(t, ok, "scalar times matrix is elementwise")
	assert.Equal(t, Matrix, md.Mode())
	assert.Equal(t, 6, md.Size())
}

func TestResolveMatrixProduct(t *testing.T) {
	md, ok := Resolve(Auto, New(Matrix, 2, 3), New(Matrix, 3, 4))
	require.True(t, ok)
	r, c := md.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, Matrix, md.Mode())

	_, ok = Resolve(Auto, New(Matrix, 2, 3), New(Matrix, 5, 4))
	assert.False(t, ok)

	_, err := Combine(MatrixProduct, New(Array, 2, 3), New(Array, 5, 4))
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "inner dimensions 3 != 5")
}

func TestResolveForcedMatrixProduct(t *testing.T) {
	// A forced product applies even to array-mode and scalar operands.
	md, ok := Resolve(MatrixProduct, New(Array, 1, 1), New(Array, 1, 4))
	require.True(t, ok)
	assert.Equal(t, Array, md.Mode())
	assert.Equal(t, 4, md.Cols())

	// Matrix mode operands under Elementwise stay elementwise.
	md, ok = Resolve(Elementwise, New(Matrix, 3, 3), New(Matrix, 3, 3))
	require.True(t, ok)
	assert.Equal(t, 9, md.Size())
}

func TestReduced(t *testing.T) {
	md := New(Matrix, 3, 5)

	rows := Reduced(md, AxisRows)
	assert.Equal(t, 1, rows.Rows())
	assert.Equal(t, 5, rows.Cols())

	cols := Reduced(md, AxisCols)
	assert.Equal(t, 3, cols.Rows())
	assert.Equal(t, 1, cols.Cols())

	both := Reduced(md, AxisBoth)
	assert.True(t, both.IsScalar())
	assert.Equal(t, Matrix, both.Mode())
}
