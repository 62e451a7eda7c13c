package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultStride(t *testing.T) {
	tests := []struct {
		rows, cols       int
		stride0, stride1 int
	}{
		{3, 4, 4, 1},
		{1, 5, 5, 1},
		{5, 1, 1, 1},
		{1, 1, 0, 0},
	}

	for _, tt := range tests {
		md := New(Matrix, tt.rows, tt.cols)
		assert.Equal(t, tt.stride0, md.Stride(0), "New(%d,%d) stride 0", tt.rows, tt.cols)
		assert.Equal(t, tt.stride1, md.Stride(1), "New(%d,%d) stride 1", tt.rows, tt.cols)
		assert.Equal(t, 0, md.Offset())
		assert.Equal(t, tt.rows*tt.cols, md.Size())
	}
}

func TestNewStridedRejectsScalarStride(t *testing.T) {
	_, err := NewStrided(Array, 0, 1, 1, 1, 0)
	require.ErrorIs(t, err, ErrScalarStride)

	md, err := NewStrided(Array, 7, 1, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, md.Index(0, 0))
}

func TestScalarAlwaysZeroStride(t *testing.T) {
	parent := New(Array, 4, 6)
	views := []MetaData{
		New(Matrix, 1, 1),
		Derive(parent, Single{Index: 2}, Single{Index: 3}),
		Derive(parent, Span(1, 4, 5), Span(0, 6, 7)),
		Derive(parent, Single{Index: 0}, Single{Index: 0}).Transposed(),
	}

	for _, md := range views {
		require.True(t, md.IsScalar(), "%s", md)
		assert.Equal(t, 0, md.Stride(0), "%s", md)
		assert.Equal(t, 0, md.Stride(1), "%s", md)
	}
}

func TestTransposedRoundTrip(t *testing.T) {
	parent := New(Matrix, 5, 7)
	mds := []MetaData{
		parent,
		Derive(parent, Span(1, 5, 2), Span(6, -1, -3)),
		Derive(parent, Full{Len: 5}, Single{Index: 3}),
		New(Array, 1, 1),
	}

	for _, md := range mds {
		tr := md.Transposed()
		assert.Equal(t, md.Rows(), tr.Cols())
		assert.Equal(t, md.Cols(), tr.Rows())
		assert.Equal(t, md.Stride(0), tr.Stride(1))
		assert.Equal(t, md.Offset(), tr.Offset())
		assert.True(t, md.Equal(tr.Transposed()), "round trip of %s", md)
	}
}

func TestDerive(t *testing.T) {
	parent := New(Array, 4, 6) // stride (6,1)

	md := Derive(parent, Span(1, 4, 2), Span(0, 6, 3))
	assert.Equal(t, 6, md.Offset())
	r, c := md.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 12, md.Stride(0))
	assert.Equal(t, 3, md.Stride(1))
	assert.Equal(t, Array, md.Mode())

	// Element (i,j) of the derived view is element (1+2i, 3j) of the parent.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, parent.Index(1+2*i, 3*j), md.Index(i, j))
		}
	}
}

func TestMatrixMultiplicationApplies(t *testing.T) {
	tests := []struct {
		name string
		a, b MetaData
		want bool
	}{
		{"matrix x matrix", New(Matrix, 2, 3), New(Matrix, 3, 4), true},
		{"matrix x array", New(Matrix, 2, 3), New(Array, 3, 4), true},
		{"array x array", New(Array, 2, 3), New(Array, 3, 4), false},
		{"scalar left", New(Matrix, 1, 1), New(Matrix, 3, 4), false},
		{"scalar right", New(Matrix, 2, 3), New(Matrix, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.MatrixMultiplicationApplies(tt.b))
		})
	}
}

func TestPreferReversedTraverse(t *testing.T) {
	md := New(Array, 3, 4)
	assert.False(t, md.PreferReversedTraverse())
	assert.True(t, md.Transposed().PreferReversedTraverse())
}

func TestIsDense(t *testing.T) {
	parent := New(Array, 4, 6)
	assert.True(t, parent.IsDense())
	assert.True(t, parent.Transposed().IsDense())
	assert.True(t, Derive(parent, Single{Index: 2}, Full{Len: 6}).IsDense())
	assert.False(t, Derive(parent, Span(0, 4, 2), Full{Len: 6}).IsDense())
	assert.False(t, Derive(parent, Full{Len: 4}, Span(0, 3, 1)).IsDense())
}

func TestSpan(t *testing.T) {
	parent := New(Array, 4, 6)
	lo, hi := parent.Span()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 23, hi)

	rev := Derive(parent, Full{Len: 4}, Span(5, -1, -1))
	lo, hi = rev.Span()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 23, hi)
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, ValidateShape(1, 1))
	require.NoError(t, ValidateShape(3, 4))
	assert.ErrorIs(t, ValidateShape(0, 4), ErrBadShape)
	assert.ErrorIs(t, ValidateShape(3, -1), ErrBadShape)
}

func TestMetaDataString(t *testing.T) {
	md := New(Matrix, 2, 3)
	assert.Equal(t, "MetaData{mode=matrix offset=0 shape=(2,3) stride=(3,1)}", md.String())
	assert.Equal(t, Array, md.WithMode(Array).Mode())
	assert.Equal(t, 0, md.Dim(2))
	assert.Equal(t, 0, md.Stride(-1))
}
