package view

import (
	"testing"

	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(acc, x float64) float64 { return acc + x }

func TestReduceOnes(t *testing.T) {
	ones, err := Alloc[float64](env.New(), layout.New(layout.Array, 3, 3))
	require.NoError(t, err)
	ones.Fill(1)

	rows, err := Reduce(ones, layout.AxisRows, sum)
	require.NoError(t, err)
	r, c := rows.Shape()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{3, 3, 3}, rows.Values())

	cols, err := Reduce(ones, layout.AxisCols, sum)
	require.NoError(t, err)
	r, c = cols.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, []float64{3, 3, 3}, cols.Values())

	both, err := Reduce(ones, layout.AxisBoth, sum)
	require.NoError(t, err)
	assert.True(t, both.Meta().IsScalar())
	assert.Equal(t, 9.0, both.At(0, 0))
}

func TestReduceInvalidAxis(t *testing.T) {
	v := Scalar(nil, 1)
	_, err := Reduce(v, layout.Axis(7), sum)
	assert.ErrorIs(t, err, layout.ErrOutOfRange)
}

func TestFoldAscendingOrder(t *testing.T) {
	v := seq(t, env.New(), layout.Array, 3, 4)

	// Recording fold exposes the visiting order along each line.
	var order []float64
	record := func(acc, x float64) float64 {
		order = append(order, x)
		return x
	}

	last := Fold(v, layout.Full{Len: 3}, layout.Single{Index: 2}, record)
	assert.Equal(t, []float64{6, 10}, order, "first element seeds the fold")
	assert.Equal(t, 10.0, last)

	order = nil
	Fold(v.Transpose(), layout.Single{Index: 1}, layout.Full{Len: 3}, record)
	assert.Equal(t, []float64{5, 9}, order)
}

func TestReduceStridedSource(t *testing.T) {
	v := seq(t, env.New(), layout.Matrix, 4, 4)
	s, err := v.Slice(layout.Span(0, 4, 2), layout.Span(3, -1, -1))
	require.NoError(t, err)
	// s rows: [3 2 1 0] and [11 10 9 8]

	cols, err := Reduce(s, layout.AxisCols, sum)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 38}, cols.Values())
	assert.Equal(t, layout.Matrix, cols.Mode())

	maxRows, err := Reduce(s, layout.AxisRows, func(acc, x float64) float64 { return max(acc, x) })
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 10, 9, 8}, maxRows.Values())
}
