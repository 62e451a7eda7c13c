// Copyright 2026 The Grid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/modelkit/grid/internal/array"
	"github.com/modelkit/grid/internal/dispatch"
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// Type aliases for public API

// Mode selects how multiplication treats an array.
type Mode = layout.Mode

// Modes.
const (
	Matrix     Mode = layout.Matrix
	Array      Mode = layout.Array
	Diagonal   Mode = layout.Diagonal
	Constraint Mode = layout.Constraint
)

// Axis selects the direction of a reduction.
type Axis = layout.Axis

// Reduction axes.
const (
	AxisRows Axis = layout.AxisRows
	AxisCols Axis = layout.AxisCols
	AxisBoth Axis = layout.AxisBoth
)

// MetaData describes a view: mode, offset, shape and stride.
type MetaData = layout.MetaData

// Slice is an axis selection descriptor.
type Slice = layout.Slice

// Range is a start:stop:step selection.
type Range = layout.Range

// Single selects one index.
type Single = layout.Single

// Full selects a whole axis.
type Full = layout.Full

// Errors.
var (
	ErrBadShape      = layout.ErrBadShape
	ErrOutOfRange    = layout.ErrOutOfRange
	ErrBadSlice      = layout.ErrBadSlice
	ErrShapeMismatch = layout.ErrShapeMismatch
	ErrScalarStride  = layout.ErrScalarStride
	ErrSizeMismatch  = layout.ErrSizeMismatch
	ErrUnknownOp     = layout.ErrUnknownOp
	ErrReleased      = layout.ErrReleased
)

// Env is the modeling environment every view belongs to.
type Env = env.Env

// Config controls environment behavior.
type Config = env.Config

// Option adjusts a Config.
type Option = env.Option

// View is the generic strided view over a store of V.
type View[V any] = view.View[V]

// Lease is a borrowed float64 buffer.
type Lease = view.Lease

// Expression is an array of symbolic expressions.
type Expression[E any] = array.Expression[E]

// Constraints is an array of comparison results.
type Constraints[C any] = array.Constraint[C]

// Numeric is a view over a borrowed float64 buffer.
type Numeric = array.Numeric

// Scalar is a (1,1) float64 held by value.
type Scalar = array.Scalar

// Engine applies operators between arrays.
type Engine[E, C any] = dispatch.Engine[E, C]

// Algebra is the element-operator contract of a backend.
type Algebra[E, C any] = dispatch.Algebra[E, C]

// Float64 is the plain numeric algebra.
type Float64 = dispatch.Float64

// Operand is anything an Engine can read elements from.
type Operand[E any] = dispatch.Operand[E]

// BinaryOp is a value-producing binary operator.
type BinaryOp = dispatch.BinaryOp

// Binary operators.
const (
	OpAdd      BinaryOp = dispatch.OpAdd
	OpSub      BinaryOp = dispatch.OpSub
	OpMul      BinaryOp = dispatch.OpMul
	OpMatMul   BinaryOp = dispatch.OpMatMul
	OpArrayMul BinaryOp = dispatch.OpArrayMul
	OpDiv      BinaryOp = dispatch.OpDiv
)

// Predicate is a constraint-producing comparison.
type Predicate = dispatch.Predicate

// Comparisons.
const (
	CmpEq Predicate = dispatch.CmpEq
	CmpNe Predicate = dispatch.CmpNe
	CmpLt Predicate = dispatch.CmpLt
	CmpLe Predicate = dispatch.CmpLe
	CmpGt Predicate = dispatch.CmpGt
	CmpGe Predicate = dispatch.CmpGe
)

// UnaryOp is a single-operand operator.
type UnaryOp = dispatch.UnaryOp

// Unary operators.
const (
	UnaryIdentity UnaryOp = dispatch.UnaryIdentity
	UnaryAbs      UnaryOp = dispatch.UnaryAbs
	UnaryNeg      UnaryOp = dispatch.UnaryNeg
)

// Reduction is an operator folded along an axis.
type Reduction = dispatch.Reduction

// Reductions.
const (
	ReduceSum Reduction = dispatch.ReduceSum
	ReduceMax Reduction = dispatch.ReduceMax
	ReduceMin Reduction = dispatch.ReduceMin
)

// Environment

// DefaultConfig returns the default environment configuration.
func DefaultConfig() Config { return env.DefaultConfig() }

// NewEnv creates an environment from DefaultConfig adjusted by opts.
//
// Example:
//
//	e := grid.NewEnv(grid.WithChecks(true), grid.WithName("model"))
func NewEnv(opts ...Option) *Env { return env.New(opts...) }

// WithName sets the environment label used in logs.
var WithName = env.WithName

// WithChecks enables bounds and stride contract checks on every access.
var WithChecks = env.WithChecks

// WithLogger routes environment logs to a *slog.Logger.
var WithLogger = env.WithLogger

// Metadata and slices

// NewMeta returns row-major metadata for a rows x cols view.
func NewMeta(mode Mode, rows, cols int) MetaData { return layout.New(mode, rows, cols) }

// NewStrided returns metadata with an explicit offset and stride.
func NewStrided(mode Mode, offset, rows, cols, stride0, stride1 int) (MetaData, error) {
	return layout.NewStrided(mode, offset, rows, cols, stride0, stride1)
}

// Span selects start, start+step, ... up to but excluding stop.
func Span(start, stop, step int) Range { return layout.Span(start, stop, step) }

// To selects 0..stop-1.
func To(stop int) Range { return layout.To(stop) }

// At selects the single index i.
func At(i int) Range { return layout.At(i) }

// Creation functions

// NewExpression allocates a rows x cols expression array.
//
// Example:
//
//	x, err := grid.NewExpression[float64](e, grid.Matrix, 2, 3)
func NewExpression[E any](e *Env, mode Mode, rows, cols int) (*Expression[E], error) {
	return array.NewExpression[E](e, mode, rows, cols)
}

// FromVariables creates an expression array seeded with vars, row-major.
func FromVariables[E any](e *Env, mode Mode, rows, cols int, vars []E) (*Expression[E], error) {
	return array.FromVariables(e, mode, rows, cols, vars)
}

// NewConstraints allocates a rows x cols constraint array.
func NewConstraints[C any](e *Env, mode Mode, rows, cols int) (*Constraints[C], error) {
	return array.NewConstraint[C](e, mode, rows, cols)
}

// Borrow wraps a caller-owned buffer for use by Numeric views.
func Borrow(data []float64) *Lease { return view.Borrow(data) }

// NewNumeric creates a view described by md over lease.
func NewNumeric(e *Env, lease *Lease, md MetaData) (*Numeric, error) {
	return array.NewNumeric(e, lease, md)
}

// Dense creates a row-major rows x cols view over lease.
//
// Example:
//
//	lease := grid.Borrow([]float64{1, 2, 3, 4})
//	defer lease.Release()
//	a, err := grid.Dense(e, lease, grid.Matrix, 2, 2)
func Dense(e *Env, lease *Lease, mode Mode, rows, cols int) (*Numeric, error) {
	return array.Dense(e, lease, mode, rows, cols)
}

// NewScalar creates a scalar holding v.
func NewScalar(e *Env, v float64) *Scalar { return array.NewScalar(e, v) }

// NewEngine creates an engine over alg allocating its results in e.
//
// Example:
//
//	eng := grid.NewEngine[float64, bool](e, grid.Float64{})
func NewEngine[E, C any](e *Env, alg Algebra[E, C]) *Engine[E, C] {
	return dispatch.New(e, alg)
}

// Lift presents a float64 operand as an operand of E using conv.
func Lift[E any](src Operand[float64], conv func(float64) E) Operand[E] {
	return dispatch.Lift(src, conv)
}
