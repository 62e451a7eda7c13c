// Copyright 2026 The Grid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides strided two-dimensional views over foreign element
// types, for building matrix and vector expressions in optimization models.
//
// # Overview
//
// Every array is a View: a small metadata value (mode, offset, shape,
// stride) over a shared backing store. Slicing, transposing and mode changes
// never copy elements; they derive a new view that aliases the same store.
//
// Four storage kinds are provided:
//   - Expression[E]: symbolic expressions, optionally seeded from variables
//   - Constraint[C]: results of comparisons
//   - Numeric: a borrowed []float64 owned by the caller (see Lease)
//   - Scalar: a single float64 held by value
//
// # Basic Usage
//
//	e := grid.NewEnv(grid.WithChecks(true))
//	eng := grid.NewEngine[float64, bool](e, grid.Float64{})
//
//	a, _ := grid.NewExpression[float64](e, grid.Array, 2, 2)
//	a.Fill(1)
//	b, _ := eng.Binary(grid.OpAdd, eng.Constant(5), a) // [[6 6] [6 6]]
//
// # Shapes
//
// Binary operators combine operands whose shapes are equal, or where one side
// is a (1,1) scalar. Multiplication in Matrix mode is a matrix product; use
// OpArrayMul or OpMatMul to force one interpretation. Anything else fails
// with ErrShapeMismatch.
//
// # Borrowed buffers
//
// A Numeric array never owns its data. Wrap the slice in a Lease with Borrow
// and call Release when the caller reclaims it; any later access panics.
package grid
