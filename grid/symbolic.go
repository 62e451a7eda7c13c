// Copyright 2026 The Grid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package grid

import "github.com/modelkit/grid/internal/symbolic"

// Model owns decision variables and constraints.
type Model = symbolic.Model

// Expr is a symbolic expression tree.
type Expr = symbolic.Expr

// Var is a decision variable.
type Var = symbolic.Var

// Relation is a comparison between two expressions.
type Relation = symbolic.Constraint

// Assignment maps variable IDs to values.
type Assignment = symbolic.Assignment

// ErrUnassigned is returned when evaluating an unassigned variable.
var ErrUnassigned = symbolic.ErrUnassigned

// NewModel creates an empty model in e.
func NewModel(e *Env) *Model { return symbolic.NewModel(e) }

// NewModelEngine returns an engine over m's expression trees.
//
// Example:
//
//	m := grid.NewModel(grid.NewEnv())
//	eng := grid.NewModelEngine(m)
//	x, _ := grid.FromVariables(m.Env(), grid.Matrix, 1, 3, m.NewVars(3))
//	cs, _ := eng.Compare(grid.CmpLe, x, eng.Constant(10))
func NewModelEngine(m *Model) *Engine[Expr, *Relation] { return symbolic.NewEngine(m) }
