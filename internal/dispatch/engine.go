package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/modelkit/grid/internal/array"
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// Engine applies operators between arrays of a single backend.
//
// Example:
//
//	eng := dispatch.New[float64, bool](env.New(), dispatch.Float64{})
//	sum, err := eng.Binary(dispatch.OpAdd, a, b)
type Engine[E, C any] struct {
	alg Algebra[E, C]
	env *env.Env
}

// New creates an engine allocating its results in e.
func New[E, C any](e *env.Env, alg Algebra[E, C]) *Engine[E, C] {
	return &Engine[E, C]{alg: alg, env: e}
}

// Algebra returns the engine's element algebra.
func (g *Engine[E, C]) Algebra() Algebra[E, C] { return g.alg }

// Env returns the environment results are allocated in.
func (g *Engine[E, C]) Env() *env.Env { return g.env }

// Lift presents a float64 operand (numeric array or scalar) as an operand
// of the engine's element type.
func (g *Engine[E, C]) Lift(src Operand[float64]) Operand[E] {
	return Lift(src, g.alg.Const)
}

// Constant returns a scalar operand holding v.
func (g *Engine[E, C]) Constant(v float64) Operand[E] {
	return g.Lift(array.NewScalar(g.env, v))
}

// Binary applies op to a and b into a freshly allocated expression array.
// Incompatible shapes yield ErrShapeMismatch.
func (g *Engine[E, C]) Binary(op BinaryOp, a, b Operand[E]) (*array.Expression[E], error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %s", layout.ErrUnknownOp, op)
	}
	md, err := g.resolve(op.String(), op.Product(), a.Meta(), b.Meta())
	if err != nil {
		return nil, err
	}
	dst, err := array.ExpressionOf[E](g.env, md)
	if err != nil {
		return nil, err
	}
	g.run(op, dst, a, b)
	return dst, nil
}

// BinaryInto applies op to a and b, writing into dst. dst may be any view,
// including a slice of a larger array, but its shape must equal the
// resolved result shape. For elementwise operators dst must not overlap a
// or b except through the identical metadata; a matrix product is formed in
// a scratch array first, so dst may alias either operand.
func (g *Engine[E, C]) BinaryInto(dst *array.Expression[E], op BinaryOp, a, b Operand[E]) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %s", layout.ErrUnknownOp, op)
	}
	md, err := g.resolve(op.String(), op.Product(), a.Meta(), b.Meta())
	if err != nil {
		return err
	}
	if err := checkDestination(dst.Meta(), md); err != nil {
		return err
	}
	if op.Product().IsMatrixProduct(a.Meta(), b.Meta()) {
		// Every output cell reads a whole row of a and column of b.
		tmp, err := array.ExpressionOf[E](g.env, md)
		if err != nil {
			return err
		}
		matrixProduct(g.alg, tmp, a, b)
		view.Walk(md, func(i, j int) { dst.Set(i, j, tmp.At(i, j)) })
		tmp.Release()
		return nil
	}
	g.run(op, dst, a, b)
	return nil
}

func (g *Engine[E, C]) run(op BinaryOp, dst sink[E], a, b Operand[E]) {
	if op.Product().IsMatrixProduct(a.Meta(), b.Meta()) {
		matrixProduct(g.alg, dst, a, b)
		return
	}
	fn, err := binaryFunc(g.alg, op)
	if err != nil {
		// Valid() was checked by every caller.
		panic(err)
	}
	binaryElementwise(dst, a, b, fn)
}

// Compare applies the comparison p to a and b into a freshly allocated
// constraint array.
func (g *Engine[E, C]) Compare(p Predicate, a, b Operand[E]) (*array.Constraint[C], error) {
	fn, err := predicateFunc(g.alg, p)
	if err != nil {
		return nil, err
	}
	md, err := g.resolve(p.String(), layout.Elementwise, a.Meta(), b.Meta())
	if err != nil {
		return nil, err
	}
	dst, err := array.ConstraintOf[C](g.env, md)
	if err != nil {
		return nil, err
	}
	binaryElementwise(dst, a, b, fn)
	return dst, nil
}

// CompareInto applies the comparison p to a and b, writing into dst.
func (g *Engine[E, C]) CompareInto(dst *array.Constraint[C], p Predicate, a, b Operand[E]) error {
	fn, err := predicateFunc(g.alg, p)
	if err != nil {
		return err
	}
	md, err := g.resolve(p.String(), layout.Elementwise, a.Meta(), b.Meta())
	if err != nil {
		return err
	}
	if err := checkDestination(dst.Meta(), md); err != nil {
		return err
	}
	binaryElementwise(dst, a, b, fn)
	return nil
}

// Unary applies op to every element of a into a freshly allocated,
// contiguous expression array of a's shape and mode.
func (g *Engine[E, C]) Unary(op UnaryOp, a Operand[E]) (*array.Expression[E], error) {
	fn, err := unaryFunc(g.alg, op)
	if err != nil {
		return nil, err
	}
	src := a.Meta()
	dst, err := array.NewExpression[E](g.env, src.Mode(), src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}
	unaryElementwise(dst, a, fn)
	return dst, nil
}

// Reduce folds a along axis with r. The result is shaped (1,cols) for
// AxisRows, (rows,1) for AxisCols and (1,1) for AxisBoth; elements along the
// reduced axis are combined in ascending index order.
func (g *Engine[E, C]) Reduce(r Reduction, a *array.Expression[E], axis layout.Axis) (*array.Expression[E], error) {
	fn, err := reductionFunc(g.alg, r)
	if err != nil {
		return nil, err
	}
	out, err := view.Reduce(a.View, axis, fn)
	if err != nil {
		return nil, err
	}
	g.env.Logger().Debug("reduce",
		slog.String("op", r.String()),
		slog.String("axis", axis.String()),
		slog.String("src", a.Meta().String()))
	return array.ExpressionFrom(out), nil
}

func (g *Engine[E, C]) resolve(op string, kind layout.ProductKind, a, b layout.MetaData) (layout.MetaData, error) {
	md, err := layout.Combine(kind, a, b)
	if err != nil {
		g.env.Logger().Debug("shape mismatch",
			slog.String("op", op),
			slog.String("lhs", a.String()),
			slog.String("rhs", b.String()))
		return layout.MetaData{}, err
	}
	g.env.Logger().Debug("resolved",
		slog.String("op", op),
		slog.String("result", md.String()))
	return md, nil
}

func checkDestination(dst, want layout.MetaData) error {
	if !dst.SameShape(want) {
		return fmt.Errorf("%w: destination (%d,%d) for result (%d,%d)",
			layout.ErrShapeMismatch, dst.Rows(), dst.Cols(), want.Rows(), want.Cols())
	}
	return nil
}
