package dispatch

import (
	"fmt"

	"github.com/modelkit/grid/internal/layout"
)

// BinaryOp is a value-producing binary operator.
type BinaryOp int

// Value-producing operators. OpMul is a matrix product when either operand
// is in Matrix mode and neither is a scalar; OpMatMul and OpArrayMul force
// one interpretation.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpMatMul
	OpArrayMul
	OpDiv
)

// String returns the operator symbol.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpMatMul:
		return "@"
	case OpArrayMul:
		return ".*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// Valid reports whether op is a declared operator.
func (op BinaryOp) Valid() bool { return op >= OpAdd && op <= OpDiv }

// Product returns how op treats multiplication for shape resolution.
func (op BinaryOp) Product() layout.ProductKind {
	switch op {
	case OpMul:
		return layout.Auto
	case OpMatMul:
		return layout.MatrixProduct
	default:
		return layout.Elementwise
	}
}

func binaryFunc[E, C any](alg Algebra[E, C], op BinaryOp) (func(a, b E) E, error) {
	switch op {
	case OpAdd:
		return alg.Add, nil
	case OpSub:
		return alg.Sub, nil
	case OpMul, OpMatMul, OpArrayMul:
		return alg.Mul, nil
	case OpDiv:
		return alg.Div, nil
	default:
		return nil, fmt.Errorf("%w: %s", layout.ErrUnknownOp, op)
	}
}

// Predicate is a constraint-producing comparison.
type Predicate int

// Comparison operators.
const (
	CmpEq Predicate = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// String returns the comparison symbol.
func (p Predicate) String() string {
	switch p {
	case CmpEq:
		return "=="
	case CmpNe:
		return "!="
	case CmpLt:
		return "<"
	case CmpLe:
		return "<="
	case CmpGt:
		return ">"
	case CmpGe:
		return ">="
	default:
		return fmt.Sprintf("Predicate(%d)", int(p))
	}
}

// Valid reports whether p is a declared comparison.
func (p Predicate) Valid() bool { return p >= CmpEq && p <= CmpGe }

func predicateFunc[E, C any](alg Algebra[E, C], p Predicate) (func(a, b E) C, error) {
	switch p {
	case CmpEq:
		return alg.Equal, nil
	case CmpNe:
		return alg.NotEqual, nil
	case CmpLt:
		return alg.Less, nil
	case CmpLe:
		return alg.LessEqual, nil
	case CmpGt:
		return alg.Greater, nil
	case CmpGe:
		return alg.GreaterEqual, nil
	default:
		return nil, fmt.Errorf("%w: %s", layout.ErrUnknownOp, p)
	}
}

// UnaryOp is a single-operand elementwise operator.
type UnaryOp int

// Unary operators.
const (
	UnaryIdentity UnaryOp = iota
	UnaryAbs
	UnaryNeg
)

// String returns the operator name.
func (op UnaryOp) String() string {
	switch op {
	case UnaryIdentity:
		return "identity"
	case UnaryAbs:
		return "abs"
	case UnaryNeg:
		return "neg"
	default:
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
}

// Valid reports whether op is a declared operator.
func (op UnaryOp) Valid() bool { return op >= UnaryIdentity && op <= UnaryNeg }

func unaryFunc[E, C any](alg Algebra[E, C], op UnaryOp) (func(a E) E, error) {
	switch op {
	case UnaryIdentity:
		return func(a E) E { return a }, nil
	case UnaryAbs:
		return alg.Abs, nil
	case UnaryNeg:
		return alg.Neg, nil
	default:
		return nil, fmt.Errorf("%w: %s", layout.ErrUnknownOp, op)
	}
}

// Reduction is an associative operator folded along an axis.
type Reduction int

// Reductions.
const (
	ReduceSum Reduction = iota
	ReduceMax
	ReduceMin
)

// String returns the reduction name.
func (r Reduction) String() string {
	switch r {
	case ReduceSum:
		return "sum"
	case ReduceMax:
		return "max"
	case ReduceMin:
		return "min"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// Valid reports whether r is a declared reduction.
func (r Reduction) Valid() bool { return r >= ReduceSum && r <= ReduceMin }

func reductionFunc[E, C any](alg Algebra[E, C], r Reduction) (func(acc, x E) E, error) {
	switch r {
	case ReduceSum:
		return alg.Add, nil
	case ReduceMax:
		return alg.Max, nil
	case ReduceMin:
		return alg.Min, nil
	default:
		return nil, fmt.Errorf("%w: %s", layout.ErrUnknownOp, r)
	}
}
