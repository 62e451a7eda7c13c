// Package symbolic is a small reference element backend: decision variables,
// expression trees over them and comparison constraints. It exists so the
// array engine can be exercised with a non-numeric element type.
package symbolic

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnassigned is returned when evaluating an expression whose variable has
// no value in the assignment.
var ErrUnassigned = errors.New("grid: unassigned variable")

// Assignment maps variable IDs to values.
type Assignment map[int]float64

// Expr is a node of an expression tree.
type Expr interface {
	String() string
	Eval(a Assignment) (float64, error)
}

// Const is a literal number.
type Const float64

func (c Const) String() string { return strconv.FormatFloat(float64(c), 'g', -1, 64) }

// Eval returns the literal.
func (c Const) Eval(Assignment) (float64, error) { return float64(c), nil }

// Var is a decision variable created by a Model.
type Var struct {
	id   int
	name string
}

// ID returns the variable's sequence number within its model.
func (v *Var) ID() int { return v.id }

func (v *Var) String() string { return v.name }

// Eval looks the variable up in a.
func (v *Var) Eval(a Assignment) (float64, error) {
	x, ok := a[v.id]
	if !ok {
		return 0, fmt.Errorf("%w: %s (id %d)", ErrUnassigned, v.name, v.id)
	}
	return x, nil
}

// Kind identifies the operator of a Node.
type Kind int

// Node kinds.
const (
	Sum Kind = iota
	Difference
	Product
	Quotient
	Maximum
	Minimum
	Negation
	Absolute
)

var kindNames = [...]string{"+", "-", "*", "/", "max", "min", "neg", "abs"}

func (k Kind) String() string {
	if k < Sum || k > Absolute {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) infix() bool { return k <= Quotient }

// Node applies an operator to its arguments: two for binary kinds, one for
// Negation and Absolute.
type Node struct {
	Kind Kind
	Args []Expr
}

func (n *Node) String() string {
	switch {
	case n.Kind.infix():
		return operand(n.Args[0]) + " " + n.Kind.String() + " " + operand(n.Args[1])
	case n.Kind == Negation:
		return "-" + operand(n.Args[0])
	case n.Kind == Absolute:
		return "|" + n.Args[0].String() + "|"
	default:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = a.String()
		}
		return n.Kind.String() + "(" + strings.Join(parts, ", ") + ")"
	}
}

// operand parenthesizes nested infix nodes.
func operand(e Expr) string {
	if n, ok := e.(*Node); ok && n.Kind.infix() {
		return "(" + n.String() + ")"
	}
	return e.String()
}

// Eval evaluates the arguments and applies the operator.
func (n *Node) Eval(a Assignment) (float64, error) {
	vals := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		v, err := arg.Eval(a)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	return apply(n.Kind, vals), nil
}

func apply(k Kind, v []float64) float64 {
	switch k {
	case Sum:
		return v[0] + v[1]
	case Difference:
		return v[0] - v[1]
	case Product:
		return v[0] * v[1]
	case Quotient:
		return v[0] / v[1]
	case Maximum:
		return math.Max(v[0], v[1])
	case Minimum:
		return math.Min(v[0], v[1])
	case Negation:
		return -v[0]
	case Absolute:
		return math.Abs(v[0])
	default:
		panic(fmt.Sprintf("symbolic: unknown node kind %d", int(k)))
	}
}

// binary builds a two-argument node, folding constants and dropping additive
// and multiplicative identities.
func binary(k Kind, x, y Expr) Expr {
	cx, xc := x.(Const)
	cy, yc := y.(Const)
	if xc && yc {
		return Const(apply(k, []float64{float64(cx), float64(cy)}))
	}
	switch k {
	case Sum:
		if xc && cx == 0 {
			return y
		}
		if yc && cy == 0 {
			return x
		}
	case Difference:
		if yc && cy == 0 {
			return x
		}
		if xc && cx == 0 {
			return unary(Negation, y)
		}
	case Product:
		if (xc && cx == 0) || (yc && cy == 0) {
			return Const(0)
		}
		if xc && cx == 1 {
			return y
		}
		if yc && cy == 1 {
			return x
		}
	case Quotient:
		if yc && cy == 1 {
			return x
		}
	}
	return &Node{Kind: k, Args: []Expr{x, y}}
}

func unary(k Kind, x Expr) Expr {
	if c, ok := x.(Const); ok {
		return Const(apply(k, []float64{float64(c)}))
	}
	if n, ok := x.(*Node); ok && k == Negation && n.Kind == Negation {
		return n.Args[0]
	}
	return &Node{Kind: k, Args: []Expr{x}}
}

// Add returns x + y.
func Add(x, y Expr) Expr { return binary(Sum, x, y) }

// Sub returns x - y.
func Sub(x, y Expr) Expr { return binary(Difference, x, y) }

// Mul returns x * y.
func Mul(x, y Expr) Expr { return binary(Product, x, y) }

// Div returns x / y.
func Div(x, y Expr) Expr { return binary(Quotient, x, y) }

// Max returns max(x, y).
func Max(x, y Expr) Expr { return binary(Maximum, x, y) }

// Min returns min(x, y).
func Min(x, y Expr) Expr { return binary(Minimum, x, y) }

// Neg returns -x.
func Neg(x Expr) Expr { return unary(Negation, x) }

// Abs returns |x|.
func Abs(x Expr) Expr { return unary(Absolute, x) }
