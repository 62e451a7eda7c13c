package symbolic

import "github.com/modelkit/grid/internal/dispatch"

// Algebra lets the array engine operate on expression trees: values are
// Expr, comparisons build *Constraint.
type Algebra struct{}

var _ dispatch.Algebra[Expr, *Constraint] = Algebra{}

func (Algebra) Const(v float64) Expr { return Const(v) }
func (Algebra) Add(a, b Expr) Expr   { return Add(a, b) }
func (Algebra) Sub(a, b Expr) Expr   { return Sub(a, b) }
func (Algebra) Mul(a, b Expr) Expr   { return Mul(a, b) }
func (Algebra) Div(a, b Expr) Expr   { return Div(a, b) }
func (Algebra) Max(a, b Expr) Expr   { return Max(a, b) }
func (Algebra) Min(a, b Expr) Expr   { return Min(a, b) }
func (Algebra) Neg(a Expr) Expr      { return Neg(a) }
func (Algebra) Abs(a Expr) Expr      { return Abs(a) }

func (Algebra) Equal(a, b Expr) *Constraint        { return &Constraint{a, EQ, b} }
func (Algebra) NotEqual(a, b Expr) *Constraint     { return &Constraint{a, NE, b} }
func (Algebra) Less(a, b Expr) *Constraint         { return &Constraint{a, LT, b} }
func (Algebra) LessEqual(a, b Expr) *Constraint    { return &Constraint{a, LE, b} }
func (Algebra) Greater(a, b Expr) *Constraint      { return &Constraint{a, GT, b} }
func (Algebra) GreaterEqual(a, b Expr) *Constraint { return &Constraint{a, GE, b} }

// NewEngine returns an array engine over expression trees in m's environment.
func NewEngine(m *Model) *dispatch.Engine[Expr, *Constraint] {
	return dispatch.New[Expr, *Constraint](m.env, Algebra{})
}
