package symbolic

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/modelkit/grid/internal/env"
)

// Sense is the relation of a constraint.
type Sense int

// Constraint senses.
const (
	EQ Sense = iota
	NE
	LT
	LE
	GT
	GE
)

var senseNames = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (s Sense) String() string {
	if s < EQ || s > GE {
		return fmt.Sprintf("Sense(%d)", int(s))
	}
	return senseNames[s]
}

// Constraint relates two expressions.
type Constraint struct {
	Lhs   Expr
	Sense Sense
	Rhs   Expr
}

func (c *Constraint) String() string {
	return c.Lhs.String() + " " + c.Sense.String() + " " + c.Rhs.String()
}

// Satisfied evaluates both sides under a and reports whether the relation
// holds within tol. Strict inequalities require a margin larger than tol.
func (c *Constraint) Satisfied(a Assignment, tol float64) (bool, error) {
	l, err := c.Lhs.Eval(a)
	if err != nil {
		return false, err
	}
	r, err := c.Rhs.Eval(a)
	if err != nil {
		return false, err
	}
	d := l - r
	switch c.Sense {
	case EQ:
		return math.Abs(d) <= tol, nil
	case NE:
		return math.Abs(d) > tol, nil
	case LT:
		return d < -tol, nil
	case LE:
		return d <= tol, nil
	case GT:
		return d > tol, nil
	case GE:
		return d >= -tol, nil
	default:
		return false, fmt.Errorf("symbolic: unknown sense %d", int(c.Sense))
	}
}

// Model owns the variables and constraints of one optimization model.
type Model struct {
	env         *env.Env
	vars        []*Var
	constraints []*Constraint
}

// NewModel creates an empty model in e.
func NewModel(e *env.Env) *Model {
	return &Model{env: e}
}

// Env returns the model's environment.
func (m *Model) Env() *env.Env { return m.env }

// NewVar creates a variable named x<id>, or name when given.
func (m *Model) NewVar(name ...string) *Var {
	id := len(m.vars)
	v := &Var{id: id, name: fmt.Sprintf("x%d", id)}
	if len(name) > 0 && name[0] != "" {
		v.name = name[0]
	}
	m.vars = append(m.vars, v)
	return v
}

// NewVars creates n variables, returned as expressions ready to seed an
// expression array.
func (m *Model) NewVars(n int) []Expr {
	out := make([]Expr, n)
	for i := range out {
		out[i] = m.NewVar()
	}
	m.env.Logger().Debug("variables created",
		slog.Int("count", n),
		slog.Int("total", len(m.vars)))
	return out
}

// Vars returns the model's variables in creation order.
func (m *Model) Vars() []*Var { return m.vars }

// AddConstraints records cs in the model.
func (m *Model) AddConstraints(cs ...*Constraint) {
	m.constraints = append(m.constraints, cs...)
}

// Constraints returns the recorded constraints.
func (m *Model) Constraints() []*Constraint { return m.constraints }

// Violated returns the recorded constraints that a does not satisfy within tol.
func (m *Model) Violated(a Assignment, tol float64) ([]*Constraint, error) {
	var out []*Constraint
	for _, c := range m.constraints {
		ok, err := c.Satisfied(a, tol)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, c)
		}
	}
	return out, nil
}
