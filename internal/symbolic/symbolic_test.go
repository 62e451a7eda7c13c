package symbolic

import (
	"testing"

	"github.com/modelkit/grid/internal/array"
	"github.com/modelkit/grid/internal/dispatch"
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(xs []Expr) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

func TestFolding(t *testing.T) {
	m := NewModel(env.New())
	x := m.NewVar()

	tests := []struct {
		name string
		got  Expr
		want string
	}{
		{"constants", Add(Const(2), Const(3)), "5"},
		{"add zero", Add(x, Const(0)), "x0"},
		{"zero plus", Add(Const(0), x), "x0"},
		{"times one", Mul(Const(1), x), "x0"},
		{"times zero", Mul(x, Const(0)), "0"},
		{"zero minus", Sub(Const(0), x), "-x0"},
		{"double negation", Neg(Neg(x)), "x0"},
		{"divide by one", Div(x, Const(1)), "x0"},
		{"nested", Mul(Add(x, Const(1)), Const(2)), "(x0 + 1) * 2"},
		{"max", Max(x, Const(4)), "max(x0, 4)"},
		{"abs", Abs(Sub(x, Const(1))), "|x0 - 1|"},
		{"abs const", Abs(Const(-2.5)), "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestEval(t *testing.T) {
	m := NewModel(env.New())
	x, y := m.NewVar(), m.NewVar("y")
	e := Add(Mul(x, Const(2)), Abs(Sub(y, Const(10))))

	v, err := e.Eval(Assignment{x.ID(): 3, y.ID(): 4})
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	_, err = e.Eval(Assignment{x.ID(): 3})
	require.ErrorIs(t, err, ErrUnassigned)
	assert.Contains(t, err.Error(), "y (id 1)")
}

func TestConstraintSatisfied(t *testing.T) {
	m := NewModel(env.New())
	x := m.NewVar()
	a := Assignment{x.ID(): 2}

	tests := []struct {
		sense Sense
		rhs   float64
		want  bool
	}{
		{EQ, 2, true},
		{EQ, 3, false},
		{NE, 3, true},
		{LT, 2, false},
		{LE, 2, true},
		{GT, 1, true},
		{GE, 2, true},
		{GE, 2.5, false},
	}
	for _, tt := range tests {
		c := &Constraint{Lhs: x, Sense: tt.sense, Rhs: Const(tt.rhs)}
		got, err := c.Satisfied(a, 1e-9)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, c.String())
	}
}

func TestModelVariables(t *testing.T) {
	m := NewModel(env.New())
	xs := m.NewVars(3)
	assert.Equal(t, []string{"x0", "x1", "x2"}, strs(xs))
	named := m.NewVar("z")
	assert.Equal(t, 3, named.ID())
	assert.Len(t, m.Vars(), 4)
}

func TestEngineOverExpressions(t *testing.T) {
	m := NewModel(env.New(env.WithChecks(true)))
	g := NewEngine(m)

	x, err := array.FromVariables(m.Env(), layout.Matrix, 1, 2, m.NewVars(2))
	require.NoError(t, err)

	shifted, err := g.Binary(dispatch.OpAdd, x, g.Constant(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"x0 + 1", "x1 + 1"}, strs(shifted.Values()))

	coef, err := array.Dense(m.Env(), view.Borrow([]float64{2, 3}), layout.Matrix, 2, 1)
	require.NoError(t, err)
	dot, err := g.Binary(dispatch.OpMul, x, g.Lift(coef))
	require.NoError(t, err)
	r, c := dot.Shape()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, "(x0 * 2) + (x1 * 3)", dot.At(0, 0).String())

	total, err := g.Reduce(dispatch.ReduceSum, x, layout.AxisBoth)
	require.NoError(t, err)
	assert.Equal(t, "x0 + x1", total.At(0, 0).String())

	neg, err := g.Unary(dispatch.UnaryNeg, x)
	require.NoError(t, err)
	assert.Equal(t, []string{"-x0", "-x1"}, strs(neg.Values()))
}

func TestEngineBuildsConstraints(t *testing.T) {
	m := NewModel(env.New())
	g := NewEngine(m)

	x, err := array.FromVariables(m.Env(), layout.Array, 2, 1, m.NewVars(2))
	require.NoError(t, err)

	cs, err := g.Compare(dispatch.CmpLe, x, g.Constant(5))
	require.NoError(t, err)
	got := cs.Constraints()
	require.Len(t, got, 2)
	assert.Equal(t, "x0 <= 5", got[0].String())
	assert.Equal(t, "x1 <= 5", got[1].String())

	m.AddConstraints(got...)
	bad, err := m.Violated(Assignment{0: 4, 1: 6}, 1e-9)
	require.NoError(t, err)
	require.Len(t, bad, 1)
	assert.Same(t, got[1], bad[0])
}
