package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/modelkit/grid/internal/array"
	"github.com/modelkit/grid/internal/dispatch"
	"github.com/modelkit/grid/internal/env"
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// ErrJobFormat is returned for job files that are neither YAML nor TOML, or
// that do not describe a runnable operation.
var ErrJobFormat = errors.New("grid: invalid job")

// Input describes one input array. Either Scalar is set, or Rows, Cols
// and Data (row-major, rows*cols values) are.
type Input struct {
	Mode      string    `yaml:"mode" toml:"mode"`
	Rows      int       `yaml:"rows" toml:"rows"`
	Cols      int       `yaml:"cols" toml:"cols"`
	Data      []float64 `yaml:"data" toml:"data"`
	Scalar    *float64  `yaml:"scalar" toml:"scalar"`
	Transpose bool      `yaml:"transpose" toml:"transpose"`
}

// Job is one operation read from a job file. Op is an operator symbol
// (+ - * @ .* / == != < <= > >=), a unary name (identity abs neg) or a
// reduction name (sum max min); reductions also take Axis (rows cols both).
type Job struct {
	Op   string `yaml:"op" toml:"op"`
	Axis string `yaml:"axis" toml:"axis"`
	Lhs  Input  `yaml:"lhs" toml:"lhs"`
	Rhs  *Input `yaml:"rhs" toml:"rhs"`
}

// LoadJob reads a job file, choosing the decoder by extension.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &job)
	case ".toml":
		err = toml.Unmarshal(data, &job)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrJobFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrJobFormat, path, err)
	}
	return &job, nil
}

func parseMode(s string) (layout.Mode, error) {
	if s == "" {
		return layout.Matrix, nil
	}
	for m := layout.Matrix; m <= layout.Constraint; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: mode %q", ErrJobFormat, s)
}

func parseAxis(s string) (layout.Axis, error) {
	if s == "" {
		return layout.AxisBoth, nil
	}
	for a := layout.AxisRows; a <= layout.AxisBoth; a++ {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: axis %q", ErrJobFormat, s)
}

// operand materializes in over a borrowed buffer. The returned lease is
// nil for scalars.
func operand(e *env.Env, in Input) (dispatch.Operand[float64], *view.Lease, error) {
	if in.Scalar != nil {
		return array.NewScalar(e, *in.Scalar), nil, nil
	}
	mode, err := parseMode(in.Mode)
	if err != nil {
		return nil, nil, err
	}
	if len(in.Data) != in.Rows*in.Cols {
		return nil, nil, fmt.Errorf("%w: %d values for shape (%d,%d)",
			layout.ErrSizeMismatch, len(in.Data), in.Rows, in.Cols)
	}
	lease := view.Borrow(in.Data)
	num, err := array.Dense(e, lease, mode, in.Rows, in.Cols)
	if err != nil {
		lease.Release()
		return nil, nil, err
	}
	if in.Transpose {
		num = num.Transpose()
	}
	return num, lease, nil
}

// Run evaluates the job in e and returns the rendered result.
func (j *Job) Run(e *env.Env) (string, error) {
	eng := dispatch.New[float64, bool](e, dispatch.Float64{})

	lhs, lease, err := operand(e, j.Lhs)
	if err != nil {
		return "", fmt.Errorf("lhs: %w", err)
	}
	if lease != nil {
		defer lease.Release()
	}

	if r, ok := lookup(j.Op, dispatch.ReduceSum, dispatch.ReduceMin); ok {
		axis, err := parseAxis(j.Axis)
		if err != nil {
			return "", err
		}
		// Reductions run over expression arrays; Identity materializes one.
		x, err := eng.Unary(dispatch.UnaryIdentity, lhs)
		if err != nil {
			return "", err
		}
		out, err := eng.Reduce(r, x, axis)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
	if u, ok := lookup(j.Op, dispatch.UnaryIdentity, dispatch.UnaryNeg); ok {
		out, err := eng.Unary(u, lhs)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}

	if j.Rhs == nil {
		return "", fmt.Errorf("%w: operator %q needs rhs", ErrJobFormat, j.Op)
	}
	rhs, lease, err := operand(e, *j.Rhs)
	if err != nil {
		return "", fmt.Errorf("rhs: %w", err)
	}
	if lease != nil {
		defer lease.Release()
	}

	if op, ok := lookup(j.Op, dispatch.OpAdd, dispatch.OpDiv); ok {
		out, err := eng.Binary(op, lhs, rhs)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
	if p, ok := lookup(j.Op, dispatch.CmpEq, dispatch.CmpGe); ok {
		out, err := eng.Compare(p, lhs, rhs)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
	return "", fmt.Errorf("%w: %q", layout.ErrUnknownOp, j.Op)
}

// lookup finds the operator in [first, last] whose String is name.
func lookup[T interface {
	~int
	fmt.Stringer
}](name string, first, last T) (T, bool) {
	for op := first; op <= last; op++ {
		if op.String() == name {
			return op, true
		}
	}
	return 0, false
}
