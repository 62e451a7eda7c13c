// Package dispatch routes operator requests between arrays to the generic
// elementwise, reduction and matrix-product algorithms.
//
// The element arithmetic itself is supplied by an Algebra: the engine only
// decides shapes, walks index spaces and calls the algebra once per output
// element.
package dispatch

// Algebra is the element-operator contract of a backend whose values are E
// and whose predicates (constraints) are C.
type Algebra[E, C any] interface {
	// Const promotes a plain number to an element.
	Const(v float64) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Div(a, b E) E
	Max(a, b E) E
	Min(a, b E) E

	Neg(a E) E
	Abs(a E) E

	Equal(a, b E) C
	NotEqual(a, b E) C
	Less(a, b E) C
	LessEqual(a, b E) C
	Greater(a, b E) C
	GreaterEqual(a, b E) C
}

// Float64 is the plain numeric algebra: elements are float64, predicates bool.
type Float64 struct{}

var _ Algebra[float64, bool] = Float64{}

func (Float64) Const(v float64) float64        { return v }
func (Float64) Add(a, b float64) float64       { return a + b }
func (Float64) Sub(a, b float64) float64       { return a - b }
func (Float64) Mul(a, b float64) float64       { return a * b }
func (Float64) Div(a, b float64) float64       { return a / b }
func (Float64) Max(a, b float64) float64       { return max(a, b) }
func (Float64) Min(a, b float64) float64       { return min(a, b) }
func (Float64) Neg(a float64) float64          { return -a }
func (Float64) Equal(a, b float64) bool        { return a == b }
func (Float64) NotEqual(a, b float64) bool     { return a != b }
func (Float64) Less(a, b float64) bool         { return a < b }
func (Float64) LessEqual(a, b float64) bool    { return a <= b }
func (Float64) Greater(a, b float64) bool      { return a > b }
func (Float64) GreaterEqual(a, b float64) bool { return a >= b }

// Abs returns |a|.
func (Float64) Abs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}
