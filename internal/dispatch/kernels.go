package dispatch

import (
	"github.com/modelkit/grid/internal/layout"
	"github.com/modelkit/grid/internal/view"
)

// isSimple reports whether every source has exactly the destination shape,
// so no scalar promotion is needed.
func isSimple(md layout.MetaData, srcs ...layout.MetaData) bool {
	for _, s := range srcs {
		if !s.SameShape(md) {
			return false
		}
	}
	return true
}

// broadcastIndex maps a destination coordinate onto a source of shape md:
// a scalar always resolves to its single element.
func broadcastIndex(md layout.MetaData) func(i, j int) (int, int) {
	if md.IsScalar() {
		return func(int, int) (int, int) { return 0, 0 }
	}
	return func(i, j int) (int, int) { return i, j }
}

// binaryElementwise writes fn(a, b) for every destination coordinate.
// Both paths produce identical results; the simple one skips coordinate
// translation.
func binaryElementwise[E, D any](dst sink[D], a, b Operand[E], fn func(x, y E) D) {
	md := dst.Meta()
	if isSimple(md, a.Meta(), b.Meta()) {
		view.Walk(md, func(i, j int) {
			dst.Set(i, j, fn(a.At(i, j), b.At(i, j)))
		})
		return
	}

	mapA, mapB := broadcastIndex(a.Meta()), broadcastIndex(b.Meta())
	view.Walk(md, func(i, j int) {
		ai, aj := mapA(i, j)
		bi, bj := mapB(i, j)
		dst.Set(i, j, fn(a.At(ai, aj), b.At(bi, bj)))
	})
}

// unaryElementwise writes fn(a) for every destination coordinate.
func unaryElementwise[E any](dst sink[E], a Operand[E], fn func(x E) E) {
	md := dst.Meta()
	mapA := broadcastIndex(a.Meta())
	if isSimple(md, a.Meta()) {
		mapA = func(i, j int) (int, int) { return i, j }
	}
	view.Walk(md, func(i, j int) {
		ai, aj := mapA(i, j)
		dst.Set(i, j, fn(a.At(ai, aj)))
	})
}

// matrixProduct computes dst(i,j) = sum_k a(i,k)*b(k,j), folding over k in
// ascending order. The sum for each element is formed before it is written.
func matrixProduct[E, C any](alg Algebra[E, C], dst sink[E], a, b Operand[E]) {
	m, k := a.Meta().Shape()
	_, n := b.Meta().Shape()

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			acc := alg.Mul(a.At(i, 0), b.At(0, j))
			for p := 1; p < k; p++ {
				acc = alg.Add(acc, alg.Mul(a.At(i, p), b.At(p, j)))
			}
			dst.Set(i, j, acc)
		}
	}
}
