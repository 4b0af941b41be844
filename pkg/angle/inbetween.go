package angle

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsInbetween reports whether test lies on the arc swept counter-clockwise
// from first to second. Both ends are included. When first equals second
// the arc is the single point first. The sweep is the one Inbetween
// returns.
func IsInbetween[T constraints.Float, U UnitPolicy, W WrapPolicy](test, first, second Angle[T, U, W]) bool {
	p := period[T, U]()
	sweep := normalize(WrapUnsigned, p, second.v-first.v)
	return offset(p, test.v-first.v) <= sweep
}

// offset is d moved into [0, p]. Unlike Unsigned wrapping, a tiny negative d
// that rounds up to p stays at p: the point is just short of a full turn
// from the start, not on it.
func offset[T constraints.Float](p, d T) T {
	d = T(math.Mod(float64(d), float64(p)))
	if d < 0 {
		d += p
	}
	return d
}

// Inbetween returns the size of the arc swept counter-clockwise from first
// to second, in [0, period).
func Inbetween[T constraints.Float, U UnitPolicy, W WrapPolicy](first, second Angle[T, U, W]) Angle[T, U, Unsigned] {
	return New[T, U, Unsigned](second.v - first.v)
}
