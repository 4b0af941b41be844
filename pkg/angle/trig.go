package angle

import (
	"math"

	"golang.org/x/exp/constraints"
)

// The inverse trigonometric functions return radians with no wrap policy:
// their results already lie in a known sub-range. Inputs outside the
// function's domain give NaN, as in package math; they are never clamped.

// ASin returns the arcsine of sine, in [-π/2, π/2]. |sine| > 1 gives NaN.
func ASin[T constraints.Float](sine T) Angle[T, Radian, NoWrap] {
	return Angle[T, Radian, NoWrap]{v: T(math.Asin(float64(sine)))}
}

// ACos returns the arccosine of cosine, in [0, π]. |cosine| > 1 gives NaN.
func ACos[T constraints.Float](cosine T) Angle[T, Radian, NoWrap] {
	return Angle[T, Radian, NoWrap]{v: T(math.Acos(float64(cosine)))}
}

// ATan returns the arctangent of tangent, in [-π/2, π/2].
func ATan[T constraints.Float](tangent T) Angle[T, Radian, NoWrap] {
	return Angle[T, Radian, NoWrap]{v: T(math.Atan(float64(tangent)))}
}

// ATan2 returns the arctangent of y/x in (-π, π], or -π when y is -0 and
// x is negative. The signs of both arguments pick the quadrant, and the
// special cases, signed zeros included, are those of math.Atan2.
func ATan2[T constraints.Float](y, x T) Angle[T, Radian, NoWrap] {
	return Angle[T, Radian, NoWrap]{v: T(math.Atan2(float64(y), float64(x)))}
}
