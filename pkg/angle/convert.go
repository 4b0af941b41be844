package angle

import "golang.org/x/exp/constraints"

// Convert re-expresses a in unit U2 and normalizes it under wrap policy W2.
// Every cross-policy conversion in this package goes through here.
//
//	h := angle.Convert[angle.Radian, angle.Unsigned](heading)
func Convert[U2 UnitPolicy, W2 WrapPolicy, T constraints.Float, U1 UnitPolicy, W1 WrapPolicy](a Angle[T, U1, W1]) Angle[T, U2, W2] {
	return New[T, U2, W2](T(convert(float64(a.v), unitOf[U1](), unitOf[U2]())))
}

// Assign stores src into dst, converting unit and wrap policy as Convert does.
func Assign[T constraints.Float, U UnitPolicy, W WrapPolicy, U2 UnitPolicy, W2 WrapPolicy](dst *Angle[T, U, W], src Angle[T, U2, W2]) {
	*dst = Convert[U, W](src)
}

// Cast changes the element type, keeping unit and wrap policy.
func Cast[T2 constraints.Float, T constraints.Float, U UnitPolicy, W WrapPolicy](a Angle[T, U, W]) Angle[T2, U, W] {
	return New[T2, U, W](T2(a.v))
}

func (a Angle[T, U, W]) InRadians() Angle[T, Radian, W] {
	return Convert[Radian, W](a)
}

func (a Angle[T, U, W]) InDegrees() Angle[T, Degree, W] {
	return Convert[Degree, W](a)
}

// Signed returns the angle re-wrapped into (-period/2, period/2].
func (a Angle[T, U, W]) Signed() Angle[T, U, Signed] {
	return Convert[U, Signed](a)
}

// Unsigned returns the angle re-wrapped into [0, period).
func (a Angle[T, U, W]) Unsigned() Angle[T, U, Unsigned] {
	return Convert[U, Unsigned](a)
}

// Unwrapped drops the range guarantee, for accumulating values such as a
// continuously integrated heading.
func (a Angle[T, U, W]) Unwrapped() Angle[T, U, NoWrap] {
	return Convert[U, NoWrap](a)
}
