// Package angle provides strongly typed angles. The element type, the unit
// (radians or degrees) and the wrap policy (signed, unsigned or none) are
// type parameters, so mixing a heading in degrees with one in radians is a
// compile error rather than a bug on the robot.
package angle

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Angle is an angular quantity in unit U, kept in the canonical range of
// wrap policy W. All operations re-normalize their output. The zero value
// is an angle of 0.
type Angle[T constraints.Float, U UnitPolicy, W WrapPolicy] struct {
	v T
}

// Common instantiations.
type (
	SignedDegrees   = Angle[float64, Degree, Signed]
	UnsignedDegrees = Angle[float64, Degree, Unsigned]
	SignedRadians   = Angle[float64, Radian, Signed]
	UnsignedRadians = Angle[float64, Radian, Unsigned]

	// PlusMinus180 is an angle in degrees, stored as a value in range (-180, 180].
	PlusMinus180 = SignedDegrees
)

// New returns v normalized under W, interpreting v in unit U.
func New[T constraints.Float, U UnitPolicy, W WrapPolicy](v T) Angle[T, U, W] {
	return Angle[T, U, W]{v: normalize(wrapOf[W](), period[T, U](), v)}
}

func Degrees[W WrapPolicy, T constraints.Float](v T) Angle[T, Degree, W] {
	return New[T, Degree, W](v)
}

func Radians[W WrapPolicy, T constraints.Float](v T) Angle[T, Radian, W] {
	return New[T, Radian, W](v)
}

// FromFloat converts a float of any magnitude, in degrees, to a PlusMinus180.
func FromFloat(f float64) PlusMinus180 {
	return New[float64, Degree, Signed](f)
}

func period[T constraints.Float, U UnitPolicy]() T {
	return T(unitOf[U]().Period())
}

func (a Angle[T, U, W]) with(v T) Angle[T, U, W] {
	return New[T, U, W](v)
}

// Value returns the normalized value in unit U.
func (a Angle[T, U, W]) Value() T {
	return a.v
}

// Float returns the normalized value in unit U as a float64.
func (a Angle[T, U, W]) Float() float64 {
	return float64(a.v)
}

// Radians returns the value converted to radians, without re-wrapping.
func (a Angle[T, U, W]) Radians() T {
	return T(unitOf[U]().ToRadians(float64(a.v)))
}

// Degrees returns the value converted to degrees, without re-wrapping.
func (a Angle[T, U, W]) Degrees() T {
	return T(convert(float64(a.v), unitOf[U](), UnitDegree))
}

func (a Angle[T, U, W]) Unit() Unit { return unitOf[U]() }
func (a Angle[T, U, W]) Wrap() Wrap { return wrapOf[W]() }

// Period returns the period of the angle's unit in its element type.
func (a Angle[T, U, W]) Period() T { return period[T, U]() }

// Set replaces the stored value with v, re-normalizing it.
func (a *Angle[T, U, W]) Set(v T) {
	*a = a.with(v)
}

func (a Angle[T, U, W]) Add(b Angle[T, U, W]) Angle[T, U, W] {
	return a.with(a.v + b.v)
}

func (a Angle[T, U, W]) Sub(b Angle[T, U, W]) Angle[T, U, W] {
	return a.with(a.v - b.v)
}

// AddFloat adds f, interpreted in unit U.
func (a Angle[T, U, W]) AddFloat(f T) Angle[T, U, W] {
	return a.with(a.v + f)
}

// SubFloat subtracts f, interpreted in unit U.
func (a Angle[T, U, W]) SubFloat(f T) Angle[T, U, W] {
	return a.with(a.v - f)
}

func (a Angle[T, U, W]) Mul(k T) Angle[T, U, W] {
	return a.with(a.v * k)
}

func (a Angle[T, U, W]) Div(k T) Angle[T, U, W] {
	return a.with(a.v / k)
}

// Neg returns the opposite angle. For Signed angles the upper boundary maps
// onto itself: -(180deg) is 180deg.
func (a Angle[T, U, W]) Neg() Angle[T, U, W] {
	return a.with(-a.v)
}

// AddMixed adds two angles of the same unit whose wrap policies may differ.
// The sum is normalized under Resolve(WA, WB); since no single type can
// express that for every pair, the result is typed NoWrap. Convert it to
// re-establish a range guarantee.
func AddMixed[T constraints.Float, U UnitPolicy, WA, WB WrapPolicy](a Angle[T, U, WA], b Angle[T, U, WB]) Angle[T, U, NoWrap] {
	return Angle[T, U, NoWrap]{v: normalize(ResolveOf[WA, WB](), period[T, U](), a.v+b.v)}
}

// SubMixed is AddMixed for a - b.
func SubMixed[T constraints.Float, U UnitPolicy, WA, WB WrapPolicy](a Angle[T, U, WA], b Angle[T, U, WB]) Angle[T, U, NoWrap] {
	return Angle[T, U, NoWrap]{v: normalize(ResolveOf[WA, WB](), period[T, U](), a.v-b.v)}
}

func (a Angle[T, U, W]) Equal(b Angle[T, U, W]) bool {
	return a.v == b.v
}

func (a Angle[T, U, W]) Less(b Angle[T, U, W]) bool {
	return a.v < b.v
}

// Compare returns -1, 0 or +1 like cmp.Compare; NaN sorts first.
func (a Angle[T, U, W]) Compare(b Angle[T, U, W]) int {
	return cmp.Compare(a.v, b.v)
}

// ApproxEqual reports whether a and b are within tol of each other. For
// Signed and Unsigned angles the distance is measured around the circle,
// so 179.9999deg and -179.9999deg are close.
func (a Angle[T, U, W]) ApproxEqual(b Angle[T, U, W], tol T) bool {
	d := a.v - b.v
	if wrapOf[W]() != WrapNone {
		d = normalize(WrapSigned, period[T, U](), d)
	}
	return T(math.Abs(float64(d))) <= tol
}

// Compare orders two angles of possibly different unit and wrap policy by
// their value, after bringing b into a's unit. The wrap policy plays no part.
// Values within a few ULPs of each other, the rounding left by unit
// conversion, compare as 0.
func Compare[T constraints.Float, UA UnitPolicy, WA WrapPolicy, UB UnitPolicy, WB WrapPolicy](a Angle[T, UA, WA], b Angle[T, UB, WB]) int {
	bv := T(convert(float64(b.v), unitOf[UB](), unitOf[UA]()))
	if nearlyEqual(a.v, bv, period[T, UA]()) {
		return 0
	}
	return cmp.Compare(a.v, bv)
}

// Equal is Compare(a, b) == 0 for non-NaN values, so 30deg equals π/6 rad
// although the conversion does not round trip exactly.
func Equal[T constraints.Float, UA UnitPolicy, WA WrapPolicy, UB UnitPolicy, WB WrapPolicy](a Angle[T, UA, WA], b Angle[T, UB, WB]) bool {
	bv := T(convert(float64(b.v), unitOf[UB](), unitOf[UA]()))
	return nearlyEqual(a.v, bv, period[T, UA]())
}

// ApproxEqual converts b to a's unit and wrap policy and reports whether the
// two are within tol, in a's unit, as the method of the same name does.
func ApproxEqual[T constraints.Float, UA UnitPolicy, WA WrapPolicy, UB UnitPolicy, WB WrapPolicy](a Angle[T, UA, WA], b Angle[T, UB, WB], tol T) bool {
	return a.ApproxEqual(Convert[UA, WA](b), tol)
}

// conversionULPs is how far apart, in units of the last place at the size of
// a period, two values may be and still count as the same angle.
const conversionULPs = 4

func nearlyEqual[T constraints.Float](x, y, period T) bool {
	if x == y {
		return true
	}
	eps := 0x1p-52
	if bitSize[T]() == 32 {
		eps = 0x1p-23
	}
	return math.Abs(float64(x)-float64(y)) <= conversionULPs*eps*float64(period)
}

func (a Angle[T, U, W]) Sin() T { return T(math.Sin(float64(a.Radians()))) }
func (a Angle[T, U, W]) Cos() T { return T(math.Cos(float64(a.Radians()))) }
func (a Angle[T, U, W]) Tan() T { return T(math.Tan(float64(a.Radians()))) }

func (a Angle[T, U, W]) IsNaN() bool { return math.IsNaN(float64(a.v)) }
