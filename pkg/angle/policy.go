package angle

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Unit identifies the angular unit of an Angle.
type Unit uint8

const (
	UnitRadian Unit = iota
	UnitDegree
)

// Period returns the span after which an angle in this unit repeats.
func (u Unit) Period() float64 {
	if u == UnitDegree {
		return 360
	}
	return 2 * math.Pi
}

// Symbol is the suffix used when formatting and parsing.
func (u Unit) Symbol() string {
	if u == UnitDegree {
		return "deg"
	}
	return "rad"
}

func (u Unit) String() string {
	if u == UnitDegree {
		return "degree"
	}
	return "radian"
}

func (u Unit) ToRadians(v float64) float64 {
	if u == UnitDegree {
		return v * (math.Pi / 180)
	}
	return v
}

func (u Unit) FromRadians(v float64) float64 {
	if u == UnitDegree {
		return v * (180 / math.Pi)
	}
	return v
}

// convert moves v from unit `from` into unit `to` without wrapping.
func convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	return to.FromRadians(from.ToRadians(v))
}

// Wrap identifies how a raw value is normalized into range.
type Wrap uint8

const (
	// WrapNone performs no normalization.
	WrapNone Wrap = iota
	// WrapSigned normalizes into (-period/2, period/2].
	WrapSigned
	// WrapUnsigned normalizes into [0, period).
	WrapUnsigned
)

func (w Wrap) String() string {
	switch w {
	case WrapSigned:
		return "signed"
	case WrapUnsigned:
		return "unsigned"
	}
	return "nowrap"
}

// Normalize maps raw into the canonical range of w for the given period.
func (w Wrap) Normalize(period, raw float64) float64 {
	return normalize(w, period, raw)
}

// Contains reports whether v already lies in the canonical range of w.
func (w Wrap) Contains(period, v float64) bool {
	switch w {
	case WrapSigned:
		return v > -period/2 && v <= period/2
	case WrapUnsigned:
		return v >= 0 && v < period
	}
	return true
}

// normalize works in the precision of T so that float32 angles never land
// on the excluded end of the range after rounding.
func normalize[T constraints.Float](w Wrap, period, v T) T {
	switch w {
	case WrapSigned:
		d := T(math.Mod(float64(v), float64(period)))
		if d <= -period/2 {
			d += period
		} else if d > period/2 {
			d -= period
		}
		return d
	case WrapUnsigned:
		d := T(math.Mod(float64(v), float64(period)))
		if d < 0 {
			d += period
		}
		if d >= period || d == 0 {
			// Catches both rounding up to the period and negative zero.
			d = 0
		}
		return d
	}
	return v
}

// Resolve returns the wrap policy of a value produced by combining two
// values with wrap policies a and b. Matching policies are kept; any
// disagreement gives WrapNone, since the canonical range of the result is
// ambiguous.
func Resolve(a, b Wrap) Wrap {
	if a == b {
		return a
	}
	return WrapNone
}

// UnitPolicy is the closed set of unit tags an Angle can be instantiated with.
type UnitPolicy interface {
	Radian | Degree
	Unit() Unit
}

// WrapPolicy is the closed set of wrap tags an Angle can be instantiated with.
type WrapPolicy interface {
	Signed | Unsigned | NoWrap
	Wrap() Wrap
}

type (
	Radian struct{}
	Degree struct{}
)

func (Radian) Unit() Unit { return UnitRadian }
func (Degree) Unit() Unit { return UnitDegree }

type (
	Signed   struct{}
	Unsigned struct{}
	NoWrap   struct{}
)

func (Signed) Wrap() Wrap   { return WrapSigned }
func (Unsigned) Wrap() Wrap { return WrapUnsigned }
func (NoWrap) Wrap() Wrap   { return WrapNone }

// ResolveOf is Resolve over two wrap policy types.
func ResolveOf[A, B WrapPolicy]() Wrap {
	return Resolve(wrapOf[A](), wrapOf[B]())
}

func unitOf[U UnitPolicy]() Unit {
	var u U
	return u.Unit()
}

func wrapOf[W WrapPolicy]() Wrap {
	var w W
	return w.Wrap()
}
