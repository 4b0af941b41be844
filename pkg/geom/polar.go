package geom

import (
	"math"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

var ErrDimension = errors.New("geom: vector needs at least 2 components")

// Polar is a 2D point as a distance from the origin and an angle measured
// anti-clockwise from the positive X axis.
type Polar[U angle.UnitPolicy] struct {
	R     float64
	Theta angle.Angle[float64, U, angle.Signed]
}

// FromCartesian converts (x, y) into polar form. The origin has R 0 and
// Theta 0.
func FromCartesian[U angle.UnitPolicy](x, y float64) Polar[U] {
	return Polar[U]{
		R:     math.Hypot(x, y),
		Theta: angle.Convert[U, angle.Signed](angle.ATan2(y, x)),
	}
}

// FromVector converts the first two components of v.
func FromVector[U angle.UnitPolicy](v vector.Vector) (Polar[U], error) {
	if len(v) < 2 {
		return Polar[U]{}, errors.Wrapf(ErrDimension, "got %d", len(v))
	}
	return FromCartesian[U](v[0], v[1]), nil
}

func (p Polar[U]) Cartesian() (x, y float64) {
	return p.R * p.Theta.Cos(), p.R * p.Theta.Sin()
}

func (p Polar[U]) Vector() vector.Vector {
	x, y := p.Cartesian()
	return vector.Vector{x, y}
}

// Vec returns the point in the Z=0 plane.
func (p Polar[U]) Vec() r3.Vec {
	x, y := p.Cartesian()
	return r3.Vec{X: x, Y: y}
}

// Rotate turns the point anti-clockwise about the origin.
func (p Polar[U]) Rotate(by angle.Angle[float64, U, angle.Signed]) Polar[U] {
	return Polar[U]{R: p.R, Theta: p.Theta.Add(by)}
}

// Bearing returns the direction from one point to another.
func Bearing[U angle.UnitPolicy](from, to r3.Vec) angle.Angle[float64, U, angle.Signed] {
	d := r3.Sub(to, from)
	return angle.Convert[U, angle.Signed](angle.ATan2(d.Y, d.X))
}
