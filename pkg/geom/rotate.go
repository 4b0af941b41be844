package geom

import (
	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

// Rotate rotates v by theta around axis, right-handed.
func Rotate[U angle.UnitPolicy, W angle.WrapPolicy](v, axis r3.Vec, theta angle.Angle[float64, U, W]) r3.Vec {
	return r3.Rotate(v, theta.Radians(), axis)
}

// RotateOrthogonal rotates vec by theta around axis using Rodrigues'
// formula specialised for orthogonal unit vectors (the final term is always
// zero for those).
func RotateOrthogonal[U angle.UnitPolicy, W angle.WrapPolicy](vec, axis vector.Vector, theta angle.Angle[float64, U, W]) (vector.Vector, error) {
	axisCrossVec, err := axis.Cross(vec)
	if err != nil {
		return nil, errors.Wrap(err, "cross product")
	}
	return vec.Scale(theta.Cos()).Add(axisCrossVec.Scale(theta.Sin())), nil
}
