package geom

import (
	"github.com/quartercastle/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

// RobotYaw converts the IMU's intrinsic yaw/pitch/roll into the heading of
// the robot, whose front is along the IMU's Z axis.
func RobotYaw(yaw, pitch, roll angle.SignedRadians) angle.PlusMinus180 {
	x0 := r3.Vec{X: 1}
	y0 := r3.Vec{Y: 1}
	z0 := r3.Vec{Z: 1}

	// Rotate the axes yaw radians around Z.
	x1 := Rotate(x0, z0, yaw)
	y1 := Rotate(y0, z0, yaw)
	z1 := z0

	// Rotate pitch radians around the *new* Y.
	x2 := Rotate(x1, y1, pitch)
	z2 := Rotate(z1, y1, pitch)

	// Rotate roll radians around the new X.
	z3 := Rotate(z2, x2, roll)

	// Take the x and y components of the final Z vector.
	return angle.ATan2(z3.X, z3.Y).InDegrees().Signed()
}

// RobotYawVector is RobotYaw computed with Rodrigues' rotation on
// quartercastle vectors instead of gonum's quaternions.
func RobotYawVector(yaw, pitch, roll angle.SignedRadians) (angle.PlusMinus180, error) {
	x1, err := RotateOrthogonal(vector.X, vector.Z, yaw)
	if err != nil {
		return angle.PlusMinus180{}, err
	}
	y1, err := RotateOrthogonal(vector.Y, vector.Z, yaw)
	if err != nil {
		return angle.PlusMinus180{}, err
	}
	z1 := vector.Z

	x2, err := RotateOrthogonal(x1, y1, pitch)
	if err != nil {
		return angle.PlusMinus180{}, err
	}
	z2, err := RotateOrthogonal(z1, y1, pitch)
	if err != nil {
		return angle.PlusMinus180{}, err
	}

	z3, err := RotateOrthogonal(z2, x2, roll)
	if err != nil {
		return angle.PlusMinus180{}, err
	}
	return angle.ATan2(z3[0], z3[1]).InDegrees().Signed(), nil
}
