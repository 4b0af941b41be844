package geom

import (
	"math"
	"testing"

	"github.com/quartercastle/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

const tolerance = 1e-9

func assertFloat(t *testing.T, name string, got, expected float64) {
	t.Helper()
	if math.Abs(got-expected) > tolerance {
		t.Errorf("%s = %.12f, expected %.12f", name, got, expected)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, pt := range [][2]float64{{1, 0}, {0, 1}, {-1, -1}, {3, 4}, {-2, 0.5}} {
		p := FromCartesian[angle.Degree](pt[0], pt[1])
		x, y := p.Cartesian()
		assertFloat(t, "x", x, pt[0])
		assertFloat(t, "y", y, pt[1])
	}
	p := FromCartesian[angle.Degree](-1, 1)
	assertFloat(t, "theta", p.Theta.Value(), 135)
	assertFloat(t, "r", p.R, math.Sqrt2)

	// The negative X axis sits on the Signed boundary.
	if v := FromCartesian[angle.Degree](-1, 0).Theta.Value(); v != 180 {
		t.Errorf("theta of (-1, 0) = %v, expected 180", v)
	}
}

func TestPolarVector(t *testing.T) {
	p := FromCartesian[angle.Radian](3, 4)
	v := p.Vector()
	assertFloat(t, "vector x", v[0], 3)
	assertFloat(t, "vector y", v[1], 4)
	assertFloat(t, "magnitude", v.Magnitude(), 5)

	back, err := FromVector[angle.Radian](v)
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, "theta", back.Theta.Value(), p.Theta.Value())

	_, err = FromVector[angle.Radian](vector.Vector{1})
	if !errors.Is(err, ErrDimension) {
		t.Errorf("short vector error = %v", err)
	}
}

func TestPolarRotate(t *testing.T) {
	p := FromCartesian[angle.Degree](1, 0).Rotate(angle.Degrees[angle.Signed](270.0))
	assertFloat(t, "theta", p.Theta.Value(), -90)
	vec := p.Vec()
	assertFloat(t, "x", vec.X, 0)
	assertFloat(t, "y", vec.Y, -1)
}

func TestBearing(t *testing.T) {
	b := Bearing[angle.Degree](r3.Vec{X: 1, Y: 1}, r3.Vec{X: 0, Y: 2})
	assertFloat(t, "bearing", b.Value(), 135)
}

func TestRotate(t *testing.T) {
	z := r3.Vec{Z: 1}
	v := Rotate(r3.Vec{X: 1}, z, angle.Degrees[angle.Signed](90.0))
	assertFloat(t, "x", v.X, 0)
	assertFloat(t, "y", v.Y, 1)
	assertFloat(t, "norm", r3.Norm(v), 1)

	u, err := RotateOrthogonal(vector.X, vector.Z, angle.Degrees[angle.Signed](90.0))
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, "x", u[0], 0)
	assertFloat(t, "y", u[1], 1)
}

func TestRobotYaw(t *testing.T) {
	deg := func(d float64) angle.SignedRadians {
		return angle.Degrees[angle.Signed](d).InRadians()
	}
	yaw := RobotYaw(deg(0), deg(90), deg(0))
	assertFloat(t, "pitched yaw", yaw.Value(), 90)

	for _, ypr := range [][3]float64{
		{0, 90, 0},
		{30, 90, 0},
		{-45, 60, 10},
		{170, 80, -20},
		{-120, 45, 45},
	} {
		g := RobotYaw(deg(ypr[0]), deg(ypr[1]), deg(ypr[2]))
		v, err := RobotYawVector(deg(ypr[0]), deg(ypr[1]), deg(ypr[2]))
		if err != nil {
			t.Fatal(err)
		}
		if !g.ApproxEqual(v, 1e-6) {
			t.Errorf("yaw %v: gonum %v, vector %v", ypr, g, v)
		}
	}
}
