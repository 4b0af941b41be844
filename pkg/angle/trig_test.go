package angle

import (
	"math"
	"testing"
)

func TestATan2Quadrants(t *testing.T) {
	tests := []struct {
		y, x    float64
		degrees float64
	}{
		{1, 1, 45},
		{1, -1, 135},
		{-1, -1, -135},
		{-1, 1, -45},
		{0, 1, 0},
		{1, 0, 90},
		{0, -1, 180},
	}
	for _, tt := range tests {
		a := ATan2(tt.y, tt.x)
		assertFloat(t, "ATan2 degrees", a.Degrees(), tt.degrees)
		if a.Unit() != UnitRadian || a.Wrap() != WrapNone {
			t.Errorf("ATan2(%v, %v) has policies %v/%v", tt.y, tt.x, a.Unit(), a.Wrap())
		}
	}
	assertFloat(t, "ATan2(1,1) radians", ATan2(1.0, 1.0).Value(), math.Pi/4)
}

func TestATan2SignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	if v := ATan2(negZero, -1).Value(); v != -math.Pi {
		t.Errorf("ATan2(-0, -1) = %v, expected -pi", v)
	}
	if v := ATan2(0.0, -1).Value(); v != math.Pi {
		t.Errorf("ATan2(+0, -1) = %v, expected pi", v)
	}
	if v := ATan2(negZero, 1).Value(); v != 0 || !math.Signbit(v) {
		t.Errorf("ATan2(-0, 1) = %v, expected -0", v)
	}
}

func TestATan2Float32(t *testing.T) {
	a := ATan2(float32(1), float32(1))
	if math.Abs(float64(a.Value())-math.Pi/4) > 1e-6 {
		t.Errorf("float32 ATan2 = %v", a)
	}
}

func TestInverseTrig(t *testing.T) {
	assertFloat(t, "ASin(1)", ASin(1.0).Value(), math.Pi/2)
	assertFloat(t, "ASin(-0.5) degrees", ASin(-0.5).Degrees(), -30)
	assertFloat(t, "ACos(-1)", ACos(-1.0).Value(), math.Pi)
	assertFloat(t, "ACos(0.5) degrees", ACos(0.5).Degrees(), 60)
	assertFloat(t, "ATan(1) degrees", ATan(1.0).Degrees(), 45)
	assertFloat(t, "ATan(+Inf)", ATan(math.Inf(1)).Value(), math.Pi/2)
}

func TestInverseTrigDomainErrors(t *testing.T) {
	// Out-of-domain input is reported as NaN, never clamped.
	for _, v := range []float64{1.0000001, -2, math.Inf(1)} {
		if a := ASin(v); !a.IsNaN() {
			t.Errorf("ASin(%v) = %v, expected NaN", v, a)
		}
		if a := ACos(v); !a.IsNaN() {
			t.Errorf("ACos(%v) = %v, expected NaN", v, a)
		}
	}
	if !ATan(math.NaN()).IsNaN() {
		t.Error("ATan(NaN) should be NaN")
	}
}

func TestInverseTrigConvertsToSigned(t *testing.T) {
	heading := ATan2(-1.0, -1.0).InDegrees().Unsigned()
	assertFloat(t, "unsigned heading", heading.Value(), 225)
}
