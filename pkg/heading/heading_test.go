package heading

import (
	"math"
	"testing"
	"time"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

func TestClampHeading(t *testing.T) {
	expectClampResult(t, 0, 0, 0)
	expectClampResult(t, 0, 179, 179)
	expectClampResult(t, 0, -179, -179)
	expectClampResult(t, 0, 360, 0)
	expectClampResult(t, 0, 361, 1)
	expectClampResult(t, 0, 359, -1)

	expectClampResult(t, 100, 0, 0)
	expectClampResult(t, 100, 179, 179)
	expectClampResult(t, 100, -179, 181)
	expectClampResult(t, 100, 360, 0)
	expectClampResult(t, 100, 361, 1)
	expectClampResult(t, 100, 359, -1)
	expectClampResult(t, 100, -79, -79)
	expectClampResult(t, 100, -81, 279)
	expectClampResult(t, 100, 720, 0)
	expectClampResult(t, 100, 720+180, 180)

	expectClampResult(t, 420, -79, 281)
	expectClampResult(t, 420, -81, 279)
	expectClampResult(t, 420, 720, 360)
	expectClampResult(t, 420, 900, 540)

	// Exactly half a turn away: turn positive.
	expectClampResult(t, 0, 180, 180)
	expectClampResult(t, 0, -180, 180)
}

func expectClampResult(t *testing.T, cH, tH, eH float64) {
	t.Helper()
	aH := ClampHeading(cH, tH)
	if math.Abs(aH-cH) > 180 {
		t.Errorf(">180 value for %f + %f = %f, expected %f", cH, tH, aH, eH)
	}

	a := math.Mod(aH, 360)
	if a < 0 {
		a += 360
	}

	b := math.Mod(tH, 360)
	if b < 0 {
		b += 360
	}

	if a != b {
		t.Errorf("Not equal mod 360: %f + %f = %f, expected %f", cH, tH, aH, eH)
	}

	if aH != eH {
		t.Errorf("Not equal to expected value: %f + %f = %f, expected %f", cH, tH, aH, eH)
	}

	typed := Nearest(angle.Degrees[angle.NoWrap](cH), angle.Degrees[angle.Unsigned](tH))
	if typed.Value() != eH {
		t.Errorf("Nearest(%f, %f) = %v, expected %f", cH, tH, typed, eH)
	}
}

func TestTrackerIntegration(t *testing.T) {
	tr := NewTracker(angle.FromFloat(170))
	tr.Integrate(20, time.Second)

	if v := tr.Unwrapped().Value(); v != 190 {
		t.Errorf("unwrapped = %v, expected 190", v)
	}
	if v := tr.CurrentHeading().Value(); v != -170 {
		t.Errorf("current = %v, expected -170", v)
	}

	tr.IntegrateAll([]float64{100, 100, 100}, 10*time.Millisecond)
	if v := tr.Unwrapped().Value(); math.Abs(v-193) > 1e-9 {
		t.Errorf("unwrapped after FIFO = %v, expected 193", v)
	}
}

func TestTrackerTarget(t *testing.T) {
	tr := NewTracker(angle.FromFloat(170))
	tr.Integrate(20, time.Second)

	tr.SetHeading(angle.FromFloat(-90))
	if v := tr.HeadingError(); v != 80 {
		t.Errorf("error = %v, expected 80", v)
	}
	if v := tr.TargetHeading().Value(); v != -90 {
		t.Errorf("target = %v, expected -90", v)
	}
	if tr.OnTarget(1) {
		t.Error("should not be on target yet")
	}

	tr.AddHeadingDelta(-80)
	if !tr.OnTarget(1) {
		t.Errorf("should be on target, error %v", tr.HeadingError())
	}

	// A full spin stays a full spin rather than collapsing to zero.
	tr.AddHeadingDelta(360)
	if v := tr.HeadingError(); v != 360 {
		t.Errorf("error = %v, expected 360", v)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(angle.FromFloat(0))
	tr.Integrate(-90, 2*time.Second)
	tr.Reset(angle.FromFloat(45))
	if tr.Unwrapped().Value() != 45 || tr.HeadingError() != 0 {
		t.Errorf("after reset: %v, error %v", tr.Unwrapped(), tr.HeadingError())
	}
}
