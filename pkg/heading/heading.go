package heading

import (
	"time"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

// Unwrapped is a heading in degrees that keeps counting past +/-180, so a
// bot that has turned twice on the spot reads 720.
type Unwrapped = angle.Angle[float64, angle.Degree, angle.NoWrap]

// ClampHeading returns the heading that is congruent to target mod 360 and
// closest to current, i.e. the target the bot should steer for without
// spinning the long way round. Ties at exactly 180 degrees turn positive.
func ClampHeading(current, target float64) float64 {
	return current + angle.FromFloat(target-current).Float()
}

// Nearest is ClampHeading for typed angles. target can use any wrap policy.
func Nearest[W angle.WrapPolicy](current Unwrapped, target angle.Angle[float64, angle.Degree, W]) Unwrapped {
	return current.AddFloat(angle.SubMixed(target, current).Signed().Value())
}

// Tracker integrates yaw rate readings into a continuous heading estimate
// and keeps a target heading for the controller to steer towards.
type Tracker struct {
	current Unwrapped
	target  Unwrapped
}

func NewTracker(initial angle.PlusMinus180) *Tracker {
	t := &Tracker{}
	t.Reset(initial)
	return t
}

// Reset sets both the current and target heading to h.
func (t *Tracker) Reset(h angle.PlusMinus180) {
	t.current = h.Unwrapped()
	t.target = t.current
}

// Integrate adds the rotation implied by a yaw rate, in degrees per second
// anti-clockwise, held for dt.
func (t *Tracker) Integrate(degreesPerSec float64, dt time.Duration) {
	t.current = t.current.AddFloat(degreesPerSec * dt.Seconds())
}

// IntegrateAll integrates a batch of readings taken at a fixed interval, as
// read out of an IMU FIFO.
func (t *Tracker) IntegrateAll(degreesPerSec []float64, interval time.Duration) {
	for _, r := range degreesPerSec {
		t.Integrate(r, interval)
	}
}

// SetHeading sets the target to the desired heading, choosing the
// representation nearest the current heading.
func (t *Tracker) SetHeading(desired angle.PlusMinus180) {
	t.target = Nearest(t.current, desired)
}

// AddHeadingDelta moves the target by delta degrees. Large deltas are kept
// as is so the bot can be asked to spin more than half a turn.
func (t *Tracker) AddHeadingDelta(delta float64) {
	t.target = t.target.AddFloat(delta)
}

func (t *Tracker) CurrentHeading() angle.PlusMinus180 {
	return t.current.Signed()
}

func (t *Tracker) TargetHeading() angle.PlusMinus180 {
	return t.target.Signed()
}

func (t *Tracker) Unwrapped() Unwrapped {
	return t.current
}

// HeadingError returns target minus current, unwrapped. Positive means the
// bot needs to turn anti-clockwise.
func (t *Tracker) HeadingError() float64 {
	return t.target.Sub(t.current).Value()
}

// OnTarget reports whether the current heading is within thresh degrees of
// the target.
func (t *Tracker) OnTarget(thresh float64) bool {
	e := t.HeadingError()
	return e > -thresh && e < thresh
}
