package line

import "math"

// Line is a segment of the gauge's piecewise-linear trajectory, defined over
// [Since, Until] (either end may be infinite).
type Line interface {
	// Since returns the start of the line's defined interval.
	Since() float64
	// Until returns the end of the line's defined interval.
	Until() float64
	// Value returns the value at Since.
	Value() float64
	// Velocity returns the line's slope.
	Velocity() float64
	// Get returns the value at t. Fails with ErrOutOfTimeRange if t is
	// outside [Since, Until].
	Get(t float64) (float64, error)
	// Guess returns the value at t, extrapolating as a constant outside
	// [Since, Until] instead of failing.
	Guess(t float64) float64
	// Intercept returns the line's y-axis (value-axis) intercept, used by
	// Intersect to solve for the crossing time in closed form.
	Intercept() float64
}

func inRange(since, until, t float64) bool {
	return since <= t && t <= until
}

// Intersect returns the time and value at which a and b cross. It fails
// with ErrParallelLines if the two lines have equal velocity, and with
// ErrOutOfTimeRange if the crossing falls outside the overlap of their two
// intervals.
func Intersect(a, b Line) (t, v float64, err error) {
	velocityDelta := a.Velocity() - b.Velocity()
	if velocityDelta == 0 {
		return 0, 0, ErrParallelLines
	}
	interceptDelta := b.Intercept() - a.Intercept()
	t = interceptDelta / velocityDelta

	since := math.Max(a.Since(), b.Since())
	until := math.Min(a.Until(), b.Until())
	if !inRange(since, until, t) {
		return 0, 0, ErrOutOfTimeRange
	}
	v, err = a.Get(t)
	if err != nil {
		return 0, 0, err
	}
	return t, v, nil
}
