package gauge

import "math"

// Incr raises the gauge's value by delta at at, then forgets momenta that
// have already expired by at (see ForgetPast). The bounds are only
// consulted on the side delta pushes toward: a positive delta that would
// overshoot the maximum is policed, a negative delta that would undershoot
// the minimum is policed, and a delta that leaves the value already
// out-of-bounds alone on the other side is never rejected.
//
// If the result would cross the relevant bound, over lets it through
// unclamped; clamp saturates it instead, but never back past the value the
// gauge already held (so an Incr can only move the value toward the bound,
// never away from where it started); otherwise ErrOutOfRange is returned
// and the gauge is left unchanged.
func (g *Gauge) Incr(delta float64, over, clamp bool, at float64) (float64, error) {
	prevValue := g.Get(at)
	value := prevValue + delta

	if !over {
		max := g.GetMax(at)
		min := g.GetMin(at)
		switch {
		case delta > 0 && value > max:
			if !clamp {
				return prevValue, ErrOutOfRange
			}
			value = math.Max(prevValue, max)
		case delta < 0 && value < min:
			if !clamp {
				return prevValue, ErrOutOfRange
			}
			value = math.Min(prevValue, min)
		}
	}

	g.ForgetPast(&value, at)
	return value, nil
}

// Decr lowers the gauge's value by delta at at; see Incr.
func (g *Gauge) Decr(delta float64, over, clamp bool, at float64) (float64, error) {
	return g.Incr(-delta, over, clamp, at)
}

// Set moves the gauge to value at at, subject to the same
// over/clamp/ErrOutOfRange policy as Incr (it is implemented as an Incr of
// value - g.Get(at)).
func (g *Gauge) Set(value float64, over, clamp bool, at float64) (float64, error) {
	return g.Incr(value-g.Get(at), over, clamp, at)
}
