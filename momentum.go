package gauge

import "math"

// Momentum is an immutable, time-bounded constant-velocity contribution to
// a gauge's trajectory. Two momenta are equal iff Velocity, Since, and
// Until all compare equal; a gauge's momenta form a multiset, so adding the
// same momentum twice keeps two distinct entries.
type Momentum struct {
	Velocity    float64
	Since, Until float64
}

// NewMomentum builds a Momentum active from since to until (either may be
// infinite). It fails with ErrBadMomentum unless since == -Inf, until ==
// +Inf, or since < until.
func NewMomentum(velocity, since, until float64) (Momentum, error) {
	if !(since == math.Inf(-1) || until == math.Inf(1) || since < until) {
		return Momentum{}, ErrBadMomentum
	}
	return Momentum{Velocity: velocity, Since: since, Until: until}, nil
}

// Permanent builds a Momentum with velocity active for all time.
func Permanent(velocity float64) Momentum {
	return Momentum{Velocity: velocity, Since: math.Inf(-1), Until: math.Inf(1)}
}

// String renders a Momentum as "<Momentum +v/s since~until>", omitting
// infinite endpoints, matching the source library's repr.
func (m Momentum) String() string {
	s := formatSigned(m.Velocity) + "/s"
	if m.Since != math.Inf(-1) || m.Until != math.Inf(1) {
		since := ""
		if m.Since != math.Inf(-1) {
			since = formatFixed(m.Since)
		}
		until := ""
		if m.Until != math.Inf(1) {
			until = formatFixed(m.Until)
		}
		s += " " + since + "~" + until
	}
	return "<Momentum " + s + ">"
}
