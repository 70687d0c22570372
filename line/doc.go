// Package line provides the three shapes of line segment the gauge engine
// composes trajectories from: Horizon (constant), Ray (origin + velocity),
// and Segment (origin + final value).
//
// Every Line is defined over a closed time interval [Since, Until], either
// of which may be infinite. Get evaluates anywhere in that interval,
// endpoints included, and fails with ErrOutOfTimeRange outside it; Guess extrapolates as a constant
// outside the interval instead of failing — the determiner relies on Guess
// when comparing a boundary's value at a time past the line it is currently
// on (spec: "guess is needed when comparing the value a boundary would have
// outside its defined range").
//
// Intersect finds where two lines cross, failing with ErrParallelLines when
// the two velocities are equal (including two identical lines) and with
// ErrOutOfTimeRange when the crossing point falls outside both lines'
// overlapping interval. Both errors are internal to the determination
// algorithm in package determine and must never be returned from the public
// gauge API.
package line
