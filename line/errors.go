package line

import "errors"

// ErrOutOfTimeRange indicates Get was called with a time outside [Since, Until].
// Internal to the determination algorithm; callers needing extrapolation
// should use Guess instead. Must never surface from the gauge package's
// public API — see determine.Determine, which catches it during boundary
// walking.
var ErrOutOfTimeRange = errors.New("line: time out of range")

// ErrParallelLines indicates Intersect was asked for the crossing of two
// lines with equal velocity (including two identical lines), which have
// either no intersection or infinitely many. The determiner recovers from
// this with the cmp_eq floating-point fallback rather than treating it as
// fatal.
var ErrParallelLines = errors.New("line: parallel lines have no single intersection")
