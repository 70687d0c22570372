package gauge

import "errors"

// ErrOutOfRange indicates a mutation (Incr, Decr, Set) would place the value
// outside the active [min, max] bounds and neither Over nor Clamp was
// requested.
var ErrOutOfRange = errors.New("gauge: value out of range")

// ErrBadMomentum indicates a momentum's Since is not strictly earlier than
// its Until, with both finite.
var ErrBadMomentum = errors.New("gauge: since must be earlier than until")

// ErrNotFound indicates RemoveMomentum could not find a matching entry in
// the gauge's momentum multiset.
var ErrNotFound = errors.New("gauge: momentum not found")

// ErrUnreachable indicates When could not produce the requested crossing:
// fewer than after+1 crossings of goal exist in the determination.
var ErrUnreachable = errors.New("gauge: goal is unreachable")
