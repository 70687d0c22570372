// Package determine implements the trajectory-determination algorithm: it
// walks a time-ordered momentum event log while simultaneously walking two
// piecewise-linear boundary curves (ceiling and floor), producing the
// sorted vertex list of the resulting clamped trajectory.
//
// This package depends only on line, never on the root gauge package, so
// that a hyper-gauge's bound can be handed in as a plain []line.Line
// boundary stream (built by the caller from that bound's own, recursively
// computed determination) without an import cycle.
//
// The algorithm is the hard part of the engine because a trajectory segment
// may be free, may ride along a boundary while the net velocity would pierce
// it, or may cross a boundary mid-segment and become bound — and these
// regime transitions must be detected exactly in closed form, including
// degenerate cases (parallel lines, zero-length segments, floating-point
// near-misses at exact tangencies).
package determine
