// Package gauge implements a deterministic linear gauge: a scalar value
// that evolves through time under the superposition of time-bounded linear
// velocity sources ("momenta"), clamped by upper and lower bounds that may
// themselves be gauges (a "hyper-gauge").
//
// Given a base point (t0, v0) and a set of momenta, Gauge computes, for any
// query time, the exact value and instantaneous velocity the gauge would
// have — without simulation, in closed form. The computation is performed
// by the trajectory-determination algorithm in the determine subpackage and
// cached on the Gauge until the next mutation invalidates it.
//
// # Quick start
//
//	g := gauge.New(12, gauge.Scalar(100), gauge.Scalar(0), 0)
//	g.AddMomentum(+1, 1, 6)
//	g.AddMomentum(-1, 3, 8)
//	g.Get(6) // 14
//
// # Hyper-gauges
//
// Max and Min are the Bound interface, satisfied by both Scalar (a plain
// number) and *Gauge. When a bound is itself a gauge, the engine walks that
// gauge's own determination as a piecewise-linear boundary curve — see
// package determine for how the two boundary streams (ceiling and floor)
// are interleaved with the momentum event log.
//
// # Concurrency
//
// Gauge is single-threaded and synchronous, matching the source library:
// no operation blocks, and the determination cache is a plain memoized
// field invalidated on mutation. Callers needing concurrent access must
// add their own synchronization around a Gauge.
package gauge
