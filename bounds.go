package gauge

import (
	"math"
	"weak"

	"github.com/mikeboracci/gauge/line"
)

// setBound unlinks *slot from its previous dependents list (if it was a
// *Gauge) and links g as a dependent of newBound (if it is a *Gauge),
// mirroring the source library's weakref-based back-reference bookkeeping
// in Gauge._set_limits.
func (g *Gauge) setBound(slot *Bound, newBound Bound) {
	if prev, ok := (*slot).(*Gauge); ok {
		prev.removeDependent(g)
	}
	if next, ok := newBound.(*Gauge); ok {
		next.addDependent(g)
	}
	*slot = newBound
}

func (g *Gauge) addDependent(dep *Gauge) {
	g.dependents = append(g.dependents, weak.Make(dep))
}

// removeDependent drops dep from g.dependents, along with any already-dead
// weak references encountered along the way.
func (g *Gauge) removeDependent(dep *Gauge) {
	live := g.dependents[:0]
	for _, wp := range g.dependents {
		if v := wp.Value(); v != nil && v != dep {
			live = append(live, wp)
		}
	}
	g.dependents = live
}

// invalidate drops the cached determination here and in every gauge that
// uses this one as a bound, pruning dependents whose weak reference has
// gone dead along the way.
func (g *Gauge) invalidate() {
	live := g.dependents[:0]
	for _, wp := range g.dependents {
		dep := wp.Value()
		if dep == nil {
			continue
		}
		live = append(live, wp)
		dep.invalidate()
	}
	g.dependents = live
	g.determined = false
	g.determination = nil
}

// SetMax changes the maximum bound, unlinking from any previous gauge bound
// and linking the new one. If clamp is true and the current value at at
// exceeds the new maximum, the value is saturated down to that maximum and
// momenta up to at are forgotten.
func (g *Gauge) SetMax(max Bound, clamp bool, at float64) {
	g.setLimit(&g.max, max, true, clamp, at)
}

// SetMin changes the minimum bound, unlinking from any previous gauge bound
// and linking the new one. If clamp is true and the current value at at
// falls below the new minimum, the value is saturated up to that minimum
// and momenta up to at are forgotten.
func (g *Gauge) SetMin(min Bound, clamp bool, at float64) {
	g.setLimit(&g.min, min, false, clamp, at)
}

func (g *Gauge) setLimit(slot *Bound, newBound Bound, isMax, clamp bool, at float64) {
	g.setBound(slot, newBound)
	if !clamp {
		g.invalidate()
		return
	}
	value := g.Get(at)
	var limited float64
	saturate := false
	if isMax {
		if max := g.GetMax(at); value > max {
			limited, saturate = max, true
		}
	} else {
		if min := g.GetMin(at); value < min {
			limited, saturate = min, true
		}
	}
	if saturate {
		g.ForgetPast(limited, at)
		return
	}
	g.invalidate()
}

// linesFor produces the piecewise-linear boundary curve a gauge walks when
// b is used as one of its bounds, anchored no earlier than parentT0
// (spec: the ceiling/floor line stream derived from max/min).
func linesFor(b Bound, parentT0 float64) []line.Line {
	inf := math.Inf(1)
	switch v := b.(type) {
	case Scalar:
		return []line.Line{line.NewHorizon(parentT0, inf, float64(v))}
	case *Gauge:
		det := v.Determination()
		lines := make([]line.Line, 0, len(det)+1)
		first := det[0]
		if parentT0 < first.Time {
			lines = append(lines, line.NewHorizon(parentT0, first.Time, first.Value))
		}
		for i := 1; i < len(det); i++ {
			prev, next := det[i-1], det[i]
			lines = append(lines, line.NewSegment(prev.Time, next.Time, prev.Value, next.Value))
		}
		last := det[len(det)-1]
		lines = append(lines, line.NewHorizon(last.Time, inf, last.Value))
		return lines
	default:
		panic("gauge: unknown Bound implementation")
	}
}
