package gauge

import (
	"math"
	"sort"

	"github.com/mikeboracci/gauge/determine"
)

// buildEvents derives the time-ordered event log from the current momentum
// multiset (spec.md §4.1): a Sentinel at base.Time, one Add per momentum at
// its Since and one Remove per finite-Until momentum at its Until (sorted
// by time), and a trailing Sentinel at +Inf.
//
// The source library maintains this log as a persistent sorted structure
// updated incrementally on every AddMomentum/RemoveMomentum, with stale
// entries filtered out lazily during traversal. Since a gauge's
// determination is already cached and only rebuilt on invalidation, there
// is no per-read cost to pay for instead deriving the log fresh from the
// momenta slice on each determination — it removes an entire class of
// stale-entry bookkeeping for no measurable cost.
func (g *Gauge) buildEvents() []determine.Event {
	inf := math.Inf(1)
	events := make([]determine.Event, 0, len(g.momenta)*2+2)
	events = append(events, determine.Event{Time: g.base.Time, Kind: determine.Sentinel})

	momentumEvents := make([]determine.Event, 0, len(g.momenta)*2)
	for _, m := range g.momenta {
		momentumEvents = append(momentumEvents, determine.Event{Time: m.Since, Kind: determine.Add, Velocity: m.Velocity})
		if m.Until != inf {
			momentumEvents = append(momentumEvents, determine.Event{Time: m.Until, Kind: determine.Remove, Velocity: m.Velocity})
		}
	}
	sort.SliceStable(momentumEvents, func(i, j int) bool {
		return momentumEvents[i].Time < momentumEvents[j].Time
	})
	events = append(events, momentumEvents...)
	events = append(events, determine.Event{Time: inf, Kind: determine.Sentinel})
	return events
}
