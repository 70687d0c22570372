package determine

import (
	"math"

	"github.com/mikeboracci/gauge/line"
)

// Determine walks the event log while interleaving the ceiling and floor
// boundary cursors, producing the sorted vertex list of the trajectory
// starting at base and clamped between ceil and floor (spec.md §4.4).
//
// events must begin with a Sentinel event at base.Time and end with a
// Sentinel event at +Inf; the Add/Remove entries in between carry the
// momentum's Velocity and must be sorted by Time ascending. An entry earlier
// than base.Time is applied at base.Time. Determine itself advances ceil and
// floor past any line ending at or before base.Time.
func Determine(base Point, events []Event, ceil, floor *Cursor) []Point {
	since, value := base.Time, base.Value
	var velocity float64
	var velocities []float64

	var bound *Cursor
	overlapped := false

	cursors := [2]*Cursor{ceil, floor}
	for _, c := range cursors {
		for c.Line().Until() <= since {
			c.Walk()
		}
		if bound != nil {
			continue
		}
		if guess := c.Line().Guess(since); c.Cmp(guess, value) {
			bound, overlapped = c, false
		}
	}

	out := make([]Point, 0, len(events))
	for _, ev := range events {
		until := math.Max(ev.Time, base.Time)
		again := true
		var walked []*Cursor

		for since < until {
			if again {
				again = false
				walked = cursors[:]
			} else {
				allDone := true
				for _, c := range cursors {
					if c.Line().Until() < until {
						allDone = false
						break
					}
				}
				if allDone {
					break
				}
				next := nearestUntil(cursors[:])
				next.Walk()
				walked = []*Cursor{next}
			}

			switch {
			case bound == nil:
				velocity = sum(velocities)
			case overlapped:
				velocity = bound.Best(sum(velocities), bound.Line().Velocity())
			default:
				velocity = sumToward(velocities, bound)
			}

			if overlapped && bound.Cmp(velocity, bound.Line().Velocity()) {
				bound, overlapped = nil, false
				again = true
				continue
			}

			current := line.NewRay(since, until, value, velocity)

			if overlapped {
				boundUntil := math.Min(bound.Line().Until(), until)
				if math.IsInf(boundUntil, 1) {
					break
				}
				v, _ := bound.Line().Get(boundUntil)
				since, value = boundUntil, v
				out = append(out, Point{since, value})
				continue
			}

			if crossed, next := tryIntersect(current, since, walked); crossed {
				bound, overlapped = next.cursor, true
				since, value = next.time, bound.Best(next.value, bound.Line().Guess(next.time))
				out = append(out, Point{since, value})
				again = true
				continue
			}
			if bound != nil {
				continue
			}
			if missed, next := tryFallback(current, since, until, walked); missed {
				bound, overlapped = next.cursor, true
				since, value = next.time, next.value
				out = append(out, Point{since, value})
				continue
			}
		}

		if math.IsInf(until, 1) {
			break
		}
		value += velocity * (until - since)
		out = append(out, Point{until, value})

		switch ev.Kind {
		case Add:
			velocities = append(velocities, ev.Velocity)
		case Remove:
			velocities = removeOne(velocities, ev.Velocity)
		}
		since = until
	}
	return out
}

func nearestUntil(cursors []*Cursor) *Cursor {
	best := cursors[0]
	for _, c := range cursors[1:] {
		if c.Line().Until() < best.Line().Until() {
			best = c
		}
	}
	return best
}

type crossing struct {
	cursor *Cursor
	time   float64
	value  float64
}

// tryIntersect implements spec.md §4.4 step 6: the free-to-bound
// transition, trying each walked boundary for a real intersection with the
// current free ray.
func tryIntersect(current line.Line, since float64, walked []*Cursor) (bool, crossing) {
	for _, c := range walked {
		t, v, err := line.Intersect(current, c.Line())
		if err != nil || t == since {
			continue
		}
		return true, crossing{cursor: c, time: t, value: v}
	}
	return false, crossing{}
}

// tryFallback implements spec.md §4.4 step 7: when no exact intersection
// was found, check whether the free ray's endpoint at each walked
// boundary's horizon already violates the boundary — a crossing missed to
// floating-point rounding.
func tryFallback(current line.Line, since, until float64, walked []*Cursor) (bool, crossing) {
	for _, c := range walked {
		boundUntil := math.Min(c.Line().Until(), until)
		if math.IsInf(boundUntil, 1) || boundUntil < since {
			continue
		}
		boundaryValue, _ := c.Line().Get(boundUntil)
		currentValue, _ := current.Get(boundUntil)
		if c.CmpEq(currentValue, boundaryValue) {
			continue
		}
		return true, crossing{cursor: c, time: boundUntil, value: boundaryValue}
	}
	return false, crossing{}
}

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}
	return total
}

func sumToward(vs []float64, bound *Cursor) float64 {
	var total float64
	for _, v := range vs {
		if bound.Cmp(v, 0) {
			total += v
		}
	}
	return total
}

func removeOne(vs []float64, v float64) []float64 {
	for i, x := range vs {
		if x == v {
			return append(vs[:i], vs[i+1:]...)
		}
	}
	return vs
}
