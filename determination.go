package gauge

import "github.com/mikeboracci/gauge/determine"

// Determination returns the gauge's trajectory as a sorted list of vertices:
// the value is linear between any two time-adjacent entries, constant
// before the first and after the last (spec.md §3, §4.4). The result is
// cached until a mutation invalidates it.
func (g *Gauge) Determination() []Vertex {
	if g.determined {
		return g.determination
	}

	events := g.buildEvents()
	ceil := determine.NewCursor(linesFor(g.max, g.base.Time), determine.Ceiling)
	floor := determine.NewCursor(linesFor(g.min, g.base.Time), determine.Floor)
	base := determine.Point{Time: g.base.Time, Value: g.base.Value}

	points := determine.Determine(base, events, ceil, floor)
	vertices := make([]Vertex, 0, len(points))
	for _, p := range points {
		if n := len(vertices); n > 0 && vertices[n-1].Time == p.Time {
			continue
		}
		vertices = append(vertices, Vertex(p))
	}

	g.determination = vertices
	g.determined = true
	return vertices
}
