package gauge

import "weak"

// Vertex is one point of a gauge's determination: the trajectory is linear
// between any two time-adjacent vertices.
type Vertex struct {
	Time, Value float64
}

// Bound is either a Scalar or a *Gauge: the type of Gauge.Max and Gauge.Min.
// min <= max is not enforced globally; see Gauge.Incr and Gauge.SetMax for
// how clamping treats a value outside a bound.
type Bound interface {
	bound()
}

// Scalar is a constant Bound.
type Scalar float64

func (Scalar) bound() {}
func (*Gauge) bound() {}

// Gauge is a scalar value evolving through time under momenta, clamped by
// Max and Min. The zero value is not usable; construct with New.
type Gauge struct {
	base Vertex

	momenta []Momentum // ordered by Until, ascending (-Inf first, +Inf last)

	max, min Bound

	determined    bool
	determination []Vertex

	dependents []weak.Pointer[Gauge]
}

// New constructs a Gauge anchored at (at, value), bounded by max and min.
func New(value float64, max, min Bound, at float64) *Gauge {
	g := &Gauge{base: Vertex{Time: at, Value: value}}
	g.setBound(&g.max, max)
	g.setBound(&g.min, min)
	return g
}

// Base returns the gauge's current anchor point.
func (g *Gauge) Base() Vertex { return g.base }

// Max returns the current maximum bound.
func (g *Gauge) Max() Bound { return g.max }

// Min returns the current minimum bound.
func (g *Gauge) Min() Bound { return g.min }

// Momenta returns a copy of the gauge's current momentum multiset, ordered
// by Until ascending.
func (g *Gauge) Momenta() []Momentum {
	momenta := make([]Momentum, len(g.momenta))
	copy(momenta, g.momenta)
	return momenta
}

// GetMax predicts the maximum's value at at.
func (g *Gauge) GetMax(at float64) float64 { return boundValue(g.max, at) }

// GetMin predicts the minimum's value at at.
func (g *Gauge) GetMin(at float64) float64 { return boundValue(g.min, at) }

func boundValue(b Bound, at float64) float64 {
	switch v := b.(type) {
	case Scalar:
		return float64(v)
	case *Gauge:
		return v.Get(at)
	default:
		panic("gauge: unknown Bound implementation")
	}
}
