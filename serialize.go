package gauge

// State is a snapshot of a Gauge's mutable fields, suitable for
// serialization with any struct-aware encoder (encoding/json, gob, ...).
// It mirrors the source library's __getstate__/__setstate__ pair.
type State struct {
	Base    Vertex     `json:"base"`
	Momenta []Momentum `json:"momenta"`
	Max     BoundState `json:"max"`
	Min     BoundState `json:"min"`
}

// BoundState represents a Bound as either a scalar or a nested Gauge
// snapshot; exactly one field is set.
type BoundState struct {
	Scalar *float64 `json:"scalar,omitempty"`
	Gauge  *State   `json:"gauge,omitempty"`
}

// State captures a point-in-time snapshot of the gauge: its anchor, its
// momenta, and its bounds (recursively, if they are themselves gauges).
// The cached determination is not part of the snapshot; FromState rebuilds
// it lazily on first query, like any other gauge.
func (g *Gauge) State() State {
	momenta := make([]Momentum, len(g.momenta))
	copy(momenta, g.momenta)
	return State{
		Base:    g.base,
		Momenta: momenta,
		Max:     boundToState(g.max),
		Min:     boundToState(g.min),
	}
}

// FromState reconstructs a Gauge from a snapshot taken by State.
func FromState(s State) *Gauge {
	g := New(s.Base.Value, stateToBound(s.Max), stateToBound(s.Min), s.Base.Time)
	for _, m := range s.Momenta {
		g.AddMomentumValue(m)
	}
	return g
}

func boundToState(b Bound) BoundState {
	switch v := b.(type) {
	case Scalar:
		f := float64(v)
		return BoundState{Scalar: &f}
	case *Gauge:
		s := v.State()
		return BoundState{Gauge: &s}
	default:
		panic("gauge: unknown Bound implementation")
	}
}

func stateToBound(s BoundState) Bound {
	if s.Gauge != nil {
		return FromState(*s.Gauge)
	}
	return Scalar(*s.Scalar)
}
