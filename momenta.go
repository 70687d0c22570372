package gauge

import "sort"

// AddMomentum builds a Momentum from velocity, since and until and adds it
// to the gauge's momentum multiset, invalidating any cached determination.
// It fails with ErrBadMomentum under the same conditions as NewMomentum.
func (g *Gauge) AddMomentum(velocity, since, until float64) (Momentum, error) {
	m, err := NewMomentum(velocity, since, until)
	if err != nil {
		return Momentum{}, err
	}
	g.AddMomentumValue(m)
	return m, nil
}

// AddMomentumValue adds an already-constructed Momentum (for example one
// built with Permanent) to the gauge's momentum multiset.
func (g *Gauge) AddMomentumValue(m Momentum) {
	i := sort.Search(len(g.momenta), func(i int) bool { return g.momenta[i].Until > m.Until })
	g.momenta = append(g.momenta, Momentum{})
	copy(g.momenta[i+1:], g.momenta[i:])
	g.momenta[i] = m
	g.invalidate()
}

// RemoveMomentum removes one Momentum equal to m from the gauge's momentum
// multiset, invalidating any cached determination. It fails with
// ErrNotFound if no equal entry is present; if duplicates exist, exactly
// one is removed.
func (g *Gauge) RemoveMomentum(m Momentum) error {
	for i, x := range g.momenta {
		if x == m {
			g.momenta = append(g.momenta[:i], g.momenta[i+1:]...)
			g.invalidate()
			return nil
		}
	}
	return ErrNotFound
}

// ClearMomenta rebases the gauge's anchor to at (see Rebase), then removes
// every momentum from the gauge; the cached determination is invalidated.
func (g *Gauge) ClearMomenta(value *float64, at float64) {
	g.Rebase(value, at)
	g.momenta = g.momenta[:0]
}

// ForgetPast prunes every momentum whose Until is at or before at, then
// rebases the gauge to (at, value) if value is non-nil, or to (at,
// g.Get(at)) otherwise. Momenta still active at at are kept unchanged, so
// the trajectory after at is unaffected by the rebase alone.
//
// This is how SetMax/SetMin saturate a gauge whose value would otherwise
// fall outside a newly tightened bound: the history that produced the
// stale value no longer matters once it has been clamped away.
func (g *Gauge) ForgetPast(value *float64, at float64) {
	if value == nil {
		v := g.Get(at)
		value = &v
	}
	kept := g.momenta[:0]
	for _, m := range g.momenta {
		if m.Until > at {
			kept = append(kept, m)
		}
	}
	g.momenta = kept
	g.Rebase(value, at)
}

// Rebase moves the gauge's anchor to (at, value), or (at, g.Get(at)) if
// value is nil, without touching its momenta. Any cached determination is
// invalidated.
func (g *Gauge) Rebase(value *float64, at float64) {
	v := g.Get(at)
	if value != nil {
		v = *value
	}
	g.base = Vertex{Time: at, Value: v}
	g.invalidate()
}
