package gauge

// Frozen is a read-only view over a gauge's determination at the moment it
// was captured: it answers Get/Velocity/When/Whenever exactly like the
// Gauge it was made from, but holds no reference to it and never
// recomputes. Use it to hand out a snapshot that cannot be invalidated out
// from under a concurrent reader, or to retain a past trajectory after the
// live gauge has moved on.
type Frozen struct {
	determination []Vertex
}

// Freeze captures g's current determination into a Frozen snapshot.
func Freeze(g *Gauge) *Frozen {
	det := g.Determination()
	cp := make([]Vertex, len(det))
	copy(cp, det)
	return &Frozen{determination: cp}
}

// Determination returns the frozen trajectory.
func (f *Frozen) Determination() []Vertex { return f.determination }

// Get returns the frozen trajectory's value at at.
func (f *Frozen) Get(at float64) float64 {
	value, _ := valueAndVelocityAt(f.determination, at)
	return value
}

// Velocity returns the frozen trajectory's rate of change at at.
func (f *Frozen) Velocity(at float64) float64 {
	_, velocity := valueAndVelocityAt(f.determination, at)
	return velocity
}

// Whenever returns every time the frozen trajectory crosses goal.
func (f *Frozen) Whenever(goal float64) []float64 {
	return whenever(f.determination, goal)
}

// When returns the (after+1)-th time the frozen trajectory crosses goal.
func (f *Frozen) When(goal float64, after int) (float64, error) {
	return whenAt(f.determination, goal, after)
}

// String renders the frozen value at time 0, matching Gauge.String.
func (f *Frozen) String() string {
	return "<Frozen " + formatFixed(f.Get(0)) + ">"
}
