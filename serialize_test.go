package gauge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikeboracci/gauge"
)

func TestStateRoundTrip(t *testing.T) {
	g := gauge.New(0, gauge.Scalar(10), gauge.Scalar(0), 0)
	g.AddMomentum(+1, 0, math.Inf(1))
	g.AddMomentum(-2, 5, 7)

	want := g.Determination()

	g2 := gauge.FromState(g.State())
	assert.Equal(t, want, g2.Determination())
}

func TestStateRoundTripHyperGauge(t *testing.T) {
	max := gauge.New(15, gauge.Scalar(15), gauge.Scalar(0), 0)
	max.AddMomentum(-1, math.Inf(-1), 5)

	g := gauge.New(12, max, gauge.Scalar(0), 0)
	g.AddMomentum(+1, 1, 6)
	g.AddMomentum(-1, 3, 8)

	want := g.Determination()

	g2 := gauge.FromState(g.State())
	assert.Equal(t, want, g2.Determination())

	restoredMax, ok := g2.Max().(*gauge.Gauge)
	assert.True(t, ok)
	assert.Equal(t, max.Determination(), restoredMax.Determination())
}
