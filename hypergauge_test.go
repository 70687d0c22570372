package gauge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikeboracci/gauge"
)

// TestHyperGauge mirrors case 1 of the source library's hyper-gauge
// acceptance test: a gauge's own maximum is another gauge in motion.
func TestHyperGauge(t *testing.T) {
	g := gauge.New(12, gauge.Scalar(100), gauge.Scalar(0), 0)
	g.AddMomentum(+1, 1, 6)
	g.AddMomentum(-1, 3, 8)

	max := gauge.New(15, gauge.Scalar(15), gauge.Scalar(0), 0)
	max.AddMomentum(-1, math.Inf(-1), 5)
	g.SetMax(max, false, 0)

	want := []gauge.Vertex{
		{0, 12}, {1, 12}, {2, 13}, {3, 12}, {5, 10}, {6, 10}, {8, 8},
	}
	assert.Equal(t, want, g.Determination())
	assert.Equal(t, []gauge.Vertex{{0, 15}, {5, 10}}, max.Determination())
}

// TestHyperGaugeSetMaxScalarEquivalence mirrors case 3: clamping the max to
// a plain scalar or to a flat gauge of the same value produces the same
// trajectory.
func TestHyperGaugeSetMaxScalarEquivalence(t *testing.T) {
	g := gauge.New(12, gauge.Scalar(100), gauge.Scalar(0), 0)
	g.AddMomentum(+1, 1, 6)
	g.AddMomentum(-1, 3, 8)

	g.SetMax(gauge.Scalar(10), false, 0)
	want := []gauge.Vertex{{0, 12}, {1, 12}, {3, 12}, {5, 10}, {6, 10}, {8, 8}}
	assert.Equal(t, want, g.Determination())

	flat := gauge.New(10, gauge.Scalar(100), gauge.Scalar(0), 0)
	g.SetMax(flat, false, 0)
	assert.Equal(t, want, g.Determination())
}

// TestHyperGaugeJustOneMomentum mirrors case 6: a hyper-bounded gauge with
// no momenta of its own stays flat even while its bounds move, since
// nothing pushes it toward either one.
func TestHyperGaugeJustOneMomentum(t *testing.T) {
	max := gauge.New(5, gauge.Scalar(10), gauge.Scalar(0), 0)
	min := gauge.New(5, gauge.Scalar(10), gauge.Scalar(0), 0)
	max.AddMomentum(+1, math.Inf(-1), math.Inf(1))
	min.AddMomentum(-1, math.Inf(-1), math.Inf(1))

	g := gauge.New(5, max, min, 0)
	assert.Equal(t, []gauge.Vertex{{0, 5}}, g.Determination())

	g.AddMomentum(0.1, math.Inf(-1), 100)
	assert.Equal(t, []gauge.Vertex{{0, 5}, {50, 10}, {100, 10}}, g.Determination())
}
