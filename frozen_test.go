package gauge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeboracci/gauge"
)

func TestFrozenTracksSnapshotNotLive(t *testing.T) {
	g := gauge.New(0, gauge.Scalar(10), gauge.Scalar(0), 0)
	g.AddMomentum(+1, 0, 10)

	frozen := gauge.Freeze(g)
	assert.Equal(t, 5.0, frozen.Get(5))

	g.AddMomentum(+1, 0, 10)
	assert.NotEqual(t, g.Get(5), frozen.Get(5))
	assert.Equal(t, 5.0, frozen.Get(5))
}

func TestFrozenWhen(t *testing.T) {
	g := gauge.New(0, gauge.Scalar(10), gauge.Scalar(0), 0)
	g.AddMomentum(+1, 0, 10)
	frozen := gauge.Freeze(g)

	v, err := frozen.When(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}
