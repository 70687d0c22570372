package determine_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeboracci/gauge/determine"
	"github.com/mikeboracci/gauge/line"
)

func scalarCursor(value float64, side determine.Side) *determine.Cursor {
	return determine.NewCursor([]line.Line{line.NewHorizon(math.Inf(-1), math.Inf(1), value)}, side)
}

// TestDetermine_FreeSegment exercises a gauge with no momenta and bounds far
// away: the whole trajectory is a single free ray.
func TestDetermine_FreeSegment(t *testing.T) {
	base := determine.Point{Time: 0, Value: 12}
	events := []determine.Event{{Time: 0, Kind: determine.Sentinel}, {Time: math.Inf(1), Kind: determine.Sentinel}}
	ceil := scalarCursor(100, determine.Ceiling)
	floor := scalarCursor(0, determine.Floor)

	got := determine.Determine(base, events, ceil, floor)
	want := []determine.Point{{0, 12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// TestDetermine_ScenarioB mirrors spec scenario B: v=8, max=10, +1 on [0,4].
func TestDetermine_ScenarioB(t *testing.T) {
	base := determine.Point{Time: 0, Value: 8}
	events := []determine.Event{
		{Time: 0, Kind: determine.Sentinel},
		{Time: 0, Kind: determine.Add, Velocity: 1},
		{Time: 4, Kind: determine.Remove, Velocity: 1},
		{Time: math.Inf(1), Kind: determine.Sentinel},
	}
	ceil := scalarCursor(10, determine.Ceiling)
	floor := scalarCursor(0, determine.Floor)

	// Determine emits one vertex per event processed, including the
	// zero-length segments produced by the Sentinel/Add events sharing
	// base.Time; deduplication of same-time vertices is the gauge
	// package's Determination() responsibility (spec.md §3), not this
	// function's.
	got := determine.Determine(base, events, ceil, floor)
	want := []determine.Point{{0, 8}, {0, 8}, {2, 10}, {4, 10}, {4, 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCursor_CmpAndBest(t *testing.T) {
	ceil := scalarCursor(10, determine.Ceiling)
	assert.True(t, ceil.Cmp(5, 10))
	assert.False(t, ceil.Cmp(10, 5))
	assert.Equal(t, 5.0, ceil.Best(5, 10))
	assert.True(t, ceil.CmpEq(10, 10))

	floor := scalarCursor(0, determine.Floor)
	assert.True(t, floor.Cmp(5, 0))
	assert.Equal(t, 5.0, floor.Best(5, 0))
}

func TestCursor_CmpEqTolerance(t *testing.T) {
	ceil := scalarCursor(10, determine.Ceiling)
	require.True(t, ceil.CmpEq(10+1e-12, 10))
}
