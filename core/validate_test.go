package core_test

import (
	"testing"

	"github.com/katalvlaran/ultrametric/core"
	"github.com/stretchr/testify/assert"
)

// TestVerifySorted_Valid accepts non-decreasing sequences, including ties.
func TestVerifySorted_Valid(t *testing.T) {
	edges := []core.Edge{
		{U: 0, V: 1, Dist: 0.5},
		{U: 1, V: 2, Dist: 0.5}, // tie with previous edge is allowed
		{U: 2, V: 3, Dist: 1.5},
	}
	assert.NoError(t, core.VerifySorted(edges), "non-decreasing distances must pass")
}

// TestVerifySorted_Empty accepts empty and single-edge inputs trivially.
func TestVerifySorted_Empty(t *testing.T) {
	assert.NoError(t, core.VerifySorted(nil), "nil edge slice must pass")
	assert.NoError(t, core.VerifySorted([]core.Edge{{U: 0, V: 1, Dist: 2}}), "single edge must pass")
}

// TestVerifySorted_Decreasing reports ErrUnsortedEdges on the first drop.
func TestVerifySorted_Decreasing(t *testing.T) {
	edges := []core.Edge{
		{U: 0, V: 1, Dist: 1.0},
		{U: 1, V: 2, Dist: 0.5},
	}
	err := core.VerifySorted(edges)
	assert.ErrorIs(t, err, core.ErrUnsortedEdges, "decreasing distance must error")
}

// TestVerifyBounds_Valid accepts edges whose endpoints fit 0..n-1.
func TestVerifyBounds_Valid(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 2, Dist: 1}, {U: 2, V: 1, Dist: 2}}
	assert.NoError(t, core.VerifyBounds(edges, 3), "in-range endpoints must pass")
}

// TestVerifyBounds_OutOfRange reports ErrEdgeBounds for negative and
// too-large endpoints alike.
func TestVerifyBounds_OutOfRange(t *testing.T) {
	assert.ErrorIs(t,
		core.VerifyBounds([]core.Edge{{U: -1, V: 0, Dist: 1}}, 2),
		core.ErrEdgeBounds, "negative endpoint must error")
	assert.ErrorIs(t,
		core.VerifyBounds([]core.Edge{{U: 0, V: 2, Dist: 1}}, 2),
		core.ErrEdgeBounds, "endpoint == n must error")
}

// TestLabelClasses pins the three-way label classification.
func TestLabelClasses(t *testing.T) {
	assert.True(t, core.Foreground(1), "1 is a foreground instance")
	assert.True(t, core.Foreground(42), "any id ≥ 1 is foreground")
	assert.False(t, core.Foreground(core.BackgroundLabel), "0 is not foreground")
	assert.False(t, core.Foreground(core.AmbiguousLabel), "-1 is not foreground")

	assert.True(t, core.Background(0), "0 is background")
	assert.False(t, core.Background(1), "1 is not background")

	assert.True(t, core.Ambiguous(-1), "-1 is ambiguous")
	assert.False(t, core.Ambiguous(0), "0 is not ambiguous")
}
