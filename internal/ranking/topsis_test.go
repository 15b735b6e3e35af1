package ranking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_DominatingRowScoresOneAndDominatedZero(t *testing.T) {
	m := Matrix{
		{1, 1, 1, 1, 1},
		{0.5, 0.5, 0.5, 0.5, 0.5},
	}
	scores := Solve(m, DefaultWeights())
	require.Len(t, scores, 2)
	assert.InDelta(t, 1.0, scores[0], 1e-12)
	assert.InDelta(t, 0.0, scores[1], 1e-12)
}

func TestSolve_SingleCandidateIsNeutral(t *testing.T) {
	scores := Solve(Matrix{{0.7, 1, 1, 1, 0.7}}, DefaultWeights())
	assert.Equal(t, []float64{0.5}, scores)
}

func TestSolve_IdenticalCandidatesAreNeutral(t *testing.T) {
	row := Row{0.76, 1, 0.2, 0.3, 0.5}
	scores := Solve(Matrix{row, row, row}, DefaultWeights())
	for _, s := range scores {
		assert.Equal(t, 0.5, s)
	}
}

func TestSolve_ZeroColumnDoesNotProduceNaN(t *testing.T) {
	m := Matrix{
		{1, 0, 1, 1, 0},
		{0.1, 0, 1, 1, 0},
	}
	scores := Solve(m, DefaultWeights())
	for _, s := range scores {
		assert.False(t, math.IsNaN(s))
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
	assert.InDelta(t, 1.0, scores[0], 1e-12)
	assert.InDelta(t, 0.0, scores[1], 1e-12)
}

func TestSolve_ZeroWeightsAreNeutral(t *testing.T) {
	m := Matrix{{1, 0.3, 1, 1, 0.7}, {0.1, 0.3, 1, 0.3, 0}}
	scores := Solve(m, Weights{})
	assert.Equal(t, []float64{0.5, 0.5}, scores)
}

func TestSolve_UniformWeightScaleIsIrrelevant(t *testing.T) {
	m := Matrix{
		{0.76, 1, 1, 1, 0.7},
		{0.1, 0.3, 1, 0.3, 0},
		{0.7, 0.3, 0.2, 1, 0.5},
	}
	base := DefaultWeights()
	var scaled Weights
	for i, v := range base {
		scaled[i] = v * 40
	}
	a := Solve(m, base)
	b := Solve(m, scaled)
	require.Len(t, b, len(a))
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-12)
	}
}

func TestSolve_EmptyMatrix(t *testing.T) {
	assert.Empty(t, Solve(nil, DefaultWeights()))
}

func TestSolve_PanicsOnNonFiniteCell(t *testing.T) {
	assert.Panics(t, func() {
		Solve(Matrix{{math.NaN(), 1, 1, 1, 1}}, DefaultWeights())
	})
	assert.Panics(t, func() {
		Solve(Matrix{{1, 1, 1, 1, 1}}, Weights{math.Inf(1)})
	})
}
