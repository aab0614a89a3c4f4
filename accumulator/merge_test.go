package accumulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/grid"
)

// TestMergeEqualsSinglePass splits a sample set in two, accumulates each
// half separately and merges; the result must match one chain over all.
func TestMergeEqualsSinglePass(t *testing.T) {
	sel := accumulator.StdDev | accumulator.Quantiles | accumulator.Center
	opts := []accumulator.Option{accumulator.WithRange(0, 20), accumulator.WithBinCount(10)}
	xs := []float64{1, 5, 2, 19, 7, 7, 3, 12, 15, 0.5}

	whole, err := accumulator.New(sel, opts...)
	require.NoError(t, err)
	a, _ := accumulator.New(sel, opts...)
	b, _ := accumulator.New(sel, opts...)
	for i, x := range xs {
		co := grid.Coord{i, 2 * i}
		require.NoError(t, whole.Update(x, co, 1))
		part := a
		if i%3 == 0 {
			part = b
		}
		require.NoError(t, part.Update(x, co, 1))
	}
	require.NoError(t, a.Merge(b))

	assert.Equal(t, whole.Count(), a.Count())
	assert.InDelta(t, whole.Mean(), a.Mean(), 1e-12)
	assert.InDelta(t, whole.Variance(), a.Variance(), 1e-12)
	assert.Equal(t, whole.Min(), a.Min())
	assert.Equal(t, whole.Max(), a.Max())
	assert.Equal(t, whole.Histogram(), a.Histogram())
	assert.InDeltaSlice(t, whole.Center(), a.Center(), 1e-12)
	wq, aq := whole.Quantiles(), a.Quantiles()
	assert.InDeltaSlice(t, wq[:], aq[:], 1e-12)
}

func TestMergeIntoEmpty(t *testing.T) {
	a, _ := accumulator.New(accumulator.StdDev)
	b, _ := accumulator.New(accumulator.StdDev)
	feed(t, b, []float64{2, 4})
	require.NoError(t, a.Merge(b))
	assert.Equal(t, 3.0, a.Mean())
	assert.Equal(t, 1.0, a.StdDev())
	require.NoError(t, a.Merge(nil))
}

func TestMergeIncompatible(t *testing.T) {
	a, _ := accumulator.New(accumulator.Mean)
	b, _ := accumulator.New(accumulator.StdDev)
	feed(t, b, []float64{1})
	assert.ErrorIs(t, a.Merge(b), accumulator.ErrIncompatible)

	h1, _ := accumulator.New(accumulator.Histogram, accumulator.WithRange(0, 1))
	h2, _ := accumulator.New(accumulator.Histogram, accumulator.WithRange(0, 2))
	feed(t, h2, []float64{1})
	assert.ErrorIs(t, h1.Merge(h2), accumulator.ErrIncompatible)

	au1, _ := accumulator.New(accumulator.Histogram, accumulator.WithAutoRange())
	au2, _ := accumulator.New(accumulator.Histogram, accumulator.WithAutoRange())
	feed(t, au2, []float64{1, 2})
	assert.ErrorIs(t, au1.Merge(au2), accumulator.ErrIncompatible)
}
