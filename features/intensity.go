// SPDX-License-Identifier: MIT

package features

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/matrix"
	"github.com/katalvlaran/ragfeat/rag"
	"github.com/katalvlaran/ragfeat/sweep"
)

// numDerived is the number of contrast values derived from one statistic.
const numDerived = 11

var intensityStats = accumulator.Mean | accumulator.StdDev | accumulator.Quantiles

// Intensity returns the 99-column intensity-contrast matrix of data.
//
// Every region and boundary accumulates mean, standard deviation and the
// standard quantiles from a histogram over [minVal, maxVal]. Each of these
// nine statistics (e, u, v) contributes 11 columns, stat-major:
//
//	e, u+v, |u-v|, min, max, (u+v)/2, |e-min|, |e-max|, |e-mean|,
//	max(|u-e|,|v-e|) - |u-v|, min(|u-e|,|v-e|) - |u-v|
//
// where min/max/mean are taken over (u, v). Rows are symmetric in u and v.
//
// Errors: ErrNilData, ErrInvalidRange, grid.ErrShapeMismatch and any sweep error.
func (x *Extractor) Intensity(data *grid.Data, minVal, maxVal float64) (*matrix.Dense, error) {
	return x.intensity(context.Background(), data, minVal, maxVal)
}

// IntensityAutoRange is Intensity with each accumulator learning its own
// histogram range from the data. It costs a second sweep.
func (x *Extractor) IntensityAutoRange(data *grid.Data) (*matrix.Dense, error) {
	return x.runIntensity(context.Background(), "intensity_auto", data, accumulator.WithAutoRange())
}

func (x *Extractor) intensity(ctx context.Context, data *grid.Data, minVal, maxVal float64) (*matrix.Dense, error) {
	if !validRange(minVal, maxVal) {
		return nil, fmt.Errorf("Intensity [%g, %g]: %w", minVal, maxVal, ErrInvalidRange)
	}

	return x.runIntensity(ctx, "intensity", data, accumulator.WithRange(minVal, maxVal))
}

func (x *Extractor) runIntensity(ctx context.Context, family string, data *grid.Data, rng accumulator.Option) (*matrix.Dense, error) {
	if data == nil {
		return nil, fmt.Errorf("Intensity: %w", ErrNilData)
	}
	start := time.Now()
	opts := []accumulator.Option{rng, accumulator.WithBinCount(x.opts.bins)}
	nodes, err := x.nodeChains(intensityStats, opts...)
	if err != nil {
		return nil, fmt.Errorf("Intensity: %w", err)
	}
	edges, err := accumulator.NewMap(x.g.EdgeCount(), intensityStats, opts...)
	if err != nil {
		return nil, fmt.Errorf("Intensity: %w", err)
	}
	if err := sweep.Accumulate(x.g, x.labels, data, nodes, edges,
		sweep.WithLogger(x.log), sweep.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("Intensity: %w", err)
	}

	out, err := x.newMatrix(NumIntensity)
	if err != nil {
		return nil, err
	}
	var es, us, vs [9]float64
	for e, ec := range edges[:x.g.EdgeCount()] {
		uc, vc := nodes[x.g.U(rag.Edge(e))], nodes[x.g.V(rag.Edge(e))]
		statVector(&es, ec)
		statVector(&us, uc)
		statVector(&vs, vc)
		row := out.RawRow(e)
		for s := range es {
			contrast(row[s*numDerived:(s+1)*numDerived], es[s], us[s], vs[s])
		}
	}
	x.log.Debug().
		Str("family", family).
		Int("edges", out.Rows()).
		Int("cols", out.Cols()).
		Dur("elapsed", time.Since(start)).
		Msg("features done")

	return out, nil
}

// statVector lays out mean, stddev, q0..q6.
func statVector(dst *[9]float64, c *accumulator.Chain) {
	dst[0] = c.Mean()
	dst[1] = c.StdDev()
	q := c.Quantiles()
	copy(dst[2:], q[:])
}

// contrast writes the 11 derived values of one statistic into dst.
func contrast(dst []float64, e, u, v float64) {
	dUV := math.Abs(u - v)
	dUE := math.Abs(u - e)
	dVE := math.Abs(v - e)
	lo, hi := math.Min(u, v), math.Max(u, v)
	mean := (u + v) / 2

	dst[0] = e
	dst[1] = u + v
	dst[2] = dUV
	dst[3] = lo
	dst[4] = hi
	dst[5] = mean
	dst[6] = math.Abs(e - lo)
	dst[7] = math.Abs(e - hi)
	dst[8] = math.Abs(e - mean)
	dst[9] = math.Max(dUE, dVE) - dUV
	dst[10] = math.Min(dUE, dVE) - dUV
}

func validRange(lo, hi float64) bool {
	return !math.IsNaN(lo) && !math.IsNaN(hi) &&
		!math.IsInf(lo, 0) && !math.IsInf(hi, 0) && lo < hi
}
