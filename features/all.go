// SPDX-License-Identifier: MIT

package features

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/matrix"
)

// FeatureSet holds the matrices of all three families. Intensity is nil when
// All ran without a data grid.
type FeatureSet struct {
	Intensity   *matrix.Dense
	Geometric   *matrix.Dense
	Topological *matrix.Dense
}

// Cols returns the total number of columns across the present families.
func (fs FeatureSet) Cols() int {
	n := 0
	for _, m := range []*matrix.Dense{fs.Intensity, fs.Geometric, fs.Topological} {
		if m != nil {
			n += m.Cols()
		}
	}

	return n
}

// All computes every family. With data == nil the intensity family is
// skipped. Families run concurrently unless WithConcurrent(false) was set;
// the first failure cancels the others.
func (x *Extractor) All(ctx context.Context, data *grid.Data, minVal, maxVal float64) (FeatureSet, error) {
	var fs FeatureSet
	if data != nil && !validRange(minVal, maxVal) {
		return fs, fmt.Errorf("All [%g, %g]: %w", minVal, maxVal, ErrInvalidRange)
	}
	if data == nil {
		x.log.Warn().Str("family", "intensity").Msg("no data grid, family skipped")
	}

	jobs := []func(context.Context) error{
		func(ctx context.Context) (err error) {
			fs.Geometric, err = x.geometric(ctx)
			return err
		},
		func(context.Context) (err error) {
			fs.Topological, err = x.Topological()
			return err
		},
	}
	if data != nil {
		jobs = append(jobs, func(ctx context.Context) (err error) {
			fs.Intensity, err = x.intensity(ctx, data, minVal, maxVal)
			return err
		})
	}

	if !x.opts.concurrent {
		for _, job := range jobs {
			if err := job(ctx); err != nil {
				return FeatureSet{}, fmt.Errorf("All: %w", err)
			}
		}

		return fs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		g.Go(func() error { return job(gctx) })
	}
	if err := g.Wait(); err != nil {
		return FeatureSet{}, fmt.Errorf("All: %w", err)
	}

	return fs, nil
}
