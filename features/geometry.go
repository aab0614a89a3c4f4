// SPDX-License-Identifier: MIT

package features

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/matrix"
	"github.com/katalvlaran/ragfeat/rag"
	"github.com/katalvlaran/ragfeat/sweep"
)

var geometricStats = accumulator.Count | accumulator.Center

// Geometric returns the 21-column geometric matrix. It needs no data grid:
// regions and boundaries only accumulate their size and centre.
//
// With counts cE, cU, cV, normalised sizes nE = sqrt(cE), nU = cbrt(cU),
// nV = cbrt(cV), nUV = cbrt(cU+cV) and squared centre distances dUV, dEU,
// dEV, the columns are:
//
//	 0..8   cE, min(cU,cV), max, cU+cV, min/max, |cU-cV|,
//	        nE/min(nU,nV), nE/max(nU,nV), nE/nUV
//	 9..14  dUV, min(dEU,dEV), max, dEU+dEV, min/max, |dEU-dEV|
//	15..20  log of rU = nU/dEU, rV = nV/dEV and rUV = nUV/dEV:
//	        log rUV, log min(rU,rV), log max, log(rU+rV),
//	        log(|rU-rV| + 0.5), log(max/min)
//
// Zero divisions and logs of non-positive values yield Inf or NaN.
func (x *Extractor) Geometric() (*matrix.Dense, error) {
	return x.geometric(context.Background())
}

func (x *Extractor) geometric(ctx context.Context) (*matrix.Dense, error) {
	start := time.Now()
	nodes, err := x.nodeChains(geometricStats)
	if err != nil {
		return nil, fmt.Errorf("Geometric: %w", err)
	}
	edges, err := accumulator.NewMap(x.g.EdgeCount(), geometricStats)
	if err != nil {
		return nil, fmt.Errorf("Geometric: %w", err)
	}
	if err := sweep.Accumulate(x.g, x.labels, nil, nodes, edges,
		sweep.WithLogger(x.log), sweep.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("Geometric: %w", err)
	}

	out, err := x.newMatrix(NumGeometric)
	if err != nil {
		return nil, err
	}
	for e := 0; e < x.g.EdgeCount(); e++ {
		ec := edges[e]
		uc, vc := nodes[x.g.U(rag.Edge(e))], nodes[x.g.V(rag.Edge(e))]
		geometricRow(out.RawRow(e), ec, uc, vc)
	}
	x.log.Debug().
		Str("family", "geometric").
		Int("edges", out.Rows()).
		Int("cols", out.Cols()).
		Dur("elapsed", time.Since(start)).
		Msg("features done")

	return out, nil
}

func geometricRow(row []float64, ec, uc, vc *accumulator.Chain) {
	cE, cU, cV := ec.Count(), uc.Count(), vc.Count()
	nE := math.Sqrt(cE)
	nU, nV := math.Cbrt(cU), math.Cbrt(cV)
	nUV := math.Cbrt(cU + cV)

	eC, uC, vC := ec.Center(), uc.Center(), vc.Center()
	dUV := sqDist(uC, vC)
	dEU := sqDist(eC, uC)
	dEV := sqDist(eC, vC)

	rU, rV, rUV := nU/dEU, nV/dEV, nUV/dEV

	row[0] = cE
	row[1] = math.Min(cU, cV)
	row[2] = math.Max(cU, cV)
	row[3] = cU + cV
	row[4] = math.Min(cU, cV) / math.Max(cU, cV)
	row[5] = math.Abs(cU - cV)
	row[6] = nE / math.Min(nU, nV)
	row[7] = nE / math.Max(nU, nV)
	row[8] = nE / nUV

	row[9] = dUV
	row[10] = math.Min(dEU, dEV)
	row[11] = math.Max(dEU, dEV)
	row[12] = dEU + dEV
	row[13] = math.Min(dEU, dEV) / math.Max(dEU, dEV)
	row[14] = math.Abs(dEU - dEV)

	row[15] = math.Log(rUV)
	row[16] = math.Log(math.Min(rU, rV))
	row[17] = math.Log(math.Max(rU, rV))
	row[18] = math.Log(rU + rV)
	row[19] = math.Log(math.Abs(rU-rV) + 0.5)
	row[20] = math.Log(math.Max(rU, rV) / math.Min(rU, rV))
}

// sqDist is the squared Euclidean distance; NaN when a centre is missing.
func sqDist(a, b []float64) float64 {
	if a == nil || b == nil || len(a) != len(b) {
		return math.NaN()
	}
	d := floats.Distance(a, b, 2)

	return d * d
}
