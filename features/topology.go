// SPDX-License-Identifier: MIT

package features

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ragfeat/matrix"
	"github.com/katalvlaran/ragfeat/rag"
)

// Topological returns the 5-column degree matrix:
//
//	min(dU,dV), max(dU,dV), dU+dV, (dU-dV)^2, |N(u) ∩ N(v)|
//
// No grid pass is made.
// Complexity: O(E·d) for maximum degree d.
func (x *Extractor) Topological() (*matrix.Dense, error) {
	start := time.Now()
	out, err := x.newMatrix(NumTopological)
	if err != nil {
		return nil, err
	}
	for e := 0; e < x.g.EdgeCount(); e++ {
		u, v, err := x.g.Endpoints(rag.Edge(e))
		if err != nil {
			return nil, fmt.Errorf("Topological: %w", err)
		}
		nu, err := x.g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("Topological: %w", err)
		}
		nv, err := x.g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("Topological: %w", err)
		}
		du, err := x.g.Degree(u)
		if err != nil {
			return nil, fmt.Errorf("Topological: %w", err)
		}
		dv, err := x.g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("Topological: %w", err)
		}
		row := out.RawRow(e)
		row[0] = float64(min(du, dv))
		row[1] = float64(max(du, dv))
		row[2] = float64(du + dv)
		row[3] = float64((du - dv) * (du - dv))
		row[4] = float64(intersectSorted(nu, nv))
	}
	x.log.Debug().
		Str("family", "topological").
		Int("edges", out.Rows()).
		Int("cols", out.Cols()).
		Dur("elapsed", time.Since(start)).
		Msg("features done")

	return out, nil
}

// intersectSorted counts common elements of two ascending slices.
func intersectSorted(a, b []rag.Node) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}
