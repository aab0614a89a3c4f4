// SPDX-License-Identifier: MIT

package features

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ragfeat/matrix"
)

// ColumnSummary describes the finite values of one feature column.
type ColumnSummary struct {
	Mean, StdDev float64
	Finite       int // number of finite entries
	NonFinite    int // NaN or ±Inf entries, excluded from the moments
}

// Summary returns population mean and standard deviation per column of m,
// ignoring non-finite entries. Columns without finite values report NaN.
func Summary(m *matrix.Dense) []ColumnSummary {
	if m == nil {
		return nil
	}
	out := make([]ColumnSummary, m.Cols())
	col := make([]float64, 0, m.Rows())
	for j := range out {
		col = col[:0]
		for i := 0; i < m.Rows(); i++ {
			v := m.RawRow(i)[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				out[j].NonFinite++
				continue
			}
			col = append(col, v)
		}
		out[j].Finite = len(col)
		if len(col) == 0 {
			out[j].Mean, out[j].StdDev = math.NaN(), math.NaN()
			continue
		}
		out[j].Mean, out[j].StdDev = stat.PopMeanStdDev(col, nil)
	}

	return out
}
