// SPDX-License-Identifier: MIT

package features

import "fmt"

var (
	statNames    = [9]string{"mean", "std", "q0", "q10", "q25", "q50", "q75", "q90", "q100"}
	derivedNames = [numDerived]string{
		"e", "u_plus_v", "abs_u_minus_v", "min_uv", "max_uv", "mean_uv",
		"abs_e_minus_min", "abs_e_minus_max", "abs_e_minus_mean",
		"max_dev_minus_duv", "min_dev_minus_duv",
	}
	geometricNames = [NumGeometric]string{
		"count_e", "count_min", "count_max", "count_sum", "count_ratio", "count_absdiff",
		"ncount_e_over_min", "ncount_e_over_max", "ncount_e_over_uv",
		"dist_uv", "dist_min", "dist_max", "dist_sum", "dist_ratio", "dist_absdiff",
		"log_rat_uv", "log_rat_min", "log_rat_max", "log_rat_sum", "log_rat_absdiff", "log_rat_ratio",
	}
	topologicalNames = [NumTopological]string{
		"deg_min", "deg_max", "deg_sum", "deg_sqdiff", "common_neighbors",
	}
)

// IntensityColumnNames returns "<stat>_<derived>" labels for the 99 columns.
func IntensityColumnNames() []string {
	out := make([]string, 0, NumIntensity)
	for _, s := range statNames {
		for _, d := range derivedNames {
			out = append(out, fmt.Sprintf("%s_%s", s, d))
		}
	}

	return out
}

// GeometricColumnNames returns labels for the 21 geometric columns.
func GeometricColumnNames() []string { return append([]string(nil), geometricNames[:]...) }

// TopologicalColumnNames returns labels for the 5 topological columns.
func TopologicalColumnNames() []string { return append([]string(nil), topologicalNames[:]...) }
