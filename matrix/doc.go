// SPDX-License-Identifier: MIT

// Package matrix holds the row-major Dense matrix that feature extraction
// writes into: one row per graph edge, one column per feature.
//
// Numeric policy:
//   - Degenerate features (ratios of zero, logs of non-positive values) are
//     legitimate outputs, so NaN/±Inf are accepted by default.
//   - WithValidateNaNInf turns on strict rejection (ErrNaNInf) for callers
//     that feed the matrix to consumers which cannot cope with them.
//
// Shape policy:
//   - 0×c matrices are legal: a label grid with a single region has no edges
//     and therefore no feature rows.
package matrix
