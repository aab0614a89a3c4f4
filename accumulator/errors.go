// SPDX-License-Identifier: MIT

package accumulator

import "errors"

var (
	// ErrPassOrder indicates an update for a pass lower than one already seen.
	ErrPassOrder = errors.New("accumulator: pass order violated")

	// ErrPassRange indicates a pass outside 1..PassesRequired().
	ErrPassRange = errors.New("accumulator: pass out of range")

	// ErrNoValue indicates a data-free update on a chain that needs sample values.
	ErrNoValue = errors.New("accumulator: statistic requires a data value")

	// ErrInvalidRange indicates a histogram range with !(min < max) or non-finite bounds.
	ErrInvalidRange = errors.New("accumulator: invalid histogram range")

	// ErrNoRange indicates a histogram selected without WithRange or WithAutoRange.
	ErrNoRange = errors.New("accumulator: histogram range not configured")

	// ErrDimMismatch indicates coordinates of different dimensionality fed to one chain.
	ErrDimMismatch = errors.New("accumulator: coordinate dimensionality mismatch")

	// ErrIncompatible indicates Merge of chains with different configurations.
	ErrIncompatible = errors.New("accumulator: incompatible configuration")
)
