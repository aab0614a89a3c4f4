// SPDX-License-Identifier: MIT

package accumulator

import "strings"

// Select is a bit set of statistics a Chain tracks.
type Select uint16

const (
	Count Select = 1 << iota
	Mean
	StdDev
	MinMax
	Histogram
	Quantiles
	Center
)

// Has reports whether all bits of s2 are set in s.
func (s Select) Has(s2 Select) bool { return s&s2 == s2 }

// closure adds the statistics every selected one depends on.
func (s Select) closure() Select {
	if s.Has(StdDev) {
		s |= Mean
	}
	if s.Has(Quantiles) {
		s |= Histogram | MinMax
	}

	return s | Count
}

var selectNames = [...]string{"Count", "Mean", "StdDev", "MinMax", "Histogram", "Quantiles", "Center"}

// String renders s as "Count|Mean|...", or "None" when empty.
func (s Select) String() string {
	if s == 0 {
		return "None"
	}
	var parts []string
	for i, name := range selectNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}
