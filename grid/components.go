// SPDX-License-Identifier: MIT

package grid

// ConnectedComponents finds every maximal set of axis-connected cells that
// share one label (4-connectivity in 2-D, 6-connectivity in 3-D).
// Returns one slice of flat raster indices per component; components are
// ordered by their first cell in raster order and each slice starts with
// that cell.
//
// To convert an index back to a Coord, use Shape.Coordinate.
//
// Time:   O(V·N), where N = number of axes.
// Memory: O(V) for visited flags and output.
func ConnectedComponents(l *Labels) [][]int {
	total := len(l.values)
	seen := make([]bool, total)
	var comps [][]int
	coord := make(Coord, len(l.shape))

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		want := l.values[i0]
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			coord = l.shape.Coordinate(u, coord)
			for d := range l.shape {
				// backward neighbour along axis d
				if coord[d] > 0 {
					v := u - l.strides[d]
					if !seen[v] && l.values[v] == want {
						seen[v] = true
						queue = append(queue, v)
					}
				}
				// forward neighbour along axis d
				if coord[d]+1 < l.shape[d] {
					v := u + l.strides[d]
					if !seen[v] && l.values[v] == want {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// RelabelComponents returns a new label grid where every connected component
// gets its own dense label 0..k-1 (in ConnectedComponents order), plus k.
// Two disjoint blobs that shared a label in l become two distinct regions.
// Complexity: O(V·N) time, O(V) memory.
func RelabelComponents(l *Labels) (*Labels, int) {
	comps := ConnectedComponents(l)
	out := make([]uint32, len(l.values))
	for k, comp := range comps {
		for _, i := range comp {
			out[i] = uint32(k)
		}
	}

	return &Labels{shape: l.shape.Clone(), strides: l.shape.Strides(), values: out}, len(comps)
}
