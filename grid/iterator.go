// SPDX-License-Identifier: MIT

package grid

// Iterator walks every cell of a Shape in raster order (axis 0 fastest),
// incrementing its coordinate like an odometer.
//
// Usage:
//
//	it := grid.NewIterator(shape)
//	for it.Next() {
//		c, i := it.Coord(), it.Index()
//		...
//	}
//
// Coord returns the iterator's live buffer; copy it before retaining.
type Iterator struct {
	shape   Shape
	coord   Coord
	index   int
	started bool
	done    bool
}

// NewIterator returns an iterator positioned before the first cell.
// Complexity: O(N) memory.
func NewIterator(shape Shape) *Iterator {
	return &Iterator{shape: shape.Clone(), coord: make(Coord, len(shape))}
}

// Next advances to the next cell and reports whether one exists.
// Complexity: O(1) amortized.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if it.shape.Size() == 0 {
			it.done = true
			return false
		}

		return true
	}
	for d := range it.shape {
		it.coord[d]++
		if it.coord[d] < it.shape[d] {
			it.index++
			return true
		}
		it.coord[d] = 0
	}
	it.done = true

	return false
}

// Coord returns the current coordinate (live buffer, do not retain).
func (it *Iterator) Coord() Coord { return it.coord }

// Index returns the flat raster index of the current cell.
func (it *Iterator) Index() int { return it.index }

// Reset rewinds the iterator to before the first cell.
func (it *Iterator) Reset() {
	for d := range it.coord {
		it.coord[d] = 0
	}
	it.index = 0
	it.started = false
	it.done = false
}
