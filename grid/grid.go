// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"sort"
)

// Labels is an immutable N-d grid of region ids.
// shape and strides are fixed at construction; values holds Size() ids.
type Labels struct {
	shape   Shape
	strides []int
	values  []uint32
}

// Data is an immutable N-d grid of scalar samples.
type Data struct {
	shape   Shape
	strides []int
	values  []float64
}

// NewLabels builds a label grid from a flat raster buffer.
// It deep-copies values so later caller mutations cannot leak in.
// Returns ErrEmptyGrid/ErrBadShape for an invalid shape and ErrDataLength
// when len(values) != shape.Size().
// Complexity: O(V) time and memory.
func NewLabels(shape Shape, values []uint32) (*Labels, error) {
	if err := checkFlat(shape, len(values)); err != nil {
		return nil, fmt.Errorf("NewLabels(%v): %w", shape, err)
	}
	buf := make([]uint32, len(values))
	copy(buf, values)

	return &Labels{shape: shape.Clone(), strides: shape.Strides(), values: buf}, nil
}

// NewData builds a data grid from a flat raster buffer (deep copy).
// Complexity: O(V) time and memory.
func NewData(shape Shape, values []float64) (*Data, error) {
	if err := checkFlat(shape, len(values)); err != nil {
		return nil, fmt.Errorf("NewData(%v): %w", shape, err)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Data{shape: shape.Clone(), strides: shape.Strides(), values: buf}, nil
}

// LabelsFrom2D converts rows[y][x] into a W×H label grid (x is axis 0).
func LabelsFrom2D(rows [][]uint32) (*Labels, error) {
	shape, flat, err := flatten2D(rows)
	if err != nil {
		return nil, err
	}

	return &Labels{shape: shape, strides: shape.Strides(), values: flat}, nil
}

// LabelsFrom3D converts planes[z][y][x] into a W×H×D label grid.
func LabelsFrom3D(planes [][][]uint32) (*Labels, error) {
	shape, flat, err := flatten3D(planes)
	if err != nil {
		return nil, err
	}

	return &Labels{shape: shape, strides: shape.Strides(), values: flat}, nil
}

// DataFrom2D converts rows[y][x] into a W×H data grid.
func DataFrom2D(rows [][]float64) (*Data, error) {
	shape, flat, err := flatten2D(rows)
	if err != nil {
		return nil, err
	}

	return &Data{shape: shape, strides: shape.Strides(), values: flat}, nil
}

// DataFrom3D converts planes[z][y][x] into a W×H×D data grid.
func DataFrom3D(planes [][][]float64) (*Data, error) {
	shape, flat, err := flatten3D(planes)
	if err != nil {
		return nil, err
	}

	return &Data{shape: shape, strides: shape.Strides(), values: flat}, nil
}

// Shape returns a copy of the grid shape.
func (l *Labels) Shape() Shape { return l.shape.Clone() }

// Dims returns the number of axes.
func (l *Labels) Dims() int { return len(l.shape) }

// Len returns the number of cells.
func (l *Labels) Len() int { return len(l.values) }

// Strides returns a copy of the per-axis flat-index steps.
func (l *Labels) Strides() []int {
	out := make([]int, len(l.strides))
	copy(out, l.strides)

	return out
}

// InBounds reports whether c addresses a cell of this grid.
func (l *Labels) InBounds(c Coord) bool { return l.shape.InBounds(c) }

// At returns the label at c. The caller guarantees InBounds(c).
// Complexity: O(N).
func (l *Labels) At(c Coord) uint32 { return l.values[l.shape.Index(c)] }

// AtIndex returns the label at flat raster index i.
// Complexity: O(1).
func (l *Labels) AtIndex(i int) uint32 { return l.values[i] }

// Max returns the largest label in the grid.
func (l *Labels) Max() uint32 {
	var m uint32
	for _, v := range l.values {
		if v > m {
			m = v
		}
	}

	return m
}

// Unique returns the distinct labels in ascending order.
// Complexity: O(V + K log K), K = distinct labels.
func (l *Labels) Unique() []uint32 {
	seen := make(map[uint32]struct{})
	for _, v := range l.values {
		seen[v] = struct{}{}
	}
	out := make([]uint32, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Values returns a copy of the flat raster buffer.
func (l *Labels) Values() []uint32 {
	out := make([]uint32, len(l.values))
	copy(out, l.values)

	return out
}

// Shape returns a copy of the grid shape.
func (d *Data) Shape() Shape { return d.shape.Clone() }

// Dims returns the number of axes.
func (d *Data) Dims() int { return len(d.shape) }

// Len returns the number of cells.
func (d *Data) Len() int { return len(d.values) }

// At returns the sample at c. The caller guarantees InBounds(c).
func (d *Data) At(c Coord) float64 { return d.values[d.shape.Index(c)] }

// AtIndex returns the sample at flat raster index i.
func (d *Data) AtIndex(i int) float64 { return d.values[i] }

// MinMax returns the smallest and largest finite samples. NaN cells are
// skipped; an all-NaN grid yields (+Inf, -Inf).
// Complexity: O(V).
func (d *Data) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range d.values {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Values returns a copy of the flat raster buffer.
func (d *Data) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)

	return out
}

// CheckSameShape returns ErrShapeMismatch when data is non-nil and its shape
// differs from the label shape. A nil data grid always matches.
func CheckSameShape(l *Labels, d *Data) error {
	if d == nil {
		return nil
	}
	if !l.shape.Equal(d.shape) {
		return fmt.Errorf("labels %v vs data %v: %w", l.shape, d.shape, ErrShapeMismatch)
	}

	return nil
}

// checkFlat validates shape and the flat buffer length n.
func checkFlat(shape Shape, n int) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.Size() != n {
		return fmt.Errorf("want %d values, got %d: %w", shape.Size(), n, ErrDataLength)
	}

	return nil
}

// flatten2D copies rows[y][x] into raster order with x fastest.
func flatten2D[T any](rows [][]T) (Shape, []T, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	flat := make([]T, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}

	return Shape{w, h}, flat, nil
}

// flatten3D copies planes[z][y][x] into raster order with x fastest.
func flatten3D[T any](planes [][][]T) (Shape, []T, error) {
	if len(planes) == 0 || len(planes[0]) == 0 || len(planes[0][0]) == 0 {
		return nil, nil, ErrEmptyGrid
	}
	d, h, w := len(planes), len(planes[0]), len(planes[0][0])
	flat := make([]T, 0, w*h*d)
	for _, plane := range planes {
		if len(plane) != h {
			return nil, nil, ErrNonRectangular
		}
		for _, row := range plane {
			if len(row) != w {
				return nil, nil, ErrNonRectangular
			}
			flat = append(flat, row...)
		}
	}

	return Shape{w, h, d}, flat, nil
}
