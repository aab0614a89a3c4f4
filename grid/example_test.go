// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/ragfeat/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Iterator
////////////////////////////////////////////////////////////////////////////////

// ExampleIterator walks a 3×2 grid in raster order; x (axis 0) varies fastest.
func ExampleIterator() {
	it := grid.NewIterator(grid.Shape{3, 2})
	for it.Next() {
		fmt.Print(it.Coord(), " ")
	}
	fmt.Println()
	// Output:
	// [0 0] [1 0] [2 0] [0 1] [1 1] [2 1]
}

// ExampleRelabelComponents splits a label shared by two separate blobs.
func ExampleRelabelComponents() {
	l, _ := grid.LabelsFrom2D([][]uint32{
		{1, 0, 1},
		{1, 0, 1},
	})
	out, k := grid.RelabelComponents(l)
	fmt.Println(k, out.Values())
	// Output:
	// 3 [0 1 2 0 1 2]
}
