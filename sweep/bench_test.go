package sweep_test

import (
	"testing"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/rag"
	"github.com/katalvlaran/ragfeat/sweep"
)

func BenchmarkAccumulate3D(b *testing.B) {
	shape := grid.Shape{32, 32, 32}
	vals := make([]uint32, shape.Size())
	data := make([]float64, shape.Size())
	for i := range vals {
		vals[i] = uint32((i % 32 / 8) + 4*(i/(32*32*8)))
		data[i] = float64(i % 17)
	}
	l, _ := grid.NewLabels(shape, vals)
	d, _ := grid.NewData(shape, data)
	g, err := rag.FromLabels(l)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nodes, _ := accumulator.NewMap(int(g.MaxNodeID())+1, accumulator.StdDev)
		edges, _ := accumulator.NewMap(g.EdgeCount(), accumulator.StdDev)
		if err := sweep.Accumulate(g, l, d, nodes, edges); err != nil {
			b.Fatal(err)
		}
	}
}
