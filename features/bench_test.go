package features_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ragfeat/features"
	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/rag"
)

func benchInputs(b *testing.B) (*features.Extractor, *grid.Data) {
	b.Helper()
	shape := grid.Shape{24, 24, 24}
	r := rand.New(rand.NewSource(9))
	labels := make([]uint32, shape.Size())
	vals := make([]float64, shape.Size())
	for i := range labels {
		x, y, z := i%24, (i/24)%24, i/(24*24)
		labels[i] = uint32(x/6 + 4*(y/6) + 16*(z/6))
		vals[i] = r.Float64()
	}
	l, _ := grid.NewLabels(shape, labels)
	d, _ := grid.NewData(shape, vals)
	g, err := rag.FromLabels(l)
	if err != nil {
		b.Fatal(err)
	}
	x, err := features.NewExtractor(g, l)
	if err != nil {
		b.Fatal(err)
	}

	return x, d
}

func BenchmarkIntensity(b *testing.B) {
	x, d := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Intensity(d, 0, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAll(b *testing.B) {
	x, d := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.All(context.Background(), d, 0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
