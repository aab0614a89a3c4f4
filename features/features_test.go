package features_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragfeat/accumulator"
	"github.com/katalvlaran/ragfeat/features"
	"github.com/katalvlaran/ragfeat/grid"
	"github.com/katalvlaran/ragfeat/rag"
)

var floatOpts = cmp.Options{cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, 1e-9)}

// halves returns the 4×4 image split into a left and a right region.
func halves(t *testing.T, left, right uint32) *grid.Labels {
	t.Helper()
	rows := make([][]uint32, 4)
	for y := range rows {
		rows[y] = []uint32{left, left, right, right}
	}
	l, err := grid.LabelsFrom2D(rows)
	require.NoError(t, err)

	return l
}

func constant(t *testing.T, shape grid.Shape, v float64) *grid.Data {
	t.Helper()
	vals := make([]float64, shape.Size())
	for i := range vals {
		vals[i] = v
	}
	d, err := grid.NewData(shape, vals)
	require.NoError(t, err)

	return d
}

func extractor(t *testing.T, l *grid.Labels, opts ...features.Option) *features.Extractor {
	t.Helper()
	g, err := rag.FromLabels(l)
	require.NoError(t, err)
	x, err := features.NewExtractor(g, l, opts...)
	require.NoError(t, err)

	return x
}

// TestIntensityHalvesConstant: regions 1 and 2, uniform value 10.
func TestIntensityHalvesConstant(t *testing.T) {
	l := halves(t, 1, 2)
	x := extractor(t, l)
	m, err := x.Intensity(constant(t, l.Shape(), 10), 0, 20)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, features.NumIntensity, m.Cols())

	level := []float64{10, 20, 0, 10, 10, 10, 0, 0, 0, 0, 0}
	spread := make([]float64, 11)
	want := append([]float64(nil), level...)
	want = append(want, spread...)
	for q := 0; q < 7; q++ {
		want = append(want, level...)
	}
	if diff := cmp.Diff(want, m.RawRow(0), floatOpts); diff != "" {
		t.Fatalf("intensity row (-want +got):\n%s", diff)
	}
}

func TestIntensityAutoRangeConstant(t *testing.T) {
	l := halves(t, 0, 1)
	x := extractor(t, l)
	auto, err := x.IntensityAutoRange(constant(t, l.Shape(), 10))
	require.NoError(t, err)
	fixed, err := x.Intensity(constant(t, l.Shape(), 10), 0, 20)
	require.NoError(t, err)
	if diff := cmp.Diff(fixed.RawRow(0), auto.RawRow(0), floatOpts); diff != "" {
		t.Fatalf("auto vs fixed (-fixed +auto):\n%s", diff)
	}
}

// TestIntensitySymmetric swaps the two region labels and expects the same row.
func TestIntensitySymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	vals := make([]float64, 16)
	for i := range vals {
		vals[i] = r.Float64() * 100
	}
	d, err := grid.NewData(grid.Shape{4, 4}, vals)
	require.NoError(t, err)

	a, err := extractor(t, halves(t, 0, 1)).Intensity(d, 0, 100)
	require.NoError(t, err)
	b, err := extractor(t, halves(t, 1, 0)).Intensity(d, 0, 100)
	require.NoError(t, err)
	if diff := cmp.Diff(a.RawRow(0), b.RawRow(0), floatOpts); diff != "" {
		t.Fatalf("row depends on endpoint order (-a +b):\n%s", diff)
	}
}

func TestIntensityErrors(t *testing.T) {
	l := halves(t, 0, 1)
	x := extractor(t, l)
	d := constant(t, l.Shape(), 1)

	for _, r := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := x.Intensity(d, r[0], r[1])
		assert.ErrorIs(t, err, features.ErrInvalidRange, "range %v", r)
	}
	_, err := x.Intensity(nil, 0, 1)
	assert.ErrorIs(t, err, features.ErrNilData)

	_, err = x.Intensity(constant(t, grid.Shape{2, 2}, 1), 0, 1)
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)
}

func TestSingleLabelHasNoRows(t *testing.T) {
	l, err := grid.NewLabels(grid.Shape{2, 2, 2}, make([]uint32, 8))
	require.NoError(t, err)
	x := extractor(t, l)

	fs, err := x.All(context.Background(), constant(t, l.Shape(), 3), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, fs.Intensity.Rows())
	assert.Equal(t, features.NumIntensity, fs.Intensity.Cols())
	assert.Equal(t, 0, fs.Geometric.Rows())
	assert.Equal(t, 0, fs.Topological.Rows())
}

func TestGeometricHalves(t *testing.T) {
	x := extractor(t, halves(t, 0, 1))
	m, err := x.Geometric()
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	row := m.RawRow(0)

	assert.Equal(t, 8.0, row[0], "4 faces, 2 samples each")
	assert.Equal(t, []float64{8, 8, 16, 1, 0}, row[1:6])
	assert.InDelta(t, 4*math.Min(row[10], row[11]), row[9], 1e-12, "dUV == 4 min(dEU, dEV)")
	assert.InDelta(t, 4.0, row[9], 1e-12)
	assert.InDelta(t, 0.0, row[14], 1e-12)
	assert.InDelta(t, math.Log(0.5), row[19], 1e-12)
	assert.InDelta(t, 0.0, row[20], 1e-12)
	assert.InDelta(t, math.Log(math.Cbrt(16)), row[15], 1e-12)
}

// TestGeometricDegenerate checks that a zero centre distance produces
// IEEE special values instead of an error.
func TestGeometricDegenerate(t *testing.T) {
	// region 1 encloses region 0 symmetrically, so the boundary centre
	// coincides with the centre of region 0.
	l, _ := grid.LabelsFrom2D([][]uint32{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	m, err := extractor(t, l).Geometric()
	require.NoError(t, err)
	row := m.RawRow(0)
	assert.Equal(t, 0.0, row[10])
	assert.True(t, math.IsInf(row[17], 1))
}

func TestTopological(t *testing.T) {
	triangle, _ := grid.LabelsFrom2D([][]uint32{
		{0, 0, 1},
		{0, 2, 1},
		{2, 2, 1},
	})
	m, err := extractor(t, triangle).Topological()
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	for e := 0; e < m.Rows(); e++ {
		assert.Equal(t, []float64{2, 2, 4, 0, 1}, m.RawRow(e), "edge %d", e)
	}

	stripes, _ := grid.LabelsFrom2D([][]uint32{{0, 1, 2}, {0, 1, 2}})
	m, err = extractor(t, stripes).Topological()
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	assert.Equal(t, []float64{1, 2, 3, 1, 0}, m.RawRow(0))
	assert.Equal(t, []float64{1, 2, 3, 1, 0}, m.RawRow(1))
}

func TestMissingEdgeSurfaces(t *testing.T) {
	triangle, _ := grid.LabelsFrom2D([][]uint32{
		{0, 0, 1},
		{0, 2, 1},
		{2, 2, 1},
	})
	g := rag.New()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2)
	require.NoError(t, err)
	x, err := features.NewExtractor(g, triangle)
	require.NoError(t, err)

	_, err = x.Geometric()
	assert.ErrorIs(t, err, rag.ErrEdgeNotFound, "boundary 1-2 is not registered")
}

func TestNewExtractorErrors(t *testing.T) {
	_, err := features.NewExtractor(nil, halves(t, 0, 1))
	assert.ErrorIs(t, err, features.ErrNilGraph)
	_, err = features.NewExtractor(rag.New(), nil)
	assert.ErrorIs(t, err, features.ErrNilLabels)
	assert.Panics(t, func() { features.WithBinCount(0) })
}

func TestAllConcurrentMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	shape := grid.Shape{6, 5, 4}
	labels := make([]uint32, shape.Size())
	vals := make([]float64, shape.Size())
	for i := range labels {
		labels[i] = uint32(r.Intn(5))
		vals[i] = r.Float64()
	}
	l, _ := grid.NewLabels(shape, labels)
	d, _ := grid.NewData(shape, vals)

	par, err := extractor(t, l).All(context.Background(), d, 0, 1)
	require.NoError(t, err)
	seq, err := extractor(t, l, features.WithConcurrent(false)).All(context.Background(), d, 0, 1)
	require.NoError(t, err)

	require.Equal(t, features.NumIntensity+features.NumGeometric+features.NumTopological, par.Cols())
	for e := 0; e < par.Geometric.Rows(); e++ {
		assert.Empty(t, cmp.Diff(seq.Intensity.RawRow(e), par.Intensity.RawRow(e), floatOpts))
		assert.Empty(t, cmp.Diff(seq.Geometric.RawRow(e), par.Geometric.RawRow(e), floatOpts))
		assert.Empty(t, cmp.Diff(seq.Topological.RawRow(e), par.Topological.RawRow(e), floatOpts))
	}
}

func TestAllWithoutData(t *testing.T) {
	fs, err := extractor(t, halves(t, 0, 1)).All(context.Background(), nil, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, fs.Intensity)
	assert.NotNil(t, fs.Geometric)
	assert.NotNil(t, fs.Topological)
}

func TestAllErrors(t *testing.T) {
	l := halves(t, 0, 1)
	x := extractor(t, l)
	_, err := x.All(context.Background(), constant(t, l.Shape(), 1), 5, 5)
	assert.ErrorIs(t, err, features.ErrInvalidRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = x.All(ctx, constant(t, l.Shape(), 1), 0, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGeometricNodesOnlyGraph: a graph with both regions but no boundary
// must not yield an empty matrix for a grid that has one.
func TestGeometricNodesOnlyGraph(t *testing.T) {
	l, _ := grid.LabelsFrom2D([][]uint32{{0, 1}, {0, 1}})
	g := rag.New()
	require.NoError(t, g.AddNode(0))
	require.NoError(t, g.AddNode(1))
	x, err := features.NewExtractor(g, l)
	require.NoError(t, err)

	_, err = x.Geometric()
	assert.ErrorIs(t, err, rag.ErrEdgeNotFound)
	_, err = x.Intensity(constant(t, l.Shape(), 1), 0, 2)
	assert.ErrorIs(t, err, rag.ErrEdgeNotFound)
}

// TestSparseLabels uses widely spaced region ids.
func TestSparseLabels(t *testing.T) {
	l, err := grid.LabelsFrom2D([][]uint32{{0, 0, 1 << 20}, {0, 0, 1 << 20}})
	require.NoError(t, err)
	x := extractor(t, l)
	m, err := x.Intensity(constant(t, l.Shape(), 4), 0, 8)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	assert.Equal(t, 4.0, m.RawRow(0)[0])

	g, err := x.Geometric()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2, 4}, g.RawRow(0)[:3])
}

// TestIntensityQuantilesMatchChains feeds the boundary and both regions of
// the halves image into chains by hand and compares every statistic block.
func TestIntensityQuantilesMatchChains(t *testing.T) {
	rows := make([][]float64, 4)
	for y := range rows {
		rows[y] = make([]float64, 4)
		for x := range rows[y] {
			rows[y][x] = float64(3*x + y*y)
		}
	}
	d, err := grid.DataFrom2D(rows)
	require.NoError(t, err)
	l := halves(t, 1, 2)
	m, err := extractor(t, l).Intensity(d, 0, 30)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())

	newChain := func() *accumulator.Chain {
		c, err := accumulator.New(accumulator.Mean|accumulator.StdDev|accumulator.Quantiles,
			accumulator.WithRange(0, 30))
		require.NoError(t, err)
		return c
	}
	e, u, v := newChain(), newChain(), newChain()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			node := u
			if x >= 2 {
				node = v
			}
			require.NoError(t, node.Update(rows[y][x], grid.Coord{x, y}, 1))
		}
		require.NoError(t, e.Update(rows[y][1], grid.Coord{1, y}, 1))
		require.NoError(t, e.Update(rows[y][2], grid.Coord{2, y}, 1))
	}

	stats := func(c *accumulator.Chain) []float64 {
		q := c.Quantiles()
		return append([]float64{c.Mean(), c.StdDev()}, q[:]...)
	}
	es, us, vs := stats(e), stats(u), stats(v)
	row := m.RawRow(0)
	for s := range es {
		block := row[s*11 : (s+1)*11]
		want := []float64{es[s], us[s] + vs[s], math.Abs(us[s] - vs[s]), math.Min(us[s], vs[s]), math.Max(us[s], vs[s])}
		if diff := cmp.Diff(want, block[:5], floatOpts); diff != "" {
			t.Errorf("stat %d (-want +got):\n%s", s, diff)
		}
	}
	// quantiles of non-constant data are not all equal
	assert.NotEqual(t, row[2*11], row[8*11])
	assert.Less(t, row[2*11], row[5*11])
}

// TestGeometricHalves3D checks the midpoint identity on a volume split by
// the plane x = 2.
func TestGeometricHalves3D(t *testing.T) {
	shape := grid.Shape{4, 2, 2}
	vals := make([]uint32, shape.Size())
	it := grid.NewIterator(shape)
	for it.Next() {
		vals[it.Index()] = 1
		if it.Coord()[0] >= 2 {
			vals[it.Index()] = 2
		}
	}
	l, err := grid.NewLabels(shape, vals)
	require.NoError(t, err)
	m, err := extractor(t, l).Geometric()
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	row := m.RawRow(0)

	assert.Equal(t, 8.0, row[0], "4 faces, 2 samples each")
	assert.InDelta(t, 4.0, row[9], 1e-12)
	assert.InDelta(t, 1.0, row[10], 1e-12)
	assert.InDelta(t, 4*math.Min(row[10], row[11]), row[9], 1e-12, "dUV == 4 min(dEU, dEV)")
}
