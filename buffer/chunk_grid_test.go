package buffer

import (
	"testing"

	"github.com/scigolib/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunkGrid(t *testing.T) {
	tests := []struct {
		name      string
		domain    box2T
		chunk     point2
		wantNum   point2
		wantTotal int64
	}{
		{"exact fit", box2(0, 0, 100, 200), pt(10, 20), pt(10, 10), 100},
		{"edge chunks", box2(0, 0, 25, 35), pt(10, 10), pt(3, 4), 12},
		{"offset domain", box2(-5, 3, 5, 4), pt(4, 4), pt(3, 1), 3},
		{"chunk larger than domain", box2(0, 0, 3, 3), pt(10, 10), pt(1, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewChunkGrid(tt.domain, tt.chunk)
			require.NoError(t, err)
			assert.True(t, tt.wantNum.Equal(g.NumChunks()), "got %v", g.NumChunks())
			assert.Equal(t, tt.wantTotal, g.TotalChunks())
			assert.True(t, g.Region().Equal(region.RegionFromBox(tt.domain)))
			require.NoError(t, g.Region().Invariant())
		})
	}
}

func TestNewChunkGridErrors(t *testing.T) {
	_, err := NewChunkGrid(box2(0, 0, 0, 5), pt(1, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	_, err = NewChunkGrid(box2(0, 0, 5, 5), pt(2, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk dimension 1")
}

func TestChunkCoordinate(t *testing.T) {
	g, err := NewChunkGrid(box2(0, 0, 25, 35), pt(10, 10))
	require.NoError(t, err)

	tests := []struct {
		index int64
		want  point2
	}{
		{0, pt(0, 0)},
		{1, pt(1, 0)},
		{3, pt(0, 1)},
		{11, pt(2, 3)},
	}
	for _, tt := range tests {
		got := g.ChunkCoordinate(tt.index)
		assert.True(t, tt.want.Equal(got), "index %d: got %v", tt.index, got)
		assert.Equal(t, tt.index, g.ChunkIndex(got))
	}
}

func TestChunkBox(t *testing.T) {
	g, err := NewChunkGrid(box2(0, 0, 25, 35), pt(10, 10))
	require.NoError(t, err)

	tests := []struct {
		name      string
		coord     point2
		wantShape point2
	}{
		{"full", pt(0, 0), pt(10, 10)},
		{"partial in dim 1", pt(0, 3), pt(10, 5)},
		{"partial in dim 0", pt(2, 0), pt(5, 10)},
		{"partial in both", pt(2, 3), pt(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := g.ChunkBox(tt.coord)
			assert.True(t, tt.wantShape.Equal(b.Shape()), "got %v", b)
			assert.True(t, b.IsSubsetOf(g.Domain()))
		})
	}
}

func TestOverlapping(t *testing.T) {
	g, err := NewChunkGrid(box2(-10, -10, 30, 30), pt(10, 10))
	require.NoError(t, err)

	tests := []struct {
		name string
		sel  box2T
		want []point2
	}{
		{"single chunk", box2(-8, -8, -2, -2), []point2{pt(0, 0)}},
		{"chunk boundary is exclusive", box2(0, 0, 10, 10), []point2{pt(1, 1)}},
		{"spanning four", box2(5, 5, 15, 15), []point2{pt(1, 1), pt(2, 1), pt(1, 2), pt(2, 2)}},
		{"clipped to domain", box2(25, -50, 100, -5), []point2{pt(3, 0)}},
		{"outside", box2(40, 40, 50, 50), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Overlapping(tt.sel)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.True(t, tt.want[i].Equal(got[i]), "chunk %d: got %v", i, got[i])
				assert.False(t, g.ChunkBox(got[i]).IsDisjoint(tt.sel))
			}
		})
	}
}

func TestChunkGridRegister(t *testing.T) {
	buf, err := New[int64, region.D3](8)
	require.NoError(t, err)
	domain := region.NewBox(region.NewPoint[int64, region.D3](0, 0, 0), region.NewPoint[int64, region.D3](5, 4, 3))
	g, err := NewChunkGrid(domain, region.NewPoint[int64, region.D3](2, 2, 2))
	require.NoError(t, err)

	lins, err := g.Register(buf)
	require.NoError(t, err)
	require.Len(t, lins, int(g.TotalChunks()))
	assert.Equal(t, domain.Size(), buf.Len())
	for i, lin := range lins {
		assert.True(t, lin.Box().Equal(g.ChunkBox(g.ChunkCoordinate(int64(i)))))
	}
}

func TestChunkGridNarrowCoordinates(t *testing.T) {
	pt1 := func(x int8) region.Point[int8, region.D1] { return region.NewPoint[int8, region.D1](x) }
	domain := region.NewBox(pt1(-100), pt1(100))

	g, err := NewChunkGrid(domain, pt1(64))
	require.NoError(t, err)
	assert.Equal(t, pt1(4), g.NumChunks())
	assert.Equal(t, region.NewBox(pt1(28), pt1(92)), g.ChunkBox(pt1(2)))
	assert.Equal(t, region.NewBox(pt1(92), pt1(100)), g.ChunkBox(pt1(3)))
	assert.True(t, g.ChunkBox(pt1(4)).Empty())
	assert.True(t, g.Region().Equal(region.RegionFromBox(domain)))
	assert.Equal(t, []region.Point[int8, region.D1]{pt1(2), pt1(3)},
		g.Overlapping(region.NewBox(pt1(90), pt1(95))))

	_, err = NewChunkGrid(domain, pt1(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflow the coordinate type")
}
