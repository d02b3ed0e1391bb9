package buffer

import (
	"fmt"
	"math"

	"github.com/scigolib/region"
	"github.com/scigolib/region/linear"
)

// ChunkGrid tiles a domain box into chunks of a fixed shape.
//
// Key Concepts:
//   - Chunk coordinates: scaled indices where
//     coordinate[d] = (point[d] - domain.lower[d]) / chunkShape[d]
//   - Edge chunks: partial chunks clipped at the domain's upper corner
//   - Chunk index: linear position of a coordinate, dimension 0 fastest
//
// Example (2D domain 25x35, chunks 10x10):
//
//	Result: 3x4 = 12 chunks
//	  - Chunk [0 0]: 10x10 (full)
//	  - Chunk [0 3]: 10x5  (partial in dim 1)
//	  - Chunk [2 0]: 5x10  (partial in dim 0)
//	  - Chunk [2 3]: 5x5   (partial in both dims)
type ChunkGrid[T region.Integer, D region.Dim] struct {
	domain region.Box[T, D]
	chunk  region.Point[T, D]
	grid   region.Box[T, D] // chunk coordinates, [0, numChunks)
}

// NewChunkGrid creates a grid over domain.
//
// Calculates the number of chunks per dimension by ceiling division:
// numChunks[d] = ceil(shape[d] / chunkShape[d]).
func NewChunkGrid[T region.Integer, D region.Dim](domain region.Box[T, D], chunkShape region.Point[T, D]) (*ChunkGrid[T, D], error) {
	if domain.Empty() {
		return nil, fmt.Errorf("domain %v is empty", domain)
	}
	if _, err := domain.CheckedSize(); err != nil {
		return nil, fmt.Errorf("domain %v: %w", domain, err)
	}
	zero := region.Splat[T, D](0)
	for d := 0; d < domain.Dim(); d++ {
		if chunkShape.At(d) <= 0 {
			return nil, fmt.Errorf("chunk dimension %d must be positive, got %v", d, chunkShape.At(d))
		}
	}

	num := zero
	for d := 0; d < domain.Dim(); d++ {
		n := ceilDiv(domain.Extent(d), chunkShape.At(d))
		if int64(T(n)) != n {
			return nil, fmt.Errorf("domain %v: %d chunks along dimension %d overflow the coordinate type", domain, n, d)
		}
		num = num.With(d, T(n))
	}

	return &ChunkGrid[T, D]{
		domain: domain,
		chunk:  chunkShape,
		grid:   region.NewBox(zero, num),
	}, nil
}

// floorDiv returns n / c for n >= 0 and c > 0 without converting c to an
// int64 that cannot hold it.
func floorDiv[T region.Integer](n int64, c T) int64 {
	if uint64(c) > math.MaxInt64 {
		return 0
	}
	return n / int64(c)
}

// ceilDiv returns ceil(n / c) for n >= 0 and c > 0.
func ceilDiv[T region.Integer](n int64, c T) int64 {
	q := floorDiv(n, c)
	if uint64(q)*uint64(c) != uint64(n) {
		q++
	}
	return q
}

// Domain returns the tiled box.
func (g *ChunkGrid[T, D]) Domain() region.Box[T, D] { return g.domain }

// ChunkShape returns the nominal chunk shape.
func (g *ChunkGrid[T, D]) ChunkShape() region.Point[T, D] { return g.chunk }

// NumChunks returns the number of chunks per dimension.
func (g *ChunkGrid[T, D]) NumChunks() region.Point[T, D] { return g.grid.Upper() }

// TotalChunks returns the total number of chunks.
func (g *ChunkGrid[T, D]) TotalChunks() int64 { return g.grid.Size() }

// ChunkCoordinate converts a chunk index to its coordinate.
//
// Example (2D, 3x4 chunks):
//
//	index=0  → [0 0]
//	index=1  → [1 0]
//	index=3  → [0 1]
//	index=11 → [2 3]
func (g *ChunkGrid[T, D]) ChunkCoordinate(index int64) region.Point[T, D] {
	return g.grid.PointAt(index)
}

// ChunkIndex converts a chunk coordinate to its index.
func (g *ChunkGrid[T, D]) ChunkIndex(coord region.Point[T, D]) int64 {
	return g.grid.Index(coord)
}

// ChunkBox returns the box covered by the chunk at coord, clipped to the
// domain.
//
// Algorithm:
//
//	lower[d] = domain.lower[d] + coord[d] * chunkShape[d]
//	upper[d] = min(lower[d] + chunkShape[d], domain.upper[d])
//
// Coordinates outside the grid give an empty box. Inside the grid the lower
// corner may wrap in T on the way but ends up exact, and the upper corner is
// clamped before the addition so it never wraps.
func (g *ChunkGrid[T, D]) ChunkBox(coord region.Point[T, D]) region.Box[T, D] {
	if !g.grid.Contains(coord) {
		return region.NewBox(g.domain.Lower(), g.domain.Lower())
	}
	lo := g.domain.Lower().Add(coord.Mul(g.chunk))
	hi := g.domain.Upper()
	for d := 0; d < g.domain.Dim(); d++ {
		c := g.chunk.At(d)
		if uint64(region.Width(lo.At(d), hi.At(d))) > uint64(c) {
			hi = hi.With(d, lo.At(d)+c)
		}
	}
	return region.NewBox(lo, hi).Intersection(g.domain)
}

// Region returns the disjoint union of all chunk boxes. It equals the domain.
func (g *ChunkGrid[T, D]) Region() region.Region[T, D] {
	boxes := make([]region.Box[T, D], 0, g.TotalChunks())
	for i := int64(0); i < g.TotalChunks(); i++ {
		boxes = append(boxes, g.ChunkBox(g.ChunkCoordinate(i)))
	}
	return region.RegionFromBoxes(boxes...)
}

// Overlapping returns the coordinates of every chunk intersecting sel,
// in chunk index order.
func (g *ChunkGrid[T, D]) Overlapping(sel region.Box[T, D]) []region.Point[T, D] {
	sel = sel.Intersection(g.domain)
	if sel.Empty() {
		return nil
	}

	first, last := sel.Lower(), sel.Upper()
	lo := g.domain.Lower()
	for d := 0; d < sel.Dim(); d++ {
		c := g.chunk.At(d)
		first = first.With(d, T(floorDiv(region.Width(lo.At(d), first.At(d)), c)))
		last = last.With(d, T(floorDiv(region.Width(lo.At(d), last.At(d)-1), c)+1))
	}

	span := region.NewBox(first, last)
	coords := make([]region.Point[T, D], 0, span.Size())
	for i := int64(0); i < span.Size(); i++ {
		coords = append(coords, span.PointAt(i))
	}
	return coords
}

// Register pushes every chunk into buf in chunk index order. The i-th
// returned linearization belongs to chunk i.
func (g *ChunkGrid[T, D]) Register(buf *Buffer[T, D]) ([]linear.Linearization[T, D], error) {
	lins := make([]linear.Linearization[T, D], 0, g.TotalChunks())
	for i := int64(0); i < g.TotalChunks(); i++ {
		coord := g.ChunkCoordinate(i)
		lin, err := buf.Register(g.ChunkBox(coord))
		if err != nil {
			return lins, fmt.Errorf("chunk %v: %w", coord, err)
		}
		lins = append(lins, lin)
	}
	return lins, nil
}
