package region

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type b3 = Box[int64, D3]

func box3(lx, ly, lz, ux, uy, uz int64) b3 {
	return NewBox(pt3(lx, ly, lz), pt3(ux, uy, uz))
}

func TestBox_Empty(t *testing.T) {
	tests := []struct {
		name  string
		box   b3
		empty bool
		size  int64
	}{
		{"all degenerate", box3(0, 0, 0, 0, 0, 0), true, 0},
		{"one degenerate dim", box3(0, 0, 0, 4, 0, 4), true, 0},
		{"inverted dim", box3(0, 5, 0, 4, 1, 4), true, 0},
		{"unit cube", box3(0, 0, 0, 1, 1, 1), false, 1},
		{"4x4x4", box3(0, 0, 0, 4, 4, 4), false, 64},
		{"offset", box3(-2, 3, 1, 1, 5, 2), false, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.box.Empty())
			assert.Equal(t, tt.size, tt.box.Size())
		})
	}
}

func TestBox_Shape(t *testing.T) {
	assert.Equal(t, pt3(3, 0, 2), box3(1, 5, 0, 4, 1, 2).Shape())
	assert.Equal(t, "([1 5 0]:[4 1 2])", box3(1, 5, 0, 4, 1, 2).String())
}

func TestBox_EmptyBoxesAreEqual(t *testing.T) {
	a := box3(0, 0, 0, 0, 0, 0)
	b := box3(5, 6, 7, 1, 100, 100)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(box3(0, 0, 0, 1, 1, 1)))
	assert.True(t, a.IsSubsetOf(box3(0, 0, 0, 1, 1, 1)))
	assert.False(t, box3(0, 0, 0, 1, 1, 1).IsSubsetOf(a))
}

func TestBox_ZeroDimensional(t *testing.T) {
	b := NewBox(NewPoint[int64, D0](), NewPoint[int64, D0]())
	assert.False(t, b.Empty())
	assert.Equal(t, int64(1), b.Size())
	assert.True(t, b.Contains(NewPoint[int64, D0]()))
	assert.Empty(t, b.Difference(b))
	assert.Equal(t, int64(0), b.Index(NewPoint[int64, D0]()))
}

func TestBox_Contains(t *testing.T) {
	b := box3(0, 0, 0, 2, 3, 4)
	assert.True(t, b.Contains(pt3(0, 0, 0)))
	assert.True(t, b.Contains(pt3(1, 2, 3)))
	assert.False(t, b.Contains(pt3(2, 0, 0)), "upper bound is exclusive")
	assert.False(t, b.Contains(pt3(-1, 0, 0)))
	assert.False(t, box3(0, 0, 0, 0, 3, 4).Contains(pt3(0, 0, 0)))
}

func TestBox_Intersection(t *testing.T) {
	a := box3(0, 0, 0, 4, 4, 4)
	b := box3(2, -1, 3, 6, 2, 10)
	assert.Equal(t, box3(2, 0, 3, 4, 2, 4), a.Intersection(b))
	assert.True(t, a.Intersection(box3(4, 0, 0, 5, 5, 5)).Empty(), "touching boxes do not overlap")
	assert.True(t, a.IsDisjoint(box3(4, 0, 0, 5, 5, 5)))
	assert.False(t, a.IsDisjoint(b))
}

func TestBox_Subset(t *testing.T) {
	a := box3(0, 0, 0, 4, 4, 4)
	inner := box3(1, 1, 1, 2, 2, 2)
	assert.True(t, inner.IsSubsetOf(a))
	assert.True(t, inner.IsStrictSubsetOf(a))
	assert.True(t, a.IsSubsetOf(a))
	assert.False(t, a.IsStrictSubsetOf(a))
	assert.True(t, a.IsSupersetOf(inner))
	assert.True(t, a.IsStrictSupersetOf(inner))
	assert.False(t, a.IsSubsetOf(inner))
}

func TestBox_BoundingBox(t *testing.T) {
	a := box3(0, 0, 0, 1, 1, 1)
	b := box3(3, -2, 0, 4, 0, 5)
	assert.Equal(t, box3(0, -2, 0, 4, 1, 5), a.BoundingBox(b))

	empty := box3(9, 9, 9, 0, 0, 0)
	assert.Equal(t, a, a.BoundingBox(empty))
	assert.Equal(t, a, empty.BoundingBox(a))
}

func TestBox_DifferenceScenario(t *testing.T) {
	a := box3(0, 0, 0, 4, 4, 4)
	b := box3(1, 1, 1, 2, 2, 2)

	pieces := a.Difference(b)
	requireCover(t, a, append(pieces, b))

	var total int64
	for _, p := range pieces {
		assert.True(t, p.IsDisjoint(b))
		total += p.Size()
	}
	assert.Equal(t, int64(63), total)
}

func TestBox_DifferenceEdgeCases(t *testing.T) {
	a := box3(0, 0, 0, 4, 4, 4)
	empty := box3(0, 0, 0, 0, 0, 0)

	assert.Empty(t, empty.Difference(a))
	assert.Equal(t, []b3{a}, a.Difference(empty))
	assert.Empty(t, a.Difference(a))
	assert.Empty(t, a.Difference(box3(-1, -1, -1, 5, 5, 5)))

	far := box3(10, 10, 10, 11, 11, 11)
	assert.Equal(t, []b3{a}, a.Difference(far))

	half := a.Difference(box3(2, -1, -1, 5, 5, 5))
	require.Len(t, half, 1)
	assert.Equal(t, box3(0, 0, 0, 2, 4, 4), half[0])
}

func TestBox_UnionAndSymmetricDifference(t *testing.T) {
	a := box3(0, 0, 0, 3, 3, 1)
	b := box3(2, 2, 0, 5, 5, 1)

	union := a.Union(b)
	assert.Equal(t, b, union[len(union)-1], "union keeps the other operand whole")
	assert.NoError(t, RegionFromBoxes(union...).Invariant())
	assert.Equal(t, int64(9+9-1), RegionFromBoxes(union...).Size())

	sym := a.SymmetricDifference(b)
	assert.NoError(t, RegionFromBoxes(sym...).Invariant())
	assert.Equal(t, int64(16), RegionFromBoxes(sym...).Size())

	assert.True(t, RegionFromBoxes(a.Union(b)...).Equal(RegionFromBoxes(b.Union(a)...)))
}

func TestBox_RandomLaws(t *testing.T) {
	t.Run("D0", checkBoxLaws[D0])
	t.Run("D1", checkBoxLaws[D1])
	t.Run("D2", checkBoxLaws[D2])
	t.Run("D3", checkBoxLaws[D3])
	t.Run("D4", checkBoxLaws[D4])
}

func checkBoxLaws[D Dim](t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		a := randomBox[D](rng, 8)
		b := randomBox[D](rng, 8)

		x := a.Intersection(b)
		require.True(t, x.IsSubsetOf(a), "%v & %v", a, b)
		require.True(t, x.IsSubsetOf(b), "%v & %v", a, b)
		require.True(t, x.Equal(b.Intersection(a)))

		pieces := a.Difference(b)
		var total int64
		for j, p := range pieces {
			require.False(t, p.Empty())
			require.True(t, p.IsSubsetOf(a))
			require.True(t, p.IsDisjoint(b))
			for _, q := range pieces[j+1:] {
				require.True(t, p.IsDisjoint(q))
			}
			total += p.Size()
		}
		require.Equal(t, a.Size()-x.Size(), total, "%v - %v", a, b)
		require.GreaterOrEqual(t, total, max(0, a.Size()-b.Size()))
		require.LessOrEqual(t, total, a.Size())
	}
}

func TestBox_ShiftAndGrow(t *testing.T) {
	a := box3(0, 0, 0, 2, 2, 2)
	assert.Equal(t, box3(1, 2, 3, 3, 4, 5), a.Shift(pt3(1, 2, 3)))
	assert.Equal(t, box3(-1, -1, 0, 3, 3, 4), a.Grow(pt3(1, 1, 0), pt3(1, 1, 2)))
	assert.True(t, a.Grow(Splat[int64, D3](-1), Splat[int64, D3](0)).Equal(box3(1, 1, 1, 2, 2, 2)))
}

func TestBox_IndexRoundTrip(t *testing.T) {
	b := box3(1, -1, 2, 4, 1, 5)
	require.Equal(t, int64(18), b.Size())

	assert.Equal(t, int64(0), b.Index(pt3(1, -1, 2)))
	assert.Equal(t, int64(1), b.Index(pt3(2, -1, 2)), "dimension 0 varies fastest")
	assert.Equal(t, int64(3), b.Index(pt3(1, 0, 2)))
	assert.Equal(t, int64(6), b.Index(pt3(1, -1, 3)))

	for i := int64(0); i < b.Size(); i++ {
		p := b.PointAt(i)
		require.True(t, b.Contains(p))
		require.Equal(t, i, b.Index(p))
	}

	assert.Panics(t, func() { b.Index(pt3(0, 0, 0)) })
	assert.Panics(t, func() { b.PointAt(18) })
}

func BenchmarkBoxDifference(b *testing.B) {
	a := box3(0, 0, 0, 100, 100, 100)
	hole := box3(10, 20, 30, 40, 50, 60)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.Difference(hole)
	}
}

func TestBoxUnsignedCoordinates(t *testing.T) {
	inverted := NewBox(NewPoint[uint32, D2](5, 1), NewPoint[uint32, D2](2, 4))
	assert.True(t, inverted.Empty())
	assert.Equal(t, []uint32{0, 3}, inverted.Shape().Coords())
	assert.Equal(t, int64(0), inverted.Size())

	b := NewBox(NewPoint[uint32, D2](0, 0), NewPoint[uint32, D2](4, 4))
	hole := NewBox(NewPoint[uint32, D2](1, 1), NewPoint[uint32, D2](3, 3))
	var total int64
	for _, p := range b.Difference(hole) {
		total += p.Size()
	}
	assert.Equal(t, int64(12), total)
}

func TestBox_CheckedSize(t *testing.T) {
	box2 := func(lx, ly, ux, uy int64) Box[int64, D2] {
		return NewBox(NewPoint[int64, D2](lx, ly), NewPoint[int64, D2](ux, uy))
	}

	tests := []struct {
		name    string
		box     Box[int64, D2]
		want    int64
		wantErr bool
	}{
		{"regular", box2(1, 2, 4, 6), 12, false},
		{"empty", box2(0, 0, 0, 5), 0, false},
		{"inverted extremes", box2(math.MaxInt64, 0, math.MinInt64, 1), 0, false},
		{"largest", box2(0, 0, math.MaxInt64, 1), math.MaxInt64, false},
		{"product is 2^64", box2(0, 0, 1<<32, 1<<32), 0, true},
		{"product wraps past 2^64", box2(0, 0, 1<<33, 1<<31+1), 0, true},
		{"extent exceeds int64", box2(math.MinInt64, 0, math.MaxInt64, 1), 0, true},
		{"extent across zero", box2(-1, 0, math.MaxInt64, 1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.box.CheckedSize()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrSizeOverflow)
				assert.Panics(t, func() { tt.box.Size() })
				assert.Panics(t, func() { tt.box.Index(tt.box.Lower()) })
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.box.Size())
		})
	}
}

func TestBox_ExtentNarrowTypes(t *testing.T) {
	b := NewBox(NewPoint[int8, D1](-100), NewPoint[int8, D1](100))
	assert.Equal(t, int64(200), b.Extent(0))
	assert.Equal(t, int64(200), b.Size())
	assert.Equal(t, int64(199), b.Index(NewPoint[int8, D1](99)))
	assert.Equal(t, NewPoint[int8, D1](99), b.PointAt(199))

	u := NewBox(NewPoint[uint64, D1](0), NewPoint[uint64, D1](math.MaxUint64))
	_, err := u.CheckedSize()
	require.ErrorIs(t, err, ErrSizeOverflow)
	assert.Panics(t, func() { u.Extent(0) })

	assert.Equal(t, int64(math.MaxInt64), Width[uint64](1, math.MaxInt64+1))
	assert.Equal(t, int64(0), Width[int16](5, -5))
}
