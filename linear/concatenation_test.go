package linear

import (
	"math"
	"testing"

	"github.com/scigolib/region"
	"github.com/scigolib/region/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box2(lx, ly, ux, uy int64) region.Box[int64, region.D2] {
	return region.NewBox(region.NewPoint[int64, region.D2](lx, ly), region.NewPoint[int64, region.D2](ux, uy))
}

func TestNewConcatenation(t *testing.T) {
	c := NewConcatenation[int64, region.D2]()
	assert.NotNil(t, c)
	assert.Equal(t, int64(0), c.Next())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
	assert.NoError(t, c.Validate())
}

func TestPushBack(t *testing.T) {
	t.Run("sequential pushes", func(t *testing.T) {
		c := NewConcatenation[int64, region.D2]()

		l1, err := c.PushBack(box2(0, 0, 3, 2)) // 6 elements
		require.NoError(t, err)
		assert.Equal(t, int64(0), l1.Pos())
		assert.Equal(t, int64(6), l1.Size())
		assert.Equal(t, int64(6), c.Next())

		l2, err := c.PushBack(box2(10, 10, 14, 15)) // 20 elements
		require.NoError(t, err)
		assert.Equal(t, int64(6), l2.Pos())
		assert.Equal(t, int64(26), l2.End())

		l3, err := c.PushBack(box2(-1, -1, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, int64(26), l3.Pos())
		assert.Equal(t, int64(27), c.Next())

		assert.Equal(t, 3, c.Len())
		assert.Equal(t, l2, c.At(1))
		require.NoError(t, c.Validate())
	})

	t.Run("empty box fails", func(t *testing.T) {
		c := NewConcatenation[int64, region.D2]()
		_, err := c.PushBack(box2(0, 0, 3, 2))
		require.NoError(t, err)

		_, err = c.PushBack(box2(0, 0, 0, 5))
		require.ErrorIs(t, err, ErrEmptyBox)
		assert.Equal(t, int64(6), c.Next())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("overflow fails", func(t *testing.T) {
		c := NewConcatenation[int64, region.D1]()
		huge := region.NewBox(region.NewPoint[int64, region.D1](0), region.NewPoint[int64, region.D1](math.MaxInt64))
		l, err := c.PushBack(huge)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), l.End())

		one := region.NewBox(region.NewPoint[int64, region.D1](0), region.NewPoint[int64, region.D1](1))
		_, err = c.PushBack(one)
		require.ErrorIs(t, err, ErrOffsetOverflow)
		assert.Equal(t, int64(math.MaxInt64), c.Next())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("box size overflow fails", func(t *testing.T) {
		tests := []struct {
			name string
			box  region.Box[int64, region.D2]
		}{
			{"product is 2^64", box2(0, 0, 1<<32, 1<<32)},
			{"product wraps past 2^64", box2(0, 0, 1<<33, 1<<31+1)},
			{"extent exceeds int64", box2(math.MinInt64, 0, math.MaxInt64, 1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := NewConcatenation[int64, region.D2]()
				_, err := c.PushBack(box2(0, 0, 2, 2))
				require.NoError(t, err)

				_, err = c.PushBack(tt.box)
				require.ErrorIs(t, err, ErrOffsetOverflow)
				assert.ErrorIs(t, err, region.ErrSizeOverflow)
				var e *utils.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, "push", e.Op)
				assert.Equal(t, tt.box, e.Subject)
				assert.Equal(t, int64(4), c.Next())
				assert.Equal(t, 1, c.Len())

				l, err := c.PushBack(box2(0, 0, 1, 1))
				require.NoError(t, err)
				assert.Equal(t, int64(4), l.Pos())
			})
		}
	})

	t.Run("zero-dimensional box", func(t *testing.T) {
		c := NewConcatenation[int32, region.D0]()
		b := region.NewBox(region.NewPoint[int32, region.D0](), region.NewPoint[int32, region.D0]())
		l, err := c.PushBack(b)
		require.NoError(t, err)
		assert.Equal(t, int64(1), l.Size())
		assert.Equal(t, int64(1), c.Next())
	})
}

func TestEntriesIsCopy(t *testing.T) {
	c := NewConcatenation[int64, region.D2]()
	_, err := c.PushBack(box2(0, 0, 2, 2))
	require.NoError(t, err)

	entries := c.Entries()
	entries[0] = Linearization[int64, region.D2]{}
	assert.Equal(t, int64(4), c.At(0).Size())
}

func TestLocate(t *testing.T) {
	c := NewConcatenation[int64, region.D2]()
	_, err := c.PushBack(box2(0, 0, 3, 2))
	require.NoError(t, err)
	_, err = c.PushBack(box2(3, 0, 5, 2))
	require.NoError(t, err)

	tests := []struct {
		name   string
		x, y   int64
		want   int64
		wantOK bool
	}{
		{"first element", 0, 0, 0, true},
		{"dimension 0 fastest", 1, 0, 1, true},
		{"second row", 0, 1, 3, true},
		{"last of first box", 2, 1, 5, true},
		{"first of second box", 3, 0, 6, true},
		{"second box second row", 4, 1, 9, true},
		{"outside", 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, ok := c.Locate(region.NewPoint[int64, region.D2](tt.x, tt.y))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, off)
		})
	}
}

func TestLocateCoversEveryOffsetOnce(t *testing.T) {
	c := NewConcatenation[int64, region.D2]()
	active := region.RegionFromBox(box2(0, 0, 8, 8)).DifferenceBox(box2(2, 2, 5, 6))
	for _, b := range active.Boxes() {
		_, err := c.PushBack(b)
		require.NoError(t, err)
	}
	require.Equal(t, active.Size(), c.Next())

	seen := make([]bool, c.Next())
	for y := int64(0); y < 8; y++ {
		for x := int64(0); x < 8; x++ {
			p := region.NewPoint[int64, region.D2](x, y)
			off, ok := c.Locate(p)
			require.Equal(t, active.Contains(p), ok)
			if !ok {
				continue
			}
			require.False(t, seen[off], "offset %d issued twice", off)
			seen[off] = true
		}
	}
	for i, s := range seen {
		assert.True(t, s, "offset %d never issued", i)
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	c := NewConcatenation[int64, region.D2]()
	_, err := c.PushBack(box2(0, 0, 2, 2))
	require.NoError(t, err)
	_, err = c.PushBack(box2(0, 0, 2, 2))
	require.NoError(t, err)

	c.entries[1].pos = 3
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestLinearizationString(t *testing.T) {
	c := NewConcatenation[int64, region.D2]()
	_, _ = c.PushBack(box2(0, 0, 1, 1))
	l, err := c.PushBack(box2(0, 0, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, "([0 0]:[2 3])@[1,7)", l.String())
}

func BenchmarkPushBack(b *testing.B) {
	box := box2(0, 0, 16, 16)
	for i := 0; i < b.N; i++ {
		c := NewConcatenation[int64, region.D2]()
		for j := 0; j < 64; j++ {
			_, _ = c.PushBack(box)
		}
	}
}
