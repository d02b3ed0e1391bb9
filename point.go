package region

import (
	"fmt"
	"math"
	"strings"
)

// Point is an immutable D-tuple of integer coordinates.
//
// Coordinates beyond the rank are always zero, so == on two Points of the
// same type is exact coordinate equality. All arithmetic is elementwise
// and returns a new Point.
type Point[T Integer, D Dim] struct {
	x [MaxRank]T
}

// NewPoint creates a point from exactly D coordinates.
// It panics if the number of coordinates does not match the dimension.
func NewPoint[T Integer, D Dim](coords ...T) Point[T, D] {
	n := rank[D]()
	if len(coords) != n {
		panic(fmt.Sprintf("region: NewPoint: got %d coordinates for dimension %d", len(coords), n))
	}
	var p Point[T, D]
	copy(p.x[:n], coords)
	return p
}

// Splat creates a point with every coordinate set to v.
func Splat[T Integer, D Dim](v T) Point[T, D] {
	var p Point[T, D]
	for i := 0; i < rank[D](); i++ {
		p.x[i] = v
	}
	return p
}

// Dim returns the number of coordinates.
func (p Point[T, D]) Dim() int { return rank[D]() }

// At returns coordinate i.
func (p Point[T, D]) At(i int) T {
	if i < 0 || i >= rank[D]() {
		panic(fmt.Sprintf("region: coordinate %d out of range for dimension %d", i, rank[D]()))
	}
	return p.x[i]
}

// With returns a copy of p with coordinate i set to v.
func (p Point[T, D]) With(i int, v T) Point[T, D] {
	if i < 0 || i >= rank[D]() {
		panic(fmt.Sprintf("region: coordinate %d out of range for dimension %d", i, rank[D]()))
	}
	p.x[i] = v
	return p
}

// Coords returns the coordinates as a new slice.
func (p Point[T, D]) Coords() []T {
	out := make([]T, rank[D]())
	copy(out, p.x[:])
	return out
}

func (p Point[T, D]) unary(f func(T) T) Point[T, D] {
	var r Point[T, D]
	for i := 0; i < rank[D](); i++ {
		r.x[i] = f(p.x[i])
	}
	return r
}

func (p Point[T, D]) binary(q Point[T, D], f func(T, T) T) Point[T, D] {
	var r Point[T, D]
	for i := 0; i < rank[D](); i++ {
		r.x[i] = f(p.x[i], q.x[i])
	}
	return r
}

func (p Point[T, D]) compare(q Point[T, D], f func(T, T) bool) Mask[D] {
	var m Mask[D]
	for i := 0; i < rank[D](); i++ {
		m.x[i] = f(p.x[i], q.x[i])
	}
	return m
}

// Neg returns -p.
func (p Point[T, D]) Neg() Point[T, D] { return p.unary(func(a T) T { return -a }) }

// BitNot returns the bitwise complement ^p.
func (p Point[T, D]) BitNot() Point[T, D] { return p.unary(func(a T) T { return ^a }) }

// Add returns p + q.
func (p Point[T, D]) Add(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return a + b })
}

// Sub returns p - q.
func (p Point[T, D]) Sub(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return a - b })
}

// Mul returns p * q.
func (p Point[T, D]) Mul(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return a * b })
}

// And returns p & q.
func (p Point[T, D]) And(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return a & b })
}

// Or returns p | q.
func (p Point[T, D]) Or(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return a | b })
}

// Xor returns p ^ q.
func (p Point[T, D]) Xor(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return a ^ b })
}

// Min returns the elementwise minimum of p and q.
func (p Point[T, D]) Min(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return min(a, b) })
}

// Max returns the elementwise maximum of p and q.
func (p Point[T, D]) Max(q Point[T, D]) Point[T, D] {
	return p.binary(q, func(a, b T) T { return max(a, b) })
}

// Eq compares elementwise for equality.
func (p Point[T, D]) Eq(q Point[T, D]) Mask[D] {
	return p.compare(q, func(a, b T) bool { return a == b })
}

// Ne compares elementwise for inequality.
func (p Point[T, D]) Ne(q Point[T, D]) Mask[D] {
	return p.compare(q, func(a, b T) bool { return a != b })
}

// Lt compares elementwise with <.
func (p Point[T, D]) Lt(q Point[T, D]) Mask[D] {
	return p.compare(q, func(a, b T) bool { return a < b })
}

// Gt compares elementwise with >.
func (p Point[T, D]) Gt(q Point[T, D]) Mask[D] {
	return p.compare(q, func(a, b T) bool { return a > b })
}

// Le compares elementwise with <=.
func (p Point[T, D]) Le(q Point[T, D]) Mask[D] {
	return p.compare(q, func(a, b T) bool { return a <= b })
}

// Ge compares elementwise with >=.
func (p Point[T, D]) Ge(q Point[T, D]) Mask[D] {
	return p.compare(q, func(a, b T) bool { return a >= b })
}

// Equal reports whether all coordinates are equal.
func (p Point[T, D]) Equal(q Point[T, D]) bool { return p == q }

// MinVal returns the smallest coordinate, or the largest T for a 0-D point.
func (p Point[T, D]) MinVal() T {
	_, r := limits[T]()
	for i := 0; i < rank[D](); i++ {
		r = min(r, p.x[i])
	}
	return r
}

// MaxVal returns the largest coordinate, or the smallest T for a 0-D point.
func (p Point[T, D]) MaxVal() T {
	r, _ := limits[T]()
	for i := 0; i < rank[D](); i++ {
		r = max(r, p.x[i])
	}
	return r
}

// Sum returns the sum of the coordinates.
func (p Point[T, D]) Sum() T {
	var r T
	for i := 0; i < rank[D](); i++ {
		r += p.x[i]
	}
	return r
}

// Prod returns the product of the coordinates, computed in int64.
// It panics if the product does not fit in an int64.
func (p Point[T, D]) Prod() int64 {
	r := int64(1)
	for i := 0; i < rank[D](); i++ {
		v, ok := toInt64(p.x[i])
		if ok {
			r, ok = mulInt64(r, v)
		}
		if !ok {
			panic(fmt.Sprintf("region: Prod of %v overflows int64", p))
		}
	}
	return r
}

func toInt64[T Integer](v T) (int64, bool) {
	if v < 0 {
		return int64(v), true
	}
	if uint64(v) > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return c, true
}

// String renders the point as [x0 x1 ...].
func (p Point[T, D]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rank[D](); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, p.x[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// limits returns the smallest and largest values representable in T.
func limits[T Integer]() (lo, hi T) {
	var z T
	hi = ^z
	if hi > 0 {
		return 0, hi // unsigned
	}
	hi = 0
	for v := T(1); v > 0; v = v<<1 | 1 {
		hi = v
	}
	return ^hi, hi
}
