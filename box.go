package region

import (
	"errors"
	"fmt"
	"math"

	"github.com/scigolib/region/internal/utils"
)

// ErrSizeOverflow is returned when the number of points in a box or
// region does not fit in an int64.
var ErrSizeOverflow = errors.New("size overflows int64")

// Width returns hi - lo as an int64 without wrapping in T, or 0 if
// hi <= lo. It panics if the difference exceeds math.MaxInt64.
func Width[T Integer](lo, hi T) int64 {
	w, err := width(lo, hi)
	if err != nil {
		panic("region: Width: " + err.Error())
	}
	return w
}

func width[T Integer](lo, hi T) (int64, error) {
	if hi <= lo {
		return 0, nil
	}
	// Both conversions agree modulo 2^64 and the true difference is below
	// 2^64, so the unsigned subtraction is exact.
	w := uint64(hi) - uint64(lo)
	if w > math.MaxInt64 {
		return 0, fmt.Errorf("%w: extent from %v to %v", ErrSizeOverflow, lo, hi)
	}
	return int64(w), nil
}

// Box is the half-open axis-aligned set {p : lower <= p < upper}.
//
// A box is empty as soon as any dimension is degenerate. All empty boxes
// compare Equal regardless of their corners; use == only when structural
// corner equality is wanted. A 0-D box is never empty and has size 1.
type Box[T Integer, D Dim] struct {
	lo, hi Point[T, D]
}

// NewBox creates the box [lower, upper).
func NewBox[T Integer, D Dim](lower, upper Point[T, D]) Box[T, D] {
	return Box[T, D]{lo: lower, hi: upper}
}

// BoxFromShape creates the box [lower, lower+shape).
func BoxFromShape[T Integer, D Dim](lower, shape Point[T, D]) Box[T, D] {
	return Box[T, D]{lo: lower, hi: lower.Add(shape)}
}

// Lower returns the inclusive lower corner.
func (b Box[T, D]) Lower() Point[T, D] { return b.lo }

// Upper returns the exclusive upper corner.
func (b Box[T, D]) Upper() Point[T, D] { return b.hi }

// Dim returns the dimension of the box.
func (b Box[T, D]) Dim() int { return rank[D]() }

// Empty reports whether any dimension has upper <= lower.
func (b Box[T, D]) Empty() bool { return b.hi.Le(b.lo).Any() }

// Shape returns max(upper-lower, 0) elementwise. An extent that does not
// fit in T wraps; Extent and CheckedSize compute extents in int64.
func (b Box[T, D]) Shape() Point[T, D] {
	var s Point[T, D]
	for d := 0; d < rank[D](); d++ {
		if b.hi.x[d] > b.lo.x[d] {
			s.x[d] = b.hi.x[d] - b.lo.x[d]
		}
	}
	return s
}

// Extent returns the number of points along dimension d as an int64.
// It panics if the extent exceeds math.MaxInt64.
func (b Box[T, D]) Extent(d int) int64 {
	return Width(b.lo.At(d), b.hi.At(d))
}

// CheckedSize returns the number of points in the box, or ErrSizeOverflow
// if the count does not fit in an int64.
func (b Box[T, D]) CheckedSize() (int64, error) {
	if b.Empty() {
		return 0, nil
	}
	var ext [MaxRank]int64
	for d := 0; d < rank[D](); d++ {
		w, err := width(b.lo.x[d], b.hi.x[d])
		if err != nil {
			return 0, fmt.Errorf("box %v: %w", b, err)
		}
		ext[d] = w
	}
	n, err := utils.CheckedProduct(ext[:rank[D]()]...)
	if err != nil {
		return 0, fmt.Errorf("%w: box %v: %w", ErrSizeOverflow, b, err)
	}
	return n, nil
}

// Size returns the number of points in the box.
// It panics if the count does not fit in an int64; use CheckedSize for
// boxes built from untrusted input.
func (b Box[T, D]) Size() int64 {
	n, err := b.CheckedSize()
	if err != nil {
		panic("region: Size: " + err.Error())
	}
	return n
}

// Contains reports whether p lies inside the box.
func (b Box[T, D]) Contains(p Point[T, D]) bool {
	return !b.Empty() && p.Ge(b.lo).All() && p.Lt(b.hi).All()
}

// Intersection returns the overlap of b and o, which may be empty.
func (b Box[T, D]) Intersection(o Box[T, D]) Box[T, D] {
	return Box[T, D]{lo: b.lo.Max(o.lo), hi: b.hi.Min(o.hi)}
}

// IsDisjoint reports whether b and o share no point.
func (b Box[T, D]) IsDisjoint(o Box[T, D]) bool { return b.Intersection(o).Empty() }

// IsSubsetOf reports b <= o.
func (b Box[T, D]) IsSubsetOf(o Box[T, D]) bool {
	if b.Empty() {
		return true
	}
	if o.Empty() {
		return false
	}
	return b.lo.Ge(o.lo).All() && b.hi.Le(o.hi).All()
}

// IsStrictSubsetOf reports b < o.
func (b Box[T, D]) IsStrictSubsetOf(o Box[T, D]) bool {
	return b.IsSubsetOf(o) && !b.Equal(o)
}

// IsSupersetOf reports b >= o.
func (b Box[T, D]) IsSupersetOf(o Box[T, D]) bool { return o.IsSubsetOf(b) }

// IsStrictSupersetOf reports b > o.
func (b Box[T, D]) IsStrictSupersetOf(o Box[T, D]) bool { return o.IsStrictSubsetOf(b) }

// Equal reports set equality: both empty, or identical corners.
func (b Box[T, D]) Equal(o Box[T, D]) bool {
	be, oe := b.Empty(), o.Empty()
	if be || oe {
		return be && oe
	}
	return b.lo == o.lo && b.hi == o.hi
}

// BoundingBox returns the smallest box containing b and o.
// An empty operand is absorbed.
func (b Box[T, D]) BoundingBox(o Box[T, D]) Box[T, D] {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box[T, D]{lo: b.lo.Min(o.lo), hi: b.hi.Max(o.hi)}
}

// Difference returns b - o as pairwise disjoint, non-empty boxes.
//
// b is split at o's lower corner, every piece is split again at o's upper
// corner, and the pieces disjoint from o are kept. Every piece of the
// refinement lies entirely inside or entirely outside o.
func (b Box[T, D]) Difference(o Box[T, D]) []Box[T, D] {
	if b.Empty() {
		return nil
	}
	if o.Empty() {
		return []Box[T, D]{b}
	}
	if b.IsDisjoint(o) {
		return []Box[T, D]{b}
	}
	var out []Box[T, D]
	for _, lower := range SplitAt(b, o.lo) {
		for _, piece := range SplitAt(lower, o.hi) {
			if piece.IsDisjoint(o) {
				out = append(out, piece)
			}
		}
	}
	if debugChecks {
		checkDifference(b, o, out)
	}
	return out
}

// Union returns b | o as disjoint boxes: the part of b outside o, then o.
func (b Box[T, D]) Union(o Box[T, D]) []Box[T, D] {
	out := b.Difference(o)
	if !o.Empty() {
		out = append(out, o)
	}
	return out
}

// SymmetricDifference returns b ^ o as disjoint boxes.
func (b Box[T, D]) SymmetricDifference(o Box[T, D]) []Box[T, D] {
	return append(b.Difference(o), o.Difference(b)...)
}

// Shift translates the box by offset.
func (b Box[T, D]) Shift(offset Point[T, D]) Box[T, D] {
	return Box[T, D]{lo: b.lo.Add(offset), hi: b.hi.Add(offset)}
}

// Grow moves the lower corner down by dlo and the upper corner up by dhi.
// Negative margins shrink the box.
func (b Box[T, D]) Grow(dlo, dhi Point[T, D]) Box[T, D] {
	return Box[T, D]{lo: b.lo.Sub(dlo), hi: b.hi.Add(dhi)}
}

// Index returns the linear position of p inside b, dimension 0 fastest.
// It panics if p is outside b.
func (b Box[T, D]) Index(p Point[T, D]) int64 {
	if !b.Contains(p) {
		panic(fmt.Sprintf("region: Index: point %v outside box %v", p, b))
	}
	if _, err := b.CheckedSize(); err != nil {
		panic("region: Index: " + err.Error())
	}
	var idx int64
	for d := rank[D]() - 1; d >= 0; d-- {
		idx = idx*Width(b.lo.x[d], b.hi.x[d]) + Width(b.lo.x[d], p.x[d])
	}
	return idx
}

// PointAt is the inverse of Index.
// It panics if i is outside [0, Size()).
func (b Box[T, D]) PointAt(i int64) Point[T, D] {
	if i < 0 || i >= b.Size() {
		panic(fmt.Sprintf("region: PointAt: index %d outside box %v", i, b))
	}
	p := b.lo
	for d := 0; d < rank[D](); d++ {
		n := Width(b.lo.x[d], b.hi.x[d])
		p.x[d] += T(i % n)
		i /= n
	}
	return p
}

// String renders the box as ([lo]:[hi]).
func (b Box[T, D]) String() string {
	return fmt.Sprintf("(%v:%v)", b.lo, b.hi)
}
