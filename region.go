package region

import (
	"fmt"
	"strings"

	"github.com/scigolib/region/internal/utils"
)

// Region is a set of points represented as a list of pairwise disjoint,
// non-empty boxes. The decomposition is not canonical: two Regions with
// different box lists may be Equal.
//
// Region is an immutable value; every operation returns a new Region.
type Region[T Integer, D Dim] struct {
	boxes []Box[T, D]
}

// NewRegion returns the empty region.
func NewRegion[T Integer, D Dim]() Region[T, D] {
	return Region[T, D]{}
}

// RegionFromBox returns the region covering a single box.
func RegionFromBox[T Integer, D Dim](b Box[T, D]) Region[T, D] {
	if b.Empty() {
		return Region[T, D]{}
	}
	return Region[T, D]{boxes: []Box[T, D]{b}}
}

// RegionFromBoxes wraps boxes the caller asserts to be pairwise disjoint.
// Empty boxes are dropped.
func RegionFromBoxes[T Integer, D Dim](boxes ...Box[T, D]) Region[T, D] {
	r := Region[T, D]{boxes: nonEmpty(boxes)}
	assertInvariant(r, "RegionFromBoxes")
	return r
}

// RegionFromOverlapping builds a region from boxes that may overlap.
func RegionFromOverlapping[T Integer, D Dim](boxes ...Box[T, D]) Region[T, D] {
	var r Region[T, D]
	for _, b := range boxes {
		r = r.Union(RegionFromBox(b))
	}
	return r
}

func nonEmpty[T Integer, D Dim](boxes []Box[T, D]) []Box[T, D] {
	var out []Box[T, D]
	for _, b := range boxes {
		if !b.Empty() {
			out = append(out, b)
		}
	}
	return out
}

// Boxes returns a copy of the member boxes.
func (r Region[T, D]) Boxes() []Box[T, D] {
	out := make([]Box[T, D], len(r.boxes))
	copy(out, r.boxes)
	return out
}

// Len returns the number of member boxes.
func (r Region[T, D]) Len() int { return len(r.boxes) }

// Dim returns the dimension of the region.
func (r Region[T, D]) Dim() int { return rank[D]() }

// Empty reports whether the region contains no point.
func (r Region[T, D]) Empty() bool { return len(r.boxes) == 0 }

// CheckedSize returns the number of points in the region, or
// ErrSizeOverflow if the count does not fit in an int64.
func (r Region[T, D]) CheckedSize() (int64, error) {
	var n int64
	for _, b := range r.boxes {
		size, err := b.CheckedSize()
		if err != nil {
			return 0, err
		}
		if n, err = utils.SafeAdd(n, size); err != nil {
			return 0, fmt.Errorf("%w: region: %w", ErrSizeOverflow, err)
		}
	}
	return n, nil
}

// Size returns the number of points in the region.
// It panics if the count does not fit in an int64.
func (r Region[T, D]) Size() int64 {
	n, err := r.CheckedSize()
	if err != nil {
		panic("region: Size: " + err.Error())
	}
	return n
}

// Contains reports whether some member box contains p.
func (r Region[T, D]) Contains(p Point[T, D]) bool {
	for _, b := range r.boxes {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of the region. For an empty region of
// dimension 1 or more the result is an empty box; 0-D boxes cannot be empty,
// so check Empty first in generic code.
func (r Region[T, D]) Bounds() Box[T, D] {
	var bb Box[T, D]
	for i, b := range r.boxes {
		if i == 0 {
			bb = b
			continue
		}
		bb = bb.BoundingBox(b)
	}
	return bb
}

// IntersectionBox returns r & b.
func (r Region[T, D]) IntersectionBox(b Box[T, D]) Region[T, D] {
	var out []Box[T, D]
	for _, m := range r.boxes {
		if x := m.Intersection(b); !x.Empty() {
			out = append(out, x)
		}
	}
	res := Region[T, D]{boxes: out}
	assertInvariant(res, "IntersectionBox")
	return res
}

// Intersection returns r & o.
func (r Region[T, D]) Intersection(o Region[T, D]) Region[T, D] {
	var out []Box[T, D]
	for _, b := range o.boxes {
		out = append(out, r.IntersectionBox(b).boxes...)
	}
	res := Region[T, D]{boxes: out}
	assertInvariant(res, "Intersection")
	return res
}

// DifferenceBox returns r - b.
func (r Region[T, D]) DifferenceBox(b Box[T, D]) Region[T, D] {
	var out []Box[T, D]
	for _, m := range r.boxes {
		out = append(out, m.Difference(b)...)
	}
	res := Region[T, D]{boxes: out}
	assertInvariant(res, "DifferenceBox")
	return res
}

// Difference returns r - o.
func (r Region[T, D]) Difference(o Region[T, D]) Region[T, D] {
	res := r
	for _, b := range o.boxes {
		if res.Empty() {
			break
		}
		res = res.DifferenceBox(b)
	}
	return res
}

// Union returns r | o: the part of r outside o, followed by o's boxes.
func (r Region[T, D]) Union(o Region[T, D]) Region[T, D] {
	d := r.Difference(o)
	out := make([]Box[T, D], 0, len(d.boxes)+len(o.boxes))
	out = append(out, d.boxes...)
	out = append(out, o.boxes...)
	res := Region[T, D]{boxes: out}
	assertInvariant(res, "Union")
	return res
}

// SymmetricDifference returns r ^ o.
func (r Region[T, D]) SymmetricDifference(o Region[T, D]) Region[T, D] {
	a := r.Difference(o)
	b := o.Difference(r)
	out := make([]Box[T, D], 0, len(a.boxes)+len(b.boxes))
	out = append(out, a.boxes...)
	out = append(out, b.boxes...)
	res := Region[T, D]{boxes: out}
	assertInvariant(res, "SymmetricDifference")
	return res
}

// IsDisjoint reports whether r and o share no point.
func (r Region[T, D]) IsDisjoint(o Region[T, D]) bool {
	for _, a := range r.boxes {
		for _, b := range o.boxes {
			if !a.IsDisjoint(b) {
				return false
			}
		}
	}
	return true
}

// IsSubsetOf reports r <= o.
func (r Region[T, D]) IsSubsetOf(o Region[T, D]) bool { return r.Difference(o).Empty() }

// IsStrictSubsetOf reports r < o.
func (r Region[T, D]) IsStrictSubsetOf(o Region[T, D]) bool {
	return r.IsSubsetOf(o) && r.Size() < o.Size()
}

// IsSupersetOf reports r >= o.
func (r Region[T, D]) IsSupersetOf(o Region[T, D]) bool { return o.IsSubsetOf(r) }

// IsStrictSupersetOf reports r > o.
func (r Region[T, D]) IsStrictSupersetOf(o Region[T, D]) bool { return o.IsStrictSubsetOf(r) }

// Equal reports set equality, independent of decomposition.
func (r Region[T, D]) Equal(o Region[T, D]) bool {
	return r.SymmetricDifference(o).Empty()
}

// Shift translates every box by offset.
func (r Region[T, D]) Shift(offset Point[T, D]) Region[T, D] {
	out := make([]Box[T, D], len(r.boxes))
	for i, b := range r.boxes {
		out[i] = b.Shift(offset)
	}
	return Region[T, D]{boxes: out}
}

// Grow widens every box by the given margins and merges the overlaps.
// Negative margins shrink each box independently, which is not the same
// as eroding the region.
func (r Region[T, D]) Grow(dlo, dhi Point[T, D]) Region[T, D] {
	grown := make([]Box[T, D], len(r.boxes))
	for i, b := range r.boxes {
		grown[i] = b.Grow(dlo, dhi)
	}
	return RegionFromOverlapping(grown...)
}

// Invariant checks that every member box is non-empty and that all
// member boxes are pairwise disjoint.
func (r Region[T, D]) Invariant() error {
	for i, a := range r.boxes {
		if a.Empty() {
			return fmt.Errorf("region: box %d %v is empty", i, a)
		}
		for j := i + 1; j < len(r.boxes); j++ {
			if !a.IsDisjoint(r.boxes[j]) {
				return fmt.Errorf("region: boxes %d %v and %d %v overlap", i, a, j, r.boxes[j])
			}
		}
	}
	return nil
}

// String renders the region as {box box ...}.
func (r Region[T, D]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range r.boxes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
