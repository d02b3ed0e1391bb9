package region

import "fmt"

// DPoint is a point whose dimension is chosen at run time.
//
// It wraps a Point[T, D] for one D in 0..MaxRank. The dimension never
// changes after construction. Binary operations on handles of different
// dimensions panic. The zero DPoint is invalid.
type DPoint[T Integer] struct {
	impl pointImpl[T]
}

// DBox is a box whose dimension is chosen at run time.
type DBox[T Integer] struct {
	impl boxImpl[T]
}

// DRegion is a region whose dimension is chosen at run time.
type DRegion[T Integer] struct {
	impl regionImpl[T]
}

// DMask is the result of an elementwise comparison of two DPoints.
type DMask []bool

// All reports whether every component is true.
func (m DMask) All() bool {
	for _, v := range m {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether some component is true.
func (m DMask) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// MakeDPoint creates a point of the given dimension.
func MakeDPoint[T Integer](dim int, coords []T) (DPoint[T], error) {
	if dim < 0 || dim > MaxRank {
		return DPoint[T]{}, fmt.Errorf("%w: %d", ErrUnsupportedDimension, dim)
	}
	if len(coords) != dim {
		return DPoint[T]{}, fmt.Errorf("%w: %d coordinates for dimension %d", ErrDimensionMismatch, len(coords), dim)
	}
	switch dim {
	case 0:
		return NewPoint[T, D0]().Dynamic(), nil
	case 1:
		return NewPoint[T, D1](coords...).Dynamic(), nil
	case 2:
		return NewPoint[T, D2](coords...).Dynamic(), nil
	case 3:
		return NewPoint[T, D3](coords...).Dynamic(), nil
	default:
		return NewPoint[T, D4](coords...).Dynamic(), nil
	}
}

// MakeDBox creates the box [lower, upper) of the given dimension.
func MakeDBox[T Integer](dim int, lower, upper []T) (DBox[T], error) {
	lo, err := MakeDPoint(dim, lower)
	if err != nil {
		return DBox[T]{}, fmt.Errorf("lower corner: %w", err)
	}
	hi, err := MakeDPoint(dim, upper)
	if err != nil {
		return DBox[T]{}, fmt.Errorf("upper corner: %w", err)
	}
	return NewDBox(lo, hi), nil
}

// NewDBox creates the box [lower, upper). It panics if the corners differ in dimension.
func NewDBox[T Integer](lower, upper DPoint[T]) DBox[T] {
	return DBox[T]{lower.impl.makeBox(upper.impl)}
}

// EmptyDRegion returns the empty region of the given dimension.
func EmptyDRegion[T Integer](dim int) (DRegion[T], error) {
	switch dim {
	case 0:
		return NewRegion[T, D0]().Dynamic(), nil
	case 1:
		return NewRegion[T, D1]().Dynamic(), nil
	case 2:
		return NewRegion[T, D2]().Dynamic(), nil
	case 3:
		return NewRegion[T, D3]().Dynamic(), nil
	case 4:
		return NewRegion[T, D4]().Dynamic(), nil
	default:
		return DRegion[T]{}, fmt.Errorf("%w: %d", ErrUnsupportedDimension, dim)
	}
}

// MakeDRegion wraps boxes the caller asserts to be pairwise disjoint.
func MakeDRegion[T Integer](dim int, boxes ...DBox[T]) (DRegion[T], error) {
	r, err := EmptyDRegion[T](dim)
	if err != nil {
		return r, err
	}
	impls := make([]boxImpl[T], len(boxes))
	for i, b := range boxes {
		if b.Dim() != dim {
			return DRegion[T]{}, fmt.Errorf("%w: box %d has dimension %d, want %d", ErrDimensionMismatch, i, b.Dim(), dim)
		}
		impls[i] = b.impl
	}
	return DRegion[T]{r.impl.withBoxes(impls)}, nil
}

// Dynamic erases the dimension of p.
func (p Point[T, D]) Dynamic() DPoint[T] { return DPoint[T]{pointOf[T, D]{p}} }

// Dynamic erases the dimension of b.
func (b Box[T, D]) Dynamic() DBox[T] { return DBox[T]{boxOf[T, D]{b}} }

// Dynamic erases the dimension of r.
func (r Region[T, D]) Dynamic() DRegion[T] { return DRegion[T]{regionOf[T, D]{r}} }

// AsPoint recovers the static point when the caller knows its dimension.
func AsPoint[T Integer, D Dim](p DPoint[T]) (Point[T, D], bool) {
	q, ok := p.impl.(pointOf[T, D])
	return q.p, ok
}

// AsBox recovers the static box when the caller knows its dimension.
func AsBox[T Integer, D Dim](b DBox[T]) (Box[T, D], bool) {
	q, ok := b.impl.(boxOf[T, D])
	return q.b, ok
}

// AsRegion recovers the static region when the caller knows its dimension.
func AsRegion[T Integer, D Dim](r DRegion[T]) (Region[T, D], bool) {
	q, ok := r.impl.(regionOf[T, D])
	return q.r, ok
}

// Dim returns the dimension of the point.
func (p DPoint[T]) Dim() int { return p.impl.dim() }

// Coords returns the coordinates as a new slice.
func (p DPoint[T]) Coords() []T { return p.impl.coords() }

// Neg returns -p.
func (p DPoint[T]) Neg() DPoint[T] { return DPoint[T]{p.impl.unary(opNeg)} }

// BitNot returns ^p.
func (p DPoint[T]) BitNot() DPoint[T] { return DPoint[T]{p.impl.unary(opBitNot)} }

// Add returns p + q.
func (p DPoint[T]) Add(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opAdd, q.impl)} }

// Sub returns p - q.
func (p DPoint[T]) Sub(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opSub, q.impl)} }

// Mul returns p * q.
func (p DPoint[T]) Mul(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opMul, q.impl)} }

// And returns p & q.
func (p DPoint[T]) And(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opAnd, q.impl)} }

// Or returns p | q.
func (p DPoint[T]) Or(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opOr, q.impl)} }

// Xor returns p ^ q.
func (p DPoint[T]) Xor(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opXor, q.impl)} }

// Min returns the elementwise minimum.
func (p DPoint[T]) Min(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opMin, q.impl)} }

// Max returns the elementwise maximum.
func (p DPoint[T]) Max(q DPoint[T]) DPoint[T] { return DPoint[T]{p.impl.binary(opMax, q.impl)} }

// Eq compares elementwise for equality.
func (p DPoint[T]) Eq(q DPoint[T]) DMask { return p.impl.compare(cmpEq, q.impl) }

// Ne compares elementwise for inequality.
func (p DPoint[T]) Ne(q DPoint[T]) DMask { return p.impl.compare(cmpNe, q.impl) }

// Lt compares elementwise with <.
func (p DPoint[T]) Lt(q DPoint[T]) DMask { return p.impl.compare(cmpLt, q.impl) }

// Le compares elementwise with <=.
func (p DPoint[T]) Le(q DPoint[T]) DMask { return p.impl.compare(cmpLe, q.impl) }

// Gt compares elementwise with >.
func (p DPoint[T]) Gt(q DPoint[T]) DMask { return p.impl.compare(cmpGt, q.impl) }

// Ge compares elementwise with >=.
func (p DPoint[T]) Ge(q DPoint[T]) DMask { return p.impl.compare(cmpGe, q.impl) }

// Equal reports whether all coordinates are equal.
func (p DPoint[T]) Equal(q DPoint[T]) bool { return p.Eq(q).All() }

// MinVal returns the smallest coordinate.
func (p DPoint[T]) MinVal() T { return p.impl.minVal() }

// MaxVal returns the largest coordinate.
func (p DPoint[T]) MaxVal() T { return p.impl.maxVal() }

// Sum returns the sum of the coordinates.
func (p DPoint[T]) Sum() T { return p.impl.sum() }

// Prod returns the product of the coordinates in int64.
func (p DPoint[T]) Prod() int64 { return p.impl.prod() }

// String renders the point.
func (p DPoint[T]) String() string { return p.impl.String() }

// Dim returns the dimension of the box.
func (b DBox[T]) Dim() int { return b.impl.dim() }

// Lower returns the inclusive lower corner.
func (b DBox[T]) Lower() DPoint[T] { return DPoint[T]{b.impl.lower()} }

// Upper returns the exclusive upper corner.
func (b DBox[T]) Upper() DPoint[T] { return DPoint[T]{b.impl.upper()} }

// Empty reports whether the box contains no point.
func (b DBox[T]) Empty() bool { return b.impl.empty() }

// Shape returns the extent of the box.
func (b DBox[T]) Shape() DPoint[T] { return DPoint[T]{b.impl.shape()} }

// Size returns the number of points in the box.
func (b DBox[T]) Size() int64 { return b.impl.size() }

// CheckedSize returns the number of points, or ErrSizeOverflow.
func (b DBox[T]) CheckedSize() (int64, error) { return b.impl.checkedSize() }

// Contains reports whether p lies inside the box.
func (b DBox[T]) Contains(p DPoint[T]) bool { return b.impl.contains(p.impl) }

// Intersection returns b & o.
func (b DBox[T]) Intersection(o DBox[T]) DBox[T] { return DBox[T]{b.impl.intersection(o.impl)} }

// BoundingBox returns the smallest box containing b and o.
func (b DBox[T]) BoundingBox(o DBox[T]) DBox[T] { return DBox[T]{b.impl.boundingBox(o.impl)} }

// Difference returns b - o as disjoint boxes.
func (b DBox[T]) Difference(o DBox[T]) []DBox[T] { return wrapBoxes(b.impl.setOp(setDifference, o.impl)) }

// Union returns b | o as disjoint boxes.
func (b DBox[T]) Union(o DBox[T]) []DBox[T] { return wrapBoxes(b.impl.setOp(setUnion, o.impl)) }

// SymmetricDifference returns b ^ o as disjoint boxes.
func (b DBox[T]) SymmetricDifference(o DBox[T]) []DBox[T] {
	return wrapBoxes(b.impl.setOp(setSymmetricDifference, o.impl))
}

// IsSubsetOf reports b <= o.
func (b DBox[T]) IsSubsetOf(o DBox[T]) bool { return b.impl.relation(relSubset, o.impl) }

// IsStrictSubsetOf reports b < o.
func (b DBox[T]) IsStrictSubsetOf(o DBox[T]) bool { return b.impl.relation(relStrictSubset, o.impl) }

// IsDisjoint reports whether b and o share no point.
func (b DBox[T]) IsDisjoint(o DBox[T]) bool { return b.impl.relation(relDisjoint, o.impl) }

// Equal reports set equality.
func (b DBox[T]) Equal(o DBox[T]) bool { return b.impl.relation(relEqual, o.impl) }

// Shift translates the box.
func (b DBox[T]) Shift(offset DPoint[T]) DBox[T] { return DBox[T]{b.impl.shift(offset.impl)} }

// Region returns the region covering the box.
func (b DBox[T]) Region() DRegion[T] { return DRegion[T]{b.impl.region()} }

// String renders the box.
func (b DBox[T]) String() string { return b.impl.String() }

// Dim returns the dimension of the region.
func (r DRegion[T]) Dim() int { return r.impl.dim() }

// Boxes returns the member boxes.
func (r DRegion[T]) Boxes() []DBox[T] { return wrapBoxes(r.impl.boxes()) }

// Len returns the number of member boxes.
func (r DRegion[T]) Len() int { return r.impl.len() }

// Empty reports whether the region contains no point.
func (r DRegion[T]) Empty() bool { return r.impl.len() == 0 }

// Size returns the number of points in the region.
func (r DRegion[T]) Size() int64 { return r.impl.size() }

// CheckedSize returns the number of points, or ErrSizeOverflow.
func (r DRegion[T]) CheckedSize() (int64, error) { return r.impl.checkedSize() }

// Contains reports whether p lies in the region.
func (r DRegion[T]) Contains(p DPoint[T]) bool { return r.impl.contains(p.impl) }

// Bounds returns the bounding box of the region.
func (r DRegion[T]) Bounds() DBox[T] { return DBox[T]{r.impl.bounds()} }

// Intersection returns r & o.
func (r DRegion[T]) Intersection(o DRegion[T]) DRegion[T] {
	return DRegion[T]{r.impl.setOp(setIntersection, o.impl)}
}

// Difference returns r - o.
func (r DRegion[T]) Difference(o DRegion[T]) DRegion[T] {
	return DRegion[T]{r.impl.setOp(setDifference, o.impl)}
}

// Union returns r | o.
func (r DRegion[T]) Union(o DRegion[T]) DRegion[T] {
	return DRegion[T]{r.impl.setOp(setUnion, o.impl)}
}

// SymmetricDifference returns r ^ o.
func (r DRegion[T]) SymmetricDifference(o DRegion[T]) DRegion[T] {
	return DRegion[T]{r.impl.setOp(setSymmetricDifference, o.impl)}
}

// IsSubsetOf reports r <= o.
func (r DRegion[T]) IsSubsetOf(o DRegion[T]) bool { return r.impl.relation(relSubset, o.impl) }

// IsStrictSubsetOf reports r < o.
func (r DRegion[T]) IsStrictSubsetOf(o DRegion[T]) bool {
	return r.impl.relation(relStrictSubset, o.impl)
}

// IsSupersetOf reports r >= o.
func (r DRegion[T]) IsSupersetOf(o DRegion[T]) bool { return o.impl.relation(relSubset, r.impl) }

// IsDisjoint reports whether r and o share no point.
func (r DRegion[T]) IsDisjoint(o DRegion[T]) bool { return r.impl.relation(relDisjoint, o.impl) }

// Equal reports set equality.
func (r DRegion[T]) Equal(o DRegion[T]) bool { return r.impl.relation(relEqual, o.impl) }

// Invariant checks the disjointness invariant.
func (r DRegion[T]) Invariant() error { return r.impl.invariant() }

// String renders the region.
func (r DRegion[T]) String() string { return r.impl.String() }

func wrapBoxes[T Integer](impls []boxImpl[T]) []DBox[T] {
	out := make([]DBox[T], len(impls))
	for i, b := range impls {
		out[i] = DBox[T]{b}
	}
	return out
}
