package region

import "fmt"

type unaryOp int

const (
	opNeg unaryOp = iota
	opBitNot
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opAnd
	opOr
	opXor
	opMin
	opMax
)

type compareOp int

const (
	cmpEq compareOp = iota
	cmpNe
	cmpLt
	cmpLe
	cmpGt
	cmpGe
)

type setOp int

const (
	setIntersection setOp = iota
	setDifference
	setUnion
	setSymmetricDifference
)

type relation int

const (
	relSubset relation = iota
	relStrictSubset
	relDisjoint
	relEqual
)

// pointImpl is the dispatch interface behind DPoint.
type pointImpl[T Integer] interface {
	fmt.Stringer
	dim() int
	coords() []T
	unary(op unaryOp) pointImpl[T]
	binary(op binaryOp, o pointImpl[T]) pointImpl[T]
	compare(op compareOp, o pointImpl[T]) DMask
	minVal() T
	maxVal() T
	sum() T
	prod() int64
	makeBox(upper pointImpl[T]) boxImpl[T]
}

// boxImpl is the dispatch interface behind DBox.
type boxImpl[T Integer] interface {
	fmt.Stringer
	dim() int
	lower() pointImpl[T]
	upper() pointImpl[T]
	empty() bool
	shape() pointImpl[T]
	size() int64
	checkedSize() (int64, error)
	contains(p pointImpl[T]) bool
	intersection(o boxImpl[T]) boxImpl[T]
	boundingBox(o boxImpl[T]) boxImpl[T]
	setOp(op setOp, o boxImpl[T]) []boxImpl[T]
	relation(rel relation, o boxImpl[T]) bool
	shift(offset pointImpl[T]) boxImpl[T]
	region() regionImpl[T]
}

// regionImpl is the dispatch interface behind DRegion.
type regionImpl[T Integer] interface {
	fmt.Stringer
	dim() int
	len() int
	boxes() []boxImpl[T]
	size() int64
	checkedSize() (int64, error)
	contains(p pointImpl[T]) bool
	bounds() boxImpl[T]
	setOp(op setOp, o regionImpl[T]) regionImpl[T]
	relation(rel relation, o regionImpl[T]) bool
	withBoxes(boxes []boxImpl[T]) regionImpl[T]
	invariant() error
}

func mismatch(op string, want, got int) string {
	return fmt.Sprintf("region: %s: dimension mismatch: %d vs %d", op, want, got)
}

func mustPoint[T Integer, D Dim](o pointImpl[T]) Point[T, D] {
	q, ok := o.(pointOf[T, D])
	if !ok {
		panic(mismatch("point", rank[D](), o.dim()))
	}
	return q.p
}

func mustBox[T Integer, D Dim](o boxImpl[T]) Box[T, D] {
	q, ok := o.(boxOf[T, D])
	if !ok {
		panic(mismatch("box", rank[D](), o.dim()))
	}
	return q.b
}

func mustRegion[T Integer, D Dim](o regionImpl[T]) Region[T, D] {
	q, ok := o.(regionOf[T, D])
	if !ok {
		panic(mismatch("region", rank[D](), o.dim()))
	}
	return q.r
}

type pointOf[T Integer, D Dim] struct{ p Point[T, D] }

func (a pointOf[T, D]) String() string { return a.p.String() }
func (a pointOf[T, D]) dim() int       { return rank[D]() }
func (a pointOf[T, D]) coords() []T    { return a.p.Coords() }
func (a pointOf[T, D]) minVal() T      { return a.p.MinVal() }
func (a pointOf[T, D]) maxVal() T      { return a.p.MaxVal() }
func (a pointOf[T, D]) sum() T         { return a.p.Sum() }
func (a pointOf[T, D]) prod() int64    { return a.p.Prod() }

func (a pointOf[T, D]) unary(op unaryOp) pointImpl[T] {
	switch op {
	case opNeg:
		return pointOf[T, D]{a.p.Neg()}
	default:
		return pointOf[T, D]{a.p.BitNot()}
	}
}

func (a pointOf[T, D]) binary(op binaryOp, o pointImpl[T]) pointImpl[T] {
	b := mustPoint[T, D](o)
	var r Point[T, D]
	switch op {
	case opAdd:
		r = a.p.Add(b)
	case opSub:
		r = a.p.Sub(b)
	case opMul:
		r = a.p.Mul(b)
	case opAnd:
		r = a.p.And(b)
	case opOr:
		r = a.p.Or(b)
	case opXor:
		r = a.p.Xor(b)
	case opMin:
		r = a.p.Min(b)
	case opMax:
		r = a.p.Max(b)
	}
	return pointOf[T, D]{r}
}

func (a pointOf[T, D]) compare(op compareOp, o pointImpl[T]) DMask {
	b := mustPoint[T, D](o)
	var m Mask[D]
	switch op {
	case cmpEq:
		m = a.p.Eq(b)
	case cmpNe:
		m = a.p.Ne(b)
	case cmpLt:
		m = a.p.Lt(b)
	case cmpLe:
		m = a.p.Le(b)
	case cmpGt:
		m = a.p.Gt(b)
	case cmpGe:
		m = a.p.Ge(b)
	}
	out := make(DMask, rank[D]())
	copy(out, m.x[:])
	return out
}

func (a pointOf[T, D]) makeBox(upper pointImpl[T]) boxImpl[T] {
	return boxOf[T, D]{NewBox(a.p, mustPoint[T, D](upper))}
}

type boxOf[T Integer, D Dim] struct{ b Box[T, D] }

func (a boxOf[T, D]) String() string      { return a.b.String() }
func (a boxOf[T, D]) dim() int            { return rank[D]() }
func (a boxOf[T, D]) lower() pointImpl[T] { return pointOf[T, D]{a.b.lo} }
func (a boxOf[T, D]) upper() pointImpl[T] { return pointOf[T, D]{a.b.hi} }
func (a boxOf[T, D]) empty() bool         { return a.b.Empty() }
func (a boxOf[T, D]) shape() pointImpl[T] { return pointOf[T, D]{a.b.Shape()} }
func (a boxOf[T, D]) size() int64         { return a.b.Size() }

func (a boxOf[T, D]) checkedSize() (int64, error) { return a.b.CheckedSize() }

func (a boxOf[T, D]) region() regionImpl[T] {
	return regionOf[T, D]{RegionFromBox(a.b)}
}

func (a boxOf[T, D]) contains(p pointImpl[T]) bool {
	return a.b.Contains(mustPoint[T, D](p))
}

func (a boxOf[T, D]) intersection(o boxImpl[T]) boxImpl[T] {
	return boxOf[T, D]{a.b.Intersection(mustBox[T, D](o))}
}

func (a boxOf[T, D]) boundingBox(o boxImpl[T]) boxImpl[T] {
	return boxOf[T, D]{a.b.BoundingBox(mustBox[T, D](o))}
}

func (a boxOf[T, D]) shift(offset pointImpl[T]) boxImpl[T] {
	return boxOf[T, D]{a.b.Shift(mustPoint[T, D](offset))}
}

func (a boxOf[T, D]) setOp(op setOp, o boxImpl[T]) []boxImpl[T] {
	b := mustBox[T, D](o)
	var pieces []Box[T, D]
	switch op {
	case setIntersection:
		if x := a.b.Intersection(b); !x.Empty() {
			pieces = []Box[T, D]{x}
		}
	case setDifference:
		pieces = a.b.Difference(b)
	case setUnion:
		pieces = a.b.Union(b)
	case setSymmetricDifference:
		pieces = a.b.SymmetricDifference(b)
	}
	out := make([]boxImpl[T], len(pieces))
	for i, p := range pieces {
		out[i] = boxOf[T, D]{p}
	}
	return out
}

func (a boxOf[T, D]) relation(rel relation, o boxImpl[T]) bool {
	b := mustBox[T, D](o)
	switch rel {
	case relSubset:
		return a.b.IsSubsetOf(b)
	case relStrictSubset:
		return a.b.IsStrictSubsetOf(b)
	case relDisjoint:
		return a.b.IsDisjoint(b)
	default:
		return a.b.Equal(b)
	}
}

type regionOf[T Integer, D Dim] struct{ r Region[T, D] }

func (a regionOf[T, D]) String() string     { return a.r.String() }
func (a regionOf[T, D]) dim() int           { return rank[D]() }
func (a regionOf[T, D]) len() int           { return a.r.Len() }
func (a regionOf[T, D]) size() int64        { return a.r.Size() }
func (a regionOf[T, D]) bounds() boxImpl[T] { return boxOf[T, D]{a.r.Bounds()} }
func (a regionOf[T, D]) invariant() error   { return a.r.Invariant() }

func (a regionOf[T, D]) checkedSize() (int64, error) { return a.r.CheckedSize() }

func (a regionOf[T, D]) boxes() []boxImpl[T] {
	out := make([]boxImpl[T], len(a.r.boxes))
	for i, b := range a.r.boxes {
		out[i] = boxOf[T, D]{b}
	}
	return out
}

func (a regionOf[T, D]) contains(p pointImpl[T]) bool {
	return a.r.Contains(mustPoint[T, D](p))
}

func (a regionOf[T, D]) withBoxes(boxes []boxImpl[T]) regionImpl[T] {
	bs := make([]Box[T, D], len(boxes))
	for i, b := range boxes {
		bs[i] = mustBox[T, D](b)
	}
	return regionOf[T, D]{RegionFromBoxes(bs...)}
}

func (a regionOf[T, D]) setOp(op setOp, o regionImpl[T]) regionImpl[T] {
	b := mustRegion[T, D](o)
	switch op {
	case setIntersection:
		return regionOf[T, D]{a.r.Intersection(b)}
	case setDifference:
		return regionOf[T, D]{a.r.Difference(b)}
	case setUnion:
		return regionOf[T, D]{a.r.Union(b)}
	default:
		return regionOf[T, D]{a.r.SymmetricDifference(b)}
	}
}

func (a regionOf[T, D]) relation(rel relation, o regionImpl[T]) bool {
	b := mustRegion[T, D](o)
	switch rel {
	case relSubset:
		return a.r.IsSubsetOf(b)
	case relStrictSubset:
		return a.r.IsStrictSubsetOf(b)
	case relDisjoint:
		return a.r.IsDisjoint(b)
	default:
		return a.r.Equal(b)
	}
}
