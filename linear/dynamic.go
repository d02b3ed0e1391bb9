package linear

import (
	"fmt"

	"github.com/scigolib/region"
)

// DLinearization is a Linearization whose dimension is chosen at run time.
type DLinearization[T region.Integer] struct {
	box region.DBox[T]
	pos int64
}

// Box returns the linearized box.
func (l DLinearization[T]) Box() region.DBox[T] { return l.box }

// Pos returns the offset of the box's first element.
func (l DLinearization[T]) Pos() int64 { return l.pos }

// Size returns the number of reserved elements.
func (l DLinearization[T]) Size() int64 { return l.box.Size() }

// End returns the offset one past the last reserved element.
func (l DLinearization[T]) End() int64 { return l.pos + l.box.Size() }

// DConcatenation is a Concatenation whose dimension is chosen at run time.
type DConcatenation[T region.Integer] interface {
	// Dim returns the dimension of accepted boxes.
	Dim() int
	// PushBack reserves space for box. It panics if box has a different dimension.
	PushBack(box region.DBox[T]) (DLinearization[T], error)
	// Next returns the current cursor.
	Next() int64
	// Len returns the number of issued linearizations.
	Len() int
	// Entries returns the issued linearizations in push order.
	Entries() []DLinearization[T]
}

// MakeDConcatenation creates an empty concatenation for boxes of dimension dim.
func MakeDConcatenation[T region.Integer](dim int) (DConcatenation[T], error) {
	switch dim {
	case 0:
		return &dconcat[T, region.D0]{NewConcatenation[T, region.D0]()}, nil
	case 1:
		return &dconcat[T, region.D1]{NewConcatenation[T, region.D1]()}, nil
	case 2:
		return &dconcat[T, region.D2]{NewConcatenation[T, region.D2]()}, nil
	case 3:
		return &dconcat[T, region.D3]{NewConcatenation[T, region.D3]()}, nil
	case 4:
		return &dconcat[T, region.D4]{NewConcatenation[T, region.D4]()}, nil
	default:
		return nil, fmt.Errorf("%w: %d", region.ErrUnsupportedDimension, dim)
	}
}

type dconcat[T region.Integer, D region.Dim] struct {
	c *Concatenation[T, D]
}

func (d *dconcat[T, D]) Dim() int {
	var z D
	return z.Rank()
}

func (d *dconcat[T, D]) Next() int64 { return d.c.Next() }
func (d *dconcat[T, D]) Len() int    { return d.c.Len() }

func (d *dconcat[T, D]) PushBack(box region.DBox[T]) (DLinearization[T], error) {
	b, ok := region.AsBox[T, D](box)
	if !ok {
		panic(fmt.Sprintf("linear: PushBack: dimension mismatch: %d vs %d", d.Dim(), box.Dim()))
	}
	l, err := d.c.PushBack(b)
	if err != nil {
		return DLinearization[T]{}, err
	}
	return DLinearization[T]{box: box, pos: l.pos}, nil
}

func (d *dconcat[T, D]) Entries() []DLinearization[T] {
	out := make([]DLinearization[T], d.c.Len())
	for i, l := range d.c.entries {
		out[i] = DLinearization[T]{box: l.box.Dynamic(), pos: l.pos}
	}
	return out
}
