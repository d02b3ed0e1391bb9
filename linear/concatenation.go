package linear

import (
	"errors"
	"fmt"

	"github.com/scigolib/region"
	"github.com/scigolib/region/internal/utils"
)

var (
	// ErrEmptyBox is returned when an empty box is pushed.
	ErrEmptyBox = errors.New("cannot linearize an empty box")

	// ErrOffsetOverflow is returned when the cursor would exceed math.MaxInt64.
	ErrOffsetOverflow = errors.New("linear offset overflow")
)

// Linearization records that a box's elements occupy [Pos, Pos+Size)
// in a linear address space.
type Linearization[T region.Integer, D region.Dim] struct {
	box region.Box[T, D]
	pos int64
}

// Box returns the linearized box.
func (l Linearization[T, D]) Box() region.Box[T, D] { return l.box }

// Pos returns the offset of the box's first element.
func (l Linearization[T, D]) Pos() int64 { return l.pos }

// Size returns the number of reserved elements.
func (l Linearization[T, D]) Size() int64 { return l.box.Size() }

// End returns the offset one past the last reserved element.
func (l Linearization[T, D]) End() int64 { return l.pos + l.box.Size() }

// Offset returns the linear offset of p, dimension 0 fastest.
// It panics if p is outside the box.
func (l Linearization[T, D]) Offset(p region.Point[T, D]) int64 {
	return l.pos + l.box.Index(p)
}

// String renders the linearization as box@[pos,end).
func (l Linearization[T, D]) String() string {
	return fmt.Sprintf("%v@[%d,%d)", l.box, l.pos, l.End())
}

// Concatenation issues Linearizations with monotonically increasing,
// non-overlapping offsets.
//
// Strategy:
//   - End-of-buffer allocation: every box is placed at the current cursor
//   - Append-only: entries are never removed and the cursor never decreases
//
// Performance:
//   - PushBack: O(1) amortized
//   - Locate: O(n) linear scan over entries
type Concatenation[T region.Integer, D region.Dim] struct {
	entries []Linearization[T, D]
	next    int64
}

// NewConcatenation creates an empty concatenation with cursor 0.
func NewConcatenation[T region.Integer, D region.Dim]() *Concatenation[T, D] {
	return &Concatenation[T, D]{
		entries: make([]Linearization[T, D], 0, 16),
	}
}

// PushBack reserves one element per point of box at the end of the buffer.
//
// Errors:
//   - ErrEmptyBox: the box contains no point
//   - ErrOffsetOverflow: the box size or next + size exceeds math.MaxInt64
//
// On error the concatenation is unchanged.
func (c *Concatenation[T, D]) PushBack(box region.Box[T, D]) (Linearization[T, D], error) {
	if box.Empty() {
		return Linearization[T, D]{}, utils.WrapSubjectError("push", box, ErrEmptyBox)
	}
	size, err := box.CheckedSize()
	if err != nil {
		return Linearization[T, D]{}, utils.WrapSubjectError("push", box, fmt.Errorf("%w: %w", ErrOffsetOverflow, err))
	}
	end, err := utils.SafeAdd(c.next, size)
	if err != nil {
		return Linearization[T, D]{}, utils.WrapSubjectError("push", box,
			fmt.Errorf("at offset %d: %w: %v", c.next, ErrOffsetOverflow, err))
	}

	l := Linearization[T, D]{box: box, pos: c.next}
	c.entries = append(c.entries, l)
	c.next = end
	return l, nil
}

// Next returns the offset where the next box would be placed, which is
// also the total number of reserved elements.
func (c *Concatenation[T, D]) Next() int64 { return c.next }

// Len returns the number of issued linearizations.
func (c *Concatenation[T, D]) Len() int { return len(c.entries) }

// At returns the i-th issued linearization.
func (c *Concatenation[T, D]) At(i int) Linearization[T, D] { return c.entries[i] }

// Entries returns a copy of all issued linearizations in push order.
func (c *Concatenation[T, D]) Entries() []Linearization[T, D] {
	out := make([]Linearization[T, D], len(c.entries))
	copy(out, c.entries)
	return out
}

// Locate returns the linear offset of p in the first entry whose box
// contains it.
func (c *Concatenation[T, D]) Locate(p region.Point[T, D]) (int64, bool) {
	for _, l := range c.entries {
		if l.box.Contains(p) {
			return l.Offset(p), true
		}
	}
	return 0, false
}

// Validate checks that issued ranges are contiguous, in push order, and
// sum to Next. In a correctly functioning concatenation this never fails.
func (c *Concatenation[T, D]) Validate() error {
	var pos int64
	for i, l := range c.entries {
		if l.box.Empty() {
			return fmt.Errorf("entry %d: empty box %v", i, l.box)
		}
		if l.pos != pos {
			return fmt.Errorf("entry %d: offset %d, want %d", i, l.pos, pos)
		}
		pos = l.End()
	}
	if pos != c.next {
		return fmt.Errorf("cursor %d, entries end at %d", c.next, pos)
	}
	return nil
}
