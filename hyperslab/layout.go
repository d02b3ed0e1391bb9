// Package hyperslab copies rectangular sub-regions between strided
// multi-dimensional byte buffers.
//
// A Layout describes how the elements of a box are placed in a buffer:
// the full extent of the buffer plus one byte stride per dimension.
// Dimension 0 varies fastest in dense layouts, matching region.Box.Index.
//
// The copy kernel is a pure function of its arguments. It is safe to run
// concurrently on disjoint destination ranges.
package hyperslab

import (
	"errors"
	"fmt"

	"github.com/scigolib/region"
	"github.com/scigolib/region/internal/utils"
)

var (
	// ErrElementSize is returned for a non-positive element size.
	ErrElementSize = errors.New("element size must be positive")

	// ErrShapeMismatch is returned when source and destination sub-boxes differ in shape.
	ErrShapeMismatch = errors.New("sub-box shapes differ")

	// ErrOutOfLayout is returned when a sub-box is not contained in its layout.
	ErrOutOfLayout = errors.New("sub-box outside layout")

	// ErrBufferTooSmall is returned when a buffer cannot hold the addressed bytes.
	ErrBufferTooSmall = errors.New("buffer too small for layout")

	// ErrDimensionMismatch is returned when dynamic operands disagree in dimension
	// or a stride list has the wrong length.
	ErrDimensionMismatch = region.ErrDimensionMismatch
)

// Layout maps the points of a box to byte offsets in a buffer.
type Layout[T region.Integer, D region.Dim] struct {
	box     region.Box[T, D]
	strides [region.MaxRank]int64
}

// DenseLayout returns the packed layout of box with dimension 0 fastest:
// stride[0] = elemSize, stride[d] = stride[d-1] * shape[d-1].
//
// Example (shape [3 4], elemSize 8):
//
//	strides = [8 24]
//	point [lo+2, lo+1] → byte 2*8 + 1*24 = 40
func DenseLayout[T region.Integer, D region.Dim](box region.Box[T, D], elemSize int) (Layout[T, D], error) {
	if elemSize <= 0 {
		return Layout[T, D]{}, fmt.Errorf("%w: %d", ErrElementSize, elemSize)
	}

	l := Layout[T, D]{box: box}
	if box.Empty() {
		return l, nil
	}

	if _, err := box.CheckedSize(); err != nil {
		return Layout[T, D]{}, utils.WrapSubjectError("dense layout", box, err)
	}
	stride := int64(elemSize)
	for d := 0; d < box.Dim(); d++ {
		l.strides[d] = stride
		next, err := utils.SafeMultiply(stride, box.Extent(d))
		if err != nil {
			return Layout[T, D]{}, utils.WrapSubjectError("dense layout", box, fmt.Errorf("stride of dimension %d: %w", d+1, err))
		}
		stride = next
	}
	return l, nil
}

// NewLayout returns a layout with explicit byte strides, one per dimension.
// Strides must be non-negative.
func NewLayout[T region.Integer, D region.Dim](box region.Box[T, D], strides ...int64) (Layout[T, D], error) {
	if len(strides) != box.Dim() {
		return Layout[T, D]{}, fmt.Errorf("%w: %d strides for dimension %d",
			ErrDimensionMismatch, len(strides), box.Dim())
	}

	l := Layout[T, D]{box: box}
	for d, s := range strides {
		if s < 0 {
			return Layout[T, D]{}, fmt.Errorf("stride %d is negative: %d", d, s)
		}
		l.strides[d] = s
	}
	return l, nil
}

// Box returns the full extent described by the layout.
func (l Layout[T, D]) Box() region.Box[T, D] { return l.box }

// Strides returns a copy of the per-dimension byte strides.
func (l Layout[T, D]) Strides() []int64 {
	out := make([]int64, l.box.Dim())
	copy(out, l.strides[:])
	return out
}

// Offset returns the byte offset of p, which must lie in the layout's box.
// Containment is not checked.
func (l Layout[T, D]) Offset(p region.Point[T, D]) int64 {
	var off int64
	lo := l.box.Lower()
	for d := 0; d < l.box.Dim(); d++ {
		off += region.Width(lo.At(d), p.At(d)) * l.strides[d]
	}
	return off
}

// Span returns the number of bytes a buffer needs to hold every element
// of the layout. An empty layout spans zero bytes.
func (l Layout[T, D]) Span(elemSize int) (int64, error) {
	if elemSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrElementSize, elemSize)
	}
	return l.extent(l.box, int64(elemSize))
}

// extent returns one past the last byte addressed by sub within the layout.
func (l Layout[T, D]) extent(sub region.Box[T, D], elem int64) (int64, error) {
	if sub.Empty() {
		return 0, nil
	}

	if _, err := sub.CheckedSize(); err != nil {
		return 0, err
	}
	end, err := l.offsetChecked(sub.Lower())
	if err != nil {
		return 0, err
	}
	for d := 0; d < sub.Dim(); d++ {
		step, err := utils.SafeMultiply(sub.Extent(d)-1, l.strides[d])
		if err != nil {
			return 0, err
		}
		if end, err = utils.SafeAdd(end, step); err != nil {
			return 0, err
		}
	}
	return utils.SafeAdd(end, elem)
}

func (l Layout[T, D]) offsetChecked(p region.Point[T, D]) (int64, error) {
	var off int64
	lo := l.box.Lower()
	for d := 0; d < l.box.Dim(); d++ {
		step, err := utils.SafeMultiply(region.Width(lo.At(d), p.At(d)), l.strides[d])
		if err != nil {
			return 0, err
		}
		if off, err = utils.SafeAdd(off, step); err != nil {
			return 0, err
		}
	}
	return off, nil
}

// String renders the layout as box/strides.
func (l Layout[T, D]) String() string {
	return fmt.Sprintf("%v/%v", l.box, l.Strides())
}
