package hyperslab

import (
	"fmt"

	"github.com/scigolib/region"
)

// DLayout is a Layout whose dimension is chosen at run time.
type DLayout[T region.Integer] struct {
	box     region.DBox[T]
	strides []int64
}

// NewDLayout returns a layout with explicit byte strides, one per dimension.
func NewDLayout[T region.Integer](box region.DBox[T], strides ...int64) (DLayout[T], error) {
	if len(strides) != box.Dim() {
		return DLayout[T]{}, fmt.Errorf("%w: %d strides for dimension %d",
			ErrDimensionMismatch, len(strides), box.Dim())
	}
	for d, s := range strides {
		if s < 0 {
			return DLayout[T]{}, fmt.Errorf("stride %d is negative: %d", d, s)
		}
	}
	return DLayout[T]{box: box, strides: append([]int64(nil), strides...)}, nil
}

// DenseDLayout returns the packed layout of box with dimension 0 fastest.
func DenseDLayout[T region.Integer](box region.DBox[T], elemSize int) (DLayout[T], error) {
	switch box.Dim() {
	case 0:
		return denseD[T, region.D0](box, elemSize)
	case 1:
		return denseD[T, region.D1](box, elemSize)
	case 2:
		return denseD[T, region.D2](box, elemSize)
	case 3:
		return denseD[T, region.D3](box, elemSize)
	case 4:
		return denseD[T, region.D4](box, elemSize)
	default:
		return DLayout[T]{}, fmt.Errorf("%w: %d", region.ErrUnsupportedDimension, box.Dim())
	}
}

func denseD[T region.Integer, D region.Dim](box region.DBox[T], elemSize int) (DLayout[T], error) {
	b, _ := region.AsBox[T, D](box)
	l, err := DenseLayout(b, elemSize)
	if err != nil {
		return DLayout[T]{}, err
	}
	return DLayout[T]{box: box, strides: l.Strides()}, nil
}

// Box returns the full extent described by the layout.
func (l DLayout[T]) Box() region.DBox[T] { return l.box }

// Strides returns a copy of the per-dimension byte strides.
func (l DLayout[T]) Strides() []int64 { return append([]int64(nil), l.strides...) }

// DCopyBox is CopyBox for dimension-erased operands. All boxes must share
// the layouts' dimension, otherwise ErrDimensionMismatch is returned.
func DCopyBox[T region.Integer](
	dst []byte, dstLayout DLayout[T], dstSub region.DBox[T],
	src []byte, srcLayout DLayout[T], srcSub region.DBox[T],
	elemSize int,
) error {
	dim := dstLayout.box.Dim()
	for _, b := range []region.DBox[T]{dstSub, srcLayout.box, srcSub} {
		if b.Dim() != dim {
			return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, dim, b.Dim())
		}
	}

	switch dim {
	case 0:
		return dcopy[T, region.D0](dst, dstLayout, dstSub, src, srcLayout, srcSub, elemSize)
	case 1:
		return dcopy[T, region.D1](dst, dstLayout, dstSub, src, srcLayout, srcSub, elemSize)
	case 2:
		return dcopy[T, region.D2](dst, dstLayout, dstSub, src, srcLayout, srcSub, elemSize)
	case 3:
		return dcopy[T, region.D3](dst, dstLayout, dstSub, src, srcLayout, srcSub, elemSize)
	case 4:
		return dcopy[T, region.D4](dst, dstLayout, dstSub, src, srcLayout, srcSub, elemSize)
	default:
		return fmt.Errorf("%w: %d", region.ErrUnsupportedDimension, dim)
	}
}

func dcopy[T region.Integer, D region.Dim](
	dst []byte, dstLayout DLayout[T], dstSub region.DBox[T],
	src []byte, srcLayout DLayout[T], srcSub region.DBox[T],
	elemSize int,
) error {
	dl, err := staticLayout[T, D](dstLayout)
	if err != nil {
		return err
	}
	sl, err := staticLayout[T, D](srcLayout)
	if err != nil {
		return err
	}
	ds, _ := region.AsBox[T, D](dstSub)
	ss, _ := region.AsBox[T, D](srcSub)
	return CopyBox(dst, dl, ds, src, sl, ss, elemSize)
}

func staticLayout[T region.Integer, D region.Dim](l DLayout[T]) (Layout[T, D], error) {
	b, ok := region.AsBox[T, D](l.box)
	if !ok {
		return Layout[T, D]{}, fmt.Errorf("%w: layout has dimension %d", ErrDimensionMismatch, l.box.Dim())
	}
	return NewLayout(b, l.strides...)
}
