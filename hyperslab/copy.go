package hyperslab

import (
	"fmt"

	"github.com/scigolib/region"
)

// Copy transfers the elements of sub from src to dst. sub must lie
// inside both layouts.
func Copy[T region.Integer, D region.Dim](
	dst []byte, dstLayout Layout[T, D],
	src []byte, srcLayout Layout[T, D],
	sub region.Box[T, D], elemSize int,
) error {
	return CopyBox(dst, dstLayout, sub, src, srcLayout, sub, elemSize)
}

// CopyBox transfers the elements of srcSub in src to dstSub in dst.
// The two sub-boxes must have the same shape but may sit at different
// positions. Copying an empty sub-box is a no-op.
//
// Errors:
//   - ErrElementSize: elemSize <= 0
//   - ErrShapeMismatch: dstSub and srcSub differ in shape
//   - ErrOutOfLayout: a sub-box is not a subset of its layout
//   - ErrBufferTooSmall: a buffer is shorter than the bytes it must address
//
// Nothing is written when an error is returned.
func CopyBox[T region.Integer, D region.Dim](
	dst []byte, dstLayout Layout[T, D], dstSub region.Box[T, D],
	src []byte, srcLayout Layout[T, D], srcSub region.Box[T, D],
	elemSize int,
) error {
	if elemSize <= 0 {
		return fmt.Errorf("%w: %d", ErrElementSize, elemSize)
	}
	if dstSub.Empty() && srcSub.Empty() {
		return nil
	}
	if dstSub.Empty() || srcSub.Empty() || !dstSub.Shape().Equal(srcSub.Shape()) {
		return fmt.Errorf("%w: destination %v, source %v", ErrShapeMismatch, dstSub, srcSub)
	}

	elem := int64(elemSize)
	dstOff, err := prepare(dst, dstLayout, dstSub, elem, "destination")
	if err != nil {
		return err
	}
	srcOff, err := prepare(src, srcLayout, srcSub, elem, "source")
	if err != nil {
		return err
	}

	p := plan{rank: dstSub.Dim(), elem: elem}
	for d := 0; d < p.rank; d++ {
		p.shape[d] = dstSub.Extent(d)
		p.dst[d] = dstLayout.strides[d]
		p.src[d] = srcLayout.strides[d]
	}
	p.compact()
	p.run = selectRun(elem, p.dst[0], p.src[0])
	p.walk(dst, src, dstOff, srcOff)
	return nil
}

// prepare validates one side of a transfer and returns its starting offset.
func prepare[T region.Integer, D region.Dim](buf []byte, l Layout[T, D], sub region.Box[T, D], elem int64, side string) (int64, error) {
	if !sub.IsSubsetOf(l.box) {
		return 0, fmt.Errorf("%w: %s %v not in %v", ErrOutOfLayout, side, sub, l.box)
	}
	end, err := l.extent(sub, elem)
	if err != nil {
		return 0, fmt.Errorf("%s extent: %w", side, err)
	}
	if end > int64(len(buf)) {
		return 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrBufferTooSmall, side, end, len(buf))
	}
	return l.Offset(sub.Lower()), nil
}
