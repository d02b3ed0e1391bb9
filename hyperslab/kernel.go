package hyperslab

import "github.com/scigolib/region"

// plan is a validated transfer with dimension 0 innermost.
type plan struct {
	rank  int
	elem  int64
	shape [region.MaxRank]int64
	dst   [region.MaxRank]int64
	src   [region.MaxRank]int64
	run   runFunc
}

// runFunc copies n elements spaced ds bytes apart in dst and ss bytes
// apart in src.
type runFunc func(dst, src []byte, n, elem, ds, ss int64)

// compact drops unit extents and merges dimensions that are contiguous
// on both sides, so a packed transfer degenerates into a single run.
func (p *plan) compact() {
	r := 0
	for d := 0; d < p.rank; d++ {
		if p.shape[d] == 1 {
			continue
		}
		p.shape[r], p.dst[r], p.src[r] = p.shape[d], p.dst[d], p.src[d]
		r++
	}
	p.rank = r
	if r < 2 {
		return
	}

	w := 0
	for d := 1; d < r; d++ {
		if p.dst[d] == p.shape[w]*p.dst[w] && p.src[d] == p.shape[w]*p.src[w] {
			p.shape[w] *= p.shape[d]
			continue
		}
		w++
		p.shape[w], p.dst[w], p.src[w] = p.shape[d], p.dst[d], p.src[d]
	}
	p.rank = w + 1
}

func (p *plan) walk(dst, src []byte, d, s int64) {
	switch p.rank {
	case 0:
		copy(dst[d:d+p.elem], src[s:s+p.elem])
	case 1:
		p.run(dst[d:], src[s:], p.shape[0], p.elem, p.dst[0], p.src[0])
	case 2:
		p.walk2(dst, src, d, s)
	case 3:
		p.walk3(dst, src, d, s)
	case 4:
		p.walk4(dst, src, d, s)
	default:
		panic("hyperslab: rank out of range")
	}
}

func (p *plan) walk2(dst, src []byte, d, s int64) {
	for j := int64(0); j < p.shape[1]; j++ {
		p.run(dst[d:], src[s:], p.shape[0], p.elem, p.dst[0], p.src[0])
		d += p.dst[1]
		s += p.src[1]
	}
}

func (p *plan) walk3(dst, src []byte, d, s int64) {
	for k := int64(0); k < p.shape[2]; k++ {
		p.walk2(dst, src, d, s)
		d += p.dst[2]
		s += p.src[2]
	}
}

func (p *plan) walk4(dst, src []byte, d, s int64) {
	for l := int64(0); l < p.shape[3]; l++ {
		p.walk3(dst, src, d, s)
		d += p.dst[3]
		s += p.src[3]
	}
}

// selectRun picks the innermost copy for the given element size and strides.
func selectRun(elem, ds, ss int64) runFunc {
	if ds == elem && ss == elem {
		return runContiguous
	}
	switch elem {
	case 1:
		return run1
	case 2:
		return run2
	case 4:
		return run4
	case 8:
		return run8
	case 16:
		return run16
	default:
		return runGeneric
	}
}

func runContiguous(dst, src []byte, n, elem, _, _ int64) {
	copy(dst[:n*elem], src[:n*elem])
}

func run1(dst, src []byte, n, _, ds, ss int64) {
	var d, s int64
	for i := int64(0); i < n; i++ {
		dst[d] = src[s]
		d += ds
		s += ss
	}
}

func run2(dst, src []byte, n, _, ds, ss int64) {
	var d, s int64
	for i := int64(0); i < n; i++ {
		*(*[2]byte)(dst[d:]) = *(*[2]byte)(src[s:])
		d += ds
		s += ss
	}
}

func run4(dst, src []byte, n, _, ds, ss int64) {
	var d, s int64
	for i := int64(0); i < n; i++ {
		*(*[4]byte)(dst[d:]) = *(*[4]byte)(src[s:])
		d += ds
		s += ss
	}
}

func run8(dst, src []byte, n, _, ds, ss int64) {
	var d, s int64
	for i := int64(0); i < n; i++ {
		*(*[8]byte)(dst[d:]) = *(*[8]byte)(src[s:])
		d += ds
		s += ss
	}
}

func run16(dst, src []byte, n, _, ds, ss int64) {
	var d, s int64
	for i := int64(0); i < n; i++ {
		*(*[16]byte)(dst[d:]) = *(*[16]byte)(src[s:])
		d += ds
		s += ss
	}
}

func runGeneric(dst, src []byte, n, elem, ds, ss int64) {
	var d, s int64
	for i := int64(0); i < n; i++ {
		copy(dst[d:d+elem], src[s:s+elem])
		d += ds
		s += ss
	}
}
