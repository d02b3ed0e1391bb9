package region

// SplitAt partitions b by the hyperplanes through cut.
//
// In every dimension where cut lies strictly inside b's extent the box is
// divided into a low part [lower, cut) and a high part [cut, upper). All
// 2^D low/high combinations are enumerated as bitmasks; a combination is
// kept only if every dimension that is not strictly cut picks the side b
// already lies on. The result covers b exactly with pairwise disjoint,
// non-empty boxes. An empty b yields no boxes.
func SplitAt[T Integer, D Dim](b Box[T, D], cut Point[T, D]) []Box[T, D] {
	if b.Empty() {
		return nil
	}
	n := rank[D]()
	var inside, above Mask[D]
	for d := 0; d < n; d++ {
		inside.x[d] = b.lo.x[d] < cut.x[d] && cut.x[d] < b.hi.x[d]
		above.x[d] = cut.x[d] <= b.lo.x[d]
	}

	out := make([]Box[T, D], 0, 1<<inside.Count())
	for mask := 0; mask < 1<<n; mask++ {
		piece := b
		consistent := true
		for d := 0; d < n; d++ {
			high := mask&(1<<d) != 0
			switch {
			case inside.x[d]:
				if high {
					piece.lo.x[d] = cut.x[d]
				} else {
					piece.hi.x[d] = cut.x[d]
				}
			case high != above.x[d]:
				consistent = false
			}
			if !consistent {
				break
			}
		}
		if consistent {
			out = append(out, piece)
		}
	}
	return out
}
