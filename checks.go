package region

import "fmt"

// assertInvariant panics if r violates the disjointness invariant.
// It is a no-op unless built with the regiondebug tag.
func assertInvariant[T Integer, D Dim](r Region[T, D], op string) {
	if !debugChecks {
		return
	}
	if err := r.Invariant(); err != nil {
		panic(fmt.Sprintf("region: %s: %v", op, err))
	}
}

// checkDifference verifies the post-conditions of Box.Difference. The size
// balance is skipped when b's size does not fit in an int64.
func checkDifference[T Integer, D Dim](b, o Box[T, D], pieces []Box[T, D]) {
	for i, p := range pieces {
		if p.Empty() || !p.IsSubsetOf(b) || !p.IsDisjoint(o) {
			panic(fmt.Sprintf("region: Difference(%v, %v): bad piece %v", b, o, p))
		}
		for _, q := range pieces[i+1:] {
			if !p.IsDisjoint(q) {
				panic(fmt.Sprintf("region: Difference(%v, %v): pieces %v and %v overlap", b, o, p, q))
			}
		}
	}
	if _, err := b.CheckedSize(); err != nil {
		return
	}
	var total int64
	for _, p := range pieces {
		total += p.Size()
	}
	if want := b.Size() - b.Intersection(o).Size(); total != want {
		panic(fmt.Sprintf("region: Difference(%v, %v): size %d, want %d", b, o, total, want))
	}
}
