package region

import (
	"fmt"
	"strings"
)

// Mask is a boolean point, the result of elementwise comparisons.
// Scalar predicates are derived with All and Any.
type Mask[D Dim] struct {
	x [MaxRank]bool
}

// NewMask creates a mask from exactly D values.
func NewMask[D Dim](v ...bool) Mask[D] {
	if len(v) != rank[D]() {
		panic("region: NewMask: wrong number of values")
	}
	var m Mask[D]
	copy(m.x[:], v)
	return m
}

// At returns component i. It panics if i is outside [0, D).
func (m Mask[D]) At(i int) bool {
	if i < 0 || i >= rank[D]() {
		panic(fmt.Sprintf("region: coordinate %d out of range for dimension %d", i, rank[D]()))
	}
	return m.x[i]
}

// All reports whether every component is true. It is true for 0-D masks.
func (m Mask[D]) All() bool {
	for i := 0; i < rank[D](); i++ {
		if !m.x[i] {
			return false
		}
	}
	return true
}

// Any reports whether some component is true. It is false for 0-D masks.
func (m Mask[D]) Any() bool {
	for i := 0; i < rank[D](); i++ {
		if m.x[i] {
			return true
		}
	}
	return false
}

// Count returns the number of true components.
func (m Mask[D]) Count() int {
	n := 0
	for i := 0; i < rank[D](); i++ {
		if m.x[i] {
			n++
		}
	}
	return n
}

// Not returns !m.
func (m Mask[D]) Not() Mask[D] {
	var r Mask[D]
	for i := 0; i < rank[D](); i++ {
		r.x[i] = !m.x[i]
	}
	return r
}

// And returns m && n elementwise.
func (m Mask[D]) And(n Mask[D]) Mask[D] {
	var r Mask[D]
	for i := 0; i < rank[D](); i++ {
		r.x[i] = m.x[i] && n.x[i]
	}
	return r
}

// Or returns m || n elementwise.
func (m Mask[D]) Or(n Mask[D]) Mask[D] {
	var r Mask[D]
	for i := 0; i < rank[D](); i++ {
		r.x[i] = m.x[i] || n.x[i]
	}
	return r
}

// Xor returns m != n elementwise.
func (m Mask[D]) Xor(n Mask[D]) Mask[D] {
	var r Mask[D]
	for i := 0; i < rank[D](); i++ {
		r.x[i] = m.x[i] != n.x[i]
	}
	return r
}

// Eq returns m == n elementwise.
func (m Mask[D]) Eq(n Mask[D]) Mask[D] { return m.Xor(n).Not() }

// String renders the mask as [t f ...].
func (m Mask[D]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rank[D](); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.x[i] {
			sb.WriteByte('t')
		} else {
			sb.WriteByte('f')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
