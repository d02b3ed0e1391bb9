package region

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// MaxRank is the largest supported dimension.
const MaxRank = 4

// Integer is the set of coordinate types.
type Integer = constraints.Integer

// Dim is the closed set of dimension marker types.
// A Point[T, D3] and a Point[T, D2] are distinct types, so dimension
// mismatches between statically typed values do not compile.
type Dim interface {
	D0 | D1 | D2 | D3 | D4
	Rank() int
}

// D0 marks zero-dimensional values.
type D0 struct{}

// D1 marks one-dimensional values.
type D1 struct{}

// D2 marks two-dimensional values.
type D2 struct{}

// D3 marks three-dimensional values.
type D3 struct{}

// D4 marks four-dimensional values.
type D4 struct{}

// Rank returns 0.
func (D0) Rank() int { return 0 }

// Rank returns 1.
func (D1) Rank() int { return 1 }

// Rank returns 2.
func (D2) Rank() int { return 2 }

// Rank returns 3.
func (D3) Rank() int { return 3 }

// Rank returns 4.
func (D4) Rank() int { return 4 }

// rank returns the dimension encoded by D.
func rank[D Dim]() int {
	var d D
	return d.Rank()
}

var (
	// ErrUnsupportedDimension is returned when a run-time dimension is outside 0..MaxRank.
	ErrUnsupportedDimension = errors.New("unsupported dimension")

	// ErrDimensionMismatch is returned when coordinate lists disagree with the requested dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
