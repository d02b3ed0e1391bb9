package utils

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when checked int64 arithmetic would wrap around.
var ErrOverflow = errors.New("int64 overflow")

// SafeAdd adds two non-negative int64 values.
// Returns ErrOverflow if the sum exceeds math.MaxInt64.
func SafeAdd(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand: %d + %d", a, b)
	}
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// SafeMultiply multiplies two non-negative int64 values.
// Returns ErrOverflow if the product exceeds math.MaxInt64.
func SafeMultiply(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand: %d * %d", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil // No overflow when either is zero
	}
	if a > math.MaxInt64/b {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

// CheckedProduct multiplies all extents together with overflow checking.
// The product of no extents is 1.
func CheckedProduct(extents ...int64) (int64, error) {
	total := int64(1)
	for i, e := range extents {
		var err error
		total, err = SafeMultiply(total, e)
		if err != nil {
			return 0, fmt.Errorf("product overflow at dimension %d: %w", i, err)
		}
	}
	return total, nil
}

// ByteSize converts an element count to a byte count.
func ByteSize(elements int64, elemSize int) (int64, error) {
	if elemSize <= 0 {
		return 0, fmt.Errorf("element size must be positive, got %d", elemSize)
	}
	return SafeMultiply(elements, int64(elemSize))
}

// ToInt converts a byte count to int, failing on platforms where it does not fit.
func ToInt(n int64) (int, error) {
	if n < 0 || uint64(n) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d does not fit in int", ErrOverflow, n)
	}
	return int(n), nil
}
