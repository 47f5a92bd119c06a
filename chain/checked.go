package chain

import (
	"fmt"
	"math/bits"
)

// CheckedAdd returns a+b or ErrOverflow.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// CheckedMul returns a*b or ErrOverflow.
func CheckedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d × %d", ErrOverflow, a, b)
	}
	return lo, nil
}
