package math

import "golang.org/x/exp/constraints"

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	return base
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// NextPowerOfTwo returns the smallest power of two >= n, or 1 when n <= 1.
// The caller must keep n within the range where the result does not overflow T.
func NextPowerOfTwo[T constraints.Integer](n T) T {
	p := T(1)
	for p < n {
		p <<= 1
	}
	return p
}
