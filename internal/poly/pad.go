package poly

import "math/bits"

// NextPowerOfTwo returns the smallest power of two ≥ n. n must be ≥ 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// padComplex copies the integer coefficients into a complex buffer of length
// n, zero-extending beyond len(coeffs). Padding is append-only: existing
// coefficient values and their order are preserved, and the source slice is
// never touched. Padding an already-length-n sequence is the identity copy.
func padComplex(coeffs []int64, n int) []complex128 {
	out := make([]complex128, n)
	for i, c := range coeffs {
		out[i] = complex(float64(c), 0)
	}
	return out
}
