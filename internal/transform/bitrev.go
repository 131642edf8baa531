package transform

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}
	return result
}

// bitReverseCopy returns a copy of data with every element moved to the
// position its index maps to under bit reversal. This is the leaf layout the
// recursive decomposition would produce, computed in a single pass.
func bitReverseCopy(data []complex128) []complex128 {
	bits := Log2(len(data))
	out := make([]complex128, len(data))
	for i, v := range data {
		out[ReverseBits(i, bits)] = v
	}
	return out
}
