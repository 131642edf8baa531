package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1023, 1024},
		{1024, 1024},
		{1025, 2048},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, NextPowerOfTwo(tt.n), "NextPowerOfTwo(%d)", tt.n)
	}
}

func TestPadComplex_ZeroExtends(t *testing.T) {
	got := padComplex([]int64{1, -2, 3}, 8)
	require.Len(t, got, 8)

	assert.Equal(t, complex128(1), got[0])
	assert.Equal(t, complex128(-2), got[1])
	assert.Equal(t, complex128(3), got[2])
	for i := 3; i < 8; i++ {
		assert.Zerof(t, got[i], "padding at index %d", i)
	}
}

func TestPadComplex_IdempotentAtTargetLength(t *testing.T) {
	// Padding an already-power-of-two-length sequence to its own length
	// changes nothing.
	coeffs := []int64{4, 3, 2, 1}
	got := padComplex(coeffs, 4)
	require.Len(t, got, 4)
	for i, c := range coeffs {
		assert.Equal(t, complex(float64(c), 0), got[i])
	}
}

func TestPadComplex_SourceUntouched(t *testing.T) {
	coeffs := []int64{7, 8}
	_ = padComplex(coeffs, 16)
	assert.Equal(t, []int64{7, 8}, coeffs)
}
