package poly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// naivePower computes p^k by repeated multiplication, as the oracle for the
// binary exponentiation implementation.
func naivePower(t *testing.T, p []int64, k uint) []int64 {
	t.Helper()
	result := []int64{1}
	for i := uint(0); i < k; i++ {
		var err error
		result, err = Multiply(context.Background(), result, p, Options{})
		require.NoError(t, err)
	}
	return result
}

func TestPower_MatchesRepeatedMultiplication(t *testing.T) {
	p := []int64{2, -1, 3}
	// Exponents with varied bit patterns: the multi-bit cases (5 = 0b101,
	// 6 = 0b110, 11 = 0b1011) are exactly where a broken accumulation gate
	// would diverge from repeated multiplication.
	for _, k := range []uint{1, 2, 3, 4, 5, 6, 7, 8, 11} {
		got, err := Power(context.Background(), p, k, Options{})
		require.NoErrorf(t, err, "k=%d", k)
		assert.Equalf(t, naivePower(t, p, k), got, "k=%d", k)
	}
}

func TestPower_BinomialCoefficients(t *testing.T) {
	// (1+x)^6 = 1 + 6x + 15x² + 20x³ + 15x⁴ + 6x⁵ + x⁶.
	got, err := Power(context.Background(), []int64{1, 1}, 6, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 6, 15, 20, 15, 6, 1}, got)
}

func TestPower_ExponentOne(t *testing.T) {
	p := []int64{4, 0, -9}
	got, err := Power(context.Background(), p, 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPower_ConstantBase(t *testing.T) {
	got, err := Power(context.Background(), []int64{3}, 4, Options{})
	require.NoError(t, err)
	assert.Equal(t, []int64{81}, got)
}

func TestPower_ResultLength(t *testing.T) {
	p := []int64{1, 2, 3} // degree 2
	got, err := Power(context.Background(), p, 5, Options{})
	require.NoError(t, err)
	assert.Len(t, got, 5*(len(p)-1)+1)
}

func TestPower_InvalidExponent(t *testing.T) {
	var validationErr apperrors.ValidationError
	_, err := Power(context.Background(), []int64{1, 1}, 0, Options{})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "k", validationErr.Field)
}

func TestPower_EmptyOperand(t *testing.T) {
	var validationErr apperrors.ValidationError
	_, err := Power(context.Background(), nil, 2, Options{})
	require.ErrorAs(t, err, &validationErr)
}

func TestPower_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Power(ctx, []int64{1, 1}, 3, Options{})
	require.Error(t, err)
	assert.True(t, apperrors.IsContextError(err))
}
