package transform

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfTwiddleTable_ForwardLength8(t *testing.T) {
	table := halfTwiddleTable(8, Forward)
	require.Len(t, table, 4)

	// theta[0] = 1, theta[2] = e^{-iπ/2} = -i.
	assert.True(t, almostEqual(real(table[0]), 1, fixtureTolerance))
	assert.True(t, almostEqual(imag(table[0]), 0, fixtureTolerance))
	assert.True(t, almostEqual(real(table[2]), 0, fixtureTolerance))
	assert.True(t, almostEqual(imag(table[2]), -1, fixtureTolerance))
}

func TestHalfTwiddleTable_InverseConjugatesForward(t *testing.T) {
	fwd := halfTwiddleTable(16, Forward)
	inv := halfTwiddleTable(16, Inverse)
	for i := range fwd {
		assert.True(t, almostEqual(real(fwd[i]), real(inv[i]), fixtureTolerance))
		assert.True(t, almostEqual(imag(fwd[i]), -imag(inv[i]), fixtureTolerance))
	}
}

func TestHalfTwiddleTable_UnitMagnitude(t *testing.T) {
	for _, entry := range halfTwiddleTable(64, Forward) {
		assert.True(t, almostEqual(cmplx.Abs(entry), 1, fixtureTolerance))
	}
}

func TestHalfTwiddleTable_LengthOne(t *testing.T) {
	// n == 1 keeps a single unity entry so indexing stays uniform.
	table := halfTwiddleTable(1, Forward)
	require.Len(t, table, 1)
	assert.True(t, almostEqual(real(table[0]), 1, fixtureTolerance))
}

func TestStageTwiddleStep_PowersMatchDirectExponentials(t *testing.T) {
	// Multiplying the running twiddle j times must equal theta_m^j.
	const m2 = 8
	step := stageTwiddleStep(m2, Forward)
	w := complex(1, 0)
	for j := 0; j < m2; j++ {
		angle := -math.Pi * float64(j) / float64(m2)
		want := cmplx.Exp(complex(0, angle))
		assert.Truef(t, almostEqual(real(w), real(want), fixtureTolerance), "real, j=%d", j)
		assert.Truef(t, almostEqual(imag(w), imag(want), fixtureTolerance), "imag, j=%d", j)
		w *= step
	}
}

func TestTwiddleEntry_MatchesHalfTableOnSharedRange(t *testing.T) {
	const n = 32
	half := halfTwiddleTable(n, Inverse)
	for i := range half {
		full := twiddleEntry(n, i, Inverse)
		assert.True(t, almostEqual(real(half[i]), real(full), fixtureTolerance))
		assert.True(t, almostEqual(imag(half[i]), imag(full), fixtureTolerance))
	}
}
