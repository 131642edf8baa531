package transform

import (
	"math"
	"math/cmplx"
)

// halfTwiddleTable returns theta[i] = e^{dir·2πi·i/n} for i in [0, n/2).
// The recursive backend shares this one table across all recursion depths by
// indexing it at stride 2^depth, so it is computed once per transform call
// and never mutated afterward.
func halfTwiddleTable(n int, dir Direction) []complex128 {
	half := n / 2
	if half == 0 {
		half = 1 // n == 1: a single unity entry keeps indexing uniform
	}
	table := make([]complex128, half)
	for i := range table {
		angle := float64(dir) * 2 * math.Pi * float64(i) / float64(n)
		table[i] = cmplx.Exp(complex(0, angle))
	}
	return table
}

// stageTwiddleStep returns e^{dir·πi/m2}, the multiplicative step applied to
// the running stage twiddle of the iterative backend once per phase offset.
// Starting from 1 and multiplying by this step j times yields theta_m^j
// without recomputing the exponential.
func stageTwiddleStep(m2 int, dir Direction) complex128 {
	angle := float64(dir) * math.Pi / float64(m2)
	return cmplx.Exp(complex(0, angle))
}

// twiddleEntry returns e^{dir·2πi·idx/n}, the value the accelerator's first
// kernel writes at index idx of its full-length table.
func twiddleEntry(n, idx int, dir Direction) complex128 {
	angle := float64(dir) * 2 * math.Pi * float64(idx) / float64(n)
	return cmplx.Exp(complex(0, angle))
}
