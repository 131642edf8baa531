package transform

import "context"

// BackendIterative is the registry name of the iterative backend.
const BackendIterative = "iterative"

// Iterative implements the in-place radix-2 DFT: a bit-reversal permutation
// seeds the leaf layout of the recursion in one pass, then log2(n) butterfly
// stages combine pairs bottom-up. One buffer, no per-level allocation; this
// is the default backend.
type Iterative struct{}

// NewIterative creates the iterative backend.
func NewIterative() *Iterative { return &Iterative{} }

// Name returns the backend identifier.
func (*Iterative) Name() string { return BackendIterative }

// Transform computes the DFT or normalized IDFT of data.
//
// The caller's slice is never written; the permutation copies into the work
// buffer and every stage operates on that buffer in place.
//
// Parameters:
//   - ctx: Context checked on entry and between butterfly stages.
//   - data: Input sequence; length must be a power of two. Never mutated.
//   - dir: Forward or Inverse.
//
// Returns:
//   - []complex128: A fresh slice of the same length as data.
//   - error: A ValidationError on precondition violation, or the context error.
func (*Iterative) Transform(ctx context.Context, data []complex128, dir Direction) ([]complex128, error) {
	if err := validateCall(ctx, data, dir); err != nil {
		return nil, err
	}

	n := len(data)
	out := bitReverseCopy(data)

	for m := 2; m <= n; m <<= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m2 := m / 2
		step := stageTwiddleStep(m2, dir)
		w := complex(1, 0)
		for j := 0; j < m2; j++ {
			for k := j; k < n; k += m {
				t := w * out[k+m2]
				u := out[k]
				out[k] = u + t
				out[k+m2] = u - t
			}
			w *= step
		}
	}

	if dir == Inverse {
		normalize(out)
	}
	return out, nil
}
