package transform

import "context"

// BackendRecursive is the registry name of the recursive backend.
const BackendRecursive = "recursive"

// Recursive implements the Cooley–Tukey divide-and-conquer DFT. Each call
// splits the sequence into even- and odd-indexed halves, transforms both, and
// combines them with twiddles drawn from a table shared across all recursion
// depths. It allocates fresh sub-slices per level and exists primarily as the
// readable reference the other backends are checked against; the iterative
// backend does the same work in place.
type Recursive struct{}

// NewRecursive creates the recursive backend.
func NewRecursive() *Recursive { return &Recursive{} }

// Name returns the backend identifier.
func (*Recursive) Name() string { return BackendRecursive }

// Transform computes the DFT or normalized IDFT of data.
//
// Parameters:
//   - ctx: Context checked on entry; the recursion itself is not interruptible.
//   - data: Input sequence; length must be a power of two. Never mutated.
//   - dir: Forward or Inverse.
//
// Returns:
//   - []complex128: A fresh slice of the same length as data.
//   - error: A ValidationError on precondition violation, or the context error.
func (*Recursive) Transform(ctx context.Context, data []complex128, dir Direction) ([]complex128, error) {
	if err := validateCall(ctx, data, dir); err != nil {
		return nil, err
	}

	table := halfTwiddleTable(len(data), dir)
	out := recurse(data, table, 0)
	if dir == Inverse {
		normalize(out)
	}
	return out, nil
}

// recurse transforms data at the given recursion depth. The shared twiddle
// table is indexed at stride 2^depth: one level down, every second entry of
// the parent's twiddles is exactly the child's table.
func recurse(data, table []complex128, depth int) []complex128 {
	n := len(data)
	if n == 1 {
		return []complex128{data[0]}
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	even = recurse(even, table, depth+1)
	odd = recurse(odd, table, depth+1)

	out := make([]complex128, n)
	stride := 1 << depth
	for i := 0; i < half; i++ {
		t := table[stride*i] * odd[i]
		out[i] = even[i] + t
		out[i+half] = even[i] - t
	}
	return out
}
