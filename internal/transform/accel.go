package transform

import (
	"context"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// BackendAccelerator is the registry name of the accelerator backend.
const BackendAccelerator = "accelerator"

// Accelerator evaluates the DFT definition directly, one execution lane per
// output index, instead of porting the butterfly network. Two dependent
// kernels run per transform: the first fills a full-length twiddle table (one
// lane per entry), the second computes out[idx] = Σ_k in[k]·tw[(idx·k) mod n]
// (one lane per output, O(n) reduction each). The work is O(n²), which lane
// parallelism outweighs at moderate n; a parallel butterfly would need
// cross-lane synchronization inside a single launch, which the flat kernel
// model does not provide.
type Accelerator struct {
	dev *laneDevice
}

// NewAccelerator creates an accelerator backend with the default lane group size.
func NewAccelerator() *Accelerator {
	acc, err := NewAcceleratorWithLaneGroup(DefaultLaneGroup)
	if err != nil {
		// DefaultLaneGroup is a valid constant; this cannot happen.
		panic(err)
	}
	return acc
}

// NewAcceleratorWithLaneGroup creates an accelerator backend dispatching the
// given number of lanes per worker goroutine.
//
// Parameters:
//   - laneGroup: Lanes per launch batch; must be ≥ 1.
//
// Returns:
//   - *Accelerator: The configured backend.
//   - error: A TransformError if the device cannot be configured.
func NewAcceleratorWithLaneGroup(laneGroup int) (*Accelerator, error) {
	dev, err := newLaneDevice(laneGroup)
	if err != nil {
		return nil, apperrors.TransformError{Backend: BackendAccelerator, Cause: err}
	}
	return &Accelerator{dev: dev}, nil
}

// Name returns the backend identifier.
func (*Accelerator) Name() string { return BackendAccelerator }

// Transform computes the DFT or normalized IDFT of data.
//
// The call follows the accelerator contract: operands are copied to device
// buffers before any launch, the twiddle kernel is synchronized before the
// evaluation kernel may start, and results are copied back only after the
// final kernel completes. Buffers are private to the call. Allocation or
// launch failure is fatal to the call; there is no CPU fallback.
//
// Parameters:
//   - ctx: Context; cancellation aborts pending lane batches.
//   - data: Input sequence; length must be a power of two. Never mutated.
//   - dir: Forward or Inverse. The inverse division by n happens on the host
//     after the result is retrieved.
//
// Returns:
//   - []complex128: A fresh slice of the same length as data.
//   - error: A ValidationError on precondition violation, or a TransformError
//     wrapping the device or context failure.
func (a *Accelerator) Transform(ctx context.Context, data []complex128, dir Direction) ([]complex128, error) {
	if err := validateCall(ctx, data, dir); err != nil {
		return nil, err
	}

	n := len(data)

	in, err := a.dev.newBuffer(n)
	if err != nil {
		return nil, apperrors.TransformError{Backend: BackendAccelerator, Cause: err}
	}
	tw, err := a.dev.newBuffer(n)
	if err != nil {
		return nil, apperrors.TransformError{Backend: BackendAccelerator, Cause: err}
	}
	out, err := a.dev.newBuffer(n)
	if err != nil {
		return nil, apperrors.TransformError{Backend: BackendAccelerator, Cause: err}
	}

	// Host to device.
	copy(in, data)

	// Kernel 1: one lane per twiddle entry.
	twiddleKernel := a.dev.launch(ctx, n, func(lane int) {
		tw[lane] = twiddleEntry(n, lane, dir)
	})
	// Device-wide barrier: kernel 2 must not observe a partially-written table.
	if err := twiddleKernel.synchronize(); err != nil {
		return nil, apperrors.TransformError{Backend: BackendAccelerator, Cause: err}
	}

	// Kernel 2: one lane per output index, O(n) reduction per lane.
	evalKernel := a.dev.launch(ctx, n, func(lane int) {
		var sum complex128
		for k := 0; k < n; k++ {
			sum += in[k] * tw[(lane*k)%n]
		}
		out[lane] = sum
	})
	if err := evalKernel.synchronize(); err != nil {
		return nil, apperrors.TransformError{Backend: BackendAccelerator, Cause: err}
	}

	// Device to host.
	result := make([]complex128, n)
	copy(result, out)

	if dir == Inverse {
		normalize(result)
	}
	return result, nil
}
