package transform

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultLaneGroup is the number of execution lanes dispatched per worker
// goroutine in one kernel launch. Grouping amortizes scheduling overhead the
// same way an accelerator groups threads into blocks; one goroutine per lane
// would drown small transforms in runtime bookkeeping.
const DefaultLaneGroup = 256

// MaxDeviceElems bounds a single device buffer allocation (1 GiB of
// complex128 values). Requests beyond it fail the call rather than risk the
// whole process; there is no retry or fallback.
const MaxDeviceElems = 1 << 26

// laneDevice simulates an accelerator device: flat kernel launches over a
// grid of independent execution lanes, with an explicit synchronization
// barrier between dependent launches. Lanes within one launch must not
// communicate; ordering between launches exists only through synchronize.
type laneDevice struct {
	laneGroup int
}

// newLaneDevice creates a device dispatching lanes in groups of laneGroup.
func newLaneDevice(laneGroup int) (*laneDevice, error) {
	if laneGroup < 1 {
		return nil, fmt.Errorf("lane group size must be at least 1, got %d", laneGroup)
	}
	return &laneDevice{laneGroup: laneGroup}, nil
}

// newBuffer allocates a zeroed device buffer of n elements.
func (d *laneDevice) newBuffer(n int) ([]complex128, error) {
	if n < 1 || n > MaxDeviceElems {
		return nil, fmt.Errorf("device buffer of %d elements exceeds allocation limits", n)
	}
	return make([]complex128, n), nil
}

// kernelLaunch is an in-flight kernel. The launch serves as happens-before
// for nothing: results may only be observed after synchronize returns.
type kernelLaunch struct {
	group *errgroup.Group
}

// launch starts kernel over lanes [0, lanes) and returns immediately.
// Lane execution order within the launch is unspecified.
func (d *laneDevice) launch(ctx context.Context, lanes int, kernel func(lane int)) *kernelLaunch {
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < lanes; start += d.laneGroup {
		lo, hi := start, start+d.laneGroup
		if hi > lanes {
			hi = lanes
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for lane := lo; lane < hi; lane++ {
				kernel(lane)
			}
			return nil
		})
	}
	return &kernelLaunch{group: g}
}

// synchronize blocks until every lane of the launch has completed. A kernel
// reading another kernel's output must synchronize the producer first.
func (l *kernelLaunch) synchronize() error {
	return l.group.Wait()
}
