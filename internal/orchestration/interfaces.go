package orchestration

import (
	"io"
	"sync"
	"time"
)

// Update is a single progress notification from a running backend.
type Update struct {
	// Backend is the name of the backend the update concerns.
	Backend string
	// Done indicates the backend finished (successfully or not).
	Done bool
	// Duration is the elapsed time, set when Done.
	Duration time.Duration
	// Err is the terminal error, set when Done and the backend failed.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Operation describes the computation for display (e.g. "p·q", "p^8").
	Operation string
	// Verbose enables supplementary output such as memory statistics.
	Verbose bool
	// ShowValue prints the full coefficient sequence instead of an elided view.
	ShowValue bool
}

// ProgressReporter defines the interface for displaying execution progress.
// It decouples the orchestration layer from the presentation layer:
// implementations render spinners or logs while orchestration only feeds the
// channel.
type ProgressReporter interface {
	// DisplayProgress consumes updates until the channel is closed.
	// It must be called in its own goroutine and signal wg when done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - updates: Channel receiving progress updates from backends.
	//   - numBackends: The number of concurrent backends being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, numBackends int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan Update, numBackends int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, numBackends int, out io.Writer) {
	f(wg, updates, numBackends, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the update channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
		// Drain channel silently.
	}
}

// ResultPresenter defines the interface for presenting execution results,
// allowing different output formats without modifying orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the backend comparison summary table.
	PresentComparisonTable(results []BackendResult, out io.Writer)

	// PresentResult displays the final product.
	PresentResult(result BackendResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler maps terminal errors to process exit codes.
type ErrorHandler interface {
	// HandleError reports err and returns the exit code to use.
	HandleError(err error, out io.Writer) int
}

// Presenter bundles the presentation capabilities the analysis step needs.
type Presenter interface {
	ResultPresenter
	ErrorHandler
}
