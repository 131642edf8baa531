package orchestration

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/poly"
	"github.com/agbru/polymul/internal/transform"
)

// BackendResult encapsulates the outcome of one backend's computation.
// It serves as a standardized container for results from different backends,
// facilitating comparison and reporting.
type BackendResult struct {
	// Name is the identifier of the backend used (e.g. "iterative").
	Name string
	// Coeffs is the computed product. It is nil if an error occurred.
	Coeffs []int64
	// Duration is the time taken to complete the computation.
	Duration time.Duration
	// Err contains any error that occurred during the computation.
	Err error
}

// Request describes the computation each selected backend performs.
type Request struct {
	// P and Q are the operand coefficient sequences. Q is ignored when
	// Power ≥ 1.
	P, Q []int64
	// Power, when ≥ 1, requests P raised to this exponent instead of P·Q.
	Power uint
	// CheckPrecision enables the rounding diagnostic on every step.
	CheckPrecision bool
}

// ProgressBufferMultiplier sizes the progress channel buffer per backend.
// A larger buffer reduces the likelihood of blocking computation goroutines
// when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteTransformations runs the requested computation on every backend
// concurrently and collects the timed results. This function is the core of
// the application's concurrency model: one goroutine per backend under an
// errgroup, a buffered progress channel consumed by the reporter, and result
// slots written by index so no ordering coordination is needed.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - backends: The transform backends to execute.
//   - req: The computation to perform.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []BackendResult: One result per backend, in input order.
func ExecuteTransformations(ctx context.Context, backends []transform.Transformer, req Request, reporter ProgressReporter, out io.Writer) []BackendResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]BackendResult, len(backends))
	updates := make(chan Update, len(backends)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, len(backends), out)

	for i, b := range backends {
		idx, backend := i, b
		g.Go(func() error {
			startTime := time.Now()
			coeffs, err := runRequest(ctx, backend, req)
			duration := time.Since(startTime)
			results[idx] = BackendResult{
				Name: backend.Name(), Coeffs: coeffs, Duration: duration, Err: err,
			}
			updates <- Update{Backend: backend.Name(), Done: true, Duration: duration, Err: err}
			return nil
		})
	}

	g.Wait()
	close(updates)
	displayWg.Wait()

	return results
}

// runRequest executes the requested operation with the given backend.
func runRequest(ctx context.Context, backend transform.Transformer, req Request) ([]int64, error) {
	opts := poly.Options{Backend: backend, CheckPrecision: req.CheckPrecision}
	if req.Power >= 1 {
		return poly.Power(ctx, req.P, req.Power, opts)
	}
	return poly.Multiply(ctx, req.P, req.Q, opts)
}

// AnalyzeComparisonResults processes the results from multiple backends and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful computations, and displays a comparative table. Because every
// backend must agree bit-for-bit after rounding, any coefficient mismatch
// between two successful backends is a critical failure, not a tie-break.
//
// Parameters:
//   - results: The backend results to analyze.
//   - opts: Presentation options for the final result display.
//   - presenter: The presenter for tables, results, and errors.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []BackendResult, opts PresentationOptions, presenter Presenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *BackendResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend could complete the computation.\n")
		return presenter.HandleError(firstError, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !slices.Equal(res.Coeffs, firstValidResult.Coeffs) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the backend results.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
