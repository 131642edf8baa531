package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/format"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/ui"
)

// CLIResultPresenter implements orchestration.Presenter for CLI output.
// It provides formatted, colorized output for computation results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
	_ orchestration.Presenter       = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with backend
// names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.BackendResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum column widths for proper alignment.
	maxNameLen := len("Backend")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if d := format.FormatExecutionDuration(res.Duration); len(d) > maxDurationLen {
			maxDurationLen = len(d)
		}
	}

	fmt.Fprintf(out, "%s%s   %s%s   %s\n",
		ui.Header("Backend"), padRight("", maxNameLen-len("Backend")),
		ui.Header("Duration"), padRight("", maxDurationLen-len("Duration")),
		ui.Header("Status"))

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = ui.Failure(fmt.Sprintf("✗ failure (%v)", res.Err))
		} else {
			status = ui.Success("✓ success")
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s   %s%s   %s\n",
			res.Name, padRight("", maxNameLen-len(res.Name)),
			duration, padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// PresentResult displays the final product coefficients of the fastest
// successful backend.
func (CLIResultPresenter) PresentResult(result orchestration.BackendResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%s = %s\n",
		ui.Accent(opts.Operation),
		format.FormatCoefficients(result.Coeffs, opts.ShowValue))
	fmt.Fprintf(out, "%s\n",
		ui.Muted(fmt.Sprintf("degree %d, computed by %s in %s",
			len(result.Coeffs)-1, result.Name, format.FormatExecutionDuration(result.Duration))))
}

// HandleError reports a terminal error and returns the matching exit code.
//
// Parameters:
//   - err: The error to report; nil returns the generic failure code.
//   - out: The writer for the error message.
//
// Returns:
//   - int: The process exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	switch {
	case err == nil:
		return apperrors.ExitErrorGeneric
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%s\n", ui.Failure("Computation timed out."))
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%s\n", ui.Failure("Computation canceled."))
		return apperrors.ExitErrorCanceled
	}

	var configErr apperrors.ConfigError
	if errors.As(err, &configErr) {
		fmt.Fprintf(out, "%s\n", ui.Failure(fmt.Sprintf("Configuration error: %v", err)))
		return apperrors.ExitErrorConfig
	}

	var precisionErr apperrors.PrecisionError
	if errors.As(err, &precisionErr) {
		fmt.Fprintf(out, "%s\n", ui.Failure(fmt.Sprintf("Precision exceeded: %v", err)))
		fmt.Fprintf(out, "%s\n", ui.Warning("Reduce operand degree or coefficient magnitude."))
		return apperrors.ExitErrorGeneric
	}

	fmt.Fprintf(out, "%s\n", ui.Failure(fmt.Sprintf("Error: %v", err)))
	return apperrors.ExitErrorGeneric
}

// padRight returns n spaces (never negative).
func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
