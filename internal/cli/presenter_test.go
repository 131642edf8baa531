package cli

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/ui"
)

func init() {
	// Keep assertions on raw text free of ANSI escape sequences.
	ui.InitTheme("plain")
}

func TestPresentComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	results := []orchestration.BackendResult{
		{Name: "iterative", Coeffs: []int64{1, 2, 1}, Duration: 3 * time.Millisecond},
		{Name: "accelerator", Err: errors.New("lanes exhausted"), Duration: time.Second},
	}

	CLIResultPresenter{}.PresentComparisonTable(results, &buf)

	out := buf.String()
	assert.Contains(t, out, "Comparison Summary")
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "iterative")
	assert.Contains(t, out, "✓ success")
	assert.Contains(t, out, "✗ failure (lanes exhausted)")
	assert.Contains(t, out, "3ms")
}

func TestPresentResult(t *testing.T) {
	var buf bytes.Buffer
	result := orchestration.BackendResult{
		Name:     "recursive",
		Coeffs:   []int64{1, 2, 1},
		Duration: 5 * time.Millisecond,
	}
	opts := orchestration.PresentationOptions{Operation: "p·q"}

	CLIResultPresenter{}.PresentResult(result, opts, &buf)

	out := buf.String()
	assert.Contains(t, out, "p·q = [1 2 1]")
	assert.Contains(t, out, "degree 2")
	assert.Contains(t, out, "recursive")
	assert.Contains(t, out, "5ms")
}

func TestHandleError_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil", nil, apperrors.ExitErrorGeneric, ""},
		{"deadline", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "timed out"},
		{"wrapped deadline", apperrors.WrapError(context.DeadlineExceeded, "multiply"), apperrors.ExitErrorTimeout, "timed out"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "canceled"},
		{"config", apperrors.NewConfigError("bad flag"), apperrors.ExitErrorConfig, "Configuration error"},
		{"precision", apperrors.PrecisionError{Index: 3}, apperrors.ExitErrorGeneric, "Precision exceeded"},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, &buf)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantText != "" {
				assert.Contains(t, buf.String(), tt.wantText)
			}
		})
	}
}

func TestHandleError_PrecisionHint(t *testing.T) {
	var buf bytes.Buffer
	CLIResultPresenter{}.HandleError(apperrors.PrecisionError{Index: 0, Value: 1.4}, &buf)

	assert.Contains(t, buf.String(), "Reduce operand degree")
}

func TestCLIProgressReporter_PrintsCompletionLines(t *testing.T) {
	var buf bytes.Buffer
	updates := make(chan orchestration.Update, 2)
	updates <- orchestration.Update{Backend: "iterative", Done: true, Duration: 2 * time.Millisecond}
	updates <- orchestration.Update{Backend: "recursive", Done: true, Duration: 4 * time.Millisecond, Err: errors.New("bang")}
	close(updates)

	var wg sync.WaitGroup
	wg.Add(1)
	go CLIProgressReporter{}.DisplayProgress(&wg, updates, 2, &buf)
	wg.Wait()

	out := buf.String()
	assert.Contains(t, out, "iterative finished in 2ms")
	assert.Contains(t, out, "recursive failed after 4ms: bang")
}
