package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polymul/internal/format"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/ui"
)

// spinnerInterval is the spinner animation frame interval.
const spinnerInterval = 100 * time.Millisecond

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It shows a spinner while backends run and prints a completion line
// for each backend as it finishes.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner for ongoing computations and consumes
// updates until the channel is closed.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.Update, numBackends int, out io.Writer) {
	defer wg.Done()

	s := spinner.New(spinner.CharSets[14], spinnerInterval, spinner.WithWriter(out))
	s.Suffix = fmt.Sprintf(" computing (%d backends pending)", numBackends)
	s.Start()
	defer s.Stop()

	remaining := numBackends
	for upd := range updates {
		if !upd.Done {
			continue
		}
		remaining--
		s.Stop()
		if upd.Err != nil {
			fmt.Fprintf(out, "%s %s failed after %s: %v\n",
				ui.Failure("✗"), upd.Backend, format.FormatExecutionDuration(upd.Duration), upd.Err)
		} else {
			fmt.Fprintf(out, "%s %s finished in %s\n",
				ui.Success("✓"), upd.Backend, format.FormatExecutionDuration(upd.Duration))
		}
		if remaining > 0 {
			s.Suffix = fmt.Sprintf(" computing (%d backends pending)", remaining)
			s.Start()
		}
	}
}
