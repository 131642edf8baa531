package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/polymul/internal/config"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/transform"
	"github.com/agbru/polymul/internal/ui"
)

// PrintExecutionConfig echoes the effective run configuration before the
// computation starts.
func PrintExecutionConfig(cfg config.AppConfig, req orchestration.Request, out io.Writer) {
	op := describeOperation(req)
	fmt.Fprintf(out, "%s %s\n", ui.Accent("Computing:"), op)
	if cfg.P == "" && cfg.Q == "" {
		fmt.Fprintf(out, "%s\n", ui.Muted(fmt.Sprintf("random operands: degree %d, seed %d", cfg.Degree, cfg.Seed)))
	}
	if cfg.CheckPrecision {
		fmt.Fprintf(out, "%s\n", ui.Muted("precision check: enabled"))
	}
	fmt.Fprintf(out, "%s\n", ui.Muted(fmt.Sprintf("timeout: %s", cfg.Timeout)))
}

// PrintExecutionMode reports which backends will run.
func PrintExecutionMode(backends []transform.Transformer, out io.Writer) {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name()
	}
	if len(backends) > 1 {
		fmt.Fprintf(out, "%s %s\n", ui.Accent("Comparison mode:"), strings.Join(names, ", "))
		return
	}
	fmt.Fprintf(out, "%s %s\n", ui.Accent("Backend:"), strings.Join(names, ", "))
}

// describeOperation renders the requested computation for display.
func describeOperation(req orchestration.Request) string {
	if req.Power >= 1 {
		return fmt.Sprintf("p(x)^%d, deg(p) = %d", req.Power, len(req.P)-1)
	}
	return fmt.Sprintf("p(x)·q(x), deg(p) = %d, deg(q) = %d", len(req.P)-1, len(req.Q)-1)
}

// DescribeOperation is the exported form used by the app layer for the final
// result heading.
func DescribeOperation(req orchestration.Request) string {
	if req.Power >= 1 {
		return fmt.Sprintf("p^%d", req.Power)
	}
	return "p·q"
}
