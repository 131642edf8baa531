package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os/signal"
	"syscall"

	"github.com/agbru/polymul/internal/cli"
	"github.com/agbru/polymul/internal/config"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/metrics"
	"github.com/agbru/polymul/internal/orchestration"
)

// runCompute orchestrates the execution of the CLI computation command.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	req, err := buildRequest(a.Config)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid operands: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Setup lifecycle (timeout + signals).
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	backends := orchestration.GetTransformersToRun(a.Config.Algo, a.Factory)
	if len(backends) == 0 {
		fmt.Fprintf(a.ErrWriter, "No backend matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, req, out)
		cli.PrintExecutionMode(backends, out)
	}

	// Choose progress reporter based on quiet mode.
	var reporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = orchestration.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	results := orchestration.ExecuteTransformations(ctx, backends, req, reporter, progressOut)

	if a.Config.Verbose {
		delta := before.Delta(collector.Snapshot())
		fmt.Fprintf(out, "\nHeap growth: %d KiB across %d GC cycles\n",
			delta.HeapAlloc/1024, delta.NumGC)
	}

	presentation := orchestration.PresentationOptions{
		Operation: cli.DescribeOperation(req),
		Verbose:   a.Config.Verbose,
		ShowValue: a.Config.Full,
	}
	return orchestration.AnalyzeComparisonResults(results, presentation, cli.CLIResultPresenter{}, out)
}

// buildRequest assembles the computation request from explicit coefficient
// lists or randomly generated operands.
func buildRequest(cfg config.AppConfig) (orchestration.Request, error) {
	req := orchestration.Request{Power: cfg.Power, CheckPrecision: cfg.CheckPrecision}

	rng := rand.New(rand.NewSource(cfg.Seed))

	if cfg.P != "" {
		p, err := config.ParseCoefficients(cfg.P)
		if err != nil {
			return orchestration.Request{}, err
		}
		req.P = p
	} else {
		req.P = randomOperand(rng, cfg.Degree)
	}

	if req.Power >= 1 {
		return req, nil
	}

	if cfg.Q != "" {
		q, err := config.ParseCoefficients(cfg.Q)
		if err != nil {
			return orchestration.Request{}, err
		}
		req.Q = q
	} else {
		req.Q = randomOperand(rng, cfg.Degree)
	}
	return req, nil
}

// randomOperand generates degree+1 coefficients centered on zero. The range
// keeps products of default-degree operands far from the float64 precision
// ceiling, so comparison runs stay exact without the precision check.
func randomOperand(rng *rand.Rand, degree int) []int64 {
	coeffs := make([]int64, degree+1)
	for i := range coeffs {
		coeffs[i] = rng.Int63n(config.DefaultMaxCoefficient) - config.DefaultMaxCoefficient/2
	}
	return coeffs
}
