// Package config defines the application configuration and its resolution
// chain: CLI flags take precedence over POLYMUL_* environment variables,
// which take precedence over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "POLYMUL_"

// Defaults for the configuration fields.
const (
	// DefaultDegree is the degree of randomly generated operands when no
	// explicit coefficients are supplied.
	DefaultDegree = 1023

	// DefaultTimeout bounds one full comparison run. The accelerator backend
	// is O(n²), so large degrees dominate this budget.
	DefaultTimeout = 5 * time.Minute

	// DefaultLaneGroup is the number of accelerator execution lanes
	// dispatched per worker batch.
	DefaultLaneGroup = 256

	// DefaultMaxCoefficient bounds randomly generated coefficients. Products
	// of two degree-DefaultDegree operands with coefficients in this range
	// stay far below the float64 precision ceiling.
	DefaultMaxCoefficient = 512
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Algo selects the transform backend ("recursive", "iterative",
	// "accelerator", or "all" to run and cross-check every backend).
	Algo string

	// P and Q are explicit operand coefficient lists ("1,2,3"), ascending
	// powers. When empty, operands of degree Degree are generated randomly.
	P string
	Q string

	// Degree is the degree of randomly generated operands.
	Degree int

	// Power, when ≥ 1, raises P to this exponent instead of computing P·Q.
	Power uint

	// Seed seeds the random operand generator for reproducible runs.
	Seed int64

	// Timeout bounds the whole computation.
	Timeout time.Duration

	// LaneGroup is the accelerator lane batch size.
	LaneGroup int

	// CheckPrecision enables the rounding diagnostic.
	CheckPrecision bool

	// Verbose enables supplementary output (memory statistics, configuration echo).
	Verbose bool

	// Quiet suppresses progress display and non-essential output.
	Quiet bool

	// Full prints the complete coefficient sequence of the result.
	Full bool

	// Theme selects the terminal color theme ("dark", "light", "plain").
	Theme string

	// Serve, when non-empty, starts the HTTP server on this address instead
	// of running a CLI computation.
	Serve string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for flag parse errors and usage text.
//   - availableAlgos: The registered backend names, for validation and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	algoUsage := fmt.Sprintf("transform backend to use (%s, or 'all' to compare)", strings.Join(availableAlgos, ", "))
	fs.StringVar(&cfg.Algo, "algo", "all", algoUsage)
	fs.StringVar(&cfg.P, "p", "", "first operand as comma-separated coefficients, constant term first")
	fs.StringVar(&cfg.Q, "q", "", "second operand as comma-separated coefficients, constant term first")
	fs.IntVar(&cfg.Degree, "degree", DefaultDegree, "degree of randomly generated operands (when -p/-q are omitted)")
	fs.UintVar(&cfg.Power, "power", 0, "raise the first operand to this exponent instead of multiplying")
	fs.Int64Var(&cfg.Seed, "seed", 1, "random seed for generated operands")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "computation timeout")
	fs.IntVar(&cfg.LaneGroup, "lane-group", DefaultLaneGroup, "accelerator execution lanes per worker batch")
	fs.BoolVar(&cfg.CheckPrecision, "check-precision", false, "fail instead of silently returning wrong integers near the float64 ceiling")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable supplementary output")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable supplementary output (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress display and non-essential output")
	fs.BoolVar(&cfg.Full, "full", false, "print the complete result coefficient sequence")
	fs.StringVar(&cfg.Theme, "theme", "dark", "terminal color theme (dark, light, plain)")
	fs.StringVar(&cfg.Serve, "serve", "", "run the HTTP server on this address instead of a CLI computation")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableAlgos: The registered backend names.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown backend %q (available: %s, all)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Degree < 0 {
		return apperrors.NewConfigError("degree must be non-negative, got %d", c.Degree)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.LaneGroup < 1 {
		return apperrors.NewConfigError("lane-group must be at least 1, got %d", c.LaneGroup)
	}
	switch c.Theme {
	case "dark", "light", "plain":
	default:
		return apperrors.NewConfigError("unknown theme %q (available: dark, light, plain)", c.Theme)
	}
	if c.P != "" {
		if _, err := ParseCoefficients(c.P); err != nil {
			return apperrors.NewConfigError("invalid -p: %v", err)
		}
	}
	if c.Q != "" {
		if _, err := ParseCoefficients(c.Q); err != nil {
			return apperrors.NewConfigError("invalid -q: %v", err)
		}
	}
	if c.Power >= 1 && c.Q != "" {
		return apperrors.NewConfigError("-power and -q are mutually exclusive")
	}
	return nil
}

// ParseCoefficients parses a comma-separated coefficient list such as
// "1,0,-2" into a coefficient sequence, constant term first. Whitespace
// around entries is ignored.
//
// Parameters:
//   - s: The coefficient list.
//
// Returns:
//   - []int64: The parsed coefficients.
//   - error: The first parse failure, with the offending entry.
func ParseCoefficients(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]int64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q is not an integer", trimmed)
		}
		coeffs = append(coeffs, v)
	}
	return coeffs, nil
}
