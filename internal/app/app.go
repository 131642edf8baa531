// Package app wires configuration, backend selection, orchestration, and
// presentation into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/polymul/internal/config"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/logging"
	"github.com/agbru/polymul/internal/server"
	"github.com/agbru/polymul/internal/transform"
	"github.com/agbru/polymul/internal/ui"
)

// Version is the application version reported by --version.
const Version = "1.0.0"

// Application represents the polymul application instance.
type Application struct {
	Config    config.AppConfig
	Factory   transform.Factory
	ErrWriter io.Writer

	customFactory bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom transform.Factory for the application.
func WithFactory(f transform.Factory) AppOption {
	return func(a *Application) {
		a.Factory = f
		a.customFactory = true
	}
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: os.Args-style arguments (args[0] is the program name).
//   - errWriter: Destination for parse errors and usage text.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = transform.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "polymul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	// A non-default lane group requires rebuilding the accelerator backend.
	if !app.customFactory && cfg.LaneGroup != config.DefaultLaneGroup {
		acc, accErr := transform.NewAcceleratorWithLaneGroup(cfg.LaneGroup)
		if accErr != nil {
			return nil, accErr
		}
		app.Factory = transform.NewFactory(transform.NewRecursive(), transform.NewIterative(), acc)
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The root context.
//   - out: Destination for normal output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.Theme)
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if a.Config.Serve != "" {
		return a.runServe(ctx)
	}
	return a.runCompute(ctx, out)
}

// runServe runs the HTTP server until interrupted.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewDefaultLogger()
	srv := server.New(a.Config.Serve, a.Factory, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server terminated", logging.Err(err))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// HasVersionFlag reports whether args request the application version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the application version to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "polymul %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
