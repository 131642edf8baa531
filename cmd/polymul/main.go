package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/agbru/polymul/internal/app"
	apperrors "github.com/agbru/polymul/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(apperrors.ExitErrorConfig)
		}
		os.Exit(apperrors.ExitErrorGeneric)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
