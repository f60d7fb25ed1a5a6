// Package main is the entry point for the cargo-hatch CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dnaka91/cargo-hatch/internal/cmd"
	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	stop()

	// Check if the error contains an ExitError with a specific code
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		// Only print if the command layer hasn't already printed it
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		output.Debug("exiting", "code", exitErr.Code, "reason", cmd.ExitCodeName(exitErr.Code))
		os.Exit(exitErr.Code)
	}

	// Non-ExitError: flag or argument parsing failed before a command ran
	fmt.Fprintln(os.Stderr, err)
	os.Exit(oerrors.ExitCodeFromError(err))
}
