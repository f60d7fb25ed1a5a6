// Package cmd provides command implementations for the cargo-hatch CLI.
package cmd

import (
	"errors"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
	"github.com/dnaka91/cargo-hatch/internal/output"
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case oerrors.ExitSuccess:
		return "Success"
	case oerrors.ExitGeneralError:
		return "General Error"
	case oerrors.ExitConfigError:
		return "Configuration Error"
	case oerrors.ExitNotFound:
		return "Not Found"
	case oerrors.ExitCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// reportError logs err once and wraps it with its exit code. The returned
// ExitError is marked as printed so main does not repeat it.
func reportError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code := oerrors.ExitCodeFromError(err)
	if code == oerrors.ExitCancelled {
		output.Warn("generation cancelled")
	} else {
		output.Error(err.Error())
	}

	return &oerrors.ExitError{Err: err, Code: code, Printed: true}
}
