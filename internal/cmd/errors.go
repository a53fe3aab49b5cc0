package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/rustlay/cli/internal/errors"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrArgument):
		return ExitArgumentError
	case errors.Is(err, oerrors.ErrTemplateLoad):
		return ExitTemplateLoadError
	case errors.Is(err, oerrors.ErrRender):
		return ExitRenderError
	case errors.Is(err, oerrors.ErrIO):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

// flagError turns cobra flag parsing failures into argument errors.
func flagError(cmd *cobra.Command, err error) error {
	return NewExitError(oerrors.NewArgumentError(err.Error(),
		fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())), ExitArgumentError)
}

// exactArgs is cobra.ExactArgs reporting an argument error.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return oerrors.NewArgumentError(
				fmt.Sprintf("accepts %d arg(s), received %d", n, len(args)),
				"Usage: "+usage)
		}
		return nil
	}
}
