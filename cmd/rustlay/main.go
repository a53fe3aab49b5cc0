// Package main is the entry point for the rustlay CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rustlay/cli/internal/cmd"
	"github.com/rustlay/cli/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		code := cmd.ExitCodeFromError(err)
		fmt.Fprintln(os.Stderr, err)
		output.Debug("exiting", "code", code, "reason", cmd.ExitCodeName(code))
		os.Exit(code)
	}
}
