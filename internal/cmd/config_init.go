package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rustlay/cli/internal/config"
	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/templates"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a project configuration",
		Long: `Initialize the rustlay configuration in the current directory.

Creates the following files:
  rustlay.toml   Maps each logical template to a file
  templates/     The embedded templates, ready to customize

Examples:
  # Initialize configuration
  rustlay config init

  # Overwrite existing configuration and templates
  rustlay config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration and templates")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return oerrors.NewIOError("could not determine working directory", ".", err)
	}

	configPath := filepath.Join(wd, config.DefaultConfigFile)
	templateDir := filepath.Join(wd, config.DefaultTemplateDir)

	if !force {
		for _, p := range []string{configPath, templateDir} {
			exists, err := afero.Exists(appFs, p)
			if err != nil {
				return oerrors.NewIOError("could not stat path", p, err)
			}
			if exists {
				return &oerrors.DetailError{
					Type:     "invalid argument",
					Message:  "configuration already exists",
					Location: p,
					Hint:     "Use --force to overwrite existing configuration.",
					Kind:     oerrors.ErrArgument,
				}
			}
		}
	}

	if err := config.Write(appFs, configPath, config.DefaultConfig(config.DefaultTemplateDir)); err != nil {
		return oerrors.NewIOError("could not write configuration file", configPath, err)
	}

	exported, err := templates.Export(templates.Bundle(), appFs, templateDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(wd)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Created files:")
	fmt.Fprintln(w, "  "+configPath)
	for _, p := range exported {
		fmt.Fprintln(w, "  "+p)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate with: rustlay config vet")

	return nil
}
