package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustlay/cli/internal/config"
	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/templates"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the rustlay configuration and its templates.

Checks performed:
  1. The config file exists and decodes
  2. Every logical template is declared and readable
  3. Every template parses
  4. Templates only use feature_name, snake_case_feature_name and
     capitalize_feature_name

The config path is resolved using precedence:
  --config flag > RUSTLAY_CONFIG env > ./rustlay.toml

Without a config file the embedded templates are checked.`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	res, err := GetResolvedConfig()
	if err != nil {
		return err
	}

	src := res.TemplateSource(templates.NewBundleSource(templates.Bundle()))

	output.Debug("validating templates", "source", src.Describe(), "path", res.Path)

	reg, err := templates.Load(src)
	if err != nil {
		return err
	}

	for _, t := range reg.Templates() {
		undefined, err := templates.UndefinedSymbols(t)
		if err != nil {
			return oerrors.NewTemplateLoadError(fmt.Sprintf("template %q is malformed", t.Name), t.Origin, err)
		}
		if len(undefined) > 0 {
			return oerrors.NewRenderError(t.Name,
				fmt.Errorf("undefined symbols: %s", strings.Join(undefined, ", ")))
		}
	}

	w := cmd.OutOrStdout()
	if res.Source == config.SourceDefault {
		fmt.Fprintln(w, output.FormatCheckmark("No configuration file; embedded templates are valid"))
		return nil
	}
	fmt.Fprintln(w, output.FormatCheckmark("Configuration is valid: "+res.Path))
	return nil
}
