package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/generator"
	"github.com/rustlay/cli/internal/output"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	dir    string
	dryRun bool
	output string
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <feature-name>",
		Short: "Generate a layered feature",
		Long: `Generate the directory tree, mod.rs aggregators and modules of a feature.

Output is written to <dir>/src/features/<feature>, where <feature> is the
snake_case form of the feature name. Existing files are overwritten.

Templates come from the configuration file when one is found:
  --config flag > RUSTLAY_CONFIG env > ./rustlay.toml > embedded templates

Examples:
  # Generate a feature in the current project
  rustlay generate user_profile

  # Generate into another project
  rustlay generate order-item --dir ../shop

  # Show what would be written
  rustlay generate user_profile --dry-run -o yaml`,
		Args: exactArgs(1, "rustlay generate <feature-name>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Project base directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the plan without writing files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(output.FormatTree),
		"Listing format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func runGenerate(cmd *cobra.Command, feature string, opts *generateOptions) error {
	format, ok := output.ParseOutputFormat(opts.output)
	if !ok {
		return oerrors.NewArgumentError(
			fmt.Sprintf("unsupported output format %q", opts.output),
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "))
	}

	src, err := templateSource()
	if err != nil {
		return err
	}

	res, err := generator.NewGenerator(appFs, src).Generate(generator.Options{
		FeatureName: feature,
		BaseDir:     opts.dir,
		DryRun:      opts.dryRun,
	})
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), res, format, output.IsTTY())
}

// printResult writes the file listing followed by the confirmation line.
// Machine-readable formats keep stdout clean and log the confirmation instead.
func printResult(w io.Writer, res *generator.Result, format output.OutputFormat, tty bool) error {
	m := res.Manifest()
	summary := confirmation(res)

	if format != output.FormatTree {
		if err := output.WriteManifest(m, format, w); err != nil {
			return err
		}
		output.Info(summary)
		return nil
	}

	listing := output.RenderManifestLines(m)
	if tty {
		listing = output.RenderManifestTree(m)
	}
	if _, err := io.WriteString(w, listing+"\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, output.FormatCheckmark(summary))
	return err
}

func confirmation(res *generator.Result) string {
	feature := output.StyleNoun.Render(res.Names.Raw)
	if res.DryRun {
		return fmt.Sprintf("Feature %s planned at %s (dry run, nothing written)", feature, res.FeatureRoot)
	}
	created, overwritten := res.Counts()
	return fmt.Sprintf("Feature %s generated at %s (%d created, %d overwritten)",
		feature, res.FeatureRoot, created, overwritten)
}
