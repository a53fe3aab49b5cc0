// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rustlay/cli/internal/config"
	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/templates"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// appFs is the filesystem every command reads from and writes to.
	appFs afero.Fs = afero.NewOsFs()

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.Resolved
	resolveErr     error
)

// NewRootCmd creates the root command for the rustlay CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rustlay",
		Short: "Layered feature scaffolding for Rust projects",
		Long: `rustlay generates a layered feature module for a Rust project.

Each feature gets application, domain, infrastructure and interface layers
under src/features/<feature>, with mod.rs aggregators and eight modules
rendered from templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return oerrors.NewArgumentError("subcommand required", "Usage: rustlay generate <feature-name>")
		},
	}

	rootCmd.SetFlagErrorFunc(flagError)

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: RUSTLAY_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals resolves the configuration and sets up logging.
// A configuration that fails to load is not fatal here; commands that need
// templates report it through templateSource.
func initializeGlobals(cmd *cobra.Command) error {
	resolvedConfig, resolveErr = nil, nil

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	resolvedConfig, resolveErr = config.Resolve(config.ResolveOptions{
		Fs:         appFs,
		ConfigFlag: configFlag,
		WorkDir:    wd,
	})

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if resolvedConfig != nil {
		logCfg.Timestamps = resolvedConfig.Config.Timestamps()
	}

	output.SetupLogging(logCfg)

	if resolveErr != nil {
		output.Debug("config load error", "error", resolveErr)
		return nil
	}

	output.Debug("initializing CLI",
		"config", resolvedConfig.Path,
		"source", resolvedConfig.Source,
	)
	return nil
}

// GetResolvedConfig returns the resolved configuration, or the error that
// prevented resolving it.
func GetResolvedConfig() (*config.Resolved, error) {
	if resolveErr != nil {
		return nil, resolveErr
	}
	if resolvedConfig == nil {
		return &config.Resolved{Source: config.SourceDefault}, nil
	}
	return resolvedConfig, nil
}

// templateSource returns the template source selected by the configuration.
func templateSource() (templates.Source, error) {
	res, err := GetResolvedConfig()
	if err != nil {
		return nil, err
	}
	return res.TemplateSource(templates.NewBundleSource(templates.Bundle())), nil
}
