package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/templates"
)

// ConfigSource indicates where the config file path came from.
type ConfigSource string

const (
	// SourceFlag indicates the path came from the --config flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates the path came from RUSTLAY_CONFIG.
	SourceEnv ConfigSource = "env"
	// SourceWorkDir indicates rustlay.toml was found in the working directory.
	SourceWorkDir ConfigSource = "workdir"
	// SourceDefault indicates no config file; the embedded bundle is used.
	SourceDefault ConfigSource = "default"
)

// ResolveOptions contains the inputs of config resolution.
type ResolveOptions struct {
	// Fs is the filesystem config files are read from.
	Fs afero.Fs

	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string

	// WorkDir is the directory searched for DefaultConfigFile.
	WorkDir string
}

// Resolved is the outcome of config resolution.
type Resolved struct {
	// Path is the config file used; empty when Source is SourceDefault.
	Path string

	// Source indicates where Path came from.
	Source ConfigSource

	// Config is the loaded file; nil when Source is SourceDefault.
	Config *Config

	fs afero.Fs
}

// Resolve locates and loads the configuration using precedence:
// (1) --config flag, (2) RUSTLAY_CONFIG env, (3) rustlay.toml in the working
// directory, (4) none. An explicitly named file that cannot be loaded is an error.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	res := &Resolved{Source: SourceDefault, fs: fs}

	switch {
	case opts.ConfigFlag != "":
		res.Path, res.Source = opts.ConfigFlag, SourceFlag
	case os.Getenv(EnvConfig) != "":
		res.Path, res.Source = os.Getenv(EnvConfig), SourceEnv
	default:
		candidate := filepath.Join(opts.WorkDir, DefaultConfigFile)
		ok, err := afero.Exists(fs, candidate)
		if err != nil {
			return nil, oerrors.NewTemplateLoadError("could not stat configuration file", candidate, err)
		}
		if ok {
			res.Path, res.Source = candidate, SourceWorkDir
		}
	}

	if res.Source == SourceDefault {
		output.Debug("no configuration file, using embedded templates")
		return res, nil
	}

	cfg, err := NewLoader(fs).Load(res.Path)
	if err != nil {
		return nil, err
	}
	res.Config = cfg

	output.Debug("loaded configuration", "path", res.Path, "source", res.Source, "templates", len(cfg.Templates))
	return res, nil
}

// TemplateSource returns the template source selected by the configuration:
// the declared files when a config file was loaded, the bundle otherwise.
func (r *Resolved) TemplateSource(bundle templates.Source) templates.Source {
	if r.Config == nil {
		return bundle
	}
	return templates.NewConfigSource(r.fs, r.Config.Templates, filepath.Dir(r.Path))
}
