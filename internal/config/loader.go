package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	oerrors "github.com/rustlay/cli/internal/errors"
)

// Environment variable prefix for rustlay configuration.
const envPrefix = "RUSTLAY"

// supportedTypes are the config file extensions viper can decode.
var supportedTypes = map[string]bool{
	"toml": true,
	"yaml": true,
	"yml":  true,
	"json": true,
}

// envBindings are explicit key to variable bindings on top of AutomaticEnv.
var envBindings = [][]string{
	{"log.timestamps", "RUSTLAY_LOG_TIMESTAMPS"},
}

// Loader reads configuration files.
type Loader struct {
	v  *viper.Viper
	fs afero.Fs
}

// NewLoader creates a new configuration loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, fs: fs}
}

// bindEnv applies bindings to v. Each binding is a config key optionally
// followed by the variables it reads.
func bindEnv(v *viper.Viper, bindings [][]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("binding %v: %w", b, err)
		}
	}
	return nil
}

// Load reads the config file at path. A missing, unreadable or malformed
// file is an error, as is a file without a templates table.
func (l *Loader) Load(path string) (*Config, error) {
	if err := bindEnv(l.v, envBindings); err != nil {
		return nil, oerrors.NewTemplateLoadError("could not bind environment variables", path, err)
	}

	ok, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, oerrors.NewTemplateLoadError("could not stat configuration file", path, err)
	}
	if !ok {
		return nil, &oerrors.DetailError{
			Type:     "template load failed",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'rustlay config init' to create one, or omit --config to use the embedded templates.",
			Kind:     oerrors.ErrTemplateLoad,
		}
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType(configType(path))

	if err := l.v.ReadInConfig(); err != nil {
		return nil, oerrors.NewTemplateLoadError("could not read configuration file", path, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewTemplateLoadError("malformed configuration file", path, err)
	}

	if len(cfg.Templates) == 0 {
		return nil, oerrors.NewTemplateLoadError(
			"configuration file has no [templates] section", path, nil)
	}

	return &cfg, nil
}

// configType maps a file extension to a viper config type; unknown extensions read as TOML.
func configType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if supportedTypes[ext] {
		return ext
	}
	return "toml"
}
