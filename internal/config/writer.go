package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// header is prepended to files written by config init.
const header = `# rustlay configuration.
# Each entry under [templates] maps a logical template name to a file path,
# relative to this file. All eight logical names are required.

`

// Marshal encodes cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	body, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(header), body...), nil
}

// Write encodes cfg as TOML and writes it to path.
func Write(fs afero.Fs, path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
