package templates

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/rustlay/cli/internal/errors"
)

// Source supplies template bodies keyed by logical name.
type Source interface {
	// Describe names the source for diagnostics.
	Describe() string

	// Read returns every template the source declares, keyed by logical name.
	Read() (map[string]Template, error)
}

// BundleSource reads templates from a flat fs.FS; the logical name of each
// file is its base name without extension.
type BundleSource struct {
	fsys fs.FS
}

// NewBundleSource creates a source over fsys, typically Bundle().
func NewBundleSource(fsys fs.FS) *BundleSource {
	return &BundleSource{fsys: fsys}
}

// Describe implements Source.
func (s *BundleSource) Describe() string {
	return "embedded bundle"
}

// Read implements Source.
func (s *BundleSource) Read() (map[string]Template, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, oerrors.NewTemplateLoadError("could not list template bundle", ".", err)
	}

	out := make(map[string]Template, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := stem(e.Name())
		if prev, ok := out[name]; ok {
			return nil, oerrors.NewTemplateLoadError(
				fmt.Sprintf("logical name %q is provided by both %s and %s", name, prev.Origin, e.Name()),
				name, nil)
		}

		body, err := fs.ReadFile(s.fsys, e.Name())
		if err != nil {
			return nil, oerrors.NewTemplateLoadError("could not read bundled template", e.Name(), err)
		}

		out[name] = Template{Name: name, Body: string(body), Origin: e.Name()}
	}

	return out, nil
}

// stem returns the base name of p without its extension.
func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ConfigSource reads templates from files declared as (logical name, path)
// pairs, typically the templates table of the configuration file.
type ConfigSource struct {
	fs      afero.Fs
	entries map[string]string
	baseDir string
}

// NewConfigSource creates a source reading entries from fs. Relative paths
// resolve against baseDir.
func NewConfigSource(fs afero.Fs, entries map[string]string, baseDir string) *ConfigSource {
	return &ConfigSource{fs: fs, entries: entries, baseDir: baseDir}
}

// Describe implements Source.
func (s *ConfigSource) Describe() string {
	return "configuration file"
}

// Read implements Source. Entries are read in name order so the first
// failure reported is deterministic.
func (s *ConfigSource) Read() (map[string]Template, error) {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]Template, len(names))
	for _, name := range names {
		p := s.resolve(s.entries[name])
		if p == "" {
			return nil, oerrors.NewTemplateLoadError(
				fmt.Sprintf("template %q has an empty path", name), name, nil)
		}

		body, err := afero.ReadFile(s.fs, p)
		if err != nil {
			return nil, oerrors.NewTemplateLoadError(
				fmt.Sprintf("could not read template %q", name), p, err)
		}

		out[name] = Template{Name: name, Body: string(body), Origin: p}
	}

	return out, nil
}

func (s *ConfigSource) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || s.baseDir == "" {
		return p
	}
	return filepath.Join(s.baseDir, p)
}
