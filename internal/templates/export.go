package templates

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rustlay/cli/internal/errors"
)

// Export copies every file of a bundle into dir on dst and returns the
// written paths. Existing files are overwritten.
func Export(bundle fs.FS, dst afero.Fs, dir string) ([]string, error) {
	if err := dst.MkdirAll(dir, 0o755); err != nil {
		return nil, oerrors.NewIOError("could not create template directory", dir, err)
	}

	entries, err := fs.ReadDir(bundle, ".")
	if err != nil {
		return nil, oerrors.NewTemplateLoadError("could not list template bundle", ".", err)
	}

	var written []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		data, err := fs.ReadFile(bundle, e.Name())
		if err != nil {
			return written, oerrors.NewTemplateLoadError("could not read bundled template", e.Name(), err)
		}

		target := filepath.Join(dir, e.Name())
		if err := afero.WriteFile(dst, target, data, 0o644); err != nil {
			return written, oerrors.NewIOError("could not write template", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}
