package generator

import (
	"fmt"

	"github.com/spf13/afero"

	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/layout"
	"github.com/rustlay/cli/internal/naming"
	"github.com/rustlay/cli/internal/templates"
)

// SourceFile is a rendered module bound to its destination.
type SourceFile struct {
	layout.File

	// Template is the logical template the content was rendered from.
	Template string
}

// MapOutputs binds every rendered template to its destination below
// featureRoot. A template without a destination fails the whole set.
func MapOutputs(rendered []templates.Rendered, featureRoot string, names naming.Context) ([]SourceFile, error) {
	dests := make(map[string]layout.Destination)
	for _, d := range layout.Destinations() {
		dests[d.Module.Template] = d
	}

	files := make([]SourceFile, 0, len(rendered))
	for _, r := range rendered {
		d, ok := dests[r.Name]
		if !ok {
			return nil, &oerrors.DetailError{
				Type:     "render failed",
				Message:  fmt.Sprintf("template %q has no output destination", r.Name),
				Location: r.Name,
				Kind:     oerrors.ErrRender,
			}
		}
		files = append(files, SourceFile{
			File:     layout.File{Path: d.Path(featureRoot, names.Snake), Content: r.Content},
			Template: r.Name,
		})
	}
	return files, nil
}

// Persist writes the mapped files, overwriting existing ones.
func Persist(fs afero.Fs, files []SourceFile) ([]layout.Written, error) {
	plain := make([]layout.File, len(files))
	for i, f := range files {
		plain[i] = f.File
	}
	return layout.WriteFiles(fs, plain)
}
