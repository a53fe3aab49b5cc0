// Package generator runs the feature generation pipeline: derive names,
// load templates, scaffold the layer tree, render and persist modules.
package generator

import (
	"github.com/rustlay/cli/internal/naming"
	"github.com/rustlay/cli/internal/output"
)

// DefaultBaseDir is the project directory used when Options.BaseDir is empty.
const DefaultBaseDir = "."

// Options are the inputs of one generation run.
type Options struct {
	// FeatureName is the raw feature name. Required.
	FeatureName string

	// BaseDir is the project directory; output lands in
	// BaseDir/src/features/<snake>. Defaults to the current directory.
	BaseDir string

	// DryRun computes and renders everything but writes nothing.
	DryRun bool
}

func (o Options) baseDir() string {
	if o.BaseDir == "" {
		return DefaultBaseDir
	}
	return o.BaseDir
}

// Entry describes one file of the run.
type Entry struct {
	// Path is the file path.
	Path string

	// Kind is output.KindAggregator or output.KindSource.
	Kind string

	// Template is the logical template name; empty for aggregators.
	Template string

	// Status is output.StatusCreated, StatusOverwritten or StatusPlanned.
	Status string
}

// Result is the outcome of a successful run.
type Result struct {
	// Names holds the derived name variants.
	Names naming.Context

	// FeatureRoot is the feature root directory.
	FeatureRoot string

	// Source describes where the templates came from.
	Source string

	// DryRun is true when nothing was written.
	DryRun bool

	// Dirs lists the feature directories, root first.
	Dirs []string

	// Aggregators lists the aggregator files in scaffold order.
	Aggregators []Entry

	// Files lists the rendered modules in render order.
	Files []Entry
}

// Manifest converts the result into the listing printed by the CLI.
// Aggregators come first, followed by the rendered modules.
func (r *Result) Manifest() output.Manifest {
	m := output.Manifest{
		Feature: r.Names.Raw,
		Root:    r.FeatureRoot,
		DryRun:  r.DryRun,
		Files:   make([]output.ManifestEntry, 0, len(r.Aggregators)+len(r.Files)),
	}
	for _, group := range [][]Entry{r.Aggregators, r.Files} {
		for _, e := range group {
			m.Files = append(m.Files, output.ManifestEntry{
				Path:     e.Path,
				Kind:     e.Kind,
				Template: e.Template,
				Status:   e.Status,
			})
		}
	}
	return m
}

// Counts returns how many files were created and overwritten.
func (r *Result) Counts() (created, overwritten int) {
	for _, group := range [][]Entry{r.Aggregators, r.Files} {
		for _, e := range group {
			switch e.Status {
			case output.StatusCreated:
				created++
			case output.StatusOverwritten:
				overwritten++
			}
		}
	}
	return created, overwritten
}
