package generator

import (
	"github.com/spf13/afero"

	"github.com/rustlay/cli/internal/layout"
	"github.com/rustlay/cli/internal/naming"
	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/templates"
)

// Generator produces feature scaffolding from a template source.
type Generator struct {
	fs     afero.Fs
	source templates.Source
}

// NewGenerator creates a generator writing to fs with templates from source.
func NewGenerator(fs afero.Fs, source templates.Source) *Generator {
	return &Generator{fs: fs, source: source}
}

// Generate runs the pipeline.
//
// Phase sequence:
//  1. DERIVE:   naming.Derive() → naming.Context
//  2. LOAD:     templates.Load() → *templates.Registry
//  3. SCAFFOLD: layout.Scaffolder.Scaffold() → directories + aggregators
//  4. RENDER:   templates.Renderer.RenderAll() → []templates.Rendered
//  5. PERSIST:  MapOutputs() + Persist()
//
// The registry is loaded before anything touches the filesystem, so a
// missing template writes nothing. A render failure leaves the scaffold in
// place but writes no module. Nothing is rolled back.
func (g *Generator) Generate(opts Options) (*Result, error) {
	// Phase 1: DERIVE
	names, err := naming.Derive(opts.FeatureName)
	if err != nil {
		return nil, err
	}
	log := output.FeatureLogger(names.Raw)
	log.Debug("derived names", "snake", names.Snake, "pascal", names.Pascal)

	// Phase 2: LOAD
	reg, err := templates.Load(g.source)
	if err != nil {
		return nil, err
	}

	root := layout.FeatureRoot(opts.baseDir(), names.Snake)
	res := &Result{
		Names:       names,
		FeatureRoot: root,
		Source:      reg.Source(),
		DryRun:      opts.DryRun,
	}

	// Phase 3: SCAFFOLD
	if opts.DryRun {
		plan := layout.PlanScaffold(root, names)
		res.Dirs = plan.Dirs
		res.Aggregators = plannedEntries(plan.Aggregators, output.KindAggregator)
	} else {
		scaffold, err := layout.NewScaffolder(g.fs).Scaffold(root, names)
		if err != nil {
			return nil, err
		}
		res.Dirs = scaffold.Dirs
		res.Aggregators = writtenEntries(scaffold.Written, output.KindAggregator, nil)
	}
	log.Debug("scaffold ready", "root", root, "dirs", len(res.Dirs), "aggregators", len(res.Aggregators))

	// Phase 4: RENDER
	rendered, err := templates.NewRenderer(names).RenderAll(reg)
	if err != nil {
		return nil, err
	}

	// Phase 5: PERSIST
	files, err := MapOutputs(rendered, root, names)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		res.Files = make([]Entry, len(files))
		for i, f := range files {
			res.Files[i] = Entry{Path: f.Path, Kind: output.KindSource, Template: f.Template, Status: output.StatusPlanned}
		}
		log.Debug("dry run, nothing written", "files", len(files))
		return res, nil
	}

	written, err := Persist(g.fs, files)
	if err != nil {
		return nil, err
	}

	tmplNames := make([]string, len(files))
	for i, f := range files {
		tmplNames[i] = f.Template
	}
	res.Files = writtenEntries(written, output.KindSource, tmplNames)
	log.Debug("modules written", "files", len(res.Files))

	return res, nil
}

func plannedEntries(files []layout.File, kind string) []Entry {
	out := make([]Entry, len(files))
	for i, f := range files {
		out[i] = Entry{Path: f.Path, Kind: kind, Status: output.StatusPlanned}
	}
	return out
}

// writtenEntries converts write records into entries; tmplNames, when set,
// is parallel to written.
func writtenEntries(written []layout.Written, kind string, tmplNames []string) []Entry {
	out := make([]Entry, len(written))
	for i, w := range written {
		status := output.StatusCreated
		if w.Overwritten {
			status = output.StatusOverwritten
		}
		out[i] = Entry{Path: w.Path, Kind: kind, Status: status}
		if i < len(tmplNames) {
			out[i].Template = tmplNames[i]
		}
	}
	return out
}
