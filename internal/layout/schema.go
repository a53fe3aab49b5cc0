// Package layout describes the layered directory structure of a feature and
// creates it on disk.
package layout

import (
	"path/filepath"
	"strings"

	"github.com/rustlay/cli/internal/templates"
)

// Layer names in generation order.
const (
	LayerApplication    = "application"
	LayerDomain         = "domain"
	LayerInfrastructure = "infrastructure"
	LayerInterface      = "interface"
)

const (
	// AggregatorFile is the file name of every aggregator.
	AggregatorFile = "mod.rs"

	// SourceExt is the extension of rendered source files.
	SourceExt = ".rs"

	// FeaturesDir is where feature roots live, relative to the project base.
	FeaturesDir = "src/features"

	// snakePlaceholder is replaced by the snake-case feature name in module stems.
	snakePlaceholder = "{snake}"
)

// Module is a rendered source file living in a subfolder.
type Module struct {
	// Template is the logical template name rendered into this module.
	Template string

	// Stem is the file name without extension; "{snake}" is substituted.
	Stem string
}

// Subfolder is a directory inside a layer.
type Subfolder struct {
	Name string

	// Module is nil for subfolders whose aggregator is empty.
	Module *Module
}

// Layer is one of the four architectural groupings.
type Layer struct {
	Name       string
	Subfolders []Subfolder
}

// schema is the fixed layer table. Order is significant: it is the order
// of directory creation and of the declarations in every aggregator.
var schema = []Layer{
	{
		Name: LayerApplication,
		Subfolders: []Subfolder{
			{Name: "di", Module: &Module{Template: templates.Container, Stem: "container"}},
			{Name: "interactor", Module: &Module{Template: templates.IInteractor, Stem: "i_{snake}_interactor"}},
			{Name: "use_case", Module: &Module{Template: templates.UseCase, Stem: "{snake}_use_case"}},
			{Name: "model"},
			{Name: "util"},
		},
	},
	{
		Name: LayerDomain,
		Subfolders: []Subfolder{
			{Name: "interactor", Module: &Module{Template: templates.InteractorImpl, Stem: "{snake}_interactor_impl"}},
			{Name: "repository", Module: &Module{Template: templates.IRepository, Stem: "i_{snake}_repository"}},
			{Name: "entity"},
		},
	},
	{
		Name: LayerInfrastructure,
		Subfolders: []Subfolder{
			{Name: "data_access", Module: &Module{Template: templates.DataSource, Stem: "{snake}_data_source"}},
			{Name: "dto"},
			{Name: "enum"},
			{Name: "mapper"},
			{Name: "repository", Module: &Module{Template: templates.RepositoryImpl, Stem: "{snake}_repository_impl"}},
		},
	},
	{
		Name: LayerInterface,
		Subfolders: []Subfolder{
			{Name: "controller", Module: &Module{Template: templates.Controller, Stem: "{snake}_controller"}},
			{Name: "model"},
		},
	},
}

// Layers returns the fixed layers in generation order.
func Layers() []Layer {
	out := make([]Layer, len(schema))
	for i, l := range schema {
		subs := make([]Subfolder, len(l.Subfolders))
		for j, s := range l.Subfolders {
			subs[j] = Subfolder{Name: s.Name}
			if s.Module != nil {
				m := *s.Module
				subs[j].Module = &m
			}
		}
		out[i] = Layer{Name: l.Name, Subfolders: subs}
	}
	return out
}

// LayerNames returns the layer names in generation order.
func LayerNames() []string {
	names := make([]string, len(schema))
	for i, l := range schema {
		names[i] = l.Name
	}
	return names
}

// ForLayer returns the layer with the given name.
func ForLayer(name string) (Layer, bool) {
	for _, l := range Layers() {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Destination locates the module rendered from a logical template.
type Destination struct {
	Layer     string
	Subfolder string
	Module    Module
}

// Destinations returns every module in the schema in generation order.
func Destinations() []Destination {
	var out []Destination
	for _, l := range schema {
		for _, s := range l.Subfolders {
			if s.Module == nil {
				continue
			}
			out = append(out, Destination{Layer: l.Name, Subfolder: s.Name, Module: *s.Module})
		}
	}
	return out
}

// TemplateNames returns the logical template names the schema requires, in generation order.
func TemplateNames() []string {
	dests := Destinations()
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.Module.Template
	}
	return names
}

// FileName returns the module's file name for the given snake-case feature name.
func (m Module) FileName(snake string) string {
	return strings.ReplaceAll(m.Stem, snakePlaceholder, snake) + SourceExt
}

// Path returns the module's path below the feature root.
func (d Destination) Path(featureRoot, snake string) string {
	return filepath.Join(featureRoot, d.Layer, d.Subfolder, d.Module.FileName(snake))
}

// FeatureRoot returns the feature root below the project base directory.
func FeatureRoot(baseDir, snake string) string {
	return filepath.Join(baseDir, filepath.FromSlash(FeaturesDir), snake)
}

// declarations renders one re-export declaration per name, joined by newlines.
func declarations(names []string) string {
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "pub mod " + n + ";"
	}
	return strings.Join(lines, "\n")
}

// featureAggregator is the content of the feature root aggregator.
func featureAggregator() string {
	return declarations(LayerNames())
}

// layerAggregator is the content of a layer aggregator.
func layerAggregator(l Layer) string {
	names := make([]string, len(l.Subfolders))
	for i, s := range l.Subfolders {
		names[i] = s.Name
	}
	return declarations(names)
}

// subfolderAggregator is the content of a subfolder aggregator; empty without a module.
func subfolderAggregator(s Subfolder, snake string) string {
	if s.Module == nil {
		return ""
	}
	return declarations([]string{strings.TrimSuffix(s.Module.FileName(snake), SourceExt)})
}
