package templates

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/naming"
	"github.com/rustlay/cli/internal/output"
)

// Registry holds the parsed templates of one generation run.
type Registry struct {
	source    string
	templates map[string]Template
}

// Load reads every template from src and parses the required ones.
// It fails unless all logical names resolve; no partial registry is returned.
func Load(src Source) (*Registry, error) {
	raw, err := src.Read()
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		source:    src.Describe(),
		templates: make(map[string]Template, len(LogicalNames())),
	}

	for _, name := range LogicalNames() {
		t, ok := raw[name]
		if !ok {
			return nil, &oerrors.DetailError{
				Type:     "template load failed",
				Message:  fmt.Sprintf("no template provided for logical name %q by the %s", name, src.Describe()),
				Location: name,
				Hint:     "Declare every logical template in the [templates] table, or run rustlay config init.",
				Kind:     oerrors.ErrTemplateLoad,
			}
		}

		parsed, err := parseBody(name, t.Body)
		if err != nil {
			return nil, parseError(t, err)
		}
		t.parsed = parsed
		reg.templates[name] = t
	}

	for name, t := range raw {
		if !IsLogicalName(name) {
			output.Warn("ignoring unknown template", "name", name, "origin", t.Origin)
		}
	}

	output.Debug("loaded templates", "source", reg.source, "count", len(reg.templates))
	return reg, nil
}

// parseBody compiles a template body. Symbols may be written as fields
// ({{.feature_name}}) or bare ({{feature_name}}); the bare form is bound
// through placeholder functions that the renderer replaces.
func parseBody(name, body string) (*template.Template, error) {
	return template.New(name).
		Option("missingkey=error").
		Funcs(symbolFuncs(naming.Context{})).
		Parse(body)
}

// symbolFuncs binds each template symbol, as a function, to its value in names.
func symbolFuncs(names naming.Context) template.FuncMap {
	funcs := make(template.FuncMap, 3)
	for symbol, value := range names.Vars() {
		funcs[symbol] = func() string { return value }
	}
	return funcs
}

// parseError classifies a parse failure. A bare reference to an unknown
// symbol is a render error naming the template; anything else means the
// template is malformed.
func parseError(t Template, err error) error {
	if strings.Contains(err.Error(), "function \"") && strings.Contains(err.Error(), "not defined") {
		return oerrors.NewRenderError(t.Name, err)
	}
	return oerrors.NewTemplateLoadError(
		fmt.Sprintf("template %q is malformed", t.Name), t.Origin, err)
}

// Source describes where the registry's templates came from.
func (r *Registry) Source() string {
	return r.source
}

// Get returns a template by logical name.
func (r *Registry) Get(name string) (Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// Names returns the registered logical names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns the registered templates in render order.
func (r *Registry) Templates() []Template {
	out := make([]Template, 0, len(r.templates))
	for _, name := range LogicalNames() {
		if t, ok := r.templates[name]; ok {
			out = append(out, t)
		}
	}
	return out
}
