package templates

import (
	"bytes"
	"fmt"

	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/naming"
)

// Renderer applies a feature's name variants to templates.
type Renderer struct {
	names naming.Context
}

// NewRenderer creates a new renderer for the given name context.
func NewRenderer(names naming.Context) *Renderer {
	return &Renderer{names: names}
}

// Render renders a single template. It has no side effects.
func (r *Renderer) Render(t Template) (Rendered, error) {
	parsed := t.parsed
	if parsed == nil {
		var err error
		parsed, err = parseBody(t.Name, t.Body)
		if err != nil {
			return Rendered{}, oerrors.NewRenderError(t.Name, fmt.Errorf("parsing template: %w", err))
		}
	}

	// Registry templates are shared; rebind the symbol functions on a copy.
	parsed, err := parsed.Clone()
	if err != nil {
		return Rendered{}, oerrors.NewRenderError(t.Name, err)
	}
	parsed.Funcs(symbolFuncs(r.names))

	var buf bytes.Buffer
	if err := parsed.Execute(&buf, r.names.Vars()); err != nil {
		return Rendered{}, oerrors.NewRenderError(t.Name, err)
	}

	return Rendered{Name: t.Name, Content: buf.String()}, nil
}

// RenderAll renders every template of the registry in render order.
// It returns nothing unless every template renders.
func (r *Renderer) RenderAll(reg *Registry) ([]Rendered, error) {
	tmpls := reg.Templates()
	out := make([]Rendered, 0, len(tmpls))
	for _, t := range tmpls {
		rendered, err := r.Render(t)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return out, nil
}
