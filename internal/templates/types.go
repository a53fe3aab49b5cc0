// Package templates provides the template registry and renderer for feature scaffolding.
package templates

import "text/template"

// Logical template names. Every generation run needs all of them.
const (
	Container      = "container"
	IInteractor    = "i_interactor"
	UseCase        = "use_case"
	IRepository    = "i_repository"
	InteractorImpl = "interactor_impl"
	DataSource     = "data_source"
	RepositoryImpl = "repository_impl"
	Controller     = "controller"
)

// LogicalNames returns the required logical template names in render order.
func LogicalNames() []string {
	return []string{
		Container,
		IInteractor,
		UseCase,
		IRepository,
		InteractorImpl,
		DataSource,
		RepositoryImpl,
		Controller,
	}
}

// IsLogicalName checks if name is one of the required logical template names.
func IsLogicalName(name string) bool {
	for _, n := range LogicalNames() {
		if n == name {
			return true
		}
	}
	return false
}

// Template is a named template body.
type Template struct {
	// Name is the logical template name.
	Name string

	// Body is the raw template text.
	Body string

	// Origin is where the body was loaded from (bundle or file path).
	Origin string

	parsed *template.Template
}

// Rendered is the output of applying a name context to a template.
type Rendered struct {
	// Name is the logical template name.
	Name string

	// Content is the rendered text.
	Content string
}
