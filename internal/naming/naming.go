// Package naming derives the feature name variants used by every template and path.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/rustlay/cli/internal/errors"
)

// Template symbols bound to the name variants.
const (
	SymbolRaw    = "feature_name"
	SymbolSnake  = "snake_case_feature_name"
	SymbolPascal = "capitalize_feature_name"
)

// Context holds the name variants of a single feature.
type Context struct {
	// Raw is the feature name exactly as given.
	Raw string

	// Snake is Raw lower-cased with '-' replaced by '_' (e.g., "order_item").
	Snake string

	// Pascal is Raw split on '_' with each segment capitalized (e.g., "UserProfile").
	// '-' is not a segment separator here.
	Pascal string
}

// Derive builds the Context for a raw feature name.
func Derive(raw string) (Context, error) {
	if raw == "" {
		return Context{}, oerrors.NewArgumentError("feature name cannot be empty",
			"Pass the feature name as the first argument, e.g. rustlay generate user_profile")
	}

	return Context{
		Raw:    raw,
		Snake:  Snake(raw),
		Pascal: Pascal(raw),
	}, nil
}

// Snake lower-cases raw and replaces '-' with '_'.
// Casers are stateful, so each call builds its own language-neutral one.
func Snake(raw string) string {
	return strings.ReplaceAll(cases.Lower(language.Und).String(raw), "-", "_")
}

// Pascal splits raw on '_' and upper-cases the first character of each
// segment, keeping the remainder unchanged. Empty segments are skipped.
func Pascal(raw string) string {
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(raw))

	for _, segment := range strings.Split(raw, "_") {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		b.WriteString(upper.String(string(first)))
		b.WriteString(segment[size:])
	}

	return b.String()
}

// Vars returns the template symbols for this context.
func (c Context) Vars() map[string]string {
	return map[string]string{
		SymbolRaw:    c.Raw,
		SymbolSnake:  c.Snake,
		SymbolPascal: c.Pascal,
	}
}
