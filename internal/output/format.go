package output

import "strings"

// OutputFormat specifies how a generated file listing is printed.
type OutputFormat string

const (
	// FormatTree prints an indented file tree.
	FormatTree OutputFormat = "tree"

	// FormatYAML prints a YAML manifest.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON prints a JSON manifest.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTree, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second return value is false when the string is not a known format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "", "tree":
		return FormatTree, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"tree", "yaml", "json"}
}
