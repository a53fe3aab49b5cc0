package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File kinds reported in a manifest.
const (
	KindAggregator = "aggregator"
	KindSource     = "source"
)

// Manifest describes the files of one generation run.
type Manifest struct {
	Feature string          `json:"feature" yaml:"feature"`
	Root    string          `json:"root" yaml:"root"`
	DryRun  bool            `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	Files   []ManifestEntry `json:"files" yaml:"files"`
}

// ManifestEntry describes a single generated file.
type ManifestEntry struct {
	Path     string `json:"path" yaml:"path"`
	Kind     string `json:"kind" yaml:"kind"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
	Status   string `json:"status" yaml:"status"`
}

// WriteManifest writes the manifest to w in the given format.
func WriteManifest(m Manifest, format OutputFormat, w io.Writer) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatTree:
		_, err := io.WriteString(w, RenderManifestTree(m))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// RenderManifestLines renders one status line per file, in manifest order.
func RenderManifestLines(m Manifest) string {
	var out string
	for _, f := range m.Files {
		out += FormatFileLine(f.Path, f.Status) + "\n"
	}
	return out
}
