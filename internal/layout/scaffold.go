package layout

import (
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rustlay/cli/internal/errors"
	"github.com/rustlay/cli/internal/naming"
	"github.com/rustlay/cli/internal/output"
)

// File permissions for everything the generator writes.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is a generated file ready to persist.
type File struct {
	Path    string
	Content string
}

// Plan is the directory tree and aggregator files for one feature.
type Plan struct {
	// Root is the feature root directory.
	Root string

	// Dirs lists directories in creation order, Root first.
	Dirs []string

	// Aggregators lists aggregator files, feature root first, then each
	// layer followed by its subfolders.
	Aggregators []File
}

// PlanScaffold computes the scaffolding for a feature without touching the filesystem.
func PlanScaffold(featureRoot string, names naming.Context) Plan {
	plan := Plan{
		Root: featureRoot,
		Dirs: []string{featureRoot},
		Aggregators: []File{{
			Path:    filepath.Join(featureRoot, AggregatorFile),
			Content: featureAggregator(),
		}},
	}

	for _, l := range Layers() {
		layerDir := filepath.Join(featureRoot, l.Name)
		plan.Dirs = append(plan.Dirs, layerDir)
		plan.Aggregators = append(plan.Aggregators, File{
			Path:    filepath.Join(layerDir, AggregatorFile),
			Content: layerAggregator(l),
		})

		for _, s := range l.Subfolders {
			subDir := filepath.Join(layerDir, s.Name)
			plan.Dirs = append(plan.Dirs, subDir)
			plan.Aggregators = append(plan.Aggregators, File{
				Path:    filepath.Join(subDir, AggregatorFile),
				Content: subfolderAggregator(s, names.Snake),
			})
		}
	}

	return plan
}

// Scaffolder creates feature directory trees.
type Scaffolder struct {
	fs afero.Fs
}

// NewScaffolder creates a scaffolder writing to fs.
func NewScaffolder(fs afero.Fs) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// Written records a persisted file.
type Written struct {
	Path string

	// Overwritten is true when the file existed before the write.
	Overwritten bool
}

// ScaffoldResult is the outcome of Scaffold.
type ScaffoldResult struct {
	Plan
	Written []Written
}

// Scaffold creates every directory of the feature and writes every aggregator.
// Existing directories are reused; existing aggregators are overwritten.
func (s *Scaffolder) Scaffold(featureRoot string, names naming.Context) (*ScaffoldResult, error) {
	plan := PlanScaffold(featureRoot, names)

	for _, dir := range plan.Dirs {
		if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
			return nil, oerrors.NewIOError("could not create directory", dir, err)
		}
		output.Debug("created directory", "path", dir)
	}

	written, err := WriteFiles(s.fs, plan.Aggregators)
	if err != nil {
		return nil, err
	}

	return &ScaffoldResult{Plan: plan, Written: written}, nil
}

// WriteFiles writes each file in order, creating parent directories and
// truncating existing files. It stops at the first failure.
func WriteFiles(fs afero.Fs, files []File) ([]Written, error) {
	written := make([]Written, 0, len(files))
	for _, f := range files {
		dir := filepath.Dir(f.Path)
		if err := fs.MkdirAll(dir, dirPerm); err != nil {
			return written, oerrors.NewIOError("could not create directory", dir, err)
		}

		existed, err := afero.Exists(fs, f.Path)
		if err != nil {
			return written, oerrors.NewIOError("could not stat file", f.Path, err)
		}

		if err := afero.WriteFile(fs, f.Path, []byte(f.Content), filePerm); err != nil {
			return written, oerrors.NewIOError("could not write file", f.Path, err)
		}

		output.Debug("wrote file", "path", f.Path, "bytes", len(f.Content), "overwritten", existed)
		written = append(written, Written{Path: f.Path, Overwritten: existed})
	}
	return written, nil
}
