package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rustlay/cli/internal/generator"
	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/testutil"
)

func TestNewGenerateCmd(t *testing.T) {
	cmd := NewGenerateCmd()

	assert.Equal(t, "generate <feature-name>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	// Check flags exist
	assert.NotNil(t, cmd.Flags().Lookup("dir"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
	assert.Equal(t, "tree", cmd.Flags().Lookup("output").DefValue)
}

func TestGenerate_RequiresArgs(t *testing.T) {
	_, err := executeRoot(t, t.TempDir(), "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
	assert.Equal(t, ExitArgumentError, ExitCodeFromError(err))
}

func TestGenerate_EmptyName(t *testing.T) {
	dir := t.TempDir()
	_, err := executeRoot(t, dir, "generate", "")
	require.Error(t, err)
	assert.Equal(t, ExitArgumentError, ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestGenerate_WritesFeature(t *testing.T) {
	dir := t.TempDir()

	out, err := executeRoot(t, dir, "generate", "user_profile")
	require.NoError(t, err)

	root := filepath.Join(dir, "src", "features", "user_profile")
	assert.FileExists(t, filepath.Join(root, "mod.rs"))
	assert.FileExists(t, filepath.Join(root, "application", "di", "container.rs"))
	assert.FileExists(t, filepath.Join(root, "interface", "controller", "user_profile_controller.rs"))
	assert.DirExists(t, filepath.Join(root, "domain", "entity"))

	data, err := os.ReadFile(filepath.Join(root, "domain", "mod.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub mod interactor;\npub mod repository;\npub mod entity;", strings.TrimSpace(string(data)))

	assert.Contains(t, out, "user_profile")
	assert.Contains(t, out, "28 created, 0 overwritten")

	out, err = executeRoot(t, dir, "generate", "user_profile")
	require.NoError(t, err)
	assert.Contains(t, out, "0 created, 28 overwritten")
}

func TestGenerate_DirFlag(t *testing.T) {
	work := t.TempDir()
	project := t.TempDir()

	_, err := executeRoot(t, work, "generate", "Order-Item", "--dir", project)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(project, "src", "features", "order_item", "domain", "repository", "i_order_item_repository.rs"))
	assert.NoDirExists(t, filepath.Join(work, "src"))
}

func TestGenerate_DryRunJSON(t *testing.T) {
	dir := t.TempDir()

	out, err := executeRoot(t, dir, "generate", "billing", "--dry-run", "-o", "json")
	require.NoError(t, err)

	var m output.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "billing", m.Feature)
	assert.True(t, m.DryRun)
	assert.Len(t, m.Files, 28)
	for _, f := range m.Files {
		assert.Equal(t, output.StatusPlanned, f.Status)
	}

	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestGenerate_YAML(t *testing.T) {
	out, err := executeRoot(t, t.TempDir(), "generate", "billing", "-o", "yaml")
	require.NoError(t, err)

	var m output.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "billing", m.Feature)
	assert.False(t, m.DryRun)
	assert.Len(t, m.Files, 28)
}

func TestGenerate_InvalidOutput(t *testing.T) {
	dir := t.TempDir()
	_, err := executeRoot(t, dir, "generate", "billing", "-o", "table")
	require.Error(t, err)
	assert.Equal(t, ExitArgumentError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "table")
	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestGenerate_CustomTemplates(t *testing.T) {
	dir := t.TempDir()
	_, err := executeRoot(t, dir, "config", "init")
	require.NoError(t, err)

	testutil.WriteFile(t, dir, "templates/controller.rs", "// custom controller for {{.capitalize_feature_name}}\n")

	_, err = executeRoot(t, dir, "generate", "user_profile")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "src", "features", "user_profile", "interface", "controller", "user_profile_controller.rs"))
	require.NoError(t, err)
	assert.Equal(t, "// custom controller for UserProfile\n", string(data))
}

func TestGenerate_MissingTemplateFile(t *testing.T) {
	dir := t.TempDir()
	_, err := executeRoot(t, dir, "config", "init")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "templates", "use_case.rs")))

	_, err = executeRoot(t, dir, "generate", "user_profile")
	require.Error(t, err)
	assert.Equal(t, ExitTemplateLoadError, ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestGenerate_UndefinedSymbol(t *testing.T) {
	dir := t.TempDir()
	_, err := executeRoot(t, dir, "config", "init")
	require.NoError(t, err)
	testutil.WriteFile(t, dir, "templates/controller.rs", "{{.feature_title}}")

	_, err = executeRoot(t, dir, "generate", "user_profile")
	require.Error(t, err)
	assert.Equal(t, ExitRenderError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "controller")

	root := filepath.Join(dir, "src", "features", "user_profile")
	assert.FileExists(t, filepath.Join(root, "mod.rs"))
	assert.NoFileExists(t, filepath.Join(root, "application", "di", "container.rs"))
}

func TestGenerate_ExplicitConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := executeRoot(t, dir, "generate", "user_profile", "--config", filepath.Join(dir, "absent.toml"))
	require.Error(t, err)
	assert.Equal(t, ExitTemplateLoadError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestGenerate_ConfigFromEnv(t *testing.T) {
	cfgDir := t.TempDir()
	_, err := executeRoot(t, cfgDir, "config", "init")
	require.NoError(t, err)
	testutil.WriteFile(t, cfgDir, "templates/container.rs", "// env {{.snake_case_feature_name}}")

	work := t.TempDir()
	chdir(t, work)
	t.Setenv("RUSTLAY_CONFIG", filepath.Join(cfgDir, "rustlay.toml"))

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"generate", "billing"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(work, "src", "features", "billing", "application", "di", "container.rs"))
	require.NoError(t, err)
	assert.Equal(t, "// env billing", string(data))
}

func TestPrintResult(t *testing.T) {
	res := &generator.Result{
		FeatureRoot: "/p/src/features/user_profile",
		Aggregators: []generator.Entry{
			{Path: "/p/src/features/user_profile/mod.rs", Kind: output.KindAggregator, Status: output.StatusCreated},
		},
		Files: []generator.Entry{
			{Path: "/p/src/features/user_profile/application/di/container.rs", Kind: output.KindSource, Template: "container", Status: output.StatusOverwritten},
		},
	}
	res.Names.Raw = "user_profile"

	t.Run("plain listing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printResult(&buf, res, output.FormatTree, false))
		assert.Contains(t, buf.String(), "f:")
		assert.Contains(t, buf.String(), "/p/src/features/user_profile/mod.rs")
		assert.Contains(t, buf.String(), "1 created, 1 overwritten")
	})

	t.Run("tree listing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printResult(&buf, res, output.FormatTree, true))
		assert.Contains(t, buf.String(), "container.rs")
		assert.Contains(t, buf.String(), "container.rs ← container")
		assert.Contains(t, buf.String(), "└── ")
	})

	t.Run("dry run", func(t *testing.T) {
		dry := *res
		dry.DryRun = true
		var buf bytes.Buffer
		require.NoError(t, printResult(&buf, &dry, output.FormatTree, false))
		assert.Contains(t, buf.String(), "dry run, nothing written")
	})
}
