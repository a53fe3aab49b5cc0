package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rustlayBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "rustlay-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	rustlayBinary = filepath.Join(tmpDir, "rustlay")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", rustlayBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build rustlay binary: " + err.Error())
	}
	cancel() // Call cancel explicitly before os.Exit

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runRustlay runs the binary in workDir and returns stdout, stderr and the exit code.
func runRustlay(t *testing.T, workDir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, rustlayBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "RUSTLAY_CONFIG=")

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(stdoutBytes), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)

	return string(stdoutBytes), "", 0
}

func TestE2E_Generate(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, code := runRustlay(t, dir, "generate", "user_profile")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	root := filepath.Join(dir, "src", "features", "user_profile")
	assert.FileExists(t, filepath.Join(root, "mod.rs"))
	assert.FileExists(t, filepath.Join(root, "application", "use_case", "user_profile_use_case.rs"))
	assert.FileExists(t, filepath.Join(root, "infrastructure", "repository", "user_profile_repository_impl.rs"))
	assert.Contains(t, stdout, "user_profile")
}

func TestE2E_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(t *testing.T, dir string)
		wantCode int
		wantErr  string
	}{
		{
			name:     "no subcommand",
			args:     nil,
			wantCode: 2,
			wantErr:  "subcommand required",
		},
		{
			name:     "missing feature name",
			args:     []string{"generate"},
			wantCode: 2,
		},
		{
			name:     "bad output format",
			args:     []string{"generate", "x", "-o", "xml"},
			wantCode: 2,
		},
		{
			name:     "missing config file",
			args:     []string{"generate", "x", "--config", "absent.toml"},
			wantCode: 3,
		},
		{
			name: "undefined symbol",
			args: []string{"generate", "x"},
			setup: func(t *testing.T, dir string) {
				_, stderr, code := runRustlay(t, dir, "config", "init")
				require.Equal(t, 0, code, "stderr: %s", stderr)
				require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "controller.rs"), []byte("{{.nope}}"), 0o644))
			},
			wantCode: 4,
		},
		{
			name: "bare unknown symbol",
			args: []string{"generate", "x"},
			setup: func(t *testing.T, dir string) {
				_, stderr, code := runRustlay(t, dir, "config", "init")
				require.Equal(t, 0, code, "stderr: %s", stderr)
				require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "controller.rs"), []byte("{{foo}}"), 0o644))
			},
			wantCode: 4,
			wantErr:  "controller",
		},
		{
			name:     "exit reason logged when verbose",
			args:     []string{"generate", "x", "-o", "xml", "--verbose"},
			wantCode: 2,
			wantErr:  "Argument Error",
		},
		{
			name: "unwritable project",
			args: []string{"generate", "x", "--dir", "blocked"},
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "blocked"), []byte("file"), 0o644))
			},
			wantCode: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			_, stderr, code := runRustlay(t, dir, tt.args...)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			assert.Contains(t, stderr, "Error:")
			if tt.wantErr != "" {
				assert.Contains(t, stderr, tt.wantErr)
			}
		})
	}
}
