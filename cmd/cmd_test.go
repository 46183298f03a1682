package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
// Flag state is reset afterwards so tests do not leak into each other.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		verbosity = 0
		jsonOutput = false
		ciMode = false
		createOutputDir = "."
		rootCmd.SetArgs(nil)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCreateCommand(t *testing.T) {
	out := t.TempDir()

	_, err := executeCommand(t, "create", "demoapp", "--output", out)
	require.NoError(t, err)

	dir := filepath.Join(out, "demoapp")
	for _, rel := range []string{"pyproject.toml", "requirements.txt", ".env", "fastgen.json", "src/index.py"} {
		_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, statErr, rel)
	}
}

func TestCreateCommand_InvalidName(t *testing.T) {
	_, err := executeCommand(t, "create", "9bad", "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project name")
}

func TestCreateCommand_ExistingNonEmptyDir(t *testing.T) {
	out := t.TempDir()
	dir := filepath.Join(out, "demoapp")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	_, err := executeCommand(t, "create", "demoapp", "--output", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not empty")
}

func TestCreateCommand_CIModeRequiresName(t *testing.T) {
	_, err := executeCommand(t, "create", "--ci")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a project name")
}

func TestAddAndRemoveCommands(t *testing.T) {
	out := t.TempDir()
	_, err := executeCommand(t, "create", "demoapp", "--output", out)
	require.NoError(t, err)
	dir := filepath.Join(out, "demoapp")

	_, err = executeCommand(t, "add", "vercel", dir)
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "vercel.json"))
	assert.NoError(t, statErr)

	_, err = executeCommand(t, "remove", "vercel", dir)
	require.NoError(t, err)
	_, statErr = os.Stat(filepath.Join(dir, "vercel.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAddCommand_UnknownService(t *testing.T) {
	out := t.TempDir()
	_, err := executeCommand(t, "create", "demoapp", "--output", out)
	require.NoError(t, err)

	_, err = executeCommand(t, "add", "nope", filepath.Join(out, "demoapp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service")
}

func TestAddCommand_NotAProject(t *testing.T) {
	_, err := executeCommand(t, "add", "vercel", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a generated project")
}

func TestListServicesCommand(t *testing.T) {
	out, err := executeCommand(t, "list-services")
	require.NoError(t, err)
	assert.Contains(t, out, "vercel")
	assert.Contains(t, out, "google_oauth")
}
