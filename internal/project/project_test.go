package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	valid := []string{"myapp", "MyApp", "a", "demo-app", "demo_app", "app2", "A1_b-c"}
	for _, name := range valid {
		assert.True(t, ValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "1app", "-app", "_app", "my app", "my.app", "app!", "über"}
	for _, name := range invalid {
		assert.False(t, ValidName(name), "expected %q to be invalid", name)
	}
}

func TestValidName_Sentinel(t *testing.T) {
	assert.True(t, ValidName(CurrentDirSentinel))
	assert.NoError(t, ValidateName(CurrentDirSentinel))
}

func TestValidateName_Error(t *testing.T) {
	err := ValidateName("9lives")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestResolveDir_NewSubdirectory(t *testing.T) {
	tmp := t.TempDir()

	target, err := ResolveDir("myapp", tmp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "myapp"), target.Dir)
	assert.False(t, target.SelfTarget)
	assert.False(t, target.Populated)
}

func TestResolveDir_ExistingEmptyDirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmp, "myapp"), 0o755))

	target, err := ResolveDir("myapp", tmp)
	require.NoError(t, err)
	assert.False(t, target.Populated)
}

func TestResolveDir_NonEmptyFails(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "myapp")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	_, err := ResolveDir("myapp", tmp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryNotEmpty)
}

func TestResolveDir_SelfTargetNonEmptyProceeds(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "keep.txt"), []byte("x"), 0o644))

	target, err := ResolveDir(CurrentDirSentinel, tmp)
	require.NoError(t, err)
	assert.True(t, target.SelfTarget)
	assert.True(t, target.Populated)
	assert.Equal(t, tmp, target.Dir)
}

func TestIsGenerated(t *testing.T) {
	tmp := t.TempDir()
	assert.False(t, IsGenerated(tmp))

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "pyproject.toml"), []byte("[project]\n"), 0o644))
	assert.False(t, IsGenerated(tmp), "src/ still missing")

	require.NoError(t, os.Mkdir(filepath.Join(tmp, "src"), 0o755))
	assert.True(t, IsGenerated(tmp))
}

func TestIsGenerated_SrcMustBeDirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "pyproject.toml"), []byte("[project]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "src"), []byte("not a dir"), 0o644))

	assert.False(t, IsGenerated(tmp))
}
