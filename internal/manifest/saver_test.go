package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_NilRecord(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "fastgen.json"), nil)
	assert.Error(t, err)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "deep", "nested", "fastgen.json")

	require.NoError(t, Save(path, New("demoapp")))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_Deterministic(t *testing.T) {
	tmp := t.TempDir()
	rec := New("demoapp")
	rec.AddService("vercel")

	p1 := filepath.Join(tmp, "a.json")
	p2 := filepath.Join(tmp, "b.json")
	require.NoError(t, Save(p1, rec))
	require.NoError(t, Save(p2, rec))

	d1, err := os.ReadFile(p1)
	require.NoError(t, err)
	d2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, string(d1), string(d2))

	// Key order is fixed by the struct, so the output is stable.
	assert.Regexp(t, `(?s)"project_name".*"created_at".*"services"`, string(d1))
}

func TestSave_Overwrites(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "fastgen.json")

	rec := New("demoapp")
	require.NoError(t, Save(path, rec))

	rec.AddService("vercel")
	require.NoError(t, Save(path, rec))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"vercel"}, loaded.Services)
}
