package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoTree() fstest.MapFS {
	return fstest.MapFS{
		"README.md.tmpl":        {Data: []byte("# {{project_name}}\n")},
		"pyproject.toml.tmpl":   {Data: []byte("name = \"{{project_name}}\"\n")},
		"src/__init__.py":       {Data: []byte("")},
		"src/index.py.tmpl":     {Data: []byte("app = FastAPI(title=\"{{project_name}}\")\n")},
		"tests/test_main.py":    {Data: []byte("def test_ok(): pass\n")},
		".env.example":          {Data: []byte("APP_NAME={{project_name}}\n")},
		".DS_Store":             {Data: []byte("junk")},
		"__pycache__/index.pyc": {Data: []byte("\x00\x01")},
	}
}

func TestMaterialize_MirrorsTree(t *testing.T) {
	dest := t.TempDir()
	m := Materializer{Substitutions: map[string]string{PlaceholderProjectName: "demoapp"}}

	actions, err := m.Materialize(demoTree(), dest)
	require.NoError(t, err)

	created := map[string]bool{}
	for _, a := range actions {
		if a.Status == StatusCreated {
			created[a.RelPath] = true
		}
	}
	want := []string{
		"README.md", "pyproject.toml", "src/__init__.py",
		"src/index.py", "tests/test_main.py", ".env.example",
	}
	assert.Len(t, created, len(want))
	for _, rel := range want {
		assert.True(t, created[rel], "expected %s to be created", rel)
		_, statErr := os.Stat(filepath.Join(dest, filepath.FromSlash(rel)))
		assert.NoError(t, statErr, rel)
	}
}

func TestMaterialize_SubstitutesContent(t *testing.T) {
	dest := t.TempDir()
	m := Materializer{Substitutions: map[string]string{PlaceholderProjectName: "demoapp"}}

	_, err := m.Materialize(demoTree(), dest)
	require.NoError(t, err)

	readme, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demoapp\n", string(readme))

	// Substitution applies to every file, suffixed or not.
	env, err := os.ReadFile(filepath.Join(dest, ".env.example"))
	require.NoError(t, err)
	assert.Equal(t, "APP_NAME=demoapp\n", string(env))
}

func TestMaterialize_StripsTemplateSuffix(t *testing.T) {
	dest := t.TempDir()
	m := Materializer{Substitutions: map[string]string{PlaceholderProjectName: "demoapp"}}

	actions, err := m.Materialize(demoTree(), dest)
	require.NoError(t, err)

	for _, a := range actions {
		assert.NotContains(t, a.RelPath, TemplateSuffix)
		if a.RelPath == "README.md" {
			assert.True(t, a.WasTemplate)
		}
		if a.RelPath == "src/__init__.py" {
			assert.False(t, a.WasTemplate)
		}
	}
	_, err = os.Stat(filepath.Join(dest, "README.md.tmpl"))
	assert.True(t, os.IsNotExist(err))
}

func TestMaterialize_SkipsMetadataAndCaches(t *testing.T) {
	dest := t.TempDir()
	m := Materializer{}

	actions, err := m.Materialize(demoTree(), dest)
	require.NoError(t, err)

	var skipped []string
	for _, a := range actions {
		if a.Status == StatusSkipped {
			skipped = append(skipped, a.RelPath)
		}
		assert.NotContains(t, a.RelPath, skipDirName)
	}
	assert.Equal(t, []string{".DS_Store"}, skipped)

	_, err = os.Stat(filepath.Join(dest, ".DS_Store"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, skipDirName))
	assert.True(t, os.IsNotExist(err))
}

func TestMaterialize_MissingTree(t *testing.T) {
	m := Materializer{}
	sub, err := fs.Sub(demoTree(), "no-such-dir")
	if err == nil {
		_, err = m.Materialize(sub, t.TempDir())
		assert.ErrorIs(t, err, ErrTemplateMissing)
	}
	assert.Error(t, err)
}

func TestMaterialize_NoSubstitutions(t *testing.T) {
	dest := t.TempDir()
	m := Materializer{}

	_, err := m.Materialize(fstest.MapFS{
		"note.md": {Data: []byte("keep {{project_name}} verbatim\n")},
	}, dest)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dest, "note.md"))
	require.NoError(t, err)
	assert.Contains(t, string(got), PlaceholderProjectName)
}
