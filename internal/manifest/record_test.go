package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	rec := New("demoapp")
	assert.Equal(t, "demoapp", rec.ProjectName)
	assert.NotEmpty(t, rec.CreatedAt)
	assert.Empty(t, rec.Services)
	assert.NotNil(t, rec.Services)
}

func TestAddService_Idempotent(t *testing.T) {
	rec := New("demoapp")

	assert.True(t, rec.AddService("vercel"))
	assert.False(t, rec.AddService("vercel"), "second add is a no-op")
	assert.Equal(t, []string{"vercel"}, rec.Services)
}

func TestRemoveService_Idempotent(t *testing.T) {
	rec := New("demoapp")
	rec.AddService("vercel")
	rec.AddService("google_oauth")

	assert.True(t, rec.RemoveService("vercel"))
	assert.False(t, rec.RemoveService("vercel"), "second remove is a no-op")
	assert.Equal(t, []string{"google_oauth"}, rec.Services)
}

func TestHasService(t *testing.T) {
	rec := New("demoapp")
	assert.False(t, rec.HasService("vercel"))
	rec.AddService("vercel")
	assert.True(t, rec.HasService("vercel"))
}

func TestPathFor_PrefersExistingRecord(t *testing.T) {
	tmp := t.TempDir()

	// No record yet: default JSON path.
	assert.Equal(t, filepath.Join(tmp, "fastgen.json"), PathFor(tmp))

	rec := New("demoapp")
	yamlPath := filepath.Join(tmp, "fastgen.yaml")
	require.NoError(t, Save(yamlPath, rec))

	assert.Equal(t, yamlPath, PathFor(tmp))
}
