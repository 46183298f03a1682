package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOverlay struct{ id string }

func (s stubOverlay) ID() string                { return s.id }
func (s stubOverlay) Describe() string          { return s.id + " overlay" }
func (s stubOverlay) Apply(string) error        { return nil }
func (s stubOverlay) Remove(string) (bool, error) { return false, nil }

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(stubOverlay{id: "alpha"}, stubOverlay{id: "beta"})

	o, err := r.Lookup("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", o.ID())

	_, err = r.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistry_ListOrder(t *testing.T) {
	r := NewRegistry(stubOverlay{id: "beta"}, stubOverlay{id: "alpha"})

	var ids []string
	for _, o := range r.List() {
		ids = append(ids, o.ID())
	}
	assert.Equal(t, []string{"beta", "alpha"}, ids)
}

func TestRegistry_DuplicateIgnored(t *testing.T) {
	r := NewRegistry(stubOverlay{id: "alpha"}, stubOverlay{id: "alpha"})
	assert.Len(t, r.List(), 1)
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.List())
}

func TestDefaultRegistry(t *testing.T) {
	var ids []string
	for _, o := range DefaultRegistry().List() {
		ids = append(ids, o.ID())
		assert.NotEmpty(t, o.Describe())
	}
	assert.Equal(t, []string{"vercel", "google_oauth"}, ids)
}
