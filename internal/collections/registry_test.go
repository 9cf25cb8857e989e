package collections

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	cfg, err := reg.Get("river-cruises")
	require.NoError(t, err)
	assert.Equal(t, "River Cruises", cfg.Name)
	assert.Equal(t, 6, cfg.FeaturedLimit)

	all := reg.All()
	require.Len(t, all, 5)
	assert.Equal(t, "river-cruises", all[0].Slug)
	assert.Equal(t, "solo-travel", all[4].Slug)
}

func TestRegistryGetUnknownSlug(t *testing.T) {
	reg := DefaultRegistry()

	_, err := reg.Get("ski-holidays")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCollectionNotFound))
	assert.Contains(t, err.Error(), "ski-holidays")
}

func TestRegistryLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collections.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
collections:
  - slug: safari
    name: Safari Holidays
    heading: Safari Holidays with Flights
    meta_title_suffix: Safari Holidays
    tag_matches: ["safari"]
    title_matches: ["safari"]
    featured_limit: 4
  - slug: ski
    name: Ski Holidays
    tag_matches: ["ski"]
`), 0o644))

	reg := DefaultRegistry()
	require.NoError(t, reg.LoadFile(path))

	all := reg.All()
	require.Len(t, all, 2, "file contents replace the defaults")
	assert.Equal(t, "safari", all[0].Slug)
	assert.Equal(t, 4, all[0].FeaturedLimit)

	_, err := reg.Get("river-cruises")
	assert.True(t, errors.Is(err, ErrCollectionNotFound))
}

func TestRegistryLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "no collections", content: "collections: []"},
		{name: "missing slug", content: "collections:\n  - name: Safari Holidays"},
		{name: "missing name", content: "collections:\n  - slug: safari"},
		{name: "malformed yaml", content: "collections: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "collections.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			reg := DefaultRegistry()
			assert.Error(t, reg.LoadFile(path))

			// A failed load keeps the previous contents.
			assert.Len(t, reg.All(), 5)
		})
	}
}

func TestRegistryLoadFileMissing(t *testing.T) {
	reg := DefaultRegistry()
	assert.Error(t, reg.LoadFile(filepath.Join(t.TempDir(), "absent.yml")))
}

func TestNewRegistrySkipsDuplicateSlugs(t *testing.T) {
	reg := NewRegistry([]CollectionConfig{
		{Slug: "safari", Name: "Safari Holidays"},
		{Slug: "safari", Name: "Safari Holidays Updated"},
		{Slug: "", Name: "Nameless"},
	})

	all := reg.All()
	require.Len(t, all, 1)
	// Last definition wins, listing order keeps the first position.
	assert.Equal(t, "Safari Holidays Updated", all[0].Name)
}
