package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farehaven/travelfront/internal/collections"
	"github.com/farehaven/travelfront/internal/models"
)

func sitemapFixture() ([]*models.Package, []collections.CollectionConfig, []*models.Page) {
	packages := []*models.Package{
		{
			Slug:        "danube-river-cruise",
			Title:       "Danube River Cruise",
			Category:    "Germany",
			IsPublished: true,
			UpdatedAt:   time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "draft-tour",
			Title:       "Draft Tour",
			IsPublished: false,
			UpdatedAt:   time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	configs := []collections.CollectionConfig{
		{Slug: "river-cruises", Name: "River Cruises"},
	}
	pages := []*models.Page{
		{Slug: "booking-terms", IsPublished: true, UpdatedAt: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)},
		{Slug: "draft-guide", IsPublished: false},
	}
	return packages, configs, pages
}

func TestBuildSitemap(t *testing.T) {
	packages, configs, pages := sitemapFixture()
	out := BuildSitemap("www.example.travel", packages, configs, pages)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<url><loc>https://www.example.travel/</loc></url>")
	assert.Contains(t, out, "<loc>https://www.example.travel/packages/danube-river-cruise</loc>")
	assert.Contains(t, out, "<loc>https://www.example.travel/collections/river-cruises</loc>")
	assert.Contains(t, out, "<loc>https://www.example.travel/destinations/germany</loc>")
	assert.Contains(t, out, "<loc>https://www.example.travel/pages/booking-terms</loc>")
	assert.Contains(t, out, "<lastmod>2026-05-10</lastmod>")
}

func TestBuildSitemapExcludesUnpublished(t *testing.T) {
	packages, configs, pages := sitemapFixture()
	out := BuildSitemap("www.example.travel", packages, configs, pages)

	assert.NotContains(t, out, "draft-tour")
	assert.NotContains(t, out, "draft-guide")
}

func TestBuildSitemapDeterminism(t *testing.T) {
	packages, configs, pages := sitemapFixture()

	first := BuildSitemap("www.example.travel", packages, configs, pages)
	second := BuildSitemap("www.example.travel", packages, configs, pages)
	assert.Equal(t, first, second)

	// Entries are emitted in sorted order regardless of input order.
	reversed := []*models.Package{packages[1], packages[0]}
	assert.Equal(t, first, BuildSitemap("www.example.travel", reversed, configs, pages))
}

func TestBuildSitemapEmptyInput(t *testing.T) {
	out := BuildSitemap("www.example.travel", nil, nil, nil)
	require.Contains(t, out, "<url><loc>https://www.example.travel/</loc></url>")
	assert.Equal(t, 1, strings.Count(out, "<url>"))
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "a&amp;b &lt;c&gt; &quot;d&quot; &apos;e&apos;", xmlEscape(`a&b <c> "d" 'e'`))
}
