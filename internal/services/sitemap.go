package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/farehaven/travelfront/internal/collections"
	"github.com/farehaven/travelfront/internal/models"
)

// SitemapEntry is one <url> element in the generated sitemap.
type SitemapEntry struct {
	Loc     string
	LastMod time.Time
}

// BuildSitemap synthesizes sitemap.xml from the storefront's addressable
// surfaces: home, collection pages, destination pages, package pages and
// published content pages. Output is deterministic for identical input.
func BuildSitemap(host string, packages []*models.Package, configs []collections.CollectionConfig, pages []*models.Page) string {
	var entries []SitemapEntry
	var latest time.Time

	for _, pkg := range packages {
		if pkg == nil || !pkg.IsPublished {
			continue
		}
		entries = append(entries, SitemapEntry{
			Loc:     fmt.Sprintf("https://%s/packages/%s", host, pkg.Slug),
			LastMod: pkg.UpdatedAt,
		})
		if pkg.UpdatedAt.After(latest) {
			latest = pkg.UpdatedAt
		}
	}

	for _, cfg := range configs {
		entries = append(entries, SitemapEntry{
			Loc:     fmt.Sprintf("https://%s/collections/%s", host, cfg.Slug),
			LastMod: latest,
		})
	}

	for _, d := range collections.ListDestinations(packages) {
		entries = append(entries, SitemapEntry{
			Loc:     fmt.Sprintf("https://%s/destinations/%s", host, d.Slug),
			LastMod: latest,
		})
	}

	for _, page := range pages {
		if page == nil || !page.IsPublished {
			continue
		}
		entries = append(entries, SitemapEntry{
			Loc:     fmt.Sprintf("https://%s/pages/%s", host, page.Slug),
			LastMod: page.UpdatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Loc < entries[j].Loc })

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	fmt.Fprintf(&b, "<url><loc>https://%s/</loc></url>\n", host)
	for _, entry := range entries {
		b.WriteString("<url><loc>")
		b.WriteString(xmlEscape(entry.Loc))
		b.WriteString("</loc>")
		if !entry.LastMod.IsZero() {
			fmt.Fprintf(&b, "<lastmod>%s</lastmod>", entry.LastMod.UTC().Format("2006-01-02"))
		}
		b.WriteString("</url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
