package collections

import (
	"strings"

	"github.com/farehaven/travelfront/internal/models"
)

// Matches reports whether pkg belongs to the collection described by cfg.
// A package matches when any tag contains any TagMatches substring, or the
// title or description contains any TitleMatches substring. Matching is
// case-insensitive and deliberately loose substring matching: "solo" also
// matches inside longer words, mirroring how the storefront has always
// classified packages.
func Matches(pkg *models.Package, cfg *CollectionConfig) bool {
	title := strings.ToLower(pkg.Title)
	description := strings.ToLower(pkg.Description)

	for _, tag := range pkg.Tags {
		lowered := strings.ToLower(tag)
		for _, m := range cfg.TagMatches {
			if m != "" && strings.Contains(lowered, strings.ToLower(m)) {
				return true
			}
		}
	}

	for _, m := range cfg.TitleMatches {
		lowered := strings.ToLower(m)
		if lowered == "" {
			continue
		}
		if strings.Contains(title, lowered) || strings.Contains(description, lowered) {
			return true
		}
	}

	return false
}
