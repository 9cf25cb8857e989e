package collections

import (
	"fmt"
	"html"
	"strings"

	"github.com/farehaven/travelfront/internal/models"
)

const destinationFeaturedLimit = 6

// DestinationAggregate is the computed summary for one destination
// landing page, grouping published packages by their category.
type DestinationAggregate struct {
	Name               string            `json:"name"`
	Slug               string            `json:"slug"`
	PackageCount       int               `json:"package_count"`
	PriceMin           *float64          `json:"price_min,omitempty"`
	PriceMedian        *float64          `json:"price_median,omitempty"`
	PriceMax           *float64          `json:"price_max,omitempty"`
	Currency           string            `json:"currency"`
	TopTags            []string          `json:"top_tags"`
	DurationBuckets    []BucketCount     `json:"duration_buckets"`
	TopDurationBuckets []string          `json:"top_duration_buckets"`
	Featured           []*models.Package `json:"featured"`
}

// ListDestinations returns every destination present across published
// packages, counted and slugged, ordered by count descending with
// alphabetical tie-break.
func ListDestinations(pkgs []*models.Package) []Destination {
	var published []*models.Package
	for _, pkg := range pkgs {
		if pkg != nil && pkg.IsPublished {
			published = append(published, pkg)
		}
	}

	counts := map[string]int{}
	for _, pkg := range published {
		if pkg.Category != "" {
			counts[pkg.Category]++
		}
	}
	keys := topKeys(counts, len(counts))
	destinations := make([]Destination, len(keys))
	for i, name := range keys {
		destinations[i] = Destination{Name: name, Slug: Slugify(name), Count: counts[name]}
	}
	return destinations
}

// BuildDestinationAggregate computes the landing-page summary for the
// destination whose slugged category equals slug. Matching is by slug so
// "Sri Lanka" and /destinations/sri-lanka line up.
func BuildDestinationAggregate(pkgs []*models.Package, slug string) (DestinationAggregate, error) {
	var matched []*models.Package
	name := ""
	for _, pkg := range pkgs {
		if pkg == nil || !pkg.IsPublished || pkg.Category == "" {
			continue
		}
		if Slugify(pkg.Category) == slug {
			if name == "" {
				name = pkg.Category
			}
			matched = append(matched, pkg)
		}
	}
	if len(matched) == 0 {
		return DestinationAggregate{}, fmt.Errorf("%w: destination %q", ErrCollectionNotFound, slug)
	}

	agg := DestinationAggregate{
		Name:         name,
		Slug:         slug,
		PackageCount: len(matched),
		Currency:     "GBP",
		TopTags:      topTags(matched, nil),
	}
	agg.PriceMin, agg.PriceMedian, agg.PriceMax = priceStats(matched)
	for _, pkg := range matched {
		if pkg.Price != nil && *pkg.Price > 0 && pkg.Currency != "" {
			agg.Currency = pkg.Currency
			break
		}
	}
	agg.DurationBuckets, agg.TopDurationBuckets = durationBuckets(matched)
	agg.Featured = featuredPackages(matched, destinationFeaturedLimit)

	return agg, nil
}

// DestinationMetaTitle builds the page <title> for a destination page.
func DestinationMetaTitle(agg DestinationAggregate) string {
	return fmt.Sprintf("%s Holidays | Flights and Packages", agg.Name)
}

// DestinationMetaDescription builds the destination meta description,
// truncated to the same 160-character budget as collection pages.
func DestinationMetaDescription(agg DestinationAggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explore %d %s holiday package(s) with flights included.", agg.PackageCount, agg.Name)
	if agg.PriceMin != nil {
		fmt.Fprintf(&b, " Prices from %s per person.", formatPrice(agg.Currency, *agg.PriceMin))
	}
	b.WriteString(" ATOL protected. Enquire today.")

	out := b.String()
	runes := []rune(out)
	if len(runes) > metaDescriptionLimit {
		out = string(runes[:metaDescriptionLimit])
	}
	return out
}

// RenderDestinationPage assembles the server-rendered destination landing
// page, reusing the collection page's meta and JSON-LD machinery.
func RenderDestinationPage(rc RenderConfig, agg DestinationAggregate) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(DestinationMetaTitle(agg)))
	fmt.Fprintf(&b, `<meta name="description" content="%s">`+"\n", html.EscapeString(DestinationMetaDescription(agg)))
	fmt.Fprintf(&b, `<link rel="canonical" href="https://%s/destinations/%s">`+"\n",
		html.EscapeString(rc.CanonicalHost), html.EscapeString(agg.Slug))
	b.WriteString(destinationBreadcrumbJSONLD(rc, agg) + "\n")
	b.WriteString(destinationItemListJSONLD(rc, agg) + "\n")
	b.WriteString("</head>\n<body>\n")

	b.WriteString(`<section aria-label="Overview">`)
	fmt.Fprintf(&b, "<h1>%s Holidays</h1>", html.EscapeString(agg.Name))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(DestinationMetaDescription(agg)))
	b.WriteString("</section>\n")

	if len(agg.TopTags) > 0 {
		b.WriteString(`<section aria-label="Holiday styles">`)
		b.WriteString("<h2>Popular styles</h2><ul>")
		for _, tag := range agg.TopTags {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(tag))
		}
		b.WriteString("</ul></section>\n")
	}

	if len(agg.Featured) > 0 {
		b.WriteString(`<section aria-label="Featured packages">`)
		b.WriteString("<h2>Featured packages</h2><ul>")
		for _, pkg := range agg.Featured {
			fmt.Fprintf(&b, `<li><a href="/packages/%s">%s</a></li>`,
				html.EscapeString(pkg.Slug), html.EscapeString(pkg.Title))
		}
		b.WriteString("</ul></section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func destinationBreadcrumbJSONLD(rc RenderConfig, agg DestinationAggregate) string {
	type breadcrumb struct {
		Context  string       `json:"@context"`
		Type     string       `json:"@type"`
		Elements []ldListItem `json:"itemListElement"`
	}
	return ldScript(breadcrumb{
		Context: "https://schema.org",
		Type:    "BreadcrumbList",
		Elements: []ldListItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: fmt.Sprintf("https://%s/", rc.CanonicalHost)},
			{Type: "ListItem", Position: 2, Name: "Destinations", Item: fmt.Sprintf("https://%s/destinations", rc.CanonicalHost)},
			{Type: "ListItem", Position: 3, Name: agg.Name, Item: fmt.Sprintf("https://%s/destinations/%s", rc.CanonicalHost, agg.Slug)},
		},
	})
}

func destinationItemListJSONLD(rc RenderConfig, agg DestinationAggregate) string {
	type itemList struct {
		Context  string       `json:"@context"`
		Type     string       `json:"@type"`
		Name     string       `json:"name"`
		Elements []ldListItem `json:"itemListElement"`
	}
	elements := make([]ldListItem, len(agg.Featured))
	for i, pkg := range agg.Featured {
		elements[i] = ldListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     pkg.Title,
			Item:     rc.packageURL(pkg.Slug),
		}
	}
	return ldScript(itemList{
		Context:  "https://schema.org",
		Type:     "ItemList",
		Name:     agg.Name + " Holidays",
		Elements: elements,
	})
}
