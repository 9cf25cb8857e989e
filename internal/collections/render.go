package collections

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

const metaDescriptionLimit = 160

// RenderConfig carries the site constants interpolated into rendered
// output. It is passed explicitly so every renderer stays a pure function
// of its arguments.
type RenderConfig struct {
	CanonicalHost string
	ContactEmail  string
}

func (rc RenderConfig) collectionURL(slug string) string {
	return fmt.Sprintf("https://%s/collections/%s", rc.CanonicalHost, slug)
}

func (rc RenderConfig) packageURL(slug string) string {
	return fmt.Sprintf("https://%s/packages/%s", rc.CanonicalHost, slug)
}

// MetaTitle builds the page <title> for a collection.
func MetaTitle(cfg CollectionConfig) string {
	return fmt.Sprintf("%s | %s | Flights and Packages", cfg.Name, cfg.MetaTitleSuffix)
}

// MetaDescription builds the meta description, hard-truncated to 160
// characters after full interpolation. Truncation is by character count
// only; the result is plain text and is escaped at embed time.
func MetaDescription(agg Aggregate) string {
	var b strings.Builder
	if agg.PackageCount > 0 {
		fmt.Fprintf(&b, "Compare %d %s packages with flights included.", agg.PackageCount, agg.Config.Name)
	} else {
		fmt.Fprintf(&b, "%s packages with flights included.", agg.Config.Name)
	}
	if agg.PriceMin != nil {
		fmt.Fprintf(&b, " Prices from %s per person.", formatPrice(agg.Currency, *agg.PriceMin))
	}
	if len(agg.TopDestinations) > 0 {
		names := make([]string, 0, len(agg.TopDestinations))
		for _, d := range agg.TopDestinations {
			names = append(names, d.Name)
		}
		fmt.Fprintf(&b, " Visiting %s.", joinNatural(names))
	}
	b.WriteString(" ATOL protected. Enquire today.")

	out := b.String()
	runes := []rune(out)
	if len(runes) > metaDescriptionLimit {
		out = string(runes[:metaDescriptionLimit])
	}
	return out
}

// Overview builds the one-paragraph prose summary shown at the top of a
// collection page.
func Overview(agg Aggregate) string {
	var b strings.Builder
	if agg.PackageCount > 0 {
		fmt.Fprintf(&b, "Choose from %d hand-picked %s packages, each sold with return flights included.", agg.PackageCount, agg.Config.Name)
	} else {
		fmt.Fprintf(&b, "Our specialists are currently refreshing our %s programme; enquire for the latest departures.", agg.Config.Name)
	}
	if agg.PriceMin != nil && agg.PriceMax != nil {
		fmt.Fprintf(&b, " Prices range from %s to %s per person.", formatPrice(agg.Currency, *agg.PriceMin), formatPrice(agg.Currency, *agg.PriceMax))
	}
	if len(agg.TopDestinations) > 0 {
		names := make([]string, 0, len(agg.TopDestinations))
		for _, d := range agg.TopDestinations {
			names = append(names, d.Name)
		}
		fmt.Fprintf(&b, " Popular destinations include %s.", joinNatural(names))
	}
	if len(agg.TopDurationBuckets) > 0 {
		fmt.Fprintf(&b, " Most itineraries run %s.", joinNatural(agg.TopDurationBuckets))
	}
	if len(agg.TopTags) > 0 {
		fmt.Fprintf(&b, " Styles on offer include %s.", joinNatural(agg.TopTags))
	}
	return b.String()
}

// RenderSections emits the aria-labelled content <section> blocks for a
// collection page: overview, styles, trip lengths, inclusions,
// destinations, featured packages and FAQs. All content-derived text is
// HTML-escaped.
func RenderSections(rc RenderConfig, agg Aggregate, faqs []FAQ) string {
	var b strings.Builder

	b.WriteString(`<section aria-label="Overview">`)
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(agg.Config.Heading))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(Overview(agg)))
	b.WriteString("</section>\n")

	if len(agg.TopTags) > 0 {
		b.WriteString(`<section aria-label="Holiday styles">`)
		b.WriteString("<h2>Popular styles</h2><ul>")
		for _, tag := range agg.TopTags {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(tag))
		}
		b.WriteString("</ul></section>\n")
	}

	if len(agg.TopDurationBuckets) > 0 {
		b.WriteString(`<section aria-label="Trip lengths">`)
		b.WriteString("<h2>Trip lengths</h2><ul>")
		for _, bucket := range agg.DurationBuckets {
			if bucket.Count == 0 {
				continue
			}
			fmt.Fprintf(&b, "<li>%s (%d)</li>", html.EscapeString(bucket.Label), bucket.Count)
		}
		b.WriteString("</ul></section>\n")
	}

	if len(agg.TopInclusions) > 0 {
		b.WriteString(`<section aria-label="What's included">`)
		b.WriteString("<h2>What&#39;s typically included</h2><ul>")
		for _, item := range agg.TopInclusions {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item))
		}
		b.WriteString("</ul></section>\n")
	}

	if len(agg.TopDestinations) > 0 {
		b.WriteString(`<section aria-label="Destinations">`)
		b.WriteString("<h2>Destinations</h2><ul>")
		for _, d := range agg.TopDestinations {
			fmt.Fprintf(&b, `<li><a href="/destinations/%s">%s</a> (%d)</li>`,
				html.EscapeString(d.Slug), html.EscapeString(d.Name), d.Count)
		}
		b.WriteString("</ul></section>\n")
	}

	if len(agg.Featured) > 0 {
		b.WriteString(`<section aria-label="Featured packages">`)
		b.WriteString("<h2>Featured packages</h2><ul>")
		for _, pkg := range agg.Featured {
			fmt.Fprintf(&b, `<li><a href="/packages/%s">%s</a>`,
				html.EscapeString(pkg.Slug), html.EscapeString(pkg.Title))
			if pkg.Price != nil && *pkg.Price > 0 {
				fmt.Fprintf(&b, " from %s", html.EscapeString(formatPrice(pkg.Currency, *pkg.Price)))
			}
			if pkg.Duration != "" {
				fmt.Fprintf(&b, ", %s", html.EscapeString(pkg.Duration))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul></section>\n")
	}

	if len(faqs) > 0 {
		b.WriteString(`<section aria-label="Frequently asked questions">`)
		b.WriteString("<h2>Frequently asked questions</h2>")
		for _, faq := range faqs {
			fmt.Fprintf(&b, "<details><summary>%s</summary><p>%s</p></details>",
				html.EscapeString(faq.Question), html.EscapeString(faq.Answer))
		}
		b.WriteString("</section>\n")
	}

	return b.String()
}

// NoScriptFallback emits the minimal fragment served to non-JS clients and
// crawlers: heading, summary, destination list and up to six featured
// package links.
func NoScriptFallback(agg Aggregate) string {
	var b strings.Builder
	b.WriteString("<noscript>")
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(agg.Config.Heading))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(Overview(agg)))
	if len(agg.TopDestinations) > 0 {
		b.WriteString("<ul>")
		for _, d := range agg.TopDestinations {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(d.Name))
		}
		b.WriteString("</ul>")
	}
	featured := agg.Featured
	if len(featured) > 6 {
		featured = featured[:6]
	}
	if len(featured) > 0 {
		b.WriteString("<ul>")
		for _, pkg := range featured {
			fmt.Fprintf(&b, `<li><a href="/packages/%s">%s</a></li>`,
				html.EscapeString(pkg.Slug), html.EscapeString(pkg.Title))
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</noscript>")
	return b.String()
}

// ldScript wraps marshalled structured data in a JSON-LD script tag.
// encoding/json escapes angle brackets, which keeps the payload safe to
// embed inline.
func ldScript(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Inputs are plain structs of strings and numbers; marshalling
		// them cannot fail at runtime.
		panic(fmt.Sprintf("collections: marshal JSON-LD: %v", err))
	}
	return `<script type="application/ld+json">` + string(data) + `</script>`
}

type ldListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name,omitempty"`
	Item     any    `json:"item,omitempty"`
}

// BreadcrumbJSONLD emits the Home -> Collections -> {collection}
// BreadcrumbList block.
func BreadcrumbJSONLD(rc RenderConfig, agg Aggregate) string {
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
			{Type: "ListItem", Position: 2, Name: "Collections", Item: fmt.Sprintf("https://%s/collections", rc.CanonicalHost)},
			{Type: "ListItem", Position: 3, Name: agg.Config.Name, Item: rc.collectionURL(agg.Config.Slug)},
		},
	})
}

// CollectionPageJSONLD emits the CollectionPage block.
func CollectionPageJSONLD(rc RenderConfig, agg Aggregate) string {
	type collectionPage struct {
		Context     string `json:"@context"`
		Type        string `json:"@type"`
		Name        string `json:"name"`
		Description string `json:"description"`
		URL         string `json:"url"`
	}
	return ldScript(collectionPage{
		Context:     "https://schema.org",
		Type:        "CollectionPage",
		Name:        MetaTitle(agg.Config),
		Description: MetaDescription(agg),
		URL:         rc.collectionURL(agg.Config.Slug),
	})
}

// ItemListJSONLD emits the featured-package ItemList. Packages with a
// positive price nest a schema.org Product carrying an Offer; unpriced
// packages are listed by name and URL only.
func ItemListJSONLD(rc RenderConfig, agg Aggregate) string {
	type offer struct {
		Type          string  `json:"@type"`
		Price         float64 `json:"price"`
		PriceCurrency string  `json:"priceCurrency"`
	}
	type product struct {
		Type        string `json:"@type"`
		Name        string `json:"name"`
		URL         string `json:"url"`
		Description string `json:"description,omitempty"`
		Offers      *offer `json:"offers,omitempty"`
	}
	type itemList struct {
		Context  string       `json:"@context"`
		Type     string       `json:"@type"`
		Name     string       `json:"name"`
		Elements []ldListItem `json:"itemListElement"`
	}

	elements := make([]ldListItem, 0, len(agg.Featured))
	for i, pkg := range agg.Featured {
		entry := ldListItem{Type: "ListItem", Position: i + 1}
		if pkg.Price != nil && *pkg.Price > 0 {
			currency := pkg.Currency
			if currency == "" {
				currency = agg.Currency
			}
			entry.Item = product{
				Type:        "Product",
				Name:        pkg.Title,
				URL:         rc.packageURL(pkg.Slug),
				Description: pkg.Excerpt,
				Offers:      &offer{Type: "Offer", Price: *pkg.Price, PriceCurrency: currency},
			}
		} else {
			entry.Name = pkg.Title
			entry.Item = rc.packageURL(pkg.Slug)
		}
		elements = append(elements, entry)
	}

	return ldScript(itemList{
		Context:  "https://schema.org",
		Type:     "ItemList",
		Name:     agg.Config.Name,
		Elements: elements,
	})
}

// FAQJSONLD emits the FAQPage block, mapping 1:1 onto the rendered FAQ
// list.
func FAQJSONLD(faqs []FAQ) string {
	type answer struct {
		Type string `json:"@type"`
		Text string `json:"text"`
	}
	type question struct {
		Type     string `json:"@type"`
		Name     string `json:"name"`
		Accepted answer `json:"acceptedAnswer"`
	}
	type faqPage struct {
		Context  string     `json:"@context"`
		Type     string     `json:"@type"`
		Entities []question `json:"mainEntity"`
	}

	entities := make([]question, len(faqs))
	for i, faq := range faqs {
		entities[i] = question{
			Type:     "Question",
			Name:     faq.Question,
			Accepted: answer{Type: "Answer", Text: faq.Answer},
		}
	}
	return ldScript(faqPage{Context: "https://schema.org", Type: "FAQPage", Entities: entities})
}

// RenderPage assembles the complete server-rendered collection page:
// head metadata, the four JSON-LD blocks, the content sections and the
// no-JS fallback.
func RenderPage(rc RenderConfig, agg Aggregate) string {
	faqs := GenerateFAQs(rc, agg)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(MetaTitle(agg.Config)))
	fmt.Fprintf(&b, `<meta name="description" content="%s">`+"\n", html.EscapeString(MetaDescription(agg)))
	fmt.Fprintf(&b, `<link rel="canonical" href="%s">`+"\n", html.EscapeString(rc.collectionURL(agg.Config.Slug)))
	b.WriteString(BreadcrumbJSONLD(rc, agg) + "\n")
	b.WriteString(CollectionPageJSONLD(rc, agg) + "\n")
	b.WriteString(ItemListJSONLD(rc, agg) + "\n")
	b.WriteString(FAQJSONLD(faqs) + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(RenderSections(rc, agg, faqs))
	b.WriteString(NoScriptFallback(agg))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
