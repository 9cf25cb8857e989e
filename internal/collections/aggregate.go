package collections

import (
	"sort"
	"strings"

	"github.com/farehaven/travelfront/internal/models"
)

const (
	topTagLimit         = 8
	topInclusionLimit   = 10
	topDestinationLimit = 8
	topBucketLimit      = 2

	// Minimum share of matched packages an inclusion line item must reach
	// to be surfaced (boundary inclusive).
	inclusionThreshold = 0.15
)

// durationBucketLabels are the five fixed night-count histogram buckets.
var durationBucketLabels = [5]string{
	"1–4 nights",
	"5–7 nights",
	"8–10 nights",
	"11–14 nights",
	"15+ nights",
}

// BucketCount is one duration histogram bucket with its package count.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Destination is a counted package category with its landing-page slug.
type Destination struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Aggregate is the computed summary for one collection. It has no
// persistent identity: it is recomputed from the current package set on
// every request.
type Aggregate struct {
	Config             CollectionConfig  `json:"config"`
	PackageCount       int               `json:"package_count"`
	PriceMin           *float64          `json:"price_min,omitempty"`
	PriceMedian        *float64          `json:"price_median,omitempty"`
	PriceMax           *float64          `json:"price_max,omitempty"`
	Currency           string            `json:"currency"`
	TopTags            []string          `json:"top_tags"`
	DurationBuckets    []BucketCount     `json:"duration_buckets"`
	TopDurationBuckets []string          `json:"top_duration_buckets"`
	TopInclusions      []string          `json:"top_inclusions"`
	TopDestinations    []Destination     `json:"top_destinations"`
	Featured           []*models.Package `json:"featured"`
}

// BuildAggregate computes the collection summary for cfg over pkgs.
// Only published, matching packages contribute. Per-field degradation is
// graceful: a bad price or unparseable duration drops that package from
// the affected statistic only, never from the whole aggregate. An empty
// match set yields zero counts, nil prices and empty slices.
func BuildAggregate(pkgs []*models.Package, cfg CollectionConfig) Aggregate {
	var matched []*models.Package
	for _, pkg := range pkgs {
		if pkg == nil || !pkg.IsPublished {
			continue
		}
		if Matches(pkg, &cfg) {
			matched = append(matched, pkg)
		}
	}

	agg := Aggregate{
		Config:             cfg,
		PackageCount:       len(matched),
		Currency:           "GBP",
		TopTags:            []string{},
		TopDurationBuckets: []string{},
		TopInclusions:      []string{},
		TopDestinations:    []Destination{},
		Featured:           []*models.Package{},
	}

	agg.PriceMin, agg.PriceMedian, agg.PriceMax = priceStats(matched)
	for _, pkg := range matched {
		if pkg.Price != nil && *pkg.Price > 0 && pkg.Currency != "" {
			agg.Currency = pkg.Currency
			break
		}
	}
	agg.TopTags = topTags(matched, cfg.TagMatches)
	agg.DurationBuckets, agg.TopDurationBuckets = durationBuckets(matched)
	agg.TopInclusions = topInclusions(matched)
	agg.TopDestinations = topDestinations(matched)
	agg.Featured = featuredPackages(matched, cfg.FeaturedLimit)

	return agg
}

// priceStats computes min/median/max over positive prices only. Packages
// with a missing, zero or negative price are silently excluded.
func priceStats(matched []*models.Package) (min, median, max *float64) {
	var prices []float64
	for _, pkg := range matched {
		if pkg.Price != nil && *pkg.Price > 0 {
			prices = append(prices, *pkg.Price)
		}
	}
	if len(prices) == 0 {
		return nil, nil, nil
	}

	lo, hi := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return &lo, Median(prices), &hi
}

// topTags counts literal tag strings across matched packages, excluding
// tags that match the collection's own tagMatches so the collection does
// not list itself as one of its own styles.
func topTags(matched []*models.Package, tagMatches []string) []string {
	counts := map[string]int{}
	for _, pkg := range matched {
		for _, tag := range pkg.Tags {
			if tag == "" || matchesAny(strings.ToLower(tag), tagMatches) {
				continue
			}
			counts[tag]++
		}
	}
	return topKeys(counts, topTagLimit)
}

func matchesAny(lowered string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(lowered, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// durationBuckets histograms matched packages into the five fixed
// night-count buckets. Packages whose duration text yields no night count
// are dropped from this histogram only.
func durationBuckets(matched []*models.Package) ([]BucketCount, []string) {
	var counts [5]int
	for _, pkg := range matched {
		nights := ParseNights(pkg.Duration)
		if nights == nil {
			continue
		}
		counts[bucketIndex(*nights)]++
	}

	buckets := make([]BucketCount, len(durationBucketLabels))
	for i, label := range durationBucketLabels {
		buckets[i] = BucketCount{Label: label, Count: counts[i]}
	}

	ranked := make([]BucketCount, 0, len(buckets))
	for _, b := range buckets {
		if b.Count > 0 {
			ranked = append(ranked, b)
		}
	}
	// Ties keep histogram order thanks to the stable sort.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > topBucketLimit {
		ranked = ranked[:topBucketLimit]
	}
	labels := make([]string, len(ranked))
	for i, b := range ranked {
		labels[i] = b.Label
	}
	return buckets, labels
}

func bucketIndex(nights int) int {
	switch {
	case nights <= 4:
		return 0
	case nights <= 7:
		return 1
	case nights <= 10:
		return 2
	case nights <= 14:
		return 3
	default:
		return 4
	}
}

// topInclusions mines the "what's included" line items: normalized,
// short-string noise dropped, kept at >=15% prevalence, top 10,
// re-capitalized for display.
func topInclusions(matched []*models.Package) []string {
	if len(matched) == 0 {
		return []string{}
	}
	counts := map[string]int{}
	for _, pkg := range matched {
		for _, item := range pkg.WhatsIncluded {
			normalized := normalizeInclusion(item)
			if len(normalized) <= 3 {
				continue
			}
			counts[normalized]++
		}
	}

	total := float64(len(matched))
	for item, count := range counts {
		if float64(count)/total < inclusionThreshold {
			delete(counts, item)
		}
	}

	keys := topKeys(counts, topInclusionLimit)
	for i, k := range keys {
		keys[i] = capitalize(k)
	}
	return keys
}

// topDestinations counts package categories verbatim and slugs each for
// destination landing-page links.
func topDestinations(matched []*models.Package) []Destination {
	counts := map[string]int{}
	for _, pkg := range matched {
		if pkg.Category != "" {
			counts[pkg.Category]++
		}
	}
	keys := topKeys(counts, topDestinationLimit)
	destinations := make([]Destination, len(keys))
	for i, name := range keys {
		destinations[i] = Destination{Name: name, Slug: Slugify(name), Count: counts[name]}
	}
	return destinations
}

// topKeys returns up to limit keys ordered by count descending; ties
// break alphabetically so repeated aggregation is byte-stable.
func topKeys(counts map[string]int, limit int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// featuredPackages ranks matched packages for prominent display:
// displayOrder ascending when both sides carry one, otherwise most
// recently updated first. The sort is stable so equal keys keep input
// order.
func featuredPackages(matched []*models.Package, limit int) []*models.Package {
	featured := make([]*models.Package, len(matched))
	copy(featured, matched)

	sort.SliceStable(featured, func(i, j int) bool {
		a, b := featured[i], featured[j]
		if a.DisplayOrder != nil && b.DisplayOrder != nil && *a.DisplayOrder != *b.DisplayOrder {
			return *a.DisplayOrder < *b.DisplayOrder
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	if limit >= 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}
