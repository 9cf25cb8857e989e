package collections

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var nightsPattern = regexp.MustCompile(`(?i)(\d+)\s*nights?`)

// ParseNights extracts a night count from a free-text duration string,
// e.g. "10 Nights / 11 Days" -> 10. Returns nil when no count is present
// or the digits do not fit an int.
func ParseNights(duration string) *int {
	m := nightsPattern.FindStringSubmatch(duration)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// Median returns the median of values, averaging the two middle elements
// for even-length input. Returns nil for empty input.
func Median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		m = sorted[mid]
	}
	return &m
}

// Slugify converts free text to a URL slug: lower-cased, whitespace runs
// collapsed to single hyphens.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "-")
}

// normalizeInclusion canonicalizes a "what's included" line item for
// frequency counting: trimmed, lower-cased, internal whitespace collapsed.
func normalizeInclusion(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// capitalize upper-cases the first letter of s for display.
func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
