package collections

import (
	"fmt"
	"strings"
)

const faqLimit = 14

// FAQ is one rendered question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateFAQs builds the FAQ list for a collection aggregate. The
// candidate order is fixed and conditional entries are omitted when their
// backing data is empty, so the emitted length is data-dependent but the
// output is byte-identical for identical input. The JSON-LD FAQPage block
// maps 1:1 onto this list, so ordering and omission rules must not drift.
func GenerateFAQs(rc RenderConfig, agg Aggregate) []FAQ {
	name := agg.Config.Name
	faqs := make([]FAQ, 0, faqLimit)

	add := func(question, answer string) {
		if len(faqs) < faqLimit {
			faqs = append(faqs, FAQ{Question: question, Answer: answer})
		}
	}

	add(
		fmt.Sprintf("What are %s holidays?", name),
		fmt.Sprintf("%s holidays are flight-inclusive packages curated by our travel specialists, combining international flights, accommodation and key extras into a single protected booking.", name),
	)

	if agg.PackageCount > 0 {
		add(
			fmt.Sprintf("How many %s packages are available?", name),
			fmt.Sprintf("We currently feature %d %s package(s), refreshed regularly as new departures are loaded.", agg.PackageCount, name),
		)
	}

	if agg.PriceMin != nil {
		answer := fmt.Sprintf("Prices start from %s per person.", formatPrice(agg.Currency, *agg.PriceMin))
		if agg.PriceMedian != nil && agg.PriceMax != nil {
			answer = fmt.Sprintf(
				"Prices start from %s per person, with a typical price of %s and premium itineraries up to %s.",
				formatPrice(agg.Currency, *agg.PriceMin),
				formatPrice(agg.Currency, *agg.PriceMedian),
				formatPrice(agg.Currency, *agg.PriceMax),
			)
		}
		add(fmt.Sprintf("How much does a %s holiday cost?", name), answer)
	}

	if len(agg.TopDurationBuckets) > 0 {
		add(
			fmt.Sprintf("How long are %s holidays?", name),
			fmt.Sprintf("Most itineraries fall in the %s range.", joinNatural(agg.TopDurationBuckets)),
		)
	}

	answer := "Packages typically bundle return flights, accommodation and transfers; each package page lists exactly what its price covers."
	if len(agg.TopInclusions) > 0 {
		answer = fmt.Sprintf(
			"Across these packages the most common inclusions are: %s. Each package page lists exactly what its price covers.",
			strings.Join(agg.TopInclusions, ", "),
		)
	}
	add(fmt.Sprintf("What's included in a %s package?", name), answer)

	if len(agg.TopDestinations) > 0 {
		names := make([]string, len(agg.TopDestinations))
		for i, d := range agg.TopDestinations {
			names[i] = d.Name
		}
		add(
			fmt.Sprintf("Which destinations do %s holidays visit?", name),
			fmt.Sprintf("Popular destinations include %s.", joinNatural(names)),
		)
	}

	if len(agg.TopTags) > 0 {
		add(
			fmt.Sprintf("What styles of %s holiday are there?", name),
			fmt.Sprintf("Travellers most often choose %s itineraries.", joinNatural(agg.TopTags)),
		)
	}

	add(
		"Are flights included?",
		"Yes. Every package on this page is sold with return international flights from the UK included in the headline price.",
	)
	add(
		"Is my booking financially protected?",
		"All flight-inclusive packages are ATOL protected, so your money is safe if anything happens to a supplier before you travel.",
	)
	add(
		fmt.Sprintf("Can I tailor a %s itinerary?", name),
		"Yes. Every itinerary can be adjusted by our specialists: different departure airports, extra nights, room upgrades or alternative dates.",
	)
	add(
		"When is the best time to book?",
		"Booking 6 to 12 months ahead secures the widest choice of departures and cabins or rooms; late availability deals do appear but sell quickly.",
	)
	enquire := "Use the enquiry form on any package page or call our specialist team; we respond to all enquiries within one working day."
	if rc.ContactEmail != "" {
		enquire = fmt.Sprintf(
			"Use the enquiry form on any package page, email %s or call our specialist team; we respond to all enquiries within one working day.",
			rc.ContactEmail,
		)
	}
	add(fmt.Sprintf("How do I enquire about a %s package?", name), enquire)

	return faqs
}

// joinNatural joins items with commas and a final "and".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// formatPrice renders a price with its currency symbol, dropping trailing
// zero pence for whole amounts. Currencies without a known symbol keep
// their ISO code as a prefix.
func formatPrice(currency string, amount float64) string {
	var prefix string
	switch currency {
	case "GBP", "":
		prefix = "£"
	case "USD":
		prefix = "$"
	case "EUR":
		prefix = "€"
	default:
		prefix = currency + " "
	}
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%s%d", prefix, int64(amount))
	}
	return fmt.Sprintf("%s%.2f", prefix, amount)
}
