package collections

// CollectionConfig defines a named, keyword-matched grouping of packages.
// Adding a collection is a configuration change, not new aggregation code.
type CollectionConfig struct {
	Slug            string   `yaml:"slug" json:"slug"`
	Name            string   `yaml:"name" json:"name"`
	Heading         string   `yaml:"heading" json:"heading"`
	MetaTitleSuffix string   `yaml:"meta_title_suffix" json:"meta_title_suffix"`
	TagMatches      []string `yaml:"tag_matches" json:"tag_matches"`
	TitleMatches    []string `yaml:"title_matches" json:"title_matches"`
	FeaturedLimit   int      `yaml:"featured_limit" json:"featured_limit"`
}

// Defaults returns the built-in collection configs, in display order.
func Defaults() []CollectionConfig {
	return []CollectionConfig{
		{
			Slug:            "river-cruises",
			Name:            "River Cruises",
			Heading:         "River Cruise Holidays with Flights",
			MetaTitleSuffix: "River Cruise Holidays",
			TagMatches:      []string{"river cruise", "cruise"},
			TitleMatches:    []string{"river cruise"},
			FeaturedLimit:   6,
		},
		{
			Slug:            "twin-centre",
			Name:            "Twin Centre Holidays",
			Heading:         "Twin Centre Holidays with Flights",
			MetaTitleSuffix: "Twin Centre Holidays",
			TagMatches:      []string{"twin centre", "twin center"},
			TitleMatches:    []string{"twin centre", "2 centre"},
			FeaturedLimit:   6,
		},
		{
			Slug:            "golden-triangle",
			Name:            "Golden Triangle Tours",
			Heading:         "Golden Triangle Tours of India with Flights",
			MetaTitleSuffix: "Golden Triangle Tours",
			TagMatches:      []string{"golden triangle"},
			TitleMatches:    []string{"golden triangle"},
			FeaturedLimit:   6,
		},
		{
			Slug:            "multi-centre",
			Name:            "Multi Centre Holidays",
			Heading:         "Multi Centre Holidays with Flights",
			MetaTitleSuffix: "Multi Centre Holidays",
			TagMatches:      []string{"multi centre", "multi center", "multi-centre"},
			TitleMatches:    []string{"multi centre", "3 centre"},
			FeaturedLimit:   6,
		},
		{
			Slug:            "solo-travel",
			Name:            "Solo Travel Holidays",
			Heading:         "Escorted Holidays for Solo Travellers",
			MetaTitleSuffix: "Solo Traveller Holidays",
			TagMatches:      []string{"solo"},
			TitleMatches:    []string{"solo"},
			FeaturedLimit:   6,
		},
	}
}
