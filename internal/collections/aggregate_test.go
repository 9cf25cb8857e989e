package collections

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farehaven/travelfront/internal/models"
)

func riverCruiseScenario() []*models.Package {
	return []*models.Package{
		pkg("Danube River Cruise", func(p *models.Package) {
			p.Tags = []string{"river cruise", "luxury"}
			p.Price = floatPtr(1200)
			p.Duration = "7 Nights / 8 Days"
			p.Category = "Germany"
			p.WhatsIncluded = []string{"Flights", "Full board"}
		}),
		pkg("Rhine River Cruise", func(p *models.Package) {
			p.Tags = []string{"river cruise"}
			p.Price = floatPtr(1400)
			p.Duration = "7 Nights"
			p.Category = "Germany"
			p.WhatsIncluded = []string{"Flights"}
		}),
	}
}

func TestBuildAggregateScenario(t *testing.T) {
	agg := BuildAggregate(riverCruiseScenario(), riverCruisesConfig())

	assert.Equal(t, 2, agg.PackageCount)

	require.NotNil(t, agg.PriceMin)
	require.NotNil(t, agg.PriceMedian)
	require.NotNil(t, agg.PriceMax)
	assert.Equal(t, 1200.0, *agg.PriceMin)
	assert.Equal(t, 1300.0, *agg.PriceMedian)
	assert.Equal(t, 1400.0, *agg.PriceMax)

	assert.Equal(t, []string{"luxury"}, agg.TopTags)

	require.Len(t, agg.DurationBuckets, 5)
	assert.Equal(t, "5–7 nights", agg.DurationBuckets[1].Label)
	assert.Equal(t, 2, agg.DurationBuckets[1].Count)
	assert.Equal(t, []string{"5–7 nights"}, agg.TopDurationBuckets)

	assert.Equal(t, []string{"Flights", "Full board"}, agg.TopInclusions)

	require.Len(t, agg.TopDestinations, 1)
	assert.Equal(t, Destination{Name: "Germany", Slug: "germany", Count: 2}, agg.TopDestinations[0])
}

func TestBuildAggregateEmptyInput(t *testing.T) {
	agg := BuildAggregate(nil, riverCruisesConfig())

	assert.Equal(t, 0, agg.PackageCount)
	assert.Nil(t, agg.PriceMin)
	assert.Nil(t, agg.PriceMedian)
	assert.Nil(t, agg.PriceMax)
	assert.Empty(t, agg.TopTags)
	assert.Empty(t, agg.TopDurationBuckets)
	assert.Empty(t, agg.TopInclusions)
	assert.Empty(t, agg.TopDestinations)
	assert.Empty(t, agg.Featured)
}

func TestBuildAggregateDeterminism(t *testing.T) {
	pkgs := riverCruiseScenario()
	first := BuildAggregate(pkgs, riverCruisesConfig())
	second := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Equal(t, first, second)
}

func TestBuildAggregateExcludesUnpublished(t *testing.T) {
	pkgs := riverCruiseScenario()
	pkgs[1].IsPublished = false

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Equal(t, 1, agg.PackageCount)
}

func TestPriceStatsExcludeMissingAndNonPositive(t *testing.T) {
	pkgs := []*models.Package{
		pkg("Danube River Cruise", func(p *models.Package) { p.Price = floatPtr(1000) }),
		pkg("Rhine River Cruise", func(p *models.Package) { p.Price = nil }),
		pkg("Moselle River Cruise", func(p *models.Package) { p.Price = floatPtr(0) }),
		pkg("Douro River Cruise", func(p *models.Package) { p.Price = floatPtr(-50) }),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Equal(t, 4, agg.PackageCount)
	require.NotNil(t, agg.PriceMin)
	assert.Equal(t, 1000.0, *agg.PriceMin)
	assert.Equal(t, 1000.0, *agg.PriceMax)
	assert.Equal(t, 1000.0, *agg.PriceMedian)
}

// A tag matching the collection's own tagMatches must never surface as
// one of that collection's styles.
func TestTopTagsSelfExclusion(t *testing.T) {
	pkgs := []*models.Package{
		pkg("Danube Sailing", func(p *models.Package) {
			p.Tags = []string{"River Cruise", "Luxury"}
		}),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.NotContains(t, agg.TopTags, "River Cruise")
	assert.Contains(t, agg.TopTags, "Luxury")
}

func TestTopTagsCapAndOrdering(t *testing.T) {
	var pkgs []*models.Package
	// "beach" on 3 packages, "culture" on 2, ten single-use tags.
	for i := 0; i < 3; i++ {
		pkgs = append(pkgs, pkg(fmt.Sprintf("River Cruise %d", i), func(p *models.Package) {
			p.Tags = []string{"beach"}
		}))
	}
	for i := 0; i < 2; i++ {
		pkgs = append(pkgs, pkg(fmt.Sprintf("River Cruise Extra %d", i), func(p *models.Package) {
			p.Tags = []string{"culture"}
		}))
	}
	pkgs = append(pkgs, pkg("River Cruise Grab Bag", func(p *models.Package) {
		p.Tags = []string{"j", "i", "h", "g", "f", "e", "d", "c", "b", "a"}
	}))

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	require.Len(t, agg.TopTags, 8)
	assert.Equal(t, "beach", agg.TopTags[0])
	assert.Equal(t, "culture", agg.TopTags[1])
	// Remaining slots fill alphabetically among the count-1 tags.
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, agg.TopTags[2:])
}

// A 7-night package lands in "5–7 nights" only, never also in "8–10".
func TestDurationBucketExclusivity(t *testing.T) {
	pkgs := []*models.Package{
		pkg("Danube River Cruise", func(p *models.Package) { p.Duration = "7 Nights / 8 Days" }),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Equal(t, 1, agg.DurationBuckets[1].Count)
	assert.Equal(t, 0, agg.DurationBuckets[2].Count)
}

func TestDurationBucketsDropUnparseable(t *testing.T) {
	pkgs := []*models.Package{
		pkg("Danube River Cruise", func(p *models.Package) {
			p.Duration = "a leisurely sailing"
			p.Price = floatPtr(900)
		}),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	for _, bucket := range agg.DurationBuckets {
		assert.Zero(t, bucket.Count)
	}
	assert.Empty(t, agg.TopDurationBuckets)
	// Dropped from the histogram only; the package still counts elsewhere.
	assert.Equal(t, 1, agg.PackageCount)
	require.NotNil(t, agg.PriceMin)
}

func TestDurationBucketBoundaries(t *testing.T) {
	tests := []struct {
		nights int
		bucket string
	}{
		{nights: 1, bucket: "1–4 nights"},
		{nights: 4, bucket: "1–4 nights"},
		{nights: 5, bucket: "5–7 nights"},
		{nights: 7, bucket: "5–7 nights"},
		{nights: 8, bucket: "8–10 nights"},
		{nights: 10, bucket: "8–10 nights"},
		{nights: 11, bucket: "11–14 nights"},
		{nights: 14, bucket: "11–14 nights"},
		{nights: 15, bucket: "15+ nights"},
		{nights: 30, bucket: "15+ nights"},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			assert.Equal(t, tt.bucket, durationBucketLabels[bucketIndex(tt.nights)])
		})
	}
}

// The 15% prevalence threshold is boundary inclusive: 14% is out, 15% in.
func TestTopInclusionsThreshold(t *testing.T) {
	var pkgs []*models.Package
	for i := 0; i < 50; i++ {
		p := pkg(fmt.Sprintf("River Cruise %d", i))
		if i < 7 {
			// 7 of 50 = 14%
			p.WhatsIncluded = append(p.WhatsIncluded, "welcome drink")
		}
		if i < 8 {
			// 8 of 50 = 16%
			p.WhatsIncluded = append(p.WhatsIncluded, "port charges")
		}
		pkgs = append(pkgs, p)
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.NotContains(t, agg.TopInclusions, "Welcome drink")
	assert.Contains(t, agg.TopInclusions, "Port charges")
}

func TestTopInclusionsExactBoundary(t *testing.T) {
	var pkgs []*models.Package
	for i := 0; i < 20; i++ {
		p := pkg(fmt.Sprintf("River Cruise %d", i))
		if i < 3 {
			// 3 of 20 = exactly 15%
			p.WhatsIncluded = []string{"travel insurance"}
		}
		pkgs = append(pkgs, p)
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Contains(t, agg.TopInclusions, "Travel insurance")
}

func TestTopInclusionsNormalization(t *testing.T) {
	pkgs := []*models.Package{
		pkg("Danube River Cruise", func(p *models.Package) {
			p.WhatsIncluded = []string{"  Return   Flights  "}
		}),
		pkg("Rhine River Cruise", func(p *models.Package) {
			p.WhatsIncluded = []string{"return flights"}
		}),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Equal(t, []string{"Return flights"}, agg.TopInclusions)
}

func TestTopInclusionsDropShortNoise(t *testing.T) {
	pkgs := []*models.Package{
		pkg("Danube River Cruise", func(p *models.Package) {
			p.WhatsIncluded = []string{"tax", "n/a", "Return flights"}
		}),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	assert.Equal(t, []string{"Return flights"}, agg.TopInclusions)
}

func TestFeaturedCapAndDisplayOrder(t *testing.T) {
	cfg := riverCruisesConfig()
	cfg.FeaturedLimit = 2

	pkgs := []*models.Package{
		pkg("River Cruise C", func(p *models.Package) { p.DisplayOrder = intPtr(3) }),
		pkg("River Cruise A", func(p *models.Package) { p.DisplayOrder = intPtr(1) }),
		pkg("River Cruise B", func(p *models.Package) { p.DisplayOrder = intPtr(2) }),
	}

	agg := BuildAggregate(pkgs, cfg)
	require.Len(t, agg.Featured, 2)
	assert.Equal(t, "River Cruise A", agg.Featured[0].Title)
	assert.Equal(t, "River Cruise B", agg.Featured[1].Title)
}

func TestFeaturedFallsBackToUpdatedAt(t *testing.T) {
	pkgs := []*models.Package{
		pkg("River Cruise Old", func(p *models.Package) { p.UpdatedAt = timeAt(1) }),
		pkg("River Cruise New", func(p *models.Package) { p.UpdatedAt = timeAt(20) }),
		pkg("River Cruise Mid", func(p *models.Package) { p.UpdatedAt = timeAt(10) }),
	}

	agg := BuildAggregate(pkgs, riverCruisesConfig())
	require.Len(t, agg.Featured, 3)
	assert.Equal(t, "River Cruise New", agg.Featured[0].Title)
	assert.Equal(t, "River Cruise Mid", agg.Featured[1].Title)
	assert.Equal(t, "River Cruise Old", agg.Featured[2].Title)
}

func TestAggregateNeverMutatesInput(t *testing.T) {
	pkgs := riverCruiseScenario()
	originalTitle := pkgs[0].Title
	originalTags := append([]string(nil), pkgs[0].Tags...)

	BuildAggregate(pkgs, riverCruisesConfig())

	assert.Equal(t, originalTitle, pkgs[0].Title)
	assert.Equal(t, originalTags, pkgs[0].Tags)
}
