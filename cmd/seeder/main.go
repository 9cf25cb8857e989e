package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/farehaven/travelfront/internal/config"
	"github.com/farehaven/travelfront/internal/database"
	"github.com/farehaven/travelfront/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview changes without writing to database")
	flag.Parse()

	// Load .env
	godotenv.Load()

	// Load config
	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Seeding demo packages...")

	seeds := []models.CreatePackageRequest{
		{
			Slug:        "danube-river-cruise",
			Title:       "Danube River Cruise",
			Description: "<p>Sail the Danube through four countries with daily guided excursions.</p>",
			Excerpt:     "A classic Danube sailing from Budapest to Passau.",
			Category:    "Germany",
			Tags:        []string{"River Cruise", "Luxury"},
			WhatsIncluded: []string{
				"Return flights", "Full board dining", "Daily excursions", "Airport transfers",
			},
			Highlights:   []string{"Budapest by night", "Wachau Valley", "Vienna city tour"},
			Price:        floatPtr(1899),
			Currency:     "GBP",
			Duration:     "7 Nights / 8 Days",
			DisplayOrder: intPtr(1),
			IsPublished:  true,
		},
		{
			Slug:        "rhine-highlights-cruise",
			Title:       "Rhine Highlights River Cruise",
			Description: "<p>Castles, vineyards and the Lorelei on the romantic Rhine.</p>",
			Excerpt:     "Cologne to Basel along the castle-lined Rhine gorge.",
			Category:    "Germany",
			Tags:        []string{"River Cruise"},
			WhatsIncluded: []string{
				"Return flights", "Full board dining", "Airport transfers",
			},
			Highlights:   []string{"Lorelei rock", "Rudesheim wine tasting"},
			Price:        floatPtr(1599),
			Currency:     "GBP",
			Duration:     "7 Nights",
			DisplayOrder: intPtr(2),
			IsPublished:  true,
		},
		{
			Slug:        "golden-triangle-classic",
			Title:       "Classic Golden Triangle Tour",
			Description: "<p>Delhi, Agra and Jaipur with private guiding throughout.</p>",
			Excerpt:     "India's iconic circuit: Delhi, the Taj Mahal and the Pink City.",
			Category:    "India",
			Tags:        []string{"Golden Triangle", "Culture"},
			WhatsIncluded: []string{
				"Return flights", "Private driver", "Daily breakfast", "Taj Mahal entry",
			},
			Highlights:   []string{"Taj Mahal at sunrise", "Amber Fort", "Old Delhi rickshaw ride"},
			Price:        floatPtr(1299),
			Currency:     "GBP",
			Duration:     "6 Nights / 7 Days",
			DisplayOrder: intPtr(1),
			IsPublished:  true,
		},
		{
			Slug:        "sri-lanka-and-maldives",
			Title:       "Sri Lanka and Maldives Twin Centre",
			Description: "<p>Cultural Sri Lanka followed by a Maldivian island escape.</p>",
			Excerpt:     "Tea country and temples, then overwater luxury.",
			Category:    "Sri Lanka",
			Tags:        []string{"Twin Centre", "Beach"},
			WhatsIncluded: []string{
				"Return flights", "Daily breakfast", "Seaplane transfer",
			},
			Highlights:   []string{"Sigiriya rock fortress", "Maldives lagoon villa"},
			Price:        floatPtr(2499),
			Currency:     "GBP",
			Duration:     "10 Nights / 11 Days",
			DisplayOrder: nil,
			IsPublished:  true,
		},
		{
			Slug:        "solo-douro-discovery",
			Title:       "Douro Discovery for Solo Travellers",
			Description: "<p>A sociable Douro river cruise with no single supplement.</p>",
			Excerpt:     "Portugal's golden river, hosted for solo guests.",
			Category:    "Portugal",
			Tags:        []string{"River Cruise", "Solo"},
			WhatsIncluded: []string{
				"Return flights", "Full board dining", "Solo host",
			},
			Highlights:   []string{"Porto old town", "Quinta wine estate visit"},
			Price:        floatPtr(1749),
			Currency:     "GBP",
			Duration:     "7 Nights",
			DisplayOrder: nil,
			IsPublished:  true,
		},
	}

	created := 0
	for _, seed := range seeds {
		if *dryRun {
			log.Printf("[dry-run] would create %s", seed.Slug)
			continue
		}
		if _, err := db.GetPackageBySlug(ctx, seed.Slug); err == nil {
			log.Printf("skipping %s (already exists)", seed.Slug)
			continue
		}
		if _, err := db.CreatePackage(ctx, &seed); err != nil {
			log.Printf("failed to create %s: %v", seed.Slug, err)
			continue
		}
		created++
		log.Printf("created %s", seed.Slug)
	}

	log.Printf("Done. %d package(s) created.", created)
}
