package collections

import (
	"time"

	"github.com/farehaven/travelfront/internal/models"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func timeAt(day int) time.Time    { return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC) }

func riverCruisesConfig() CollectionConfig {
	for _, cfg := range Defaults() {
		if cfg.Slug == "river-cruises" {
			return cfg
		}
	}
	panic("river-cruises config missing")
}

func pkg(title string, mutate ...func(*models.Package)) *models.Package {
	p := &models.Package{
		Slug:        Slugify(title),
		Title:       title,
		Currency:    "GBP",
		IsPublished: true,
		Tags:        []string{},
		UpdatedAt:   timeAt(1),
	}
	for _, fn := range mutate {
		fn(p)
	}
	return p
}
