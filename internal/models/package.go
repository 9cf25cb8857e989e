package models

import (
	"time"
)

// Package represents a flight-inclusive holiday package in the catalog
type Package struct {
	ID            int       `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Excerpt       string    `json:"excerpt"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	WhatsIncluded []string  `json:"whats_included"`
	Highlights    []string  `json:"highlights"`
	Price         *float64  `json:"price,omitempty"`
	Currency      string    `json:"currency"`
	Duration      string    `json:"duration"`
	DisplayOrder  *int      `json:"display_order,omitempty"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePackageRequest is the request body for creating a package
type CreatePackageRequest struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	WhatsIncluded []string `json:"whats_included,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Currency      string   `json:"currency"`
	Duration      string   `json:"duration"`
	DisplayOrder  *int     `json:"display_order,omitempty"`
	IsPublished   bool     `json:"is_published"`
}

// UpdatePackageRequest is the request body for updating a package
type UpdatePackageRequest struct {
	Slug          *string  `json:"slug,omitempty"`
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Excerpt       *string  `json:"excerpt,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	WhatsIncluded []string `json:"whats_included,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	Duration      *string  `json:"duration,omitempty"`
	DisplayOrder  *int     `json:"display_order,omitempty"`
	IsPublished   *bool    `json:"is_published,omitempty"`
}

// PackageListParams contains parameters for listing packages
type PackageListParams struct {
	Limit         int
	Offset        int
	Search        string
	Category      string
	Tag           string
	PublishedOnly bool
}

// PackageStats contains aggregate statistics for the catalog
type PackageStats struct {
	TotalPackages  int `json:"total_packages"`
	PublishedCount int `json:"published_count"`
	WithPrice      int `json:"with_price"`
	Categories     int `json:"categories"`
}
