package models

import (
	"time"
)

// Page represents an editorial content page (destination guides, policies)
type Page struct {
	ID              int       `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	MetaDescription string    `json:"meta_description"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreatePageRequest is the request body for creating a content page
type CreatePageRequest struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	MetaDescription string `json:"meta_description"`
	IsPublished     bool   `json:"is_published"`
}

// UpdatePageRequest is the request body for updating a content page
type UpdatePageRequest struct {
	Slug            *string `json:"slug,omitempty"`
	Title           *string `json:"title,omitempty"`
	Body            *string `json:"body,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	IsPublished     *bool   `json:"is_published,omitempty"`
}
