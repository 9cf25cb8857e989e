package models

import (
	"time"
)

// EnquiryStatus tracks how far an enquiry has progressed
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

// Enquiry represents a customer contact/enquiry submission
type Enquiry struct {
	ID          int           `json:"id"`
	Reference   string        `json:"reference"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       *string       `json:"phone,omitempty"`
	Message     string        `json:"message"`
	PackageSlug *string       `json:"package_slug,omitempty"`
	Status      EnquiryStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CreateEnquiryRequest is the request body for submitting an enquiry
type CreateEnquiryRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Message     string  `json:"message"`
	PackageSlug *string `json:"package_slug,omitempty"`
}

// EnquiryListParams contains parameters for listing enquiries
type EnquiryListParams struct {
	Limit  int
	Offset int
	Status string
}
