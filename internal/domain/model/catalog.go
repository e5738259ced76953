package model

import "time"

// Service is a catalog entry managed by an operator and rendered on the
// public pages. Only active services are visible in listings.
type Service struct {
	ID               int64
	Title            string
	Slug             string
	ShortDescription string
	Description      string
	Icon             string
	// PriceStartingAt is nil when no starting price is advertised.
	PriceStartingAt *float64
	IsActive        bool
	DisplayOrder    int
	CreatedAt       time.Time
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID          int64
	Name        string
	Title       string
	Institution string
	// Image holds the media-relative photo path, empty when absent.
	Image     string
	Content   string
	Rating    int
	IsActive  bool
	CreatedAt time.Time
}
