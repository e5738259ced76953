package repository

import (
	"context"

	"github.com/academiq/academiq/internal/domain/model"
)

// TestimonialRepository describes persistence operations for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t model.Testimonial) (*model.Testimonial, error)
	GetByName(ctx context.Context, name string) (*model.Testimonial, error)
	// ListActive returns active testimonials, most recent first. A
	// non-positive limit returns all of them.
	ListActive(ctx context.Context, limit int) ([]model.Testimonial, error)
	List(ctx context.Context) ([]model.Testimonial, error)
	Update(ctx context.Context, t model.Testimonial) error
}
