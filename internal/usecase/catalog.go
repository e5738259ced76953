package usecase

import (
	"context"
	"regexp"
	"strings"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/domain/repository"
)

// HomeListingLimit caps the services and testimonials shown on the home page.
const HomeListingLimit = 6

const defaultServiceIcon = "fas fa-graduation-cap"

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title.
func Slugify(s string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// CatalogUseCase exposes catalog listings for the public pages and the
// operator-facing catalog management operations.
type CatalogUseCase struct {
	services     repository.ServiceRepository
	testimonials repository.TestimonialRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(services repository.ServiceRepository, testimonials repository.TestimonialRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services, testimonials: testimonials}
}

// ActiveServices returns visible services ordered by display order then title.
func (u *CatalogUseCase) ActiveServices(ctx context.Context, limit int) ([]model.Service, error) {
	return u.services.ListActive(ctx, limit)
}

// ActiveTestimonials returns visible testimonials, most recent first.
func (u *CatalogUseCase) ActiveTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	return u.testimonials.ListActive(ctx, limit)
}

// AllServices returns every service regardless of visibility.
func (u *CatalogUseCase) AllServices(ctx context.Context) ([]model.Service, error) {
	return u.services.List(ctx)
}

// AllTestimonials returns every testimonial regardless of visibility.
func (u *CatalogUseCase) AllTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return u.testimonials.List(ctx)
}

// CreateService stores a new catalog service, deriving the slug from the
// title when absent.
func (u *CatalogUseCase) CreateService(ctx context.Context, svc model.Service) (*model.Service, error) {
	if svc.Slug == "" {
		svc.Slug = Slugify(svc.Title)
	}
	if svc.Icon == "" {
		svc.Icon = defaultServiceIcon
	}
	return u.services.Create(ctx, svc)
}

// UpdateService stores changes to an existing service.
func (u *CatalogUseCase) UpdateService(ctx context.Context, svc model.Service) error {
	if svc.Slug == "" {
		svc.Slug = Slugify(svc.Title)
	}
	return u.services.Update(ctx, svc)
}

// CreateTestimonial stores a new testimonial after checking the rating range.
func (u *CatalogUseCase) CreateTestimonial(ctx context.Context, t model.Testimonial) (*model.Testimonial, error) {
	if t.Rating < 1 || t.Rating > 5 {
		return nil, domainErrors.ErrInvalidRating
	}
	return u.testimonials.Create(ctx, t)
}

// UpdateTestimonial stores changes to an existing testimonial.
func (u *CatalogUseCase) UpdateTestimonial(ctx context.Context, t model.Testimonial) error {
	if t.Rating < 1 || t.Rating > 5 {
		return domainErrors.ErrInvalidRating
	}
	return u.testimonials.Update(ctx, t)
}
