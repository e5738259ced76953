// Package seed loads sample catalog data for demo environments.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/domain/repository"
	"github.com/academiq/academiq/internal/usecase"
)

var sampleServices = []model.Service{
	{
		Title:            "Master's & PhD Thesis Preparation",
		ShortDescription: "Comprehensive guidance for high-impact postgraduate research.",
		Description:      "Full support for thesis chapters, methodology, and literature reviews.",
		Icon:             "fas fa-pen-nib",
		DisplayOrder:     1,
		IsActive:         true,
	},
	{
		Title:            "Statistical Analysis",
		ShortDescription: "Advanced data interpretation using SPSS, R, and Python.",
		Description:      "Professional statistical modeling and data visualization for scholars.",
		Icon:             "fas fa-chart-pie",
		DisplayOrder:     2,
		IsActive:         true,
	},
	{
		Title:            "Scientific Translation",
		ShortDescription: "Precise academic translation preserving technical nuances.",
		Description:      "Expert translation services for research papers and textbooks.",
		Icon:             "fas fa-language",
		DisplayOrder:     3,
		IsActive:         true,
	},
	{
		Title:            "Academic Formatting",
		ShortDescription: "Perfect compliance with APA, MLA, Chicago, and Harvard.",
		Description:      "Ensuring your manuscript meets all stylistic requirements of your institution.",
		Icon:             "fas fa-align-left",
		DisplayOrder:     4,
		IsActive:         true,
	},
}

var sampleTestimonials = []model.Testimonial{
	{
		Name:        "Dr. Emily Roberts",
		Title:       "Assistant Professor",
		Institution: "Stanford University",
		Content:     "ACADEMIQ provided exceptional support for my complex data analysis. Highly recommended!",
		Rating:      5,
		IsActive:    true,
	},
	{
		Name:        "Ahmed Al-Farsi",
		Title:       "PhD Candidate",
		Institution: "Oxford University",
		Content:     "The thesis preparation service was life-changing. I passed my viva with minor corrections.",
		Rating:      5,
		IsActive:    true,
	},
	{
		Name:        "Maria Garcia",
		Title:       "Senior Researcher",
		Institution: "MIT",
		Content:     "Professional, confidential, and incredibly precise translation work.",
		Rating:      5,
		IsActive:    true,
	},
}

// Run inserts the sample catalog. Entries that already exist are left
// untouched, so the seeder is safe to run on every start.
func Run(ctx context.Context, services repository.ServiceRepository, testimonials repository.TestimonialRepository, logger *slog.Logger) error {
	var seeded int

	for _, svc := range sampleServices {
		slug := usecase.Slugify(svc.Title)
		_, err := services.GetBySlug(ctx, slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return fmt.Errorf("check service %q: %w", slug, err)
		}

		svc.Slug = slug
		if _, err := services.Create(ctx, svc); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return fmt.Errorf("seed service %q: %w", slug, err)
		}
		seeded++
	}

	for _, t := range sampleTestimonials {
		_, err := testimonials.GetByName(ctx, t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return fmt.Errorf("check testimonial %q: %w", t.Name, err)
		}

		if _, err := testimonials.Create(ctx, t); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return fmt.Errorf("seed testimonial %q: %w", t.Name, err)
		}
		seeded++
	}

	if seeded > 0 {
		logger.Info("seeded sample catalog", slog.Int("entries", seeded))
	}
	return nil
}
