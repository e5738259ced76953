package repository

import (
	"context"

	"github.com/academiq/academiq/internal/domain/model"
)

// ServiceRepository describes persistence operations for catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, svc model.Service) (*model.Service, error)
	GetBySlug(ctx context.Context, slug string) (*model.Service, error)
	// ListActive returns active services ordered by display order then title.
	// A non-positive limit returns all of them.
	ListActive(ctx context.Context, limit int) ([]model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Update(ctx context.Context, svc model.Service) error
}
