package handlers

import (
	"context"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/usecase"
)

// CatalogFacade describes the public catalog listings consumed by pages.
type CatalogFacade interface {
	ActiveServices(ctx context.Context, limit int) ([]model.Service, error)
	ActiveTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error)
}

// ContactFacade encapsulates contact inquiry operations exposed via HTTP.
type ContactFacade interface {
	SubmitContact(ctx context.Context, sub usecase.ContactSubmission) (*model.ContactMessage, error)
	ContactMessages(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error)
	SetContactRead(ctx context.Context, id int64, read bool) error
}

// OrderFacade encapsulates order intake and lifecycle operations.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, sub usecase.OrderSubmission, att *usecase.Attachment) (*model.OrderRequest, error)
	OrderRequests(ctx context.Context) ([]model.OrderRequest, error)
	ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderRequest, error)
}

// AdminCatalogFacade covers operator-driven catalog management.
type AdminCatalogFacade interface {
	AllServices(ctx context.Context) ([]model.Service, error)
	AllTestimonials(ctx context.Context) ([]model.Testimonial, error)
	CreateService(ctx context.Context, svc model.Service) (*model.Service, error)
	UpdateService(ctx context.Context, svc model.Service) error
	CreateTestimonial(ctx context.Context, t model.Testimonial) (*model.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t model.Testimonial) error
}

// SiteFacade aggregates the full set of operations used across handlers.
type SiteFacade interface {
	CatalogFacade
	ContactFacade
	OrderFacade
	AdminCatalogFacade
}
