package app

import (
	"context"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/usecase"
)

// SiteFacade bundles the use cases behind the single surface the HTTP
// handlers depend on.
type SiteFacade struct {
	contacts *usecase.ContactUseCase
	orders   *usecase.OrderUseCase
	catalog  *usecase.CatalogUseCase
}

// NewSiteFacade constructs SiteFacade.
func NewSiteFacade(contacts *usecase.ContactUseCase, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase) *SiteFacade {
	return &SiteFacade{contacts: contacts, orders: orders, catalog: catalog}
}

func (f *SiteFacade) ActiveServices(ctx context.Context, limit int) ([]model.Service, error) {
	return f.catalog.ActiveServices(ctx, limit)
}

func (f *SiteFacade) ActiveTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	return f.catalog.ActiveTestimonials(ctx, limit)
}

func (f *SiteFacade) SubmitContact(ctx context.Context, sub usecase.ContactSubmission) (*model.ContactMessage, error) {
	return f.contacts.Submit(ctx, sub)
}

func (f *SiteFacade) ContactMessages(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error) {
	return f.contacts.List(ctx, onlyUnread)
}

func (f *SiteFacade) SetContactRead(ctx context.Context, id int64, read bool) error {
	return f.contacts.SetRead(ctx, id, read)
}

func (f *SiteFacade) SubmitOrder(ctx context.Context, sub usecase.OrderSubmission, att *usecase.Attachment) (*model.OrderRequest, error) {
	return f.orders.Submit(ctx, sub, att)
}

func (f *SiteFacade) OrderRequests(ctx context.Context) ([]model.OrderRequest, error) {
	return f.orders.List(ctx)
}

func (f *SiteFacade) ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderRequest, error) {
	return f.orders.ChangeStatus(ctx, id, status)
}

func (f *SiteFacade) AllServices(ctx context.Context) ([]model.Service, error) {
	return f.catalog.AllServices(ctx)
}

func (f *SiteFacade) AllTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return f.catalog.AllTestimonials(ctx)
}

func (f *SiteFacade) CreateService(ctx context.Context, svc model.Service) (*model.Service, error) {
	return f.catalog.CreateService(ctx, svc)
}

func (f *SiteFacade) UpdateService(ctx context.Context, svc model.Service) error {
	return f.catalog.UpdateService(ctx, svc)
}

func (f *SiteFacade) CreateTestimonial(ctx context.Context, t model.Testimonial) (*model.Testimonial, error) {
	return f.catalog.CreateTestimonial(ctx, t)
}

func (f *SiteFacade) UpdateTestimonial(ctx context.Context, t model.Testimonial) error {
	return f.catalog.UpdateTestimonial(ctx, t)
}
