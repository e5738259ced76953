package test

import (
	"context"
	"io"
	"sync"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/usecase"
)

// SiteFacadeStub provides controllable behaviour for the HTTP handlers.
type SiteFacadeStub struct {
	ActiveServicesFn     func(context.Context, int) ([]model.Service, error)
	ActiveTestimonialsFn func(context.Context, int) ([]model.Testimonial, error)
	SubmitContactFn      func(context.Context, usecase.ContactSubmission) (*model.ContactMessage, error)
	ContactMessagesFn    func(context.Context, bool) ([]model.ContactMessage, error)
	SetContactReadFn     func(context.Context, int64, bool) error
	SubmitOrderFn        func(context.Context, usecase.OrderSubmission, *usecase.Attachment) (*model.OrderRequest, error)
	OrderRequestsFn      func(context.Context) ([]model.OrderRequest, error)
	ChangeOrderStatusFn  func(context.Context, int64, model.OrderStatus) (*model.OrderRequest, error)
	AllServicesFn        func(context.Context) ([]model.Service, error)
	AllTestimonialsFn    func(context.Context) ([]model.Testimonial, error)
	CreateServiceFn      func(context.Context, model.Service) (*model.Service, error)
	UpdateServiceFn      func(context.Context, model.Service) error
	CreateTestimonialFn  func(context.Context, model.Testimonial) (*model.Testimonial, error)
	UpdateTestimonialFn  func(context.Context, model.Testimonial) error
}

func (s SiteFacadeStub) ActiveServices(ctx context.Context, limit int) ([]model.Service, error) {
	if s.ActiveServicesFn != nil {
		return s.ActiveServicesFn(ctx, limit)
	}
	return nil, nil
}

func (s SiteFacadeStub) ActiveTestimonials(ctx context.Context, limit int) ([]model.Testimonial, error) {
	if s.ActiveTestimonialsFn != nil {
		return s.ActiveTestimonialsFn(ctx, limit)
	}
	return nil, nil
}

func (s SiteFacadeStub) SubmitContact(ctx context.Context, sub usecase.ContactSubmission) (*model.ContactMessage, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, sub)
	}
	return &model.ContactMessage{ID: 1}, nil
}

func (s SiteFacadeStub) ContactMessages(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error) {
	if s.ContactMessagesFn != nil {
		return s.ContactMessagesFn(ctx, onlyUnread)
	}
	return nil, nil
}

func (s SiteFacadeStub) SetContactRead(ctx context.Context, id int64, read bool) error {
	if s.SetContactReadFn != nil {
		return s.SetContactReadFn(ctx, id, read)
	}
	return nil
}

func (s SiteFacadeStub) SubmitOrder(ctx context.Context, sub usecase.OrderSubmission, att *usecase.Attachment) (*model.OrderRequest, error) {
	if s.SubmitOrderFn != nil {
		return s.SubmitOrderFn(ctx, sub, att)
	}
	return &model.OrderRequest{ID: 1, Status: model.OrderStatusPending}, nil
}

func (s SiteFacadeStub) OrderRequests(ctx context.Context) ([]model.OrderRequest, error) {
	if s.OrderRequestsFn != nil {
		return s.OrderRequestsFn(ctx)
	}
	return nil, nil
}

func (s SiteFacadeStub) ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderRequest, error) {
	if s.ChangeOrderStatusFn != nil {
		return s.ChangeOrderStatusFn(ctx, id, status)
	}
	return &model.OrderRequest{ID: id, Status: status}, nil
}

func (s SiteFacadeStub) AllServices(ctx context.Context) ([]model.Service, error) {
	if s.AllServicesFn != nil {
		return s.AllServicesFn(ctx)
	}
	return nil, nil
}

func (s SiteFacadeStub) AllTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	if s.AllTestimonialsFn != nil {
		return s.AllTestimonialsFn(ctx)
	}
	return nil, nil
}

func (s SiteFacadeStub) CreateService(ctx context.Context, svc model.Service) (*model.Service, error) {
	if s.CreateServiceFn != nil {
		return s.CreateServiceFn(ctx, svc)
	}
	svc.ID = 1
	return &svc, nil
}

func (s SiteFacadeStub) UpdateService(ctx context.Context, svc model.Service) error {
	if s.UpdateServiceFn != nil {
		return s.UpdateServiceFn(ctx, svc)
	}
	return nil
}

func (s SiteFacadeStub) CreateTestimonial(ctx context.Context, t model.Testimonial) (*model.Testimonial, error) {
	if s.CreateTestimonialFn != nil {
		return s.CreateTestimonialFn(ctx, t)
	}
	t.ID = 1
	return &t, nil
}

func (s SiteFacadeStub) UpdateTestimonial(ctx context.Context, t model.Testimonial) error {
	if s.UpdateTestimonialFn != nil {
		return s.UpdateTestimonialFn(ctx, t)
	}
	return nil
}

// NotifierRecorder captures notification calls.
type NotifierRecorder struct {
	mu       sync.Mutex
	Orders   []*model.OrderRequest
	Contacts []*model.ContactMessage
}

// OrderReceived records the notified order.
func (n *NotifierRecorder) OrderReceived(ctx context.Context, order *model.OrderRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Orders = append(n.Orders, order)
}

// ContactReceived records the notified message.
func (n *NotifierRecorder) ContactReceived(ctx context.Context, msg *model.ContactMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Contacts = append(n.Contacts, msg)
}

// AttachmentStoreStub records saved attachments without touching disk.
type AttachmentStoreStub struct {
	SaveFn func(context.Context, string, io.Reader) (string, error)
	Saved  []string
	Path   string
	Err    error
}

// Save returns the configured path or an error, remembering the file name.
func (s *AttachmentStoreStub) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, originalName, r)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.Saved = append(s.Saved, originalName)
	if s.Path != "" {
		return s.Path, nil
	}
	return "order_attachments/2025/01/" + originalName, nil
}
