package test

import (
	"context"
	"time"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
)

// ContactRepositoryStub stores contact messages in-memory for tests.
type ContactRepositoryStub struct {
	CreateFn  func(context.Context, model.ContactMessage) (*model.ContactMessage, error)
	ListFn    func(context.Context, bool) ([]model.ContactMessage, error)
	SetReadFn func(context.Context, int64, bool) error

	Messages []model.ContactMessage
	Next     int64
	Err      error
}

// Create appends the message unless an explicit error is configured.
func (s *ContactRepositoryStub) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, msg)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	msg.ID = s.Next
	msg.CreatedAt = time.Now()
	s.Next++
	s.Messages = append(s.Messages, msg)
	return &msg, nil
}

// GetByID fetches a stored message or returns not found.
func (s *ContactRepositoryStub) GetByID(ctx context.Context, id int64) (*model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Messages {
		if m.ID == id {
			msg := m
			return &msg, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored messages, optionally only unread ones.
func (s *ContactRepositoryStub) List(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, onlyUnread)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if !onlyUnread {
		return s.Messages, nil
	}
	var out []model.ContactMessage
	for _, m := range s.Messages {
		if !m.IsRead {
			out = append(out, m)
		}
	}
	return out, nil
}

// SetRead toggles the read flag on a stored message.
func (s *ContactRepositoryStub) SetRead(ctx context.Context, id int64, read bool) error {
	if s.SetReadFn != nil {
		return s.SetReadFn(ctx, id, read)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages[i].IsRead = read
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub lets tests control order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.OrderRequest) (*model.OrderRequest, error)
	GetByIDFn      func(context.Context, int64) (*model.OrderRequest, error)
	ListFn         func(context.Context) ([]model.OrderRequest, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error

	Orders []model.OrderRequest
	Next   int64
	Err    error
}

// Create stores the order as pending, the way the real schema defaults it.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.OrderRequest) (*model.OrderRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order.ID = s.Next
	order.Status = model.OrderStatusPending
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	s.Next++
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID fetches a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.OrderRequest, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.OrderRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Orders, nil
}

// UpdateStatus applies a status change to a stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			s.Orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ServiceRepositoryStub stores catalog services in-memory for tests.
type ServiceRepositoryStub struct {
	CreateFn     func(context.Context, model.Service) (*model.Service, error)
	ListActiveFn func(context.Context, int) ([]model.Service, error)
	UpdateFn     func(context.Context, model.Service) error

	Services []model.Service
	Next     int64
	Err      error
}

// Create appends the service, rejecting duplicate slugs.
func (s *ServiceRepositoryStub) Create(ctx context.Context, svc model.Service) (*model.Service, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, svc)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Services {
		if existing.Slug == svc.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	svc.ID = s.Next
	svc.CreatedAt = time.Now()
	s.Next++
	s.Services = append(s.Services, svc)
	return &svc, nil
}

// GetBySlug fetches a stored service or returns not found.
func (s *ServiceRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Service, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, svc := range s.Services {
		if svc.Slug == slug {
			out := svc
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive filters stored services by the active flag.
func (s *ServiceRepositoryStub) ListActive(ctx context.Context, limit int) ([]model.Service, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Service
	for _, svc := range s.Services {
		if !svc.IsActive {
			continue
		}
		out = append(out, svc)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// List returns every stored service.
func (s *ServiceRepositoryStub) List(ctx context.Context) ([]model.Service, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Services, nil
}

// Update replaces a stored service by ID.
func (s *ServiceRepositoryStub) Update(ctx context.Context, svc model.Service) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, svc)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Services {
		if s.Services[i].ID == svc.ID {
			svc.CreatedAt = s.Services[i].CreatedAt
			s.Services[i] = svc
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// TestimonialRepositoryStub stores testimonials in-memory for tests.
type TestimonialRepositoryStub struct {
	CreateFn     func(context.Context, model.Testimonial) (*model.Testimonial, error)
	ListActiveFn func(context.Context, int) ([]model.Testimonial, error)
	UpdateFn     func(context.Context, model.Testimonial) error

	Testimonials []model.Testimonial
	Next         int64
	Err          error
}

// Create appends the testimonial.
func (s *TestimonialRepositoryStub) Create(ctx context.Context, t model.Testimonial) (*model.Testimonial, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, t)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	t.ID = s.Next
	t.CreatedAt = time.Now()
	s.Next++
	s.Testimonials = append(s.Testimonials, t)
	return &t, nil
}

// GetByName fetches a stored testimonial or returns not found.
func (s *TestimonialRepositoryStub) GetByName(ctx context.Context, name string) (*model.Testimonial, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, t := range s.Testimonials {
		if t.Name == name {
			out := t
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive filters stored testimonials by the active flag.
func (s *TestimonialRepositoryStub) ListActive(ctx context.Context, limit int) ([]model.Testimonial, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Testimonial
	for _, t := range s.Testimonials {
		if !t.IsActive {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// List returns every stored testimonial.
func (s *TestimonialRepositoryStub) List(ctx context.Context) ([]model.Testimonial, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Testimonials, nil
}

// Update replaces a stored testimonial by ID.
func (s *TestimonialRepositoryStub) Update(ctx context.Context, t model.Testimonial) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, t)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Testimonials {
		if s.Testimonials[i].ID == t.ID {
			t.CreatedAt = s.Testimonials[i].CreatedAt
			s.Testimonials[i] = t
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
