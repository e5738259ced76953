package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS contact_messages",
		"CREATE TABLE IF NOT EXISTS order_requests",
		"CREATE TABLE IF NOT EXISTS services",
		"CREATE TABLE IF NOT EXISTS testimonials",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	indexStatements := []string{
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created",
		"CREATE INDEX IF NOT EXISTS idx_order_requests_created",
		"CREATE INDEX IF NOT EXISTS idx_services_listing",
		"CREATE INDEX IF NOT EXISTS idx_testimonials_listing",
	}
	for _, stmt := range indexStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS contact_messages").WillReturnError(errors.New("boom"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContactCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs("Sara Ali", "sara@example.com", "+971501234567", "Subject", "statistics", "Body").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "is_read", "created_at"}).AddRow(int64(3), false, createdAt))

	msg, err := storage.Contacts().Create(context.Background(), model.ContactMessage{
		FullName:    "Sara Ali",
		Email:       "sara@example.com",
		Phone:       "+971501234567",
		Subject:     "Subject",
		ServiceType: model.ContactServiceType("statistics"),
		Message:     "Body",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID != 3 || msg.IsRead || !msg.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected message %+v", msg)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContactGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT id, full_name, email, phone, subject, service_type, message, is_read, created_at").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	if _, err := storage.Contacts().GetByID(context.Background(), 9); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestContactListOnlyUnread(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	mock.ExpectQuery("FROM contact_messages WHERE is_read=FALSE").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "full_name", "email", "phone", "subject", "service_type", "message", "is_read", "created_at"}).
			AddRow(int64(1), "A", "a@example.com", "", "S", model.ContactServiceType("general"), "M", false, now))

	msgs, err := storage.Contacts().List(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].IsRead {
		t.Fatalf("unexpected messages %+v", msgs)
	}
}

func TestContactSetReadNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE contact_messages SET is_read=").
		WithArgs(true, int64(5)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Contacts().SetRead(context.Background(), 5, true); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderCreateDefaultsToPending(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	mock.ExpectQuery("INSERT INTO order_requests").
		WithArgs("Omar", "omar@example.com", "+971501234567", "thesis", "Details", "").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "status", "created_at", "updated_at"}).
			AddRow(int64(12), model.OrderStatusPending, now, now))

	order, err := storage.Orders().Create(context.Background(), model.OrderRequest{
		FullName:    "Omar",
		Email:       "omar@example.com",
		Phone:       "+971501234567",
		ServiceType: model.ServiceThesis,
		Message:     "Details",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 12 || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order %+v", order)
	}
	if got := order.Number(); got != model.OrderNumber(now.Year(), 12) {
		t.Fatalf("unexpected derived number %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE order_requests SET status=").
		WithArgs("in_progress", int64(12)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Orders().UpdateStatus(context.Background(), 12, model.OrderStatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE order_requests SET status=").
		WithArgs("cancelled", int64(99)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Orders().UpdateStatus(context.Background(), 99, model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceCreateDuplicateSlug(t *testing.T) {
	storage, mock := newMockStorage(t)
	price := 99.0
	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Title", "title", "short", "long", "fas fa-pen-nib", &price, true, 1).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Services().Create(context.Background(), model.Service{
		Title:            "Title",
		Slug:             "title",
		ShortDescription: "short",
		Description:      "long",
		Icon:             "fas fa-pen-nib",
		PriceStartingAt:  &price,
		IsActive:         true,
		DisplayOrder:     1,
	})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestServiceListActiveWithLimit(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	price := 150.0
	mock.ExpectQuery("FROM services WHERE is_active=TRUE ORDER BY display_order, title").
		WithArgs(6).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "title", "slug", "short_description", "description", "icon", "price_starting_at", "is_active", "display_order", "created_at"}).
			AddRow(int64(1), "Thesis", "thesis", "s", "d", "fas fa-pen-nib", &price, true, 1, now).
			AddRow(int64(2), "Stats", "stats", "s", "d", "fas fa-chart-pie", nil, true, 2, now))

	services, err := storage.Services().ListActive(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[0].PriceStartingAt == nil || *services[0].PriceStartingAt != price {
		t.Fatalf("unexpected price %+v", services[0].PriceStartingAt)
	}
	if services[1].PriceStartingAt != nil {
		t.Fatal("expected nil price for second service")
	}
}

func TestTestimonialListActive(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	mock.ExpectQuery("FROM testimonials WHERE is_active=TRUE ORDER BY created_at DESC").
		WithArgs(6).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "title", "institution", "image", "content", "rating", "is_active", "created_at"}).
			AddRow(int64(1), "Dr. Emily Roberts", "Professor", "Stanford University", "", "Great!", 5, true, now))

	quotes, err := storage.Testimonials().ListActive(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 || quotes[0].Rating != 5 {
		t.Fatalf("unexpected testimonials %+v", quotes)
	}
}

func TestTestimonialUpdateNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("UPDATE testimonials").
		WithArgs("N", "T", "I", "", "C", 4, true, int64(7)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Testimonials().Update(context.Background(), model.Testimonial{
		ID: 7, Name: "N", Title: "T", Institution: "I", Content: "C", Rating: 4, IsActive: true,
	})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

type pingPool struct {
	Pool
	err error
}

func (p pingPool) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	healthy := &Storage{pool: pingPool{}, logger: logger}
	if err := healthy.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	down := &Storage{pool: pingPool{err: errors.New("refused")}, logger: logger}
	if err := down.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error from unreachable database")
	}
}
