package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool used by the storage. Declared as an
// interface so tests can substitute a pgxmock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type contactRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type serviceRepository struct {
	storage *Storage
}

type testimonialRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Contacts() repository.ContactRepository {
	return &contactRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Services() repository.ServiceRepository {
	return &serviceRepository{storage: s}
}

func (s *Storage) Testimonials() repository.TestimonialRepository {
	return &testimonialRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contact_messages (
            id BIGSERIAL PRIMARY KEY,
            full_name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            subject TEXT NOT NULL,
            service_type TEXT NOT NULL DEFAULT 'general',
            message TEXT NOT NULL,
            is_read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_requests (
            id BIGSERIAL PRIMARY KEY,
            full_name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            service_type TEXT NOT NULL,
            message TEXT NOT NULL,
            attachment TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS services (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            short_description TEXT NOT NULL,
            description TEXT NOT NULL,
            icon TEXT NOT NULL DEFAULT 'fas fa-graduation-cap',
            price_starting_at DOUBLE PRECISION,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            display_order SMALLINT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS testimonials (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            title TEXT NOT NULL,
            institution TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            content TEXT NOT NULL,
            rating SMALLINT NOT NULL DEFAULT 5,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_created ON contact_messages(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_requests_created ON order_requests(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_services_listing ON services(is_active, display_order, title)`,
		`CREATE INDEX IF NOT EXISTS idx_testimonials_listing ON testimonials(is_active, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ContactRepository implementation ---

func (r *contactRepository) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (full_name, email, phone, subject, service_type, message)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, is_read, created_at`
	created := msg
	err := r.storage.pool.QueryRow(ctx, query,
		msg.FullName, msg.Email, msg.Phone, msg.Subject, string(msg.ServiceType), msg.Message,
	).Scan(&created.ID, &created.IsRead, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*model.ContactMessage, error) {
	const query = `SELECT id, full_name, email, phone, subject, service_type, message, is_read, created_at
                   FROM contact_messages WHERE id=$1`
	var m model.ContactMessage
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.FullName, &m.Email, &m.Phone, &m.Subject, &m.ServiceType, &m.Message, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *contactRepository) List(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error) {
	query := `SELECT id, full_name, email, phone, subject, service_type, message, is_read, created_at
              FROM contact_messages ORDER BY created_at DESC`
	if onlyUnread {
		query = `SELECT id, full_name, email, phone, subject, service_type, message, is_read, created_at
                 FROM contact_messages WHERE is_read=FALSE ORDER BY created_at DESC`
	}
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Phone, &m.Subject, &m.ServiceType, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) SetRead(ctx context.Context, id int64, read bool) error {
	const query = `UPDATE contact_messages SET is_read=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, read, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.OrderRequest) (*model.OrderRequest, error) {
	// status, created_at and updated_at come from column defaults.
	const query = `INSERT INTO order_requests (full_name, email, phone, service_type, message, attachment)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, status, created_at, updated_at`
	created := order
	err := r.storage.pool.QueryRow(ctx, query,
		order.FullName, order.Email, order.Phone, string(order.ServiceType), order.Message, order.Attachment,
	).Scan(&created.ID, &created.Status, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.OrderRequest, error) {
	const query = `SELECT id, full_name, email, phone, service_type, message, attachment, status, created_at, updated_at
                   FROM order_requests WHERE id=$1`
	var o model.OrderRequest
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.FullName, &o.Email, &o.Phone, &o.ServiceType, &o.Message, &o.Attachment, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.OrderRequest, error) {
	const query = `SELECT id, full_name, email, phone, service_type, message, attachment, status, created_at, updated_at
                   FROM order_requests ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderRequest
	for rows.Next() {
		var o model.OrderRequest
		if err := rows.Scan(&o.ID, &o.FullName, &o.Email, &o.Phone, &o.ServiceType, &o.Message, &o.Attachment, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	const query = `UPDATE order_requests SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ServiceRepository implementation ---

func (r *serviceRepository) Create(ctx context.Context, svc model.Service) (*model.Service, error) {
	const query = `INSERT INTO services (title, slug, short_description, description, icon, price_starting_at, is_active, display_order)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at`
	created := svc
	err := r.storage.pool.QueryRow(ctx, query,
		svc.Title, svc.Slug, svc.ShortDescription, svc.Description, svc.Icon, svc.PriceStartingAt, svc.IsActive, svc.DisplayOrder,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *serviceRepository) GetBySlug(ctx context.Context, slug string) (*model.Service, error) {
	const query = `SELECT id, title, slug, short_description, description, icon, price_starting_at, is_active, display_order, created_at
                   FROM services WHERE slug=$1`
	var s model.Service
	err := r.storage.pool.QueryRow(ctx, query, slug).Scan(
		&s.ID, &s.Title, &s.Slug, &s.ShortDescription, &s.Description, &s.Icon, &s.PriceStartingAt, &s.IsActive, &s.DisplayOrder, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) ListActive(ctx context.Context, limit int) ([]model.Service, error) {
	query := `SELECT id, title, slug, short_description, description, icon, price_starting_at, is_active, display_order, created_at
              FROM services WHERE is_active=TRUE ORDER BY display_order, title`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.scanServices(ctx, query, args...)
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	const query = `SELECT id, title, slug, short_description, description, icon, price_starting_at, is_active, display_order, created_at
                   FROM services ORDER BY display_order, title`
	return r.scanServices(ctx, query)
}

func (r *serviceRepository) scanServices(ctx context.Context, query string, args ...any) ([]model.Service, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.ShortDescription, &s.Description, &s.Icon, &s.PriceStartingAt, &s.IsActive, &s.DisplayOrder, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc model.Service) error {
	const query = `UPDATE services
                   SET title=$1, slug=$2, short_description=$3, description=$4, icon=$5,
                       price_starting_at=$6, is_active=$7, display_order=$8
                   WHERE id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		svc.Title, svc.Slug, svc.ShortDescription, svc.Description, svc.Icon,
		svc.PriceStartingAt, svc.IsActive, svc.DisplayOrder, svc.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- TestimonialRepository implementation ---

func (r *testimonialRepository) Create(ctx context.Context, t model.Testimonial) (*model.Testimonial, error) {
	const query = `INSERT INTO testimonials (name, title, institution, image, content, rating, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at`
	created := t
	err := r.storage.pool.QueryRow(ctx, query,
		t.Name, t.Title, t.Institution, t.Image, t.Content, t.Rating, t.IsActive,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *testimonialRepository) GetByName(ctx context.Context, name string) (*model.Testimonial, error) {
	const query = `SELECT id, name, title, institution, image, content, rating, is_active, created_at
                   FROM testimonials WHERE name=$1`
	var t model.Testimonial
	err := r.storage.pool.QueryRow(ctx, query, name).Scan(
		&t.ID, &t.Name, &t.Title, &t.Institution, &t.Image, &t.Content, &t.Rating, &t.IsActive, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) ListActive(ctx context.Context, limit int) ([]model.Testimonial, error) {
	query := `SELECT id, name, title, institution, image, content, rating, is_active, created_at
              FROM testimonials WHERE is_active=TRUE ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.scanTestimonials(ctx, query, args...)
}

func (r *testimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	const query = `SELECT id, name, title, institution, image, content, rating, is_active, created_at
                   FROM testimonials ORDER BY created_at DESC`
	return r.scanTestimonials(ctx, query)
}

func (r *testimonialRepository) scanTestimonials(ctx context.Context, query string, args ...any) ([]model.Testimonial, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Title, &t.Institution, &t.Image, &t.Content, &t.Rating, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *testimonialRepository) Update(ctx context.Context, t model.Testimonial) error {
	const query = `UPDATE testimonials
                   SET name=$1, title=$2, institution=$3, image=$4, content=$5, rating=$6, is_active=$7
                   WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query,
		t.Name, t.Title, t.Institution, t.Image, t.Content, t.Rating, t.IsActive, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
