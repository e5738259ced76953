package repository

import (
	"context"

	"github.com/academiq/academiq/internal/domain/model"
)

// ContactRepository describes persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*model.ContactMessage, error)
	List(ctx context.Context, onlyUnread bool) ([]model.ContactMessage, error)
	SetRead(ctx context.Context, id int64, read bool) error
}
