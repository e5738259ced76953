package repository

import (
	"context"

	"github.com/academiq/academiq/internal/domain/model"
)

// OrderRepository describes persistence operations for order requests.
type OrderRepository interface {
	Create(ctx context.Context, order model.OrderRequest) (*model.OrderRequest, error)
	GetByID(ctx context.Context, id int64) (*model.OrderRequest, error)
	List(ctx context.Context) ([]model.OrderRequest, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}
