package model

import (
	"fmt"
	"time"
)

// OrderStatus describes the processing lifecycle of an order request.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Valid reports whether the status is one of the known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// legal operator-driven transitions; completed and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderServiceType enumerates the services an order may request.
type OrderServiceType string

const (
	ServiceThesis      OrderServiceType = "thesis"
	ServiceReview      OrderServiceType = "review"
	ServiceStatistics  OrderServiceType = "statistics"
	ServiceTranslation OrderServiceType = "translation"
	ServiceFormatting  OrderServiceType = "formatting"
)

// OrderServiceTypes lists the service choices available on the order form.
var OrderServiceTypes = []OrderServiceType{
	ServiceThesis,
	ServiceReview,
	ServiceStatistics,
	ServiceTranslation,
	ServiceFormatting,
}

// OrderRequest is one service request submitted by a prospective client.
type OrderRequest struct {
	ID          int64
	FullName    string
	Email       string
	Phone       string
	ServiceType OrderServiceType
	Message     string
	// Attachment holds the media-relative path of the uploaded file, empty
	// when the client did not attach anything.
	Attachment string
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderNumber derives the display order number from the creation year and the
// storage-assigned sequence. The number is never stored; recomputing it keeps
// it stable across reads.
func OrderNumber(year int, sequence int64) string {
	return fmt.Sprintf("ACD-%d-%05d", year, sequence)
}

// Number returns the display order number for the stored record.
func (o *OrderRequest) Number() string {
	return OrderNumber(o.CreatedAt.Year(), o.ID)
}
