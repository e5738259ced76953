package dto

import "time"

// OrderResponse is the admin API view of an order request.
type OrderResponse struct {
	ID          int64     `json:"id"`
	OrderNumber string    `json:"order_number"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message"`
	Attachment  string    `json:"attachment,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactMessageResponse is the admin API view of a contact message.
type ContactMessageResponse struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Subject     string    `json:"subject"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateOrderStatusRequest asks for a lifecycle transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetReadRequest toggles a contact message's read flag.
type SetReadRequest struct {
	Read bool `json:"read"`
}

// ServiceRequest carries admin-managed service fields.
type ServiceRequest struct {
	Title            string   `json:"title" binding:"required"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Icon             string   `json:"icon"`
	PriceStartingAt  *float64 `json:"price_starting_at"`
	IsActive         *bool    `json:"is_active"`
	DisplayOrder     int      `json:"display_order"`
}

// TestimonialRequest carries admin-managed testimonial fields.
type TestimonialRequest struct {
	Name        string `json:"name" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Institution string `json:"institution"`
	Image       string `json:"image"`
	Content     string `json:"content" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}
