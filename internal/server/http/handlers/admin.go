package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/academiq/academiq/internal/domain/errors"
	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/server/http/dto"
)

// AdminHandler serves the operator JSON API behind basic auth.
type AdminHandler struct {
	facade SiteFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade SiteFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// ListMessages handles GET /admin/api/messages. The unread query parameter
// narrows the listing to messages nobody has looked at yet.
func (h *AdminHandler) ListMessages(c *gin.Context) {
	onlyUnread := c.Query("unread") == "true"

	msgs, err := h.facade.ContactMessages(c.Request.Context(), onlyUnread)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := make([]dto.ContactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, contactMessageResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

// SetMessageRead handles PATCH /admin/api/messages/:id/read.
func (h *AdminHandler) SetMessageRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SetReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetContactRead(c.Request.Context(), id, req.Read); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrders handles GET /admin/api/orders.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.facade.OrderRequests(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateOrderStatus handles PATCH /admin/api/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	order, err := h.facade.ChangeOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(*order))
}

// ListServices handles GET /admin/api/services, inactive entries included.
func (h *AdminHandler) ListServices(c *gin.Context) {
	services, err := h.facade.AllServices(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /admin/api/services.
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	svc, err := h.facade.CreateService(c.Request.Context(), serviceFromRequest(0, req))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /admin/api/services/:id.
func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateService(c.Request.Context(), serviceFromRequest(id, req)); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTestimonials handles GET /admin/api/testimonials.
func (h *AdminHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.facade.AllTestimonials(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial handles POST /admin/api/testimonials.
func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	t, err := h.facade.CreateTestimonial(c.Request.Context(), testimonialFromRequest(0, req))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTestimonial handles PUT /admin/api/testimonials/:id.
func (h *AdminHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateTestimonial(c.Request.Context(), testimonialFromRequest(id, req)); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.AbortWithStatus(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidTransition), errors.Is(err, domainErrors.ErrInvalidRating):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	default:
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func orderResponse(o model.OrderRequest) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.Number(),
		FullName:    o.FullName,
		Email:       o.Email,
		Phone:       o.Phone,
		ServiceType: string(o.ServiceType),
		Message:     o.Message,
		Attachment:  o.Attachment,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func contactMessageResponse(m model.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		Phone:       m.Phone,
		Subject:     m.Subject,
		ServiceType: string(m.ServiceType),
		Message:     m.Message,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

func serviceFromRequest(id int64, req dto.ServiceRequest) model.Service {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return model.Service{
		ID:               id,
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Icon:             req.Icon,
		PriceStartingAt:  req.PriceStartingAt,
		IsActive:         active,
		DisplayOrder:     req.DisplayOrder,
	}
}

func testimonialFromRequest(id int64, req dto.TestimonialRequest) model.Testimonial {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return model.Testimonial{
		ID:          id,
		Name:        req.Name,
		Title:       req.Title,
		Institution: req.Institution,
		Image:       req.Image,
		Content:     req.Content,
		Rating:      req.Rating,
		IsActive:    active,
	}
}
