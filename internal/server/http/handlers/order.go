package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/server/http/dto"
	"github.com/academiq/academiq/internal/usecase"
)

// OrderHandler serves the public order request form.
type OrderHandler struct {
	facade      OrderFacade
	pages       *PageHandler
	defaultLang string
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, pages *PageHandler, defaultLang string) *OrderHandler {
	return &OrderHandler{facade: facade, pages: pages, defaultLang: defaultLang}
}

// Show handles GET /order/.
func (h *OrderHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "order.tmpl", newView(c, h.defaultLang, gin.H{
		"Form":         dto.OrderForm{},
		"Errors":       model.ValidationErrors{},
		"ServiceTypes": orderChoices(localizerFrom(c)),
	}))
}

// Submit handles POST /order/. The attachment is optional; when present it is
// streamed from the multipart part straight into the media store.
func (h *OrderHandler) Submit(c *gin.Context) {
	var form dto.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var att *usecase.Attachment
	fh, err := c.FormFile("attachment")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			h.pages.ServerError(c)
			return
		}
		defer f.Close()
		att = &usecase.Attachment{Filename: fh.Filename, Size: fh.Size, Reader: f}
	case errors.Is(err, http.ErrMissingFile):
		// No attachment, fine.
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	_, err = h.facade.SubmitOrder(c.Request.Context(), usecase.OrderSubmission{
		FullName:    form.FullName,
		Email:       form.Email,
		Phone:       form.Phone,
		ServiceType: form.ServiceType,
		Message:     form.Message,
	}, att)
	if err != nil {
		var verrs model.ValidationErrors
		if errors.As(err, &verrs) {
			c.HTML(http.StatusBadRequest, "order.tmpl", newView(c, h.defaultLang, gin.H{
				"Form":         form,
				"Errors":       verrs,
				"ServiceTypes": orderChoices(localizerFrom(c)),
			}))
			return
		}
		h.pages.ServerError(c)
		return
	}

	view := newView(c, h.defaultLang, nil)
	c.Redirect(http.StatusSeeOther, view.Prefix+"/order/success/")
}
