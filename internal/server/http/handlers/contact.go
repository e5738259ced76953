package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/server/http/dto"
	"github.com/academiq/academiq/internal/usecase"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	facade      ContactFacade
	pages       *PageHandler
	defaultLang string
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade, pages *PageHandler, defaultLang string) *ContactHandler {
	return &ContactHandler{facade: facade, pages: pages, defaultLang: defaultLang}
}

// Show handles GET /contact/.
func (h *ContactHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", newView(c, h.defaultLang, gin.H{
		"Form":         dto.ContactForm{},
		"Errors":       model.ValidationErrors{},
		"ServiceTypes": contactChoices(localizerFrom(c)),
	}))
}

// Submit handles POST /contact/. On validation failure the form re-renders
// with the visitor's input preserved; on success the visitor is redirected.
func (h *ContactHandler) Submit(c *gin.Context) {
	var form dto.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	_, err := h.facade.SubmitContact(c.Request.Context(), usecase.ContactSubmission{
		FullName:    form.FullName,
		Email:       form.Email,
		Phone:       form.Phone,
		Subject:     form.Subject,
		ServiceType: form.ServiceType,
		Message:     form.Message,
	})
	if err != nil {
		var verrs model.ValidationErrors
		if errors.As(err, &verrs) {
			c.HTML(http.StatusBadRequest, "contact.tmpl", newView(c, h.defaultLang, gin.H{
				"Form":         form,
				"Errors":       verrs,
				"ServiceTypes": contactChoices(localizerFrom(c)),
			}))
			return
		}
		h.pages.ServerError(c)
		return
	}

	view := newView(c, h.defaultLang, nil)
	c.Redirect(http.StatusSeeOther, view.Prefix+"/contact/success/")
}
