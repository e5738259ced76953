package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academiq/academiq/internal/i18n"
	"github.com/academiq/academiq/internal/server/http/middleware"
	"github.com/academiq/academiq/internal/usecase"
)

// PageHandler serves the static and listing pages.
type PageHandler struct {
	facade      SiteFacade
	defaultLang string
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(facade SiteFacade, defaultLang string) *PageHandler {
	return &PageHandler{facade: facade, defaultLang: defaultLang}
}

// Home handles GET / with the capped catalog listings.
func (h *PageHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	services, err := h.facade.ActiveServices(ctx, usecase.HomeListingLimit)
	if err != nil {
		h.ServerError(c)
		return
	}
	testimonials, err := h.facade.ActiveTestimonials(ctx, usecase.HomeListingLimit)
	if err != nil {
		h.ServerError(c)
		return
	}

	c.HTML(http.StatusOK, "home.tmpl", newView(c, h.defaultLang, gin.H{
		"Services":     services,
		"Testimonials": testimonials,
	}))
}

// About handles GET /about/.
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", newView(c, h.defaultLang, nil))
}

// Services handles GET /services/ with every active service.
func (h *PageHandler) Services(c *gin.Context) {
	services, err := h.facade.ActiveServices(c.Request.Context(), 0)
	if err != nil {
		h.ServerError(c)
		return
	}
	c.HTML(http.StatusOK, "services.tmpl", newView(c, h.defaultLang, gin.H{
		"Services": services,
	}))
}

// Privacy handles GET /privacy-policy/.
func (h *PageHandler) Privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.tmpl", newView(c, h.defaultLang, nil))
}

// ContactSuccess handles GET /contact/success/.
func (h *PageHandler) ContactSuccess(c *gin.Context) {
	c.HTML(http.StatusOK, "success.tmpl", newView(c, h.defaultLang, gin.H{
		"OrderType": "contact",
	}))
}

// OrderSuccess handles GET /order/success/.
func (h *PageHandler) OrderSuccess(c *gin.Context) {
	c.HTML(http.StatusOK, "success.tmpl", newView(c, h.defaultLang, gin.H{
		"OrderType": "order",
	}))
}

// SetLanguage handles POST /i18n/setlang/: stores the choice in a cookie and
// sends the visitor to the translated page.
func (h *PageHandler) SetLanguage(c *gin.Context) {
	lang := c.PostForm("language")
	if !i18n.Known(lang) {
		c.Status(http.StatusBadRequest)
		return
	}

	c.SetCookie(middleware.LangCookieName, lang, 0, "/", "", false, true)

	next := c.PostForm("next")
	if !safeRedirectPath(next) {
		next = "/"
	}
	view := View{Lang: h.defaultLang, Path: next, defaultLang: h.defaultLang}
	c.Redirect(http.StatusSeeOther, view.AltURL(lang))
}

// safeRedirectPath accepts only site-local targets. Scheme-relative values
// like "//host" or "/\host" would send the visitor off-site.
func safeRedirectPath(next string) bool {
	if next == "" || next[0] != '/' {
		return false
	}
	if len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return false
	}
	return true
}

// NotFound renders the custom 404 page.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", newView(c, h.defaultLang, nil))
}

// ServerError renders the custom 500 page.
func (h *PageHandler) ServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.tmpl", newView(c, h.defaultLang, nil))
}
