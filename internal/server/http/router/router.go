package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"

	"github.com/academiq/academiq/internal/config"
	"github.com/academiq/academiq/internal/i18n"
	"github.com/academiq/academiq/internal/server/http/handlers"
	"github.com/academiq/academiq/internal/server/http/middleware"
	"github.com/academiq/academiq/internal/web"
)

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures the gin router: public pages registered once per language,
// the admin JSON API behind basic auth, and the shared middleware stack.
func Setup(facade handlers.SiteFacade, translator *i18n.Translator, cfg *config.Config, rdb *rd.Client, health Pinger, logger *slog.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	pages := handlers.NewPageHandler(facade, cfg.DefaultLanguage)
	contact := handlers.NewContactHandler(facade, pages, cfg.DefaultLanguage)
	order := handlers.NewOrderHandler(facade, pages, cfg.DefaultLanguage)
	admin := handlers.NewAdminHandler(facade)

	engine.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		pages.ServerError(c)
	}))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	engine.StaticFS("/static", http.FS(static))
	engine.Static("/media", cfg.MediaRoot)

	var throttle gin.HandlerFunc
	if rdb != nil {
		throttle = middleware.FormRateLimit(rdb, cfg.FormRateLimit, cfg.FormRateWindow)
	}

	site := func(g *gin.RouterGroup) {
		g.GET("/", pages.Home)
		g.GET("/about/", pages.About)
		g.GET("/services/", pages.Services)
		g.GET("/privacy-policy/", pages.Privacy)
		g.GET("/contact/", contact.Show)
		g.GET("/contact/success/", pages.ContactSuccess)
		g.GET("/order/", order.Show)
		g.GET("/order/success/", pages.OrderSuccess)

		if throttle != nil {
			g.POST("/contact/", throttle, contact.Submit)
			g.POST("/order/", throttle, order.Submit)
		} else {
			g.POST("/contact/", contact.Submit)
			g.POST("/order/", order.Submit)
		}
	}

	// The default language lives at unprefixed URLs; every other language
	// gets its own prefixed tree.
	site(engine.Group("", middleware.Locale(translator, "", cfg.DefaultLanguage)))
	for _, lang := range i18n.Languages {
		if lang == cfg.DefaultLanguage {
			continue
		}
		site(engine.Group("/"+lang, middleware.Locale(translator, lang, cfg.DefaultLanguage)))
	}

	engine.POST("/i18n/setlang/", pages.SetLanguage)

	engine.GET("/healthz", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	api := engine.Group("/admin/api",
		middleware.AdminAuth(cfg.AdminUser, cfg.AdminPasswordHash),
		middleware.DecompressRequest(),
	)
	api.GET("/messages", admin.ListMessages)
	api.PATCH("/messages/:id/read", admin.SetMessageRead)
	api.GET("/orders", admin.ListOrders)
	api.PATCH("/orders/:id/status", admin.UpdateOrderStatus)
	api.GET("/services", admin.ListServices)
	api.POST("/services", admin.CreateService)
	api.PUT("/services/:id", admin.UpdateService)
	api.GET("/testimonials", admin.ListTestimonials)
	api.POST("/testimonials", admin.CreateTestimonial)
	api.PUT("/testimonials/:id", admin.UpdateTestimonial)

	engine.NoRoute(middleware.Locale(translator, "", cfg.DefaultLanguage), pages.NotFound)

	return engine, nil
}
