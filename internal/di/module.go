package di

import (
	"go.uber.org/fx"

	"github.com/academiq/academiq/internal/adapter/mailer"
	"github.com/academiq/academiq/internal/app"
	"github.com/academiq/academiq/internal/config"
	"github.com/academiq/academiq/internal/i18n"
	"github.com/academiq/academiq/internal/logger"
	"github.com/academiq/academiq/internal/seed"
	"github.com/academiq/academiq/internal/server/http/router"
	"github.com/academiq/academiq/internal/storage/media"
	"github.com/academiq/academiq/internal/storage/postgres"
	"github.com/academiq/academiq/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		i18n.Module,
		postgres.Module,
		media.Module,
		mailer.Module,
		usecase.Module,
		router.Module,
		app.Module,
		seed.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
