package seed

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/academiq/academiq/internal/config"
	"github.com/academiq/academiq/internal/domain/repository"
)

// Module runs the seeder on startup when SEED_DEMO_DATA is enabled.
var Module = fx.Invoke(registerSeeder)

type seederParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       *config.Config
	Services     repository.ServiceRepository
	Testimonials repository.TestimonialRepository
	Logger       *slog.Logger
}

func registerSeeder(p seederParams) {
	if !p.Config.SeedDemoData {
		return
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return Run(ctx, p.Services, p.Testimonials, p.Logger)
		},
	})
}
