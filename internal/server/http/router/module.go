package router

import (
	"context"

	rd "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/academiq/academiq/internal/config"
)

// Module registers HTTP router construction for the fx runtime.
var Module = fx.Options(
	fx.Provide(Setup, newRedisClient),
	fx.Invoke(registerRedisLifecycle),
)

// newRedisClient returns nil when no Redis address is configured; the router
// then skips rate limiting entirely.
func newRedisClient(cfg *config.Config) *rd.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return rd.NewClient(&rd.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
}

func registerRedisLifecycle(lc fx.Lifecycle, rdb *rd.Client) {
	if rdb == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})
}
