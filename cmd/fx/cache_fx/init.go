package cache_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"pulso/internal/infra"
	"pulso/pkg/cache"
)

var Module = fx.Provide(
	provideRedis, provideReportCache,
)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideReportCache(client *redis.Client) cache.ReportCache {
	return cache.NewRedisReportCache(client)
}
