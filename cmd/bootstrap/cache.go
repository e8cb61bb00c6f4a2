package bootstrap

import (
	"context"
	"log/slog"

	"gin-hotel-booking/internal/infra/cache"
	"gin-hotel-booking/internal/pkg/config"
	"gin-hotel-booking/internal/usecase/queries"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewHotelCache,
		func(c HotelCache) queries.HotelDetailCache { return c },
		func(c HotelCache) shared.HotelCacheInvalidator { return c },
	),
)

type HotelCache interface {
	queries.HotelDetailCache
	shared.HotelCacheInvalidator
}

func NewHotelCache(lc fx.Lifecycle, cfg config.Config) (HotelCache, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("REDIS_ADDR not set, hotel cache disabled")
		return cache.NopHotelCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisHotelCache(client, cfg.Redis.HotelTTL), nil
}
