package bootstrap

import (
	"context"
	"log/slog"

	"gin-hotel-booking/internal/pkg/config"
	"gin-hotel-booking/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(SetupTracing),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config) error {
	if cfg.Tracing.Endpoint == "" {
		return nil
	}

	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return err
	}
	slog.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
