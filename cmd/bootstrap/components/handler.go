package components

import (
	"gin-hotel-booking/internal/handler"
	"gin-hotel-booking/internal/handler/api"
	"gin-hotel-booking/internal/handler/middleware"
	"gin-hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
