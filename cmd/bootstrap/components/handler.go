package components

import (
	"venue-booking-engine/internal/handler"
	"venue-booking-engine/internal/handler/api"
	"venue-booking-engine/internal/handler/middleware"
	"venue-booking-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(s *jwt.Service) middleware.TokenValidator { return s },
		api.NewAuthHandler,
		api.NewResourceHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
