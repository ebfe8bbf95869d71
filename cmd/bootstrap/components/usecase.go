package components

import (
	"venue-booking-engine/internal/pkg/clock"
	"venue-booking-engine/internal/pkg/lockmap"
	"venue-booking-engine/internal/usecase/commands"
	"venue-booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	lockmap.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewResourceCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
	),
)
