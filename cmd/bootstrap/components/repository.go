package components

import (
	repo_impl "venue-booking-engine/internal/infra/repository"
	"venue-booking-engine/internal/usecase/commands"
	"venue-booking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

// The pgx repositories serve both sides: each satisfies its command port and
// the matching read port, so one instance backs writes and listings alike.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewResourceRepository,
			fx.As(new(commands.ResourceRepository)),
			fx.As(new(queries.ResourceReads)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReads)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReads)),
		),
	),
)
