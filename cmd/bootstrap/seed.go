package bootstrap

import (
	"context"

	"venue-booking-engine/internal/pkg/config"
	"venue-booking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedAdmin),
)

// seedAdmin guarantees a super admin account exists before the server starts
// accepting requests, since owner registration requires one.
func seedAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return auth.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Name)
		},
	})
}
