package components

import (
	"dartshop/internal/pkg/clock"
	"dartshop/internal/pkg/config"
	"dartshop/internal/pkg/jwt"
	"dartshop/internal/usecase/commands"
	"dartshop/internal/usecase/queries"
	"dartshop/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewOrderQueries,
		queries.NewWatchlistQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewInventoryUseCase,
		commands.NewWatchlistUseCase,
		NewSweeperUseCase,
		NewAdminUseCase,
	),
)

func NewSweeperUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.SweeperCommands {
	return commands.NewSweeperUseCase(uow, clk, cfg.Hold.TTL)
}

func NewAdminUseCase(cfg config.Config, jwtService *jwt.Service) commands.AdminCommands {
	return commands.NewAdminUseCase(cfg.Admin.PincodeHash, jwtService, cfg.Admin.TokenDuration)
}
