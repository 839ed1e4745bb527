package components

import (
	"fastrider/internal/pkg/clock"
	"fastrider/internal/usecase"
	"fastrider/internal/usecase/commands"
	"fastrider/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewFastRiderCommands,
		queries.NewFastRiderQueries,
		usecase.NewTokenValidator,
	),
)
