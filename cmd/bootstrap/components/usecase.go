package components

import (
	"library-api/internal/pkg/clock"
	"library-api/internal/usecase"
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookCommands,
		commands.NewLoanCommands,
		queries.NewBookQueries,
		queries.NewLoanQueries,
		usecase.NewOverdueScanner,
	),
)
