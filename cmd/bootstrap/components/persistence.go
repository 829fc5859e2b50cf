package components

import (
	"library-api/internal/infra/notifier"
	"library-api/internal/infra/readstore"
	"library-api/internal/infra/repository"
	"library-api/internal/usecase"
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Book
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(commands.BookRepository)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		// Loan
		fx.Annotate(
			repository.NewLoanRepository,
			fx.As(new(commands.LoanRepository)),
		),
		fx.Annotate(
			readstore.NewLoanReadStore,
			fx.As(new(queries.LoanReadStore)),
		),
		// Notifier
		fx.Annotate(
			notifier.NewEmailNotifier,
			fx.As(new(usecase.Notifier)),
		),
	),
)
