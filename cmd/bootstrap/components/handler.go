package components

import (
	"library-api/internal/handler"
	"library-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookHandler,
		api.NewLoanHandler,
	),
	fx.Invoke(handler.NewRouter),
)
