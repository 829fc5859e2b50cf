package components

import (
	"context"
	"log/slog"

	"library-api/internal/pkg/config"
	"library-api/internal/scheduler"
	"library-api/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(registerOverdueScan),
)

// registerOverdueScan wires the periodic late-loan scan into the application
// lifecycle. One serialized tick per interval; a failed scan is logged and
// retried on the next tick.
func registerOverdueScan(lc fx.Lifecycle, cfg config.Config, scanner usecase.OverdueScanner, logger *slog.Logger) {
	sched := scheduler.New("overdue-scan", cfg.Overdue.ScanInterval, scanner.Scan, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
