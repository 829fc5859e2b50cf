package usecase

import (
	"context"
	"log/slog"

	"library-api/internal/pkg/clock"
	"library-api/internal/pkg/config"
	"library-api/internal/pkg/errs"
	"library-api/internal/usecase/queries"

	"github.com/samber/lo"
)

// Notifier delivers one message to a batch of recipients. Delivery is
// fire-and-forget from the scanner's perspective.
type Notifier interface {
	SendBatch(ctx context.Context, subject, message string, recipients []string) error
}

type OverdueScanner interface {
	Scan(ctx context.Context) error
}

type overdueScannerImpl struct {
	loans    queries.LoanReadStore
	notifier Notifier
	clock    clock.Clock
	cfg      config.OverdueConfig
	logger   *slog.Logger
}

func NewOverdueScanner(
	loans queries.LoanReadStore,
	notifier Notifier,
	clk clock.Clock,
	cfg config.OverdueConfig,
	logger *slog.Logger,
) OverdueScanner {
	return &overdueScannerImpl{
		loans:    loans,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
	}
}

// Scan collects every loan dated strictly before today minus the threshold
// and still unreturned, and notifies all contacts in a single batch. Loans
// without a contact address are skipped. A loan that stays overdue is
// reported again on every scan until it is returned.
func (s *overdueScannerImpl) Scan(ctx context.Context) error {
	cutoff := clock.Today(s.clock).AddDate(0, 0, -s.cfg.ThresholdDays)

	overdue, err := s.loans.FindOverdueUnreturned(ctx, cutoff)
	if err != nil {
		return errs.Wrap(err, "failed to fetch overdue loans")
	}

	emails := lo.FilterMap(overdue, func(lv queries.LoanView, _ int) (string, bool) {
		if lv.Email == nil {
			return "", false
		}
		return *lv.Email, true
	})

	s.logger.Info("overdue scan completed",
		slog.Time("cutoff", cutoff),
		slog.Int("overdue_loans", len(overdue)),
		slog.Int("recipients", len(emails)),
	)

	if len(emails) == 0 {
		return nil
	}

	if err := s.notifier.SendBatch(ctx, s.cfg.Subject, s.cfg.Message, emails); err != nil {
		// Best effort: the next scan will pick the same loans up again.
		s.logger.Error("overdue notification failed", slog.String("error", err.Error()))
	}
	return nil
}
