//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"library-api/internal/pkg/clock"
	"library-api/internal/pkg/config"
	"library-api/internal/usecase"
	"library-api/internal/usecase/queries"
	"library-api/tests/common/builder"
	queriesmock "library-api/tests/mock/queries"
	usecasemock "library-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OverdueScannerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockLoans    *queriesmock.MockLoanReadStore
	mockNotifier *usecasemock.MockNotifier
	clock        *clock.MockClock
	cfg          config.OverdueConfig
	scanner      usecase.OverdueScanner
}

func (s *OverdueScannerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLoans = queriesmock.NewMockLoanReadStore(s.mockCtrl)
	s.mockNotifier = usecasemock.NewMockNotifier(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	s.cfg = config.OverdueConfig{
		ThresholdDays: 4,
		Subject:       "Livro com empréstimo atrasado.",
		Message:       "Olá, você tem um empréstimo atrasado. Favor devolver o livro.",
	}
	s.scanner = usecase.NewOverdueScanner(
		s.mockLoans, s.mockNotifier, s.clock, s.cfg, slog.New(slog.DiscardHandler))
}

func (s *OverdueScannerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOverdueScannerSuite(t *testing.T) {
	suite.Run(t, new(OverdueScannerTestSuite))
}

func (s *OverdueScannerTestSuite) TestScan() {
	ctx := context.Background()

	s.Run("cutoff is today minus the threshold, at midnight", func() {
		expectedCutoff := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), expectedCutoff).
			Return(nil, nil)

		s.NoError(s.scanner.Scan(ctx))
	})

	s.Run("notifies every overdue contact in one batch", func() {
		first := builder.NewLoanBuilder().WithEmail("fulano@example.com").BuildView()
		second := builder.NewLoanBuilder().WithEmail("ciclano@example.com").BuildView()

		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return([]queries.LoanView{*first, *second}, nil)
		s.mockNotifier.EXPECT().SendBatch(gomock.Any(), s.cfg.Subject, s.cfg.Message,
			[]string{"fulano@example.com", "ciclano@example.com"}).
			Return(nil)

		s.NoError(s.scanner.Scan(ctx))
	})

	s.Run("loans without a contact address are skipped", func() {
		withEmail := builder.NewLoanBuilder().WithEmail("fulano@example.com").BuildView()
		withoutEmail := builder.NewLoanBuilder().WithoutEmail().BuildView()

		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return([]queries.LoanView{*withoutEmail, *withEmail}, nil)
		s.mockNotifier.EXPECT().SendBatch(gomock.Any(), s.cfg.Subject, s.cfg.Message,
			[]string{"fulano@example.com"}).
			Return(nil)

		s.NoError(s.scanner.Scan(ctx))
	})

	s.Run("no overdue loans means no notification", func() {
		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return([]queries.LoanView{}, nil)
		// no SendBatch expectation: nothing to send

		s.NoError(s.scanner.Scan(ctx))
	})

	s.Run("only contactless overdue loans means no notification", func() {
		withoutEmail := builder.NewLoanBuilder().WithoutEmail().BuildView()

		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return([]queries.LoanView{*withoutEmail}, nil)

		s.NoError(s.scanner.Scan(ctx))
	})

	s.Run("delivery failure is logged, not returned", func() {
		view := builder.NewLoanBuilder().BuildView()

		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return([]queries.LoanView{*view}, nil)
		s.mockNotifier.EXPECT().SendBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp down"))

		s.NoError(s.scanner.Scan(ctx))
	})

	s.Run("store failure aborts the scan", func() {
		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		s.Error(s.scanner.Scan(ctx))
	})

	s.Run("a loan still open is reported again on the next scan", func() {
		view := builder.NewLoanBuilder().BuildView()

		s.mockLoans.EXPECT().FindOverdueUnreturned(gomock.Any(), gomock.Any()).
			Return([]queries.LoanView{*view}, nil).Times(2)
		s.mockNotifier.EXPECT().SendBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(2)

		s.NoError(s.scanner.Scan(ctx))
		s.clock.Add(24 * time.Hour)
		s.NoError(s.scanner.Scan(ctx))
	})
}
