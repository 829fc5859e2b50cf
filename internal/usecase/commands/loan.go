package commands

import (
	"context"

	"library-api/internal/domain/loan"
	"library-api/internal/infra"
	"library-api/internal/pkg/clock"
	"library-api/internal/pkg/errs"
	"library-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateLoanParams struct {
	ISBN     string
	Customer string
	Email    string
}

type LoanRepository interface {
	ExistsActiveForBook(ctx context.Context, bookID uuid.UUID) (bool, error)
	Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error)
	UpdateReturned(ctx context.Context, l *loan.Loan) error
}

type LoanCommands interface {
	CreateLoan(ctx context.Context, params CreateLoanParams) (uuid.UUID, error)
	MarkReturned(ctx context.Context, id uuid.UUID, returned bool) error
}

type loanCommandsImpl struct {
	repo  LoanRepository
	books queries.BookReadStore
	clock clock.Clock
}

func NewLoanCommands(repo LoanRepository, books queries.BookReadStore, clk clock.Clock) LoanCommands {
	return &loanCommandsImpl{repo: repo, books: books, clock: clk}
}

// CreateLoan lends the book with the given ISBN. At most one open loan may
// exist per book: the availability pre-check handles the common case, and the
// store's conditional insert rejects the loser of a concurrent race, so two
// callers can never both succeed for the same book.
func (c *loanCommandsImpl) CreateLoan(ctx context.Context, params CreateLoanParams) (uuid.UUID, error) {
	bookView, err := c.books.FindByISBN(ctx, params.ISBN)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	active, err := c.repo.ExistsActiveForBook(ctx, bookView.ID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if active {
		return uuid.Nil, errs.ErrBookUnavailable
	}

	entity, err := loan.NewLoan(uuid.Nil, bookView.ID, params.Customer, params.Email, clock.Today(c.clock))
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrBookUnavailable)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

// MarkReturned sets the returned flag. Returning twice is a no-op; reopening
// a returned loan is rejected with ErrLoanAlreadyReturned.
func (c *loanCommandsImpl) MarkReturned(ctx context.Context, id uuid.UUID, returned bool) error {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLoanNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.MarkReturned(returned); err != nil {
		return errs.Mark(err, errs.ErrLoanAlreadyReturned)
	}

	if err := c.repo.UpdateReturned(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLoanNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
