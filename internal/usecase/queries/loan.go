package queries

import (
	"context"
	"time"

	"library-api/internal/infra"
	"library-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// LoanFilter matches loans whose book ISBN equals ISBN or whose customer name
// equals Customer. When both are supplied the conditions are OR'ed, matching
// the ledger's search contract.
type LoanFilter struct {
	ISBN     string
	Customer string
}

func (f LoanFilter) IsEmpty() bool {
	return f.ISBN == "" && f.Customer == ""
}

type LoanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	FindByIsbnOrCustomer(ctx context.Context, filter LoanFilter, page Page) (*LoanPage, error)
	FindByBookID(ctx context.Context, bookID uuid.UUID, page Page) (*LoanPage, error)
	FindOverdueUnreturned(ctx context.Context, cutoff time.Time) ([]LoanView, error)
}

type LoanQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	Search(ctx context.Context, filter LoanFilter, page Page) (*LoanPage, error)
	ListByBook(ctx context.Context, bookID uuid.UUID, page Page) (*LoanPage, error)
}

type loanQueriesImpl struct {
	repo  LoanReadStore
	books BookReadStore
}

func NewLoanQueries(repo LoanReadStore, books BookReadStore) LoanQueries {
	return &loanQueriesImpl{repo: repo, books: books}
}

func (q *loanQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error) {
	lv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLoanNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return lv, nil
}

func (q *loanQueriesImpl) Search(ctx context.Context, filter LoanFilter, page Page) (*LoanPage, error) {
	result, err := q.repo.FindByIsbnOrCustomer(ctx, filter, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return result, nil
}

// ListByBook resolves the book first so an unknown id surfaces as
// ErrBookNotFound rather than an empty page.
func (q *loanQueriesImpl) ListByBook(ctx context.Context, bookID uuid.UUID, page Page) (*LoanPage, error) {
	if _, err := q.books.FindByID(ctx, bookID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result, err := q.repo.FindByBookID(ctx, bookID, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return result, nil
}
