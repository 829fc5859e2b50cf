package queries

import (
	"context"

	"library-api/internal/infra"
	"library-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookFilter is an explicit search filter: every non-empty field is a
// case-insensitive substring match, empty fields add no constraint.
type BookFilter struct {
	Title  string
	Author string
	ISBN   string
}

func (f BookFilter) IsEmpty() bool {
	return f.Title == "" && f.Author == "" && f.ISBN == ""
}

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	FindByISBN(ctx context.Context, isbn string) (*BookView, error)
	FindMatching(ctx context.Context, filter BookFilter, page Page) (*BookPage, error)
}

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	Search(ctx context.Context, filter BookFilter, page Page) (*BookPage, error)
}

type bookQueriesImpl struct {
	repo BookReadStore
}

func NewBookQueries(repo BookReadStore) BookQueries {
	return &bookQueriesImpl{repo: repo}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bv, nil
}

func (q *bookQueriesImpl) Search(ctx context.Context, filter BookFilter, page Page) (*BookPage, error) {
	result, err := q.repo.FindMatching(ctx, filter, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return result, nil
}
