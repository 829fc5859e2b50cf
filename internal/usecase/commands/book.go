package commands

import (
	"context"

	"library-api/internal/domain/book"
	"library-api/internal/infra"
	"library-api/internal/pkg/errs"
	"library-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookParams struct {
	Title  string
	Author string
	ISBN   string
}

type UpdateBookParams struct {
	ID     uuid.UUID
	Title  string
	Author string
}

type BookRepository interface {
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	Create(ctx context.Context, b *book.Book) (*queries.BookView, error)
	Update(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookCommands interface {
	Create(ctx context.Context, params CreateBookParams) (*queries.BookView, error)
	Update(ctx context.Context, params UpdateBookParams) (*queries.BookView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	repo  BookRepository
	reads queries.BookReadStore
}

func NewBookCommands(repo BookRepository, reads queries.BookReadStore) BookCommands {
	return &bookCommandsImpl{repo: repo, reads: reads}
}

// Create registers a book, refusing any ISBN already in the catalog. The
// pre-check gives the common case a clean failure; the store's unique guard
// closes the race between concurrent creates.
func (c *bookCommandsImpl) Create(ctx context.Context, params CreateBookParams) (*queries.BookView, error) {
	entity, err := book.NewBook(uuid.Nil, params.Title, params.Author, params.ISBN)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	exists, err := c.repo.ExistsByISBN(ctx, entity.ISBN().Value())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, errs.ErrDuplicateISBN
	}

	view, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateISBN)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Update applies the mutable fields (title, author) to an existing record.
func (c *bookCommandsImpl) Update(ctx context.Context, params UpdateBookParams) (*queries.BookView, error) {
	if params.ID == uuid.Nil {
		return nil, errs.ErrInvalidArgument
	}

	current, err := c.reads.FindByID(ctx, params.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity := book.Reconstruct(current.ID, current.Title, current.Author, current.ISBN)
	if err := entity.ChangeDetails(params.Title, params.Author); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.BookView{
		ID:     entity.ID(),
		Title:  entity.Title(),
		Author: entity.Author(),
		ISBN:   entity.ISBN().Value(),
	}, nil
}

func (c *bookCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrInvalidArgument
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
