package repository

import (
	"context"
	"log/slog"

	"library-api/internal/domain/book"
	"library-api/internal/infra"
	"library-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type BookRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookRepository(pool *pgxpool.Pool, logger *slog.Logger) *BookRepository {
	return &BookRepository{pool: pool, logger: logger}
}

func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query, args, err := psql.
		Select("1").
		From("books").
		Where(sq.Eq{"isbn": isbn}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to build isbn exists query", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, r.dbFailure("failed to check isbn existence", err)
	}
	return exists, nil
}

// Create inserts the book. The unique index on books.isbn is the last line of
// defense against two concurrent creations with the same ISBN.
func (r *BookRepository) Create(ctx context.Context, b *book.Book) (*queries.BookView, error) {
	query, args, err := psql.
		Insert("books").
		Columns("id", "title", "author", "isbn").
		Values(b.ID(), b.Title(), b.Author(), b.ISBN().Value()).
		Suffix("RETURNING id, title, author, isbn").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build book insert", err)
	}

	var view queries.BookView
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&view.ID, &view.Title, &view.Author, &view.ISBN)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr(infra.KindDuplicateKey, "isbn already registered", err)
		}
		return nil, r.dbFailure("failed to insert book", err)
	}
	return &view, nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	query, args, err := psql.
		Update("books").
		Set("title", b.Title()).
		Set("author", b.Author()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build book update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.dbFailure("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "book not found", nil)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.
		Delete("books").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build book delete", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.dbFailure("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "book not found", nil)
	}
	return nil
}

func (r *BookRepository) dbFailure(msg string, err error) error {
	r.logger.Error("book repository error", slog.String("msg", msg), slog.String("error", err.Error()))
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
