package readstore

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"library-api/internal/infra"
	"library-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type BookReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookReadStore(pool *pgxpool.Pool, logger *slog.Logger) *BookReadStore {
	return &BookReadStore{pool: pool, logger: logger}
}

func (s *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	return s.findOne(ctx, sq.Eq{"id": id})
}

func (s *BookReadStore) FindByISBN(ctx context.Context, isbn string) (*queries.BookView, error) {
	return s.findOne(ctx, sq.Eq{"isbn": isbn})
}

func (s *BookReadStore) findOne(ctx context.Context, pred sq.Eq) (*queries.BookView, error) {
	query, args, err := psql.
		Select("id", "title", "author", "isbn").
		From("books").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build book select", err)
	}

	var view queries.BookView
	err = s.pool.QueryRow(ctx, query, args...).
		Scan(&view.ID, &view.Title, &view.Author, &view.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "book not found", err)
		}
		return nil, s.dbFailure("failed to find book", err)
	}
	return &view, nil
}

func (s *BookReadStore) FindMatching(ctx context.Context, filter queries.BookFilter, page queries.Page) (*queries.BookPage, error) {
	countQuery, countArgs, err := BuildBookCountQuery(filter)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build book count query", err)
	}

	var total int64
	if err := s.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, s.dbFailure("failed to count matching books", err)
	}

	query, args, err := BuildBookSearchQuery(filter, page)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build book search query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, s.dbFailure("failed to search books", err)
	}
	defer rows.Close()

	items := make([]queries.BookView, 0, page.Limit())
	for rows.Next() {
		var view queries.BookView
		if err := rows.Scan(&view.ID, &view.Title, &view.Author, &view.ISBN); err != nil {
			return nil, s.dbFailure("failed to scan book row", err)
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, s.dbFailure("failed to read book rows", err)
	}

	return &queries.BookPage{Items: items, Total: total}, nil
}

// likeEscaper neutralizes LIKE metacharacters so filter text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// bookFilterConds translates the explicit filter into ILIKE substring
// predicates; empty fields contribute nothing.
func bookFilterConds(filter queries.BookFilter) sq.And {
	conds := sq.And{}
	if filter.Title != "" {
		conds = append(conds, sq.ILike{"title": likePattern(filter.Title)})
	}
	if filter.Author != "" {
		conds = append(conds, sq.ILike{"author": likePattern(filter.Author)})
	}
	if filter.ISBN != "" {
		conds = append(conds, sq.ILike{"isbn": likePattern(filter.ISBN)})
	}
	return conds
}

func BuildBookSearchQuery(filter queries.BookFilter, page queries.Page) (string, []any, error) {
	builder := psql.
		Select("id", "title", "author", "isbn").
		From("books")
	if conds := bookFilterConds(filter); len(conds) > 0 {
		builder = builder.Where(conds)
	}
	return builder.
		OrderBy("created_at", "id").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
}

func BuildBookCountQuery(filter queries.BookFilter) (string, []any, error) {
	builder := psql.
		Select("count(*)").
		From("books")
	if conds := bookFilterConds(filter); len(conds) > 0 {
		builder = builder.Where(conds)
	}
	return builder.ToSql()
}

func (s *BookReadStore) dbFailure(msg string, err error) error {
	s.logger.Error("book read store error", slog.String("msg", msg), slog.String("error", err.Error()))
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
