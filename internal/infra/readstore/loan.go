package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"library-api/internal/infra"
	"library-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const loanViewColumns = "l.id, l.book_id, b.title, b.isbn, l.customer, l.email, l.loan_date, l.returned"

type LoanReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLoanReadStore(pool *pgxpool.Pool, logger *slog.Logger) *LoanReadStore {
	return &LoanReadStore{pool: pool, logger: logger}
}

func (s *LoanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LoanView, error) {
	query, args, err := loanViewBuilder().
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build loan view select", err)
	}

	var view queries.LoanView
	err = s.pool.QueryRow(ctx, query, args...).
		Scan(&view.ID, &view.BookID, &view.BookTitle, &view.BookISBN,
			&view.Customer, &view.Email, &view.LoanDate, &view.Returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "loan not found", err)
		}
		return nil, s.dbFailure("failed to find loan view", err)
	}
	return &view, nil
}

func (s *LoanReadStore) FindByIsbnOrCustomer(ctx context.Context, filter queries.LoanFilter, page queries.Page) (*queries.LoanPage, error) {
	return s.findPage(ctx, LoanFilterConds(filter), page)
}

func (s *LoanReadStore) FindByBookID(ctx context.Context, bookID uuid.UUID, page queries.Page) (*queries.LoanPage, error) {
	return s.findPage(ctx, sq.Eq{"l.book_id": bookID}, page)
}

// FindOverdueUnreturned returns every open loan dated strictly before cutoff.
// A loan dated exactly on the cutoff is not overdue yet.
func (s *LoanReadStore) FindOverdueUnreturned(ctx context.Context, cutoff time.Time) ([]queries.LoanView, error) {
	query, args, err := BuildOverdueQuery(cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build overdue query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, s.dbFailure("failed to query overdue loans", err)
	}
	defer rows.Close()

	return s.scanViews(rows, 0)
}

func (s *LoanReadStore) findPage(ctx context.Context, pred sq.Sqlizer, page queries.Page) (*queries.LoanPage, error) {
	countQuery, countArgs, err := BuildLoanCountQuery(pred)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build loan count query", err)
	}

	var total int64
	if err := s.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, s.dbFailure("failed to count matching loans", err)
	}

	query, args, err := BuildLoanSearchQuery(pred, page)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build loan search query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, s.dbFailure("failed to search loans", err)
	}
	defer rows.Close()

	items, err := s.scanViews(rows, page.Limit())
	if err != nil {
		return nil, err
	}
	return &queries.LoanPage{Items: items, Total: total}, nil
}

func (s *LoanReadStore) scanViews(rows pgx.Rows, sizeHint int) ([]queries.LoanView, error) {
	items := make([]queries.LoanView, 0, sizeHint)
	for rows.Next() {
		var view queries.LoanView
		err := rows.Scan(&view.ID, &view.BookID, &view.BookTitle, &view.BookISBN,
			&view.Customer, &view.Email, &view.LoanDate, &view.Returned)
		if err != nil {
			return nil, s.dbFailure("failed to scan loan row", err)
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, s.dbFailure("failed to read loan rows", err)
	}
	return items, nil
}

func loanViewBuilder() sq.SelectBuilder {
	return psql.
		Select(loanViewColumns).
		From("loans l").
		Join("books b ON b.id = l.book_id")
}

// LoanFilterConds ORs the two filter fields: a loan matches when its book's
// ISBN equals the filter ISBN or its customer equals the filter customer.
func LoanFilterConds(filter queries.LoanFilter) sq.Sqlizer {
	conds := sq.Or{}
	if filter.ISBN != "" {
		conds = append(conds, sq.Eq{"b.isbn": filter.ISBN})
	}
	if filter.Customer != "" {
		conds = append(conds, sq.Eq{"l.customer": filter.Customer})
	}
	if len(conds) == 0 {
		return nil
	}
	return conds
}

func BuildLoanSearchQuery(pred sq.Sqlizer, page queries.Page) (string, []any, error) {
	builder := loanViewBuilder()
	if pred != nil {
		builder = builder.Where(pred)
	}
	return builder.
		OrderBy("l.loan_date", "l.id").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
}

func BuildLoanCountQuery(pred sq.Sqlizer) (string, []any, error) {
	builder := psql.
		Select("count(*)").
		From("loans l").
		Join("books b ON b.id = l.book_id")
	if pred != nil {
		builder = builder.Where(pred)
	}
	return builder.ToSql()
}

func BuildOverdueQuery(cutoff time.Time) (string, []any, error) {
	return loanViewBuilder().
		Where(sq.And{
			sq.Lt{"l.loan_date": cutoff},
			sq.Eq{"l.returned": false},
		}).
		OrderBy("l.loan_date", "l.id").
		ToSql()
}

func (s *LoanReadStore) dbFailure(msg string, err error) error {
	s.logger.Error("loan read store error", slog.String("msg", msg), slog.String("error", err.Error()))
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
