package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"library-api/internal/domain/loan"
	"library-api/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoanRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLoanRepository(pool *pgxpool.Pool, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{pool: pool, logger: logger}
}

func (r *LoanRepository) ExistsActiveForBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	query, args, err := psql.
		Select("1").
		From("loans").
		Where(sq.And{sq.Eq{"book_id": bookID}, sq.Eq{"returned": false}}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to build active loan query", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, r.dbFailure("failed to check active loan", err)
	}
	return exists, nil
}

// Create inserts the loan. A partial unique index on loans(book_id) WHERE NOT
// returned makes the insert itself the atomic guard: of two concurrent
// creations for the same book, exactly one hits the unique violation.
func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error) {
	var email *string
	if l.Email() != nil {
		v := l.Email().Value()
		email = &v
	}

	query, args, err := psql.
		Insert("loans").
		Columns("id", "book_id", "customer", "email", "loan_date", "returned").
		Values(l.ID(), l.BookID(), l.Customer(), email, l.LoanDate(), l.Returned()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build loan insert", err)
	}

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "book already has an active loan", err)
		}
		return uuid.Nil, r.dbFailure("failed to insert loan", err)
	}
	return id, nil
}

func (r *LoanRepository) FindByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	query, args, err := psql.
		Select("id", "book_id", "customer", "email", "loan_date", "returned").
		From("loans").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build loan select", err)
	}

	var (
		loanID   uuid.UUID
		bookID   uuid.UUID
		customer string
		email    *string
		loanDate time.Time
		returned bool
	)
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&loanID, &bookID, &customer, &email, &loanDate, &returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "loan not found", err)
		}
		return nil, r.dbFailure("failed to find loan", err)
	}

	return loan.Reconstruct(loanID, bookID, customer, email, loanDate, returned), nil
}

func (r *LoanRepository) UpdateReturned(ctx context.Context, l *loan.Loan) error {
	query, args, err := psql.
		Update("loans").
		Set("returned", l.Returned()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": l.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build loan update", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return r.dbFailure("failed to update loan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "loan not found", nil)
	}
	return nil
}

func (r *LoanRepository) dbFailure(msg string, err error) error {
	r.logger.Error("loan repository error", slog.String("msg", msg), slog.String("error", err.Error()))
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
