//go:build unit

package readstore_test

import (
	"testing"
	"time"

	"library-api/internal/infra/readstore"
	"library-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Loan search query building
// =============================================================================

func TestLoanFilterConds(t *testing.T) {
	t.Run("empty filter yields no predicate", func(t *testing.T) {
		assert.Nil(t, readstore.LoanFilterConds(queries.LoanFilter{}))
	})

	t.Run("both fields are ORed, not ANDed", func(t *testing.T) {
		pred := readstore.LoanFilterConds(queries.LoanFilter{ISBN: "001", Customer: "Fulano"})
		require.NotNil(t, pred)

		sql, args, err := pred.ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(b.isbn = ? OR l.customer = ?)", sql)
		assert.Equal(t, []any{"001", "Fulano"}, args)
	})

	t.Run("single field stands alone", func(t *testing.T) {
		pred := readstore.LoanFilterConds(queries.LoanFilter{Customer: "Fulano"})
		require.NotNil(t, pred)

		sql, args, err := pred.ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(l.customer = ?)", sql)
		assert.Equal(t, []any{"Fulano"}, args)
	})
}

func TestBuildLoanSearchQuery(t *testing.T) {
	page := queries.NewPage(1, 20)

	t.Run("joins loans with their book", func(t *testing.T) {
		sql, _, err := readstore.BuildLoanSearchQuery(nil, page)
		require.NoError(t, err)

		assert.Contains(t, sql, "FROM loans l")
		assert.Contains(t, sql, "JOIN books b ON b.id = l.book_id")
		assert.NotContains(t, sql, "WHERE")
	})

	t.Run("book id predicate and paging", func(t *testing.T) {
		bookID := uuid.New()
		sql, args, err := readstore.BuildLoanSearchQuery(sq.Eq{"l.book_id": bookID}, queries.NewPage(2, 10))
		require.NoError(t, err)

		assert.Contains(t, sql, "l.book_id = $1")
		assert.Contains(t, sql, "LIMIT 10 OFFSET 10")
		// squirrel resolves driver.Valuer args, so the uuid arrives as text
		assert.Equal(t, []any{bookID.String()}, args)
	})

	t.Run("order is deterministic", func(t *testing.T) {
		sql, _, err := readstore.BuildLoanSearchQuery(nil, page)
		require.NoError(t, err)

		assert.Contains(t, sql, "ORDER BY l.loan_date, l.id")
	})
}

func TestBuildLoanCountQuery(t *testing.T) {
	t.Run("counts over the same join", func(t *testing.T) {
		pred := readstore.LoanFilterConds(queries.LoanFilter{ISBN: "001"})
		sql, args, err := readstore.BuildLoanCountQuery(pred)
		require.NoError(t, err)

		assert.Contains(t, sql, "SELECT count(*) FROM loans l")
		assert.Contains(t, sql, "JOIN books b ON b.id = l.book_id")
		assert.Contains(t, sql, "b.isbn = $1")
		assert.Equal(t, []any{"001"}, args)
	})
}

func TestBuildOverdueQuery(t *testing.T) {
	cutoff := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("strictly before the cutoff and still open", func(t *testing.T) {
		sql, args, err := readstore.BuildOverdueQuery(cutoff)
		require.NoError(t, err)

		// strict <, never <=: a loan dated on the cutoff day is not overdue
		assert.Contains(t, sql, "l.loan_date < $1")
		assert.NotContains(t, sql, "<=")
		assert.Contains(t, sql, "l.returned = $2")
		assert.Equal(t, []any{cutoff, false}, args)
	})

	t.Run("no paging: every overdue loan is collected", func(t *testing.T) {
		sql, _, err := readstore.BuildOverdueQuery(cutoff)
		require.NoError(t, err)

		assert.NotContains(t, sql, "LIMIT")
	})
}
