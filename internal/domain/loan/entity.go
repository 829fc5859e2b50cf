package loan

import (
	"time"

	"library-api/internal/pkg/clock"
	"library-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomer   = errs.New("customer must not be empty")
	ErrAlreadyReturned = errs.New("loan already returned")
)

// Loan records one lending of a book. The loan date is a calendar date fixed
// at creation; the returned flag moves from false to true exactly once.
type Loan struct {
	id       uuid.UUID
	bookID   uuid.UUID
	customer string
	email    *Email
	loanDate time.Time
	returned bool
}

func NewLoan(id, bookID uuid.UUID, customer, email string, loanDate time.Time) (*Loan, error) {
	if customer == "" {
		return nil, ErrEmptyCustomer
	}

	var contact *Email
	if email != "" {
		e, err := NewEmail(email)
		if err != nil {
			return nil, err
		}
		contact = &e
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Loan{
		id:       id,
		bookID:   bookID,
		customer: customer,
		email:    contact,
		loanDate: clock.Midnight(loanDate),
	}, nil
}

// Reconstruct rebuilds a Loan from stored state, bypassing creation-time
// validation.
func Reconstruct(id, bookID uuid.UUID, customer string, email *string, loanDate time.Time, returned bool) *Loan {
	var contact *Email
	if email != nil {
		contact = &Email{value: *email}
	}
	return &Loan{
		id:       id,
		bookID:   bookID,
		customer: customer,
		email:    contact,
		loanDate: clock.Midnight(loanDate),
		returned: returned,
	}
}

// MarkReturned transitions the returned flag. Returning an already-returned
// loan is a no-op; reopening one is rejected.
func (l *Loan) MarkReturned(returned bool) error {
	if l.returned && !returned {
		return ErrAlreadyReturned
	}
	l.returned = returned
	return nil
}

// IsOverdueAt reports whether the loan is still open and dated strictly
// before cutoff. A loan dated exactly on the cutoff is not overdue.
func (l *Loan) IsOverdueAt(cutoff time.Time) bool {
	return !l.returned && l.loanDate.Before(clock.Midnight(cutoff))
}

func (l *Loan) ID() uuid.UUID       { return l.id }
func (l *Loan) BookID() uuid.UUID   { return l.bookID }
func (l *Loan) Customer() string    { return l.customer }
func (l *Loan) Email() *Email       { return l.email }
func (l *Loan) LoanDate() time.Time { return l.loanDate }
func (l *Loan) Returned() bool      { return l.returned }
