//go:build unit

package builder

import (
	"time"

	domloan "library-api/internal/domain/loan"
	reqdto "library-api/internal/handler/dto/request"
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	BookTitle string
	BookISBN  string
	Customer  string
	Email     string
	LoanDate  time.Time
	Returned  bool
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		ID:        uuid.New(),
		BookID:    uuid.New(),
		BookTitle: "As Aventuras",
		BookISBN:  "001",
		Customer:  "Fulano",
		Email:     "fulano@example.com",
		LoanDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (l *LoanBuilder) BuildDomain() (*domloan.Loan, error) {
	return domloan.NewLoan(uuid.Nil, l.BookID, l.Customer, l.Email, l.LoanDate)
}

func (l *LoanBuilder) BuildReconstructed() *domloan.Loan {
	var email *string
	if l.Email != "" {
		e := l.Email
		email = &e
	}
	return domloan.Reconstruct(l.ID, l.BookID, l.Customer, email, l.LoanDate, l.Returned)
}

func (l *LoanBuilder) BuildView() *queries.LoanView {
	var email *string
	if l.Email != "" {
		e := l.Email
		email = &e
	}
	return &queries.LoanView{
		ID:        l.ID,
		BookID:    l.BookID,
		BookTitle: l.BookTitle,
		BookISBN:  l.BookISBN,
		Customer:  l.Customer,
		Email:     email,
		LoanDate:  l.LoanDate,
		Returned:  l.Returned,
	}
}

func (l *LoanBuilder) BuildCreateRequestDTO() reqdto.CreateLoanRequest {
	return reqdto.CreateLoanRequest{
		ISBN:     l.BookISBN,
		Customer: l.Customer,
		Email:    l.Email,
	}
}

func (l *LoanBuilder) BuildCreateParams() commands.CreateLoanParams {
	return commands.CreateLoanParams{
		ISBN:     l.BookISBN,
		Customer: l.Customer,
		Email:    l.Email,
	}
}

// Fluent builder methods
func (l *LoanBuilder) WithID(id uuid.UUID) *LoanBuilder {
	l.ID = id
	return l
}

func (l *LoanBuilder) WithBookID(bookID uuid.UUID) *LoanBuilder {
	l.BookID = bookID
	return l
}

func (l *LoanBuilder) WithBookISBN(isbn string) *LoanBuilder {
	l.BookISBN = isbn
	return l
}

func (l *LoanBuilder) WithCustomer(customer string) *LoanBuilder {
	l.Customer = customer
	return l
}

func (l *LoanBuilder) WithEmail(email string) *LoanBuilder {
	l.Email = email
	return l
}

func (l *LoanBuilder) WithoutEmail() *LoanBuilder {
	l.Email = ""
	return l
}

func (l *LoanBuilder) WithLoanDate(d time.Time) *LoanBuilder {
	l.LoanDate = d
	return l
}

func (l *LoanBuilder) AsReturned() *LoanBuilder {
	l.Returned = true
	return l
}
