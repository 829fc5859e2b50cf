package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a 1-based page request. Out-of-range values are clamped rather than
// rejected.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Limit() int  { return p.Size }
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// BookView represents read-optimized book data
type BookView struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	ISBN   string    `json:"isbn"`
}

// LoanView represents read-optimized loan data joined with its book
type LoanView struct {
	ID        uuid.UUID `json:"id"`
	BookID    uuid.UUID `json:"book_id"`
	BookTitle string    `json:"book_title"`
	BookISBN  string    `json:"book_isbn"`
	Customer  string    `json:"customer"`
	Email     *string   `json:"email,omitempty"`
	LoanDate  time.Time `json:"loan_date"`
	Returned  bool      `json:"returned"`
}

// BookPage is one page of book matches plus the total match count.
type BookPage struct {
	Items []BookView `json:"items"`
	Total int64      `json:"total"`
}

// LoanPage is one page of loan matches plus the total match count.
type LoanPage struct {
	Items []LoanView `json:"items"`
	Total int64      `json:"total"`
}
