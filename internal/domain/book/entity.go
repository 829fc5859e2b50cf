package book

import (
	"library-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle  = errs.New("title must not be empty")
	ErrEmptyAuthor = errs.New("author must not be empty")
)

// Book is a catalog record. The ISBN is fixed at creation time; catalog-wide
// ISBN uniqueness is enforced by the usecase layer and the store, not here.
type Book struct {
	id     uuid.UUID
	title  string
	author string
	isbn   ISBN
}

func NewBook(id uuid.UUID, title, author, isbn string) (*Book, error) {
	i, err := NewISBN(isbn)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	b := &Book{id: id, isbn: i}
	if err := b.ChangeDetails(title, author); err != nil {
		return nil, err
	}

	return b, nil
}

// Reconstruct rebuilds a Book from stored state, bypassing creation-time
// validation.
func Reconstruct(id uuid.UUID, title, author, isbn string) *Book {
	return &Book{id: id, title: title, author: author, isbn: ISBN{value: isbn}}
}

// ChangeDetails applies the mutable fields. The id and ISBN never change.
func (b *Book) ChangeDetails(title, author string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if author == "" {
		return ErrEmptyAuthor
	}
	b.title = title
	b.author = author
	return nil
}

func (b *Book) ID() uuid.UUID  { return b.id }
func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) ISBN() ISBN     { return b.isbn }
