//go:build unit

package builder

import (
	dombook "library-api/internal/domain/book"
	reqdto "library-api/internal/handler/dto/request"
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID     uuid.UUID
	Title  string
	Author string
	ISBN   string
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:     uuid.New(),
		Title:  "As Aventuras",
		Author: "Arthur",
		ISBN:   "001",
	}
}

// Build methods
func (b *BookBuilder) BuildDomain() (*dombook.Book, error) {
	return dombook.NewBook(uuid.Nil, b.Title, b.Author, b.ISBN)
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}

func (b *BookBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookRequest {
	return reqdto.UpdateBookRequest{
		Title:  b.Title,
		Author: b.Author,
	}
}

func (b *BookBuilder) BuildCreateParams() commands.CreateBookParams {
	return commands.CreateBookParams{
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}

// Fluent builder methods
func (b *BookBuilder) WithID(id uuid.UUID) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.Author = author
	return b
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.ISBN = isbn
	return b
}
