package request

import (
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"
)

type CreateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	ISBN   string `json:"isbn" binding:"required"`
}

func (r CreateBookRequest) ToParams() commands.CreateBookParams {
	return commands.CreateBookParams{
		Title:  r.Title,
		Author: r.Author,
		ISBN:   r.ISBN,
	}
}

type UpdateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

// BookSearchRequest carries the optional filter fields plus paging. Each
// non-empty filter field becomes a case-insensitive substring match.
type BookSearchRequest struct {
	Title  string `form:"title"`
	Author string `form:"author"`
	ISBN   string `form:"isbn"`
	Page   int    `form:"page,default=1"`
	Size   int    `form:"size,default=20"`
}

func (r BookSearchRequest) ToFilter() queries.BookFilter {
	return queries.BookFilter{
		Title:  r.Title,
		Author: r.Author,
		ISBN:   r.ISBN,
	}
}

func (r BookSearchRequest) ToPage() queries.Page {
	return queries.NewPage(r.Page, r.Size)
}
