package response

import (
	"library-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type BookResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	ISBN   string    `json:"isbn"`
}

func FromBookView(v *queries.BookView) BookResponse {
	return BookResponse{
		ID:     v.ID,
		Title:  v.Title,
		Author: v.Author,
		ISBN:   v.ISBN,
	}
}

type BookPageResponse struct {
	Items []BookResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

func FromBookPage(p *queries.BookPage, page queries.Page) BookPageResponse {
	return BookPageResponse{
		Items: lo.Map(p.Items, func(v queries.BookView, _ int) BookResponse {
			return FromBookView(&v)
		}),
		Total: p.Total,
		Page:  page.Number,
		Size:  page.Size,
	}
}
