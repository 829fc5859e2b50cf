package response

import (
	"library-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const loanDateLayout = "2006-01-02"

type LoanBookRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	ISBN  string    `json:"isbn"`
}

type LoanResponse struct {
	ID       uuid.UUID   `json:"id"`
	Book     LoanBookRef `json:"book"`
	Customer string      `json:"customer"`
	Email    *string     `json:"email,omitempty"`
	LoanDate string      `json:"loan_date"`
	Returned bool        `json:"returned"`
}

func FromLoanView(v *queries.LoanView) LoanResponse {
	return LoanResponse{
		ID: v.ID,
		Book: LoanBookRef{
			ID:    v.BookID,
			Title: v.BookTitle,
			ISBN:  v.BookISBN,
		},
		Customer: v.Customer,
		Email:    v.Email,
		LoanDate: v.LoanDate.Format(loanDateLayout),
		Returned: v.Returned,
	}
}

type LoanPageResponse struct {
	Items []LoanResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

func FromLoanPage(p *queries.LoanPage, page queries.Page) LoanPageResponse {
	return LoanPageResponse{
		Items: lo.Map(p.Items, func(v queries.LoanView, _ int) LoanResponse {
			return FromLoanView(&v)
		}),
		Total: p.Total,
		Page:  page.Number,
		Size:  page.Size,
	}
}

type CreatedLoanResponse struct {
	ID uuid.UUID `json:"id"`
}
