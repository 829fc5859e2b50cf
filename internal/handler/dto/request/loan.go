package request

import (
	"library-api/internal/usecase/commands"
	"library-api/internal/usecase/queries"
)

type CreateLoanRequest struct {
	ISBN     string `json:"isbn" binding:"required"`
	Customer string `json:"customer" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func (r CreateLoanRequest) ToParams() commands.CreateLoanParams {
	return commands.CreateLoanParams{
		ISBN:     r.ISBN,
		Customer: r.Customer,
		Email:    r.Email,
	}
}

// ReturnedLoanRequest uses a pointer so "returned": false is distinguishable
// from a missing field.
type ReturnedLoanRequest struct {
	Returned *bool `json:"returned" binding:"required"`
}

// LoanSearchRequest filters by book ISBN or customer name (exact matches,
// OR'ed when both are given) plus paging.
type LoanSearchRequest struct {
	ISBN     string `form:"isbn"`
	Customer string `form:"customer"`
	Page     int    `form:"page,default=1"`
	Size     int    `form:"size,default=20"`
}

func (r LoanSearchRequest) ToFilter() queries.LoanFilter {
	return queries.LoanFilter{
		ISBN:     r.ISBN,
		Customer: r.Customer,
	}
}

func (r LoanSearchRequest) ToPage() queries.Page {
	return queries.NewPage(r.Page, r.Size)
}

// PageRequest is bare paging for listings without filters.
type PageRequest struct {
	Page int `form:"page,default=1"`
	Size int `form:"size,default=20"`
}

func (r PageRequest) ToPage() queries.Page {
	return queries.NewPage(r.Page, r.Size)
}
