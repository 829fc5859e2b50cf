package book

import (
	"strings"

	"library-api/internal/pkg/errs"
)

var ErrEmptyISBN = errs.New("isbn must not be empty")

// ISBN is the lending key. Comparison is case-sensitive and exact; the catalog
// stores whatever the publisher printed.
type ISBN struct {
	value string
}

func NewISBN(s string) (ISBN, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ISBN{}, ErrEmptyISBN
	}
	return ISBN{value: s}, nil
}

func (i ISBN) Value() string { return i.value }
