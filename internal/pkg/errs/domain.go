package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Book errors
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("isbn already registered")

	// Loan errors
	ErrLoanNotFound        = errors.New("loan not found")
	ErrBookUnavailable     = errors.New("book already loaned")
	ErrLoanAlreadyReturned = errors.New("loan already returned")

	// Operation errors
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
