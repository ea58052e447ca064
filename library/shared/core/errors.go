package core

import (
	"errors"
)

var (
	// ErrDuplicateBook is returned when adding a book whose title is already in the catalog.
	ErrDuplicateBook = errors.New("book is already in the catalog")

	// ErrDuplicatePerson is returned when adding a person whose name is already registered.
	ErrDuplicatePerson = errors.New("person is already registered")

	// ErrBookNotFound is returned when a referenced book does not exist in the current view.
	ErrBookNotFound = errors.New("book not found")

	// ErrPersonNotFound is returned when a referenced person does not exist in the current view.
	ErrPersonNotFound = errors.New("person not found")

	// ErrOutOfCopies is returned when a loan is requested while no copy is available.
	ErrOutOfCopies = errors.New("no copies of the book are available")

	// ErrAlreadyLoanedToPerson is returned when a book is loaned again to a person who already holds a copy.
	ErrAlreadyLoanedToPerson = errors.New("book is already loaned to this person")

	// ErrNotOnLoan is returned when a return is requested for a book without active loans.
	ErrNotOnLoan = errors.New("book is not on loan")

	// ErrLoaneeMismatch is returned when a return is requested by a person who does not hold the book.
	ErrLoaneeMismatch = errors.New("book is not loaned to this person")

	// ErrBookOnLoan is returned when deleting a book that still has loanees.
	ErrBookOnLoan = errors.New("book cannot be deleted; it is currently loaned to someone")

	// ErrPersonHasActiveLoans is returned when deleting a person who still holds books.
	ErrPersonHasActiveLoans = errors.New("person cannot be deleted; loaned books are not returned")

	// ErrIllegalValue is the parent of every IllegalValueError.
	ErrIllegalValue = errors.New("illegal value")
)

// Field names reported by IllegalValueError.
const (
	FieldTitle      = "title"
	FieldAuthor     = "author"
	FieldName       = "name"
	FieldQuantity   = "quantity"
	FieldReturnDate = "returnDate"
	FieldIsLoaned   = "isLoaned"
	FieldLoans      = "loans"
	FieldIndex      = "index"
)

// IllegalValueError reports a value that violates the format or range rule of a single field.
// It unwraps to ErrIllegalValue.
type IllegalValueError struct {
	Field  string
	Reason string
}

// IllegalValue creates an IllegalValueError for the given field.
func IllegalValue(field string, reason string) error {
	return IllegalValueError{Field: field, Reason: reason}
}

func (e IllegalValueError) Error() string {
	return ErrIllegalValue.Error() + " for " + e.Field + ": " + e.Reason
}

// Unwrap makes errors.Is(err, ErrIllegalValue) work.
func (e IllegalValueError) Unwrap() error {
	return ErrIllegalValue
}

// IllegalValueField returns the offending field if err is (or wraps) an IllegalValueError.
func IllegalValueField(err error) (string, bool) {
	var illegal IllegalValueError
	if errors.As(err, &illegal) {
		return illegal.Field, true
	}

	return "", false
}
