package core

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	loanStatusAvailable    = "Available"
	loanStatusLoanedPrefix = "Loaned to "
)

// Book is a catalog entry with a number of available copies and the loans of its other copies.
//
// Quantity counts the copies that can still be loaned: LoanTo decrements it, ReturnBook increments it.
// The total number of copies owned is Quantity plus the number of loans.
//
// Loans are kept in insertion order and the slice is never modified in place,
// so copies of a Book value never observe each other's mutations.
type Book struct {
	id       uuid.UUID
	title    Title
	author   Author
	quantity int
	loans    []Loan
}

// BuildBook creates a Book without loans and with a freshly generated identifier.
func BuildBook(title Title, author Author, quantity Quantity) Book {
	return Book{
		id:       uuid.New(),
		title:    title,
		author:   author,
		quantity: quantity.Int(),
	}
}

// ReconstituteBook rebuilds a Book that owns totalCopies copies, of which len(loans) are on loan.
//
// Errors (all IllegalValueError):
//   - quantity if totalCopies is zero
//   - loans if more copies are on loan than owned, if a loan has no return date,
//     or if one person holds two copies
func ReconstituteBook(title Title, author Author, totalCopies Quantity, loans ...Loan) (Book, error) {
	if totalCopies.IsZero() {
		return Book{}, IllegalValue(FieldQuantity, "a book must own at least one copy")
	}

	if len(loans) > totalCopies.Int() {
		return Book{}, IllegalValue(FieldLoans, "more copies are on loan than the book owns")
	}

	seen := make(map[uuid.UUID]struct{}, len(loans))
	for _, loan := range loans {
		if loan.returnDate.IsZero() {
			return Book{}, IllegalValue(FieldLoans, "a loan needs a return date")
		}

		if _, ok := seen[loan.loaneeID]; ok {
			return Book{}, IllegalValue(FieldLoans, loan.loaneeName.String()+" holds more than one copy")
		}

		seen[loan.loaneeID] = struct{}{}
	}

	book := BuildBook(title, author, totalCopies)
	book.quantity -= len(loans)
	book.loans = append([]Loan(nil), loans...)

	return book, nil
}

// ID returns the stable identifier of the Book.
func (b Book) ID() uuid.UUID {
	return b.id
}

// Title returns the title of the Book.
func (b Book) Title() Title {
	return b.title
}

// Author returns the author of the Book.
func (b Book) Author() Author {
	return b.author
}

// Quantity returns the number of available copies.
func (b Book) Quantity() Quantity {
	return Quantity{value: b.quantity}
}

// TotalCopies returns the number of copies owned, available or on loan.
func (b Book) TotalCopies() int {
	return b.quantity + len(b.loans)
}

// Loans returns a copy of the active loans in the order they were made.
func (b Book) Loans() []Loan {
	loans := make([]Loan, len(b.loans))
	copy(loans, b.loans)

	return loans
}

// IsLoaned reports whether at least one copy is on loan.
func (b Book) IsLoaned() bool {
	return len(b.loans) > 0
}

// IsLoanedTo reports whether the Person with the given ID holds a copy.
func (b Book) IsLoanedTo(personID uuid.UUID) bool {
	return b.loanIndexOf(personID) >= 0
}

// NextReturnDate returns the earliest due date among the active loans.
func (b Book) NextReturnDate() (ReturnDate, bool) {
	if !b.IsLoaned() {
		return ReturnDate{}, false
	}

	next := b.loans[0].returnDate
	for _, loan := range b.loans[1:] {
		if loan.returnDate.Before(next) {
			next = loan.returnDate
		}
	}

	return next, true
}

// LoanTo lends one copy to loanee, due back at returnDate.
//
// Errors:
//   - ErrAlreadyLoanedToPerson if loanee already holds a copy
//   - ErrOutOfCopies if no copy is available
//   - IllegalValueError for a zero returnDate
//
// The Book is unchanged when an error is returned.
func (b *Book) LoanTo(loanee Person, returnDate ReturnDate) error {
	if b.IsLoanedTo(loanee.ID()) {
		return ErrAlreadyLoanedToPerson
	}

	if b.quantity == 0 {
		return ErrOutOfCopies
	}

	if returnDate.IsZero() {
		return IllegalValue(FieldReturnDate, "a loan needs a return date")
	}

	loans := make([]Loan, 0, len(b.loans)+1)
	loans = append(loans, b.loans...)
	loans = append(loans, Loan{loaneeID: loanee.ID(), loaneeName: loanee.Name(), returnDate: returnDate})

	b.loans = loans
	b.quantity--

	return nil
}

// ReturnBook takes back the copy held by loanee.
// It returns ErrNotOnLoan, leaving the Book unchanged, if loanee does not hold a copy.
func (b *Book) ReturnBook(loanee Person) error {
	idx := b.loanIndexOf(loanee.ID())
	if idx < 0 {
		return ErrNotOnLoan
	}

	loans := make([]Loan, 0, len(b.loans)-1)
	loans = append(loans, b.loans[:idx]...)
	loans = append(loans, b.loans[idx+1:]...)

	b.loans = loans
	b.quantity++

	return nil
}

// IsSameBook reports whether both books have the same title.
// This is the weaker notion of equality used to prevent duplicate catalog entries.
func (b Book) IsSameBook(other Book) bool {
	return b.title.Equals(other.title)
}

// Equals reports whether both books have the same title and author.
func (b Book) Equals(other Book) bool {
	return b.title.Equals(other.title) && b.author.Equals(other.author)
}

// LoanStatus returns "Available" or "Loaned to " followed by the loanee names, sorted and comma-separated.
func (b Book) LoanStatus() string {
	if !b.IsLoaned() {
		return loanStatusAvailable
	}

	names := make([]string, 0, len(b.loans))
	for _, loan := range b.loans {
		names = append(names, loan.loaneeName.String())
	}
	sort.Strings(names)

	return loanStatusLoanedPrefix + strings.Join(names, ", ")
}

func (b Book) loanIndexOf(personID uuid.UUID) int {
	for i, loan := range b.loans {
		if loan.loaneeID == personID {
			return i
		}
	}

	return -1
}
