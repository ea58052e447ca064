package model

import (
	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// AddBook adds book to the catalog.
// It returns core.ErrDuplicateBook if a book with the same title exists.
func (m *Model) AddBook(book core.Book) error {
	if m.HasBook(book) {
		return core.ErrDuplicateBook
	}

	m.books = append(m.books, book)

	return nil
}

// AddPerson registers person.
// It returns core.ErrDuplicatePerson if a person with the same name exists.
func (m *Model) AddPerson(person core.Person) error {
	if m.HasPerson(person) {
		return core.ErrDuplicatePerson
	}

	m.persons = append(m.persons, person)

	return nil
}

// LoanBookTo lends a copy of book to person and returns the updated book.
//
// Errors:
//   - core.ErrBookNotFound if book is not in the catalog
//   - core.ErrPersonNotFound if person is not registered
//   - core.ErrOutOfCopies if no copy is available
//   - core.ErrAlreadyLoanedToPerson if person already holds a copy
func (m *Model) LoanBookTo(person core.Person, book core.Book, returnDate core.ReturnDate) (core.Book, error) {
	pos := m.bookPosition(book.ID())
	if pos < 0 {
		return core.Book{}, core.ErrBookNotFound
	}

	if m.personPosition(person.ID()) < 0 {
		return core.Book{}, core.ErrPersonNotFound
	}

	current := m.books[pos]
	if current.Quantity().IsZero() {
		return core.Book{}, core.ErrOutOfCopies
	}

	if err := current.LoanTo(person, returnDate); err != nil {
		return core.Book{}, err
	}

	m.books[pos] = current

	return current, nil
}

// ReturnLoanedBook takes back the copy of book held by person and returns the updated book.
//
// Errors:
//   - core.ErrBookNotFound if book is not in the catalog
//   - core.ErrNotOnLoan if no copy of book is on loan
//   - core.ErrLoaneeMismatch if copies are on loan, but none to person
func (m *Model) ReturnLoanedBook(person core.Person, book core.Book) (core.Book, error) {
	pos := m.bookPosition(book.ID())
	if pos < 0 {
		return core.Book{}, core.ErrBookNotFound
	}

	current := m.books[pos]
	if !current.IsLoaned() {
		return core.Book{}, core.ErrNotOnLoan
	}

	if !current.IsLoanedTo(person.ID()) {
		return core.Book{}, core.ErrLoaneeMismatch
	}

	if err := current.ReturnBook(person); err != nil {
		return core.Book{}, err
	}

	m.books[pos] = current

	return current, nil
}

// DeleteBook removes book from the catalog and returns the removed state.
//
// Errors:
//   - core.ErrBookNotFound if book is not in the catalog
//   - core.ErrBookOnLoan if any copy is on loan
func (m *Model) DeleteBook(book core.Book) (core.Book, error) {
	pos := m.bookPosition(book.ID())
	if pos < 0 {
		return core.Book{}, core.ErrBookNotFound
	}

	current := m.books[pos]
	if current.IsLoaned() {
		return core.Book{}, core.ErrBookOnLoan
	}

	m.books = append(m.books[:pos:pos], m.books[pos+1:]...)

	return current, nil
}

// DeletePerson removes person from the registry.
//
// Errors:
//   - core.ErrPersonNotFound if person is not registered
//   - core.ErrPersonHasActiveLoans if person still holds a copy of any book
func (m *Model) DeletePerson(person core.Person) (core.Person, error) {
	pos := m.personPosition(person.ID())
	if pos < 0 {
		return core.Person{}, core.ErrPersonNotFound
	}

	if m.HasActiveLoans(person) {
		return core.Person{}, core.ErrPersonHasActiveLoans
	}

	current := m.persons[pos]
	m.persons = append(m.persons[:pos:pos], m.persons[pos+1:]...)

	return current, nil
}

// HasActiveLoans reports whether person holds a copy of any book.
func (m *Model) HasActiveLoans(person core.Person) bool {
	for _, book := range m.books {
		if book.IsLoanedTo(person.ID()) {
			return true
		}
	}

	return false
}

// BooksLoanedTo returns the books of which person holds a copy, in catalog order.
func (m *Model) BooksLoanedTo(person core.Person) []core.Book {
	books := make([]core.Book, 0)
	for _, book := range m.books {
		if book.IsLoanedTo(person.ID()) {
			books = append(books, book)
		}
	}

	return books
}
