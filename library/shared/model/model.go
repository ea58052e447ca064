package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// BookPredicate selects the books shown in the filtered book list.
type BookPredicate func(book core.Book) bool

// PersonPredicate selects the persons shown in the filtered person list.
type PersonPredicate func(person core.Person) bool

// ShowAllBooks is the BookPredicate that selects every book.
func ShowAllBooks(core.Book) bool { return true }

// ShowAllPersons is the PersonPredicate that selects every person.
func ShowAllPersons(core.Person) bool { return true }

// Model is the in-memory library: the catalog, the registered persons and the loan registry on top of them.
// It is not safe for concurrent use.
type Model struct {
	books        []core.Book
	persons      []core.Person
	bookFilter   BookPredicate
	personFilter PersonPredicate
}

// New creates an empty Model.
func New() *Model {
	return &Model{
		books:        make([]core.Book, 0),
		persons:      make([]core.Person, 0),
		bookFilter:   ShowAllBooks,
		personFilter: ShowAllPersons,
	}
}

// FromCollections builds a Model from already reconstructed entities, e.g. after loading a snapshot.
// Errors name the one-based position of the rejected person or book.
//
// Errors:
//   - core.ErrDuplicatePerson if two persons share a name
//   - core.ErrDuplicateBook if two books share a title
//   - core.ErrPersonNotFound if a loan references a person that is not in persons
func FromCollections(persons []core.Person, books []core.Book) (*Model, error) {
	m := New()

	for i, person := range persons {
		if err := m.AddPerson(person); err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}
	}

	for i, book := range books {
		for _, loan := range book.Loans() {
			if m.personPosition(loan.LoaneeID()) < 0 {
				return nil, fmt.Errorf("book %d: %w", i+1, core.ErrPersonNotFound)
			}
		}

		if err := m.AddBook(book); err != nil {
			return nil, fmt.Errorf("book %d: %w", i+1, err)
		}
	}

	return m, nil
}

// Books returns every book in catalog order.
func (m *Model) Books() []core.Book {
	books := make([]core.Book, len(m.books))
	copy(books, m.books)

	return books
}

// Persons returns every registered person in registration order.
func (m *Model) Persons() []core.Person {
	persons := make([]core.Person, len(m.persons))
	copy(persons, m.persons)

	return persons
}

// FilteredBooks returns the books selected by the current book filter.
func (m *Model) FilteredBooks() []core.Book {
	books := make([]core.Book, 0, len(m.books))
	for _, book := range m.books {
		if m.bookFilter(book) {
			books = append(books, book)
		}
	}

	return books
}

// FilteredPersons returns the persons selected by the current person filter.
func (m *Model) FilteredPersons() []core.Person {
	persons := make([]core.Person, 0, len(m.persons))
	for _, person := range m.persons {
		if m.personFilter(person) {
			persons = append(persons, person)
		}
	}

	return persons
}

// UpdateFilteredBookList replaces the book filter. A nil predicate shows all books.
func (m *Model) UpdateFilteredBookList(predicate BookPredicate) {
	if predicate == nil {
		predicate = ShowAllBooks
	}

	m.bookFilter = predicate
}

// UpdateFilteredPersonList replaces the person filter. A nil predicate shows all persons.
func (m *Model) UpdateFilteredPersonList(predicate PersonPredicate) {
	if predicate == nil {
		predicate = ShowAllPersons
	}

	m.personFilter = predicate
}

// FilteredBookAt resolves index against the filtered book list.
// It returns core.ErrBookNotFound if the index is out of range.
func (m *Model) FilteredBookAt(index core.Index) (core.Book, error) {
	books := m.FilteredBooks()
	if index.ZeroBased() >= len(books) {
		return core.Book{}, core.ErrBookNotFound
	}

	return books[index.ZeroBased()], nil
}

// FilteredPersonAt resolves index against the filtered person list.
// It returns core.ErrPersonNotFound if the index is out of range.
func (m *Model) FilteredPersonAt(index core.Index) (core.Person, error) {
	persons := m.FilteredPersons()
	if index.ZeroBased() >= len(persons) {
		return core.Person{}, core.ErrPersonNotFound
	}

	return persons[index.ZeroBased()], nil
}

// BookByID returns the current state of the book with the given ID.
func (m *Model) BookByID(id uuid.UUID) (core.Book, bool) {
	pos := m.bookPosition(id)
	if pos < 0 {
		return core.Book{}, false
	}

	return m.books[pos], true
}

// PersonByID returns the person with the given ID.
func (m *Model) PersonByID(id uuid.UUID) (core.Person, bool) {
	pos := m.personPosition(id)
	if pos < 0 {
		return core.Person{}, false
	}

	return m.persons[pos], true
}

// HasBook reports whether a book with the same title is in the catalog.
func (m *Model) HasBook(book core.Book) bool {
	for _, existing := range m.books {
		if existing.IsSameBook(book) {
			return true
		}
	}

	return false
}

// HasPerson reports whether a person with the same name is registered.
func (m *Model) HasPerson(person core.Person) bool {
	for _, existing := range m.persons {
		if existing.IsSamePerson(person) {
			return true
		}
	}

	return false
}

func (m *Model) bookPosition(id uuid.UUID) int {
	for i, book := range m.books {
		if book.ID() == id {
			return i
		}
	}

	return -1
}

func (m *Model) personPosition(id uuid.UUID) int {
	for i, person := range m.persons {
		if person.ID() == id {
			return i
		}
	}

	return -1
}
