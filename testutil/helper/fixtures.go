package helper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// FixtureBook builds a Book without loans.
func FixtureBook(t *testing.T, title string, author string, quantity int) core.Book {
	t.Helper()

	bookTitle, err := core.BuildTitle(title)
	require.NoError(t, err)

	bookAuthor, err := core.BuildAuthor(author)
	require.NoError(t, err)

	bookQuantity, err := core.BuildQuantity(quantity)
	require.NoError(t, err)

	return core.BuildBook(bookTitle, bookAuthor, bookQuantity)
}

// FixturePerson builds a Person.
func FixturePerson(t *testing.T, name string) core.Person {
	t.Helper()

	personName, err := core.BuildName(name)
	require.NoError(t, err)

	return core.BuildPerson(personName)
}

// FixtureReturnDate parses a yyyy-MM-dd date.
func FixtureReturnDate(t *testing.T, raw string) core.ReturnDate {
	t.Helper()

	returnDate, err := core.ParseReturnDate(raw)
	require.NoError(t, err)

	return returnDate
}

// FixedClock returns a fixed point in time for deterministic due dates.
func FixedClock() time.Time {
	return time.Date(2024, time.April, 17, 10, 30, 0, 0, time.UTC)
}

// GivenLibraryWith creates a Model holding the given persons and books.
func GivenLibraryWith(t *testing.T, persons []core.Person, books []core.Book) *model.Model {
	t.Helper()

	library, err := model.FromCollections(persons, books)
	require.NoError(t, err)

	return library
}

// GivenBookLoanedTo loans book to each of the loanees through the Model and returns the updated book.
func GivenBookLoanedTo(
	t *testing.T,
	library *model.Model,
	book core.Book,
	returnDate core.ReturnDate,
	loanees ...core.Person,
) core.Book {
	t.Helper()

	var err error
	for _, loanee := range loanees {
		book, err = library.LoanBookTo(loanee, book, returnDate)
		require.NoError(t, err)
	}

	return book
}

// GivenRepository creates a shell.Repository over store that retries failed saves without noticeable delay.
func GivenRepository(t *testing.T, store *SnapshotStoreSpy) shell.Repository {
	t.Helper()

	return shell.NewRepository(store, shell.WithSaveRetryOptions(shell.WithBaseDelay(time.Millisecond)))
}

// ReloadLibrary loads the library last saved into store.
func ReloadLibrary(t *testing.T, store *SnapshotStoreSpy) *model.Model {
	t.Helper()

	library, err := shell.NewRepository(store).Load(context.Background())
	require.NoError(t, err)

	return library
}
