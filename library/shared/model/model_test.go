package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	. "github.com/AntonStoeckl/bookface-go/testutil/helper" //nolint:revive
)

func Test_Model_FilteredBookAt_ResolvesAgainstFilteredList(t *testing.T) {
	// arrange
	library := GivenLibraryWith(t, nil, []core.Book{
		FixtureBook(t, "Dune", "Frank Herbert", 1),
		FixtureBook(t, "Emma", "Jane Austen", 1),
		FixtureBook(t, "Dracula", "Bram Stoker", 1),
	})
	library.UpdateFilteredBookList(func(book core.Book) bool {
		return strings.HasPrefix(book.Title().String(), "D")
	})
	second, _ := core.IndexFromOneBased(2)
	third, _ := core.IndexFromOneBased(3)

	// act
	book, err := library.FilteredBookAt(second)
	_, outOfRangeErr := library.FilteredBookAt(third)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "Dracula", book.Title().String())
	assert.ErrorIs(t, outOfRangeErr, core.ErrBookNotFound)
}

func Test_Model_UpdateFilteredPersonList_NilShowsAll(t *testing.T) {
	// arrange
	library := GivenLibraryWith(t, []core.Person{FixturePerson(t, "Alice"), FixturePerson(t, "Bob")}, nil)
	library.UpdateFilteredPersonList(func(person core.Person) bool {
		return person.Name().String() == "Bob"
	})
	first, _ := core.IndexFromOneBased(1)

	// act
	filtered, err := library.FilteredPersonAt(first)
	library.UpdateFilteredPersonList(nil)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "Bob", filtered.Name().String())
	assert.Len(t, library.FilteredPersons(), 2)
}

func Test_Model_FromCollections_Errors(t *testing.T) {
	// arrange
	alice := FixturePerson(t, "Alice")
	bob := FixturePerson(t, "Bob")
	dune := FixtureBook(t, "Dune", "Frank Herbert", 1)
	loanedToBob := model.New()
	_ = loanedToBob.AddPerson(bob)
	_ = loanedToBob.AddBook(dune)
	dune = GivenBookLoanedTo(t, loanedToBob, dune, FixtureReturnDate(t, "2024-05-01"), bob)

	tests := []struct {
		name     string
		persons  []core.Person
		books    []core.Book
		wantErr  error
		wantText string
	}{
		{
			name:     "duplicate person",
			persons:  []core.Person{alice, FixturePerson(t, "Alice")},
			wantErr:  core.ErrDuplicatePerson,
			wantText: "person 2",
		},
		{
			name:     "duplicate book",
			books:    []core.Book{FixtureBook(t, "Emma", "Jane Austen", 1), FixtureBook(t, "Emma", "Jane Austen", 2)},
			wantErr:  core.ErrDuplicateBook,
			wantText: "book 2",
		},
		{
			name:     "loanee not registered",
			persons:  []core.Person{alice},
			books:    []core.Book{dune},
			wantErr:  core.ErrPersonNotFound,
			wantText: "book 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			_, err := model.FromCollections(tt.persons, tt.books)

			// assert
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, tt.wantText)
		})
	}
}

func Test_Model_Books_ReturnsCopy(t *testing.T) {
	// arrange
	library := GivenLibraryWith(t, nil, []core.Book{FixtureBook(t, "Dune", "Frank Herbert", 1)})

	// act
	books := library.Books()
	books[0] = FixtureBook(t, "Other", "Someone", 1)

	// assert
	assert.Equal(t, "Dune", library.Books()[0].Title().String())
}
