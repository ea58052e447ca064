package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
	. "github.com/AntonStoeckl/bookface-go/testutil/helper" //nolint:revive
)

func Test_BookFrom_BookRecordFrom_PreservesBook(t *testing.T) {
	// arrange
	alice := FixturePerson(t, "Alice")
	bob := FixturePerson(t, "Bob")
	hobbit := FixtureBook(t, "The Hobbit", "JRR Tolkien", 3)
	library := GivenLibraryWith(t, []core.Person{alice, bob}, []core.Book{hobbit})
	hobbit = GivenBookLoanedTo(t, library, hobbit, FixtureReturnDate(t, "2024-05-10"), alice)
	hobbit = GivenBookLoanedTo(t, library, hobbit, FixtureReturnDate(t, "2024-05-02"), bob)

	// act
	record := shell.BookRecordFrom(hobbit)
	restored, err := shell.BookFrom(record, lookupOf(alice, bob))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, *record.Quantity, "record stores the copies owned")
	assert.Equal(t, "2024-05-02", *record.ReturnDate, "record stores the earliest due date")
	assert.True(t, restored.Equals(hobbit))
	assert.Equal(t, hobbit.Quantity(), restored.Quantity())
	assert.Equal(t, hobbit.TotalCopies(), restored.TotalCopies())
	assert.Equal(t, hobbit.LoanStatus(), restored.LoanStatus())
	assert.Equal(t, hobbit.Loans(), restored.Loans())
}

func Test_BookFrom_BookRecordFrom_AvailableBook(t *testing.T) {
	// arrange
	dune := FixtureBook(t, "Dune", "Frank Herbert", 2)

	// act
	record := shell.BookRecordFrom(dune)
	restored, err := shell.BookFrom(record, lookupOf())

	// assert
	require.NoError(t, err)
	assert.False(t, *record.IsLoaned)
	assert.Equal(t, "", *record.ReturnDate)
	assert.Nil(t, record.Loans)
	assert.True(t, restored.Equals(dune))
	assert.Equal(t, 2, restored.Quantity().Int())
}

func Test_BookFrom_ValidationErrors(t *testing.T) {
	alice := FixturePerson(t, "Alice")
	lookup := lookupOf(alice)

	tests := []struct {
		name          string
		record        shell.BookRecord
		expectedField string
	}{
		{
			name:          "missing title",
			record:        shell.BookRecord{Author: ptr("Y"), Quantity: ptr(1)},
			expectedField: core.FieldTitle,
		},
		{
			name:          "invalid title is reported before invalid author",
			record:        shell.BookRecord{Title: ptr(" X"), Author: ptr("1"), Quantity: ptr(1)},
			expectedField: core.FieldTitle,
		},
		{
			name:          "missing author",
			record:        shell.BookRecord{Title: ptr("X"), Quantity: ptr(1)},
			expectedField: core.FieldAuthor,
		},
		{
			name:          "zero quantity",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(0)},
			expectedField: core.FieldQuantity,
		},
		{
			name:          "missing quantity",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y")},
			expectedField: core.FieldQuantity,
		},
		{
			name:          "invalid quantity is reported before invalid return date",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(-2), IsLoaned: ptr(true), ReturnDate: ptr("nope")},
			expectedField: core.FieldQuantity,
		},
		{
			name: "loaned with impossible month",
			record: shell.BookRecord{
				Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("2023-13-01"),
				Loans: []shell.LoanRecord{{Loanee: ptr("Alice"), ReturnDate: ptr("2023-13-01")}},
			},
			expectedField: core.FieldReturnDate,
		},
		{
			name:          "loaned with impossible day",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("2023-02-30")},
			expectedField: core.FieldReturnDate,
		},
		{
			name:          "loaned without return date",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr(" ")},
			expectedField: core.FieldReturnDate,
		},
		{
			name:          "not loaned but with return date",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(false), ReturnDate: ptr("2024-05-01")},
			expectedField: core.FieldReturnDate,
		},
		{
			name:          "loaned without loans",
			record:        shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-01")},
			expectedField: core.FieldLoans,
		},
		{
			name: "return date is not the earliest loan due date",
			record: shell.BookRecord{
				Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("1999-01-01"),
				Loans: []shell.LoanRecord{{Loanee: ptr("Alice"), ReturnDate: ptr("2030-01-01")}},
			},
			expectedField: core.FieldReturnDate,
		},
		{
			name: "loans without loaned flag",
			record: shell.BookRecord{
				Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1),
				Loans: []shell.LoanRecord{{Loanee: ptr("Alice"), ReturnDate: ptr("2024-05-01")}},
			},
			expectedField: core.FieldLoans,
		},
		{
			name: "unknown loanee",
			record: shell.BookRecord{
				Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-01"),
				Loans: []shell.LoanRecord{{Loanee: ptr("Mallory"), ReturnDate: ptr("2024-05-01")}},
			},
			expectedField: core.FieldLoans,
		},
		{
			name: "duplicate loanee",
			record: shell.BookRecord{
				Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(3), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-01"),
				Loans: []shell.LoanRecord{
					{Loanee: ptr("Alice"), ReturnDate: ptr("2024-05-01")},
					{Loanee: ptr("Alice"), ReturnDate: ptr("2024-05-03")},
				},
			},
			expectedField: core.FieldLoans,
		},
		{
			name: "loan with invalid date",
			record: shell.BookRecord{
				Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-01"),
				Loans: []shell.LoanRecord{{Loanee: ptr("Alice"), ReturnDate: ptr("2024-02-30")}},
			},
			expectedField: core.FieldLoans,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			_, err := shell.BookFrom(tt.record, lookup)

			// assert
			assert.ErrorIs(t, err, core.ErrIllegalValue)
			field, ok := core.IllegalValueField(err)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedField, field)
		})
	}
}

func Test_BookFrom_ReturnDateMustBeEarliestLoanDueDate(t *testing.T) {
	// arrange
	lookup := lookupOf(FixturePerson(t, "Alice"), FixturePerson(t, "Bob"))
	loans := []shell.LoanRecord{
		{Loanee: ptr("Alice"), ReturnDate: ptr("2024-05-10")},
		{Loanee: ptr("Bob"), ReturnDate: ptr("2024-05-02")},
	}
	earliest := shell.BookRecord{
		Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(2), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-02"), Loans: loans,
	}
	latest := shell.BookRecord{
		Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(2), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-10"), Loans: loans,
	}

	// act
	book, err := shell.BookFrom(earliest, lookup)
	_, latestErr := shell.BookFrom(latest, lookup)

	// assert
	require.NoError(t, err)
	next, ok := book.NextReturnDate()
	assert.True(t, ok)
	assert.Equal(t, "2024-05-02", next.String())

	field, ok := core.IllegalValueField(latestErr)
	assert.True(t, ok)
	assert.Equal(t, core.FieldReturnDate, field)
}

// A loaned record in the plain {title, author, quantity, isLoaned, returnDate} shape carries no loan edges,
// so its loanees cannot be restored.
func Test_BookFrom_LoanedRecordWithoutLoanEdgesIsRejected(t *testing.T) {
	// arrange
	record := shell.BookRecord{
		Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(1), IsLoaned: ptr(true), ReturnDate: ptr("2024-05-01"),
	}

	// act
	_, err := shell.BookFrom(record, lookupOf(FixturePerson(t, "Alice")))

	// assert
	assert.ErrorIs(t, err, core.ErrIllegalValue)
	field, ok := core.IllegalValueField(err)
	assert.True(t, ok)
	assert.Equal(t, core.FieldLoans, field)
	assert.ErrorContains(t, err, "a loaned book must list its loans")
}

func Test_BookFrom_MissingLoanedFlagCountsAsNotLoaned(t *testing.T) {
	// arrange
	record := shell.BookRecord{Title: ptr("X"), Author: ptr("Y"), Quantity: ptr(2)}

	// act
	book, err := shell.BookFrom(record, lookupOf())

	// assert
	require.NoError(t, err)
	assert.False(t, book.IsLoaned())
	assert.Equal(t, 2, book.Quantity().Int())
}

func Test_PersonFrom(t *testing.T) {
	// act
	person, err := shell.PersonFrom(shell.PersonRecordFrom(FixturePerson(t, "Alice")))
	_, missingErr := shell.PersonFrom(shell.PersonRecord{})
	_, invalidErr := shell.PersonFrom(shell.PersonRecord{Name: ptr("Al!ce")})

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Alice", person.Name().String())

	for _, err := range []error{missingErr, invalidErr} {
		field, ok := core.IllegalValueField(err)
		assert.True(t, ok)
		assert.Equal(t, core.FieldName, field)
	}
}

func lookupOf(persons ...core.Person) shell.PersonLookup {
	return func(name core.Name) (core.Person, bool) {
		for _, person := range persons {
			if person.Name().Equals(name) {
				return person, true
			}
		}

		return core.Person{}, false
	}
}

func ptr[T any](v T) *T {
	return &v
}
