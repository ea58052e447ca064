package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

func Test_Book_LoanTo_ThenReturnBook_RestoresState(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 2)
	alice := givenPerson(t, "Alice")
	returnDate := givenReturnDate(t, "2024-05-01")

	// act
	require.NoError(t, book.LoanTo(alice, returnDate))
	loanedQuantity := book.Quantity().Int()
	require.NoError(t, book.ReturnBook(alice))

	// assert
	assert.Equal(t, 1, loanedQuantity)
	assert.Equal(t, 2, book.Quantity().Int())
	assert.False(t, book.IsLoaned())
	assert.Empty(t, book.Loans())
	assert.Equal(t, "Available", book.LoanStatus())
}

func Test_Book_LoanTo_OutOfCopies_LeavesBookUnchanged(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 1)
	alice := givenPerson(t, "Alice")
	bob := givenPerson(t, "Bob")
	returnDate := givenReturnDate(t, "2024-05-01")
	require.NoError(t, book.LoanTo(alice, returnDate))

	// act
	err := book.LoanTo(bob, returnDate)

	// assert
	assert.ErrorIs(t, err, core.ErrOutOfCopies)
	assert.Equal(t, 0, book.Quantity().Int())
	assert.Equal(t, 1, book.TotalCopies())
	assert.True(t, book.IsLoanedTo(alice.ID()))
	assert.False(t, book.IsLoanedTo(bob.ID()))
}

func Test_Book_LoanTo_SamePersonTwice_IsRejected(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 3)
	alice := givenPerson(t, "Alice")
	returnDate := givenReturnDate(t, "2024-05-01")
	require.NoError(t, book.LoanTo(alice, returnDate))

	// act
	err := book.LoanTo(alice, returnDate)

	// assert
	assert.ErrorIs(t, err, core.ErrAlreadyLoanedToPerson)
	assert.Equal(t, 2, book.Quantity().Int())
	assert.Len(t, book.Loans(), 1)
}

func Test_Book_LoanTo_WithoutReturnDate_IsRejected(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 1)

	// act
	err := book.LoanTo(givenPerson(t, "Alice"), core.ReturnDate{})

	// assert
	assertIllegalValue(t, err, core.FieldReturnDate)
	assert.False(t, book.IsLoaned())
}

func Test_Book_ReturnBook_NotHeldByPerson(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 1)

	// act
	err := book.ReturnBook(givenPerson(t, "Alice"))

	// assert
	assert.ErrorIs(t, err, core.ErrNotOnLoan)
	assert.Equal(t, 1, book.Quantity().Int())
}

func Test_Book_CopiesDoNotShareLoans(t *testing.T) {
	// arrange
	original := givenBook(t, "The Hobbit", "JRR Tolkien", 2)
	copied := original

	// act
	require.NoError(t, copied.LoanTo(givenPerson(t, "Alice"), givenReturnDate(t, "2024-05-01")))

	// assert
	assert.False(t, original.IsLoaned())
	assert.Equal(t, 2, original.Quantity().Int())
	assert.True(t, copied.IsLoaned())
}

func Test_Book_LoanStatus_SortsLoaneeNames(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 3)
	returnDate := givenReturnDate(t, "2024-05-01")
	require.NoError(t, book.LoanTo(givenPerson(t, "Charlie"), returnDate))
	require.NoError(t, book.LoanTo(givenPerson(t, "Alice"), returnDate))

	// act
	status := book.LoanStatus()

	// assert
	assert.Equal(t, "Loaned to Alice, Charlie", status)
}

func Test_Book_NextReturnDate_IsEarliestDueDate(t *testing.T) {
	// arrange
	book := givenBook(t, "The Hobbit", "JRR Tolkien", 3)
	require.NoError(t, book.LoanTo(givenPerson(t, "Alice"), givenReturnDate(t, "2024-05-10")))
	require.NoError(t, book.LoanTo(givenPerson(t, "Bob"), givenReturnDate(t, "2024-05-02")))

	// act
	next, ok := book.NextReturnDate()

	// assert
	assert.True(t, ok)
	assert.Equal(t, "2024-05-02", next.String())
}

func Test_Book_Equality(t *testing.T) {
	// arrange
	hobbit := givenBook(t, "The Hobbit", "JRR Tolkien", 1)
	sameTitleOtherAuthor := givenBook(t, "The Hobbit", "Someone Else", 1)
	sameTitleSameAuthor := givenBook(t, "The Hobbit", "JRR Tolkien", 5)

	// assert
	assert.True(t, hobbit.IsSameBook(sameTitleOtherAuthor))
	assert.False(t, hobbit.Equals(sameTitleOtherAuthor))
	assert.True(t, hobbit.Equals(sameTitleSameAuthor))
}

func Test_ReconstituteBook(t *testing.T) {
	// arrange
	title, _ := core.BuildTitle("The Hobbit")
	author, _ := core.BuildAuthor("JRR Tolkien")
	three, _ := core.BuildQuantity(3)
	one, _ := core.BuildQuantity(1)
	zero, _ := core.BuildQuantity(0)
	alice := givenPerson(t, "Alice")
	bob := givenPerson(t, "Bob")
	returnDate := givenReturnDate(t, "2024-05-01")

	t.Run("available copies exclude loans", func(t *testing.T) {
		book, err := core.ReconstituteBook(title, author, three, core.BuildLoan(alice, returnDate))

		assert.NoError(t, err)
		assert.Equal(t, 2, book.Quantity().Int())
		assert.Equal(t, 3, book.TotalCopies())
		assert.True(t, book.IsLoanedTo(alice.ID()))
	})

	t.Run("no copies owned", func(t *testing.T) {
		_, err := core.ReconstituteBook(title, author, zero)

		assertIllegalValue(t, err, core.FieldQuantity)
	})

	t.Run("more loans than copies", func(t *testing.T) {
		_, err := core.ReconstituteBook(title, author, one, core.BuildLoan(alice, returnDate), core.BuildLoan(bob, returnDate))

		assertIllegalValue(t, err, core.FieldLoans)
	})

	t.Run("duplicate loanee", func(t *testing.T) {
		_, err := core.ReconstituteBook(title, author, three, core.BuildLoan(alice, returnDate), core.BuildLoan(alice, returnDate))

		assertIllegalValue(t, err, core.FieldLoans)
	})

	t.Run("loan without return date", func(t *testing.T) {
		_, err := core.ReconstituteBook(title, author, three, core.BuildLoan(alice, core.ReturnDate{}))

		assertIllegalValue(t, err, core.FieldLoans)
	})
}

func givenBook(t *testing.T, title, author string, quantity int) core.Book {
	t.Helper()

	bookTitle, err := core.BuildTitle(title)
	require.NoError(t, err)
	bookAuthor, err := core.BuildAuthor(author)
	require.NoError(t, err)
	bookQuantity, err := core.BuildQuantity(quantity)
	require.NoError(t, err)

	return core.BuildBook(bookTitle, bookAuthor, bookQuantity)
}

func givenPerson(t *testing.T, name string) core.Person {
	t.Helper()

	personName, err := core.BuildName(name)
	require.NoError(t, err)

	return core.BuildPerson(personName)
}

func givenReturnDate(t *testing.T, raw string) core.ReturnDate {
	t.Helper()

	returnDate, err := core.ParseReturnDate(raw)
	require.NoError(t, err)

	return returnDate
}
