package listbooks

import (
	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// ProjectBookList turns the displayed books into listing rows, keeping their order.
func ProjectBookList(books []core.Book) BookList {
	rows := make([]BookRow, 0, len(books))

	for i, book := range books {
		row := BookRow{
			Position:    i + 1,
			Title:       book.Title().String(),
			Author:      book.Author().String(),
			Available:   book.Quantity().Int(),
			TotalCopies: book.TotalCopies(),
			Status:      book.LoanStatus(),
		}

		if next, ok := book.NextReturnDate(); ok {
			row.NextReturnDate = next.String()
		}

		rows = append(rows, row)
	}

	return BookList{
		Books: rows,
		Count: len(rows),
	}
}
