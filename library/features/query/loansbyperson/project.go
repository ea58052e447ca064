package loansbyperson

import (
	"cmp"
	"slices"
	"time"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// ProjectPersonLoans collects the loans person holds among books, earliest due date first.
// Loans with the same due date are ordered by title.
func ProjectPersonLoans(person core.Person, books []core.Book, asOf time.Time) PersonLoans {
	today := core.ReturnDateOf(asOf)

	type dueLoan struct {
		info LoanInfo
		due  core.ReturnDate
	}

	held := make([]dueLoan, 0)

	for _, book := range books {
		for _, loan := range book.Loans() {
			if loan.LoaneeID() != person.ID() {
				continue
			}

			held = append(held, dueLoan{
				info: LoanInfo{
					Title:      book.Title().String(),
					Author:     book.Author().String(),
					ReturnDate: loan.ReturnDate().String(),
					Overdue:    loan.ReturnDate().Before(today),
				},
				due: loan.ReturnDate(),
			})
		}
	}

	slices.SortFunc(held, func(a, b dueLoan) int {
		if c := a.due.Time().Compare(b.due.Time()); c != 0 {
			return c
		}

		return cmp.Compare(a.info.Title, b.info.Title)
	})

	result := PersonLoans{
		Name:  person.Name().String(),
		Loans: make([]LoanInfo, 0, len(held)),
	}

	for _, loan := range held {
		result.Loans = append(result.Loans, loan.info)

		if loan.info.Overdue {
			result.OverdueCount++
		}
	}

	result.Count = len(result.Loans)

	return result
}
