package core

import (
	"github.com/google/uuid"
)

// Loan is the edge between a Book and the Person holding one of its copies.
type Loan struct {
	loaneeID   uuid.UUID
	loaneeName Name
	returnDate ReturnDate
}

// LoaneeID returns the identifier of the Person holding the copy.
func (l Loan) LoaneeID() uuid.UUID {
	return l.loaneeID
}

// LoaneeName returns the name of the Person holding the copy.
func (l Loan) LoaneeName() Name {
	return l.loaneeName
}

// ReturnDate returns the day the copy is due back.
func (l Loan) ReturnDate() ReturnDate {
	return l.returnDate
}

// BuildLoan creates the loan edge for loanee, due back at returnDate.
func BuildLoan(loanee Person, returnDate ReturnDate) Loan {
	return Loan{loaneeID: loanee.ID(), loaneeName: loanee.Name(), returnDate: returnDate}
}
