// Package loansbyperson implements the Loans By Person query use case.
//
// It returns the books the person at a position of the displayed person list currently holds,
// ordered by due date, and flags loans that are overdue at the query's reference time.
package loansbyperson
