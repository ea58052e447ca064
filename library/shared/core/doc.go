// Package core contains the domain model for the example:
// Book loans in a small library.
//
// It holds validated value types (Title, Author, Name, Quantity, ReturnDate, Index),
// the Book and Person entities and the Loan edge that connects them.
// A Book owns its loans: each Loan references the loanee by a stable PersonID and carries
// its own ReturnDate, so several patrons can hold copies of the same Book at once.
//
// Nothing in this package performs IO or logging. Every rule violation is reported as one of the
// sentinel errors in errors.go, so callers can branch on the failure kind with errors.Is.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
