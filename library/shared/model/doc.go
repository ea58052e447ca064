// Package model holds the in-memory library for the example:
// Book loans in a small library.
//
// Model owns the book and person collections and is the only place where loan state changes.
// Its loan registry operations (LoanBookTo, ReturnLoanedBook, DeleteBook, DeletePerson, AddBook,
// AddPerson) validate everything before they mutate, so a failed operation leaves the Model untouched.
//
// Entities are stored by value and referenced across collections by their uuid, never by pointer.
// Callers always receive copies.
package model
