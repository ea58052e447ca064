// Package returnbookcopy implements the Return Book Copy use case.
//
// The person at the given position of the displayed person list hands back their copy of the book
// at the given position of the displayed book list. After a return the book list shows all books again.
package returnbookcopy
