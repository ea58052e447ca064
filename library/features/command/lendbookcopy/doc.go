// Package lendbookcopy implements the Lend Book Copy use case.
//
// A copy of a book from the displayed book list is lent to a person from the displayed person list.
// Both are addressed by their one-based position in those lists. The loan is due on the given return
// date, or one loan period after the command occurred when no date is given.
package lendbookcopy
