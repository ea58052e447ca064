// Package addbook implements the Add Book use case.
//
// A book enters the catalog with its title, author and the number of copies the library owns.
// Titles are unique across the catalog, and a new book needs at least one copy.
package addbook
