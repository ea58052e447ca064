// Command bookface manages a small library's books, persons and loans.
//
// The library is kept as JSON documents in a data directory and saved after every change.
// Without arguments the book listing is printed. Actions:
//
//	list
//	loans PERSON_INDEX
//	add-book TITLE AUTHOR QUANTITY
//	add-person NAME
//	lend PERSON_INDEX BOOK_INDEX [yyyy-MM-dd]
//	return PERSON_INDEX BOOK_INDEX
//	delete-book BOOK_INDEX
//	delete-person PERSON_INDEX
//
// Configuration comes from BOOKFACE_* environment variables and can be overridden by flags.
package main
