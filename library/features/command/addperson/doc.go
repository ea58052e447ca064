// Package addperson implements the Add Person use case: registering a person who can borrow books.
// Names are unique across the registry.
package addperson
