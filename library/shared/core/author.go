package core

import (
	"regexp"
)

// AuthorConstraints describes the format rule for an Author.
const AuthorConstraints = "author names should start with a letter and only contain letters, digits, spaces and the characters . , ' -"

var authorPattern = regexp.MustCompile(`^\p{L}[\p{L}\p{N} .,'\-]*$`)

// Author is the author of a Book.
type Author struct {
	value string
}

// BuildAuthor validates raw and returns it as an Author.
func BuildAuthor(raw string) (Author, error) {
	if !IsValidAuthor(raw) {
		return Author{}, IllegalValue(FieldAuthor, AuthorConstraints)
	}

	return Author{value: raw}, nil
}

// IsValidAuthor reports whether raw satisfies AuthorConstraints.
func IsValidAuthor(raw string) bool {
	return authorPattern.MatchString(raw)
}

func (a Author) String() string {
	return a.value
}

// Equals compares two authors exactly.
func (a Author) Equals(other Author) bool {
	return a.value == other.value
}
