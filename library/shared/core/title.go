package core

import (
	"regexp"
)

// TitleConstraints describes the format rule for a Title.
const TitleConstraints = "titles can take any printable characters, should not be blank and should not start with whitespace"

var titlePattern = regexp.MustCompile(`^\S[^\r\n]*$`)

// Title is the title of a Book. Two Books with the same Title are the same book.
type Title struct {
	value string
}

// BuildTitle validates raw and returns it as a Title.
func BuildTitle(raw string) (Title, error) {
	if !IsValidTitle(raw) {
		return Title{}, IllegalValue(FieldTitle, TitleConstraints)
	}

	return Title{value: raw}, nil
}

// IsValidTitle reports whether raw satisfies TitleConstraints.
func IsValidTitle(raw string) bool {
	return titlePattern.MatchString(raw)
}

func (t Title) String() string {
	return t.value
}

// Equals compares two titles exactly.
func (t Title) Equals(other Title) bool {
	return t.value == other.value
}
