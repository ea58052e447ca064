package core

import (
	"regexp"
)

// NameConstraints describes the format rule for a person's Name.
const NameConstraints = "names should only contain alphanumeric characters and spaces, and should not be blank"

var namePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is the name of a Person. Names are unique among registered persons.
type Name struct {
	value string
}

// BuildName validates raw and returns it as a Name.
func BuildName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, IllegalValue(FieldName, NameConstraints)
	}

	return Name{value: raw}, nil
}

// IsValidName reports whether raw satisfies NameConstraints.
func IsValidName(raw string) bool {
	return namePattern.MatchString(raw)
}

func (n Name) String() string {
	return n.value
}

// Equals compares two names exactly.
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}
