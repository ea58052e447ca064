package core

import (
	"github.com/google/uuid"
)

// Person is a registered patron of the library.
// Loans are not stored on the Person; a Book records which persons hold a copy of it.
type Person struct {
	id   uuid.UUID
	name Name
}

// BuildPerson creates a Person with a freshly generated identifier.
func BuildPerson(name Name) Person {
	return Person{
		id:   uuid.New(),
		name: name,
	}
}

// ID returns the stable identifier used by loans to reference this Person.
func (p Person) ID() uuid.UUID {
	return p.id
}

// Name returns the person's name.
func (p Person) Name() Name {
	return p.name
}

// IsSamePerson reports whether both persons have the same name.
func (p Person) IsSamePerson(other Person) bool {
	return p.name.Equals(other.name)
}
