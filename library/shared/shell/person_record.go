package shell

import (
	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

// PersonRecord is the persisted shape of a Person. Loans are stored with the books.
type PersonRecord struct {
	Name *string `json:"name"`
}

// PersonRecordFrom converts a Person to its PersonRecord.
func PersonRecordFrom(person core.Person) PersonRecord {
	name := person.Name().String()

	return PersonRecord{Name: &name}
}

// PersonFrom validates a PersonRecord and converts it to a Person with a fresh identifier.
func PersonFrom(record PersonRecord) (core.Person, error) {
	if record.Name == nil {
		return core.Person{}, missingField(core.FieldName)
	}

	name, err := core.BuildName(*record.Name)
	if err != nil {
		return core.Person{}, err
	}

	return core.BuildPerson(name), nil
}
