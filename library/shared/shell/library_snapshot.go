package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/snapshotstore"
)

const (
	// BooksDocumentName is the name of the snapshot document holding the book records.
	BooksDocumentName = "books"

	// PersonsDocumentName is the name of the snapshot document holding the person records.
	PersonsDocumentName = "persons"

	jsonIndent = "  "
)

// ErrInvalidRecord is returned when a persisted record fails validation. It is joined with the
// record's core.IllegalValueError (or duplicate error) and names the document and position.
var ErrInvalidRecord = errors.New("invalid record")

var prettyJSON = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// StorableDocumentsFrom serializes the persons and the books of the library into their snapshot documents.
func StorableDocumentsFrom(library *model.Model) (snapshotstore.StorableDocuments, error) {
	persons := library.Persons()
	personRecords := make([]PersonRecord, 0, len(persons))
	for _, person := range persons {
		personRecords = append(personRecords, PersonRecordFrom(person))
	}

	books := library.Books()
	bookRecords := make([]BookRecord, 0, len(books))
	for _, book := range books {
		bookRecords = append(bookRecords, BookRecordFrom(book))
	}

	personsDocument, err := storableDocumentFrom(PersonsDocumentName, personRecords)
	if err != nil {
		return nil, err
	}

	booksDocument, err := storableDocumentFrom(BooksDocumentName, bookRecords)
	if err != nil {
		return nil, err
	}

	return snapshotstore.StorableDocuments{personsDocument, booksDocument}, nil
}

func storableDocumentFrom(name string, records any) (snapshotstore.StorableDocument, error) {
	payloadJSON, err := prettyJSON.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return snapshotstore.StorableDocument{}, errors.Join(ErrMappingToStorableDocumentFailed, err)
	}

	document, err := snapshotstore.BuildStorableDocument(name, payloadJSON)
	if err != nil {
		return snapshotstore.StorableDocument{}, errors.Join(ErrMappingToStorableDocumentFailed, err)
	}

	return document, nil
}

// ModelFrom rebuilds the library from the payloads of the persons and the books documents.
// An empty payload counts as an empty list.
//
// Persons are reconstructed first so that loans can resolve their loanees, then model.FromCollections
// assembles the library. The first invalid record aborts the whole load; the error wraps ErrInvalidRecord
// and the record's validation error.
func ModelFrom(personsJSON []byte, booksJSON []byte) (*model.Model, error) {
	var personRecords []PersonRecord
	if err := unmarshalRecords(PersonsDocumentName, personsJSON, &personRecords); err != nil {
		return nil, err
	}

	var bookRecords []BookRecord
	if err := unmarshalRecords(BooksDocumentName, booksJSON, &bookRecords); err != nil {
		return nil, err
	}

	persons := make([]core.Person, 0, len(personRecords))
	for i, record := range personRecords {
		person, err := PersonFrom(record)
		if err != nil {
			return nil, invalidRecord(PersonsDocumentName, i, err)
		}

		persons = append(persons, person)
	}

	lookup := personLookupFor(persons)

	books := make([]core.Book, 0, len(bookRecords))
	for i, record := range bookRecords {
		book, err := BookFrom(record, lookup)
		if err != nil {
			return nil, invalidRecord(BooksDocumentName, i, err)
		}

		books = append(books, book)
	}

	library, err := model.FromCollections(persons, books)
	if err != nil {
		return nil, errors.Join(ErrInvalidRecord, err)
	}

	return library, nil
}

func unmarshalRecords(document string, payloadJSON []byte, target any) error {
	if len(payloadJSON) == 0 {
		return nil
	}

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, target); err != nil {
		return errors.Join(ErrInvalidRecord, fmt.Errorf("%s: %w", document, err))
	}

	return nil
}

func invalidRecord(document string, position int, err error) error {
	return errors.Join(ErrInvalidRecord, fmt.Errorf("%s record %d: %w", document, position+1, err))
}

// personLookupFor resolves names against persons. The first person with a name wins; duplicates are
// rejected later by model.FromCollections.
func personLookupFor(persons []core.Person) PersonLookup {
	byName := make(map[string]core.Person, len(persons))
	for _, person := range persons {
		if _, ok := byName[person.Name().String()]; ok {
			continue
		}

		byName[person.Name().String()] = person
	}

	return func(name core.Name) (core.Person, bool) {
		person, ok := byName[name.String()]
		return person, ok
	}
}
