package snapshotstore

import (
	"regexp"

	jsoniter "github.com/json-iterator/go"
)

var documentNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// StorableDocuments is an alias type for a slice of StorableDocument.
type StorableDocuments = []StorableDocument

// StorableDocument is a DTO (data transfer object) used by snapshot stores to save documents and load them back.
//
// It is built on scalars to be completely agnostic of the domain model in the client code.
//
// While its properties are exported, it should only be constructed with the supplied factory method BuildStorableDocument.
type StorableDocument struct {
	Name        string
	PayloadJSON []byte
}

// BuildStorableDocument is a factory method for StorableDocument.
//
// The name is used by engines as a key (e.g. a file name), so it is restricted to letters, digits, '-' and '_'.
// Returns an error if the name is empty or invalid or if payloadJSON is not valid JSON.
func BuildStorableDocument(name string, payloadJSON []byte) (StorableDocument, error) {
	if err := ValidateDocumentName(name); err != nil {
		return StorableDocument{}, err
	}

	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return StorableDocument{}, ErrInvalidPayloadJSON
	}

	return StorableDocument{
		Name:        name,
		PayloadJSON: payloadJSON,
	}, nil
}

// ValidateDocumentName checks the naming rule of BuildStorableDocument without building a document.
func ValidateDocumentName(name string) error {
	if name == "" {
		return ErrEmptyDocumentName
	}

	if !documentNamePattern.MatchString(name) {
		return ErrInvalidDocumentName
	}

	return nil
}
