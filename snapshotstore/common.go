package snapshotstore

import (
	"errors"
)

var (
	// ErrEmptyDocumentName is returned when a document is built without a name.
	ErrEmptyDocumentName = errors.New("document name must not be empty")

	// ErrInvalidDocumentName is returned when a document name contains path separators or dots.
	ErrInvalidDocumentName = errors.New("document name must only contain letters, digits, '-' and '_'")

	// ErrInvalidPayloadJSON is returned when a document payload is not valid JSON.
	ErrInvalidPayloadJSON = errors.New("payload json is not valid")

	// ErrDocumentNotFound is returned when loading a document that was never saved.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDuplicateDocumentName is returned when one Save call receives two documents with the same name.
	ErrDuplicateDocumentName = errors.New("document names must be unique within one save")

	// ErrSavingDocumentsFailed is returned when writing a snapshot fails.
	ErrSavingDocumentsFailed = errors.New("saving documents failed")

	// ErrLoadingDocumentFailed is returned when reading a document fails.
	ErrLoadingDocumentFailed = errors.New("loading document failed")

	// ErrEmptyDirectory is returned when a file engine is created without a directory.
	ErrEmptyDirectory = errors.New("snapshot directory must not be empty")
)
