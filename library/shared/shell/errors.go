package shell

import "errors"

var (
	// ErrSavingLibraryFailed is returned when a snapshot of the library could not be written.
	// The in-memory mutation that triggered the save is not rolled back.
	ErrSavingLibraryFailed = errors.New("saving library failed")

	// ErrLoadingLibraryFailed is returned when the persisted library could not be read or is invalid.
	ErrLoadingLibraryFailed = errors.New("loading library failed")

	// ErrMappingToStorableDocumentFailed is returned when the records of a library could not be serialized.
	ErrMappingToStorableDocumentFailed = errors.New("mapping to storable document failed")
)
