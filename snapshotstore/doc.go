// Package snapshotstore provides core abstractions and types for storing full snapshots
// of an application's state as named JSON documents.
//
// A snapshot is written wholesale and read back wholesale; there is no incremental log.
// The package is agnostic of the documents' content: client code maps its domain model
// to StorableDocument values and back.
//
// Key types:
//   - StorableDocument: a named, valid JSON payload
//   - StorableDocuments: collection of storable documents
//   - Logger: dependency-free logging interface for engines
//
// Common usage pattern:
//
//	books, err := snapshotstore.BuildStorableDocument("books", booksJSON)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Save(ctx, books, persons)
//	...
//	books, err = store.Load(ctx, "books")
//	if errors.Is(err, snapshotstore.ErrDocumentNotFound) {
//		// first start, nothing saved yet
//	}
package snapshotstore
