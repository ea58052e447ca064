package shell

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	"github.com/AntonStoeckl/bookface-go/snapshotstore"
)

const (
	logMsgLibraryLoaded = "library loaded"
	logMsgLibraryEmpty  = "no saved library found, starting empty"
	logAttrBookCount    = "book_count"
	logAttrPersonCount  = "person_count"
)

// SnapshotStore defines the interface needed by the Repository to persist snapshot documents.
type SnapshotStore interface {
	Save(
		ctx context.Context,
		document snapshotstore.StorableDocument,
		additionalDocuments ...snapshotstore.StorableDocument,
	) error
	Load(ctx context.Context, name string) (snapshotstore.StorableDocument, error)
}

// Repository loads the whole library from a SnapshotStore and writes it back as a full snapshot.
type Repository struct {
	store        SnapshotStore
	retryOptions []RetryOption
	logger       Logger
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithSaveRetryOptions sets a custom retry configuration for saving snapshots.
func WithSaveRetryOptions(opts ...RetryOption) RepositoryOption {
	return func(r *Repository) {
		r.retryOptions = opts
	}
}

// WithRepositoryLogger sets the logger for load summaries.
func WithRepositoryLogger(logger Logger) RepositoryOption {
	return func(r *Repository) {
		r.logger = logger
	}
}

// NewRepository creates a Repository on top of store.
func NewRepository(store SnapshotStore, opts ...RepositoryOption) Repository {
	repository := Repository{store: store}

	for _, opt := range opts {
		opt(&repository)
	}

	return repository
}

// Load reads the persisted library. Documents that were never saved count as empty,
// so the very first start yields an empty library.
//
// Any invalid record aborts the load with an error wrapping ErrLoadingLibraryFailed and ErrInvalidRecord.
func (r Repository) Load(ctx context.Context) (*model.Model, error) {
	personsJSON, err := r.loadPayload(ctx, PersonsDocumentName)
	if err != nil {
		return nil, errors.Join(ErrLoadingLibraryFailed, err)
	}

	booksJSON, err := r.loadPayload(ctx, BooksDocumentName)
	if err != nil {
		return nil, errors.Join(ErrLoadingLibraryFailed, err)
	}

	if personsJSON == nil && booksJSON == nil && r.logger != nil {
		r.logger.Info(logMsgLibraryEmpty)
	}

	library, err := ModelFrom(personsJSON, booksJSON)
	if err != nil {
		return nil, errors.Join(ErrLoadingLibraryFailed, err)
	}

	if r.logger != nil {
		r.logger.Info(
			logMsgLibraryLoaded,
			logAttrBookCount, len(library.Books()),
			logAttrPersonCount, len(library.Persons()),
		)
	}

	return library, nil
}

// Save writes the full library as one snapshot, retrying transient write failures.
// Errors wrap ErrSavingLibraryFailed.
func (r Repository) Save(ctx context.Context, library *model.Model) (RetryMetrics, error) {
	documents, err := StorableDocumentsFrom(library)
	if err != nil {
		return RetryMetrics{}, errors.Join(ErrSavingLibraryFailed, err)
	}

	metrics, err := RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return r.store.Save(retryCtx, documents[0], documents[1:]...)
	}, r.retryOptions...)

	if err != nil {
		return metrics, errors.Join(ErrSavingLibraryFailed, err)
	}

	return metrics, nil
}

func (r Repository) loadPayload(ctx context.Context, name string) ([]byte, error) {
	document, err := r.store.Load(ctx, name)
	if errors.Is(err, snapshotstore.ErrDocumentNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return document.PayloadJSON, nil
}
