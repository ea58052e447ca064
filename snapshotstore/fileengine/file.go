package fileengine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/AntonStoeckl/bookface-go/snapshotstore"
)

const (
	defaultFileMode        = os.FileMode(0o644)
	defaultDirMode         = os.FileMode(0o755)
	fileExtension          = ".json"
	tempFilePattern        = ".tmp.*"
	logMsgDocumentsSaved   = "documents saved"
	logMsgDocumentLoaded   = "document loaded"
	logMsgDocumentMissing  = "document not found"
	logMsgStagingFailed    = "failed to stage document"
	logMsgCommitFailed     = "failed to commit staged document"
	logMsgCleanupFailed    = "failed to remove staged file"
	logMsgReadFailed       = "failed to read document"
	logAttrError           = "error"
	logAttrDocument        = "document"
	logAttrDocumentCount   = "document_count"
	logAttrBytes           = "bytes"
	logAttrDurationMS      = "duration_ms"
	logAttrDirectory       = "directory"
	minimumOwnerPermission = os.FileMode(0o600)
)

// ErrInvalidFileMode is returned when a file mode would prevent the owner from reading or writing a document.
var ErrInvalidFileMode = errors.New("file mode must grant read and write permission to the owner")

// SnapshotStore saves and loads snapshot documents as JSON files in a directory.
type SnapshotStore struct {
	dir      string
	fileMode os.FileMode
	logger   snapshotstore.Logger
}

// Option defines a functional option for configuring SnapshotStore.
type Option func(*SnapshotStore) error

// WithLogger sets the logger for the SnapshotStore.
//
// Debug level: single document loads
// Info level: saved snapshots with document count and duration
// Warn level: cleanup failures of staged files
// Error level: failures that abort a save or load.
func WithLogger(logger snapshotstore.Logger) Option {
	return func(s *SnapshotStore) error {
		s.logger = logger
		return nil
	}
}

// WithFileMode sets the permissions of saved document files.
func WithFileMode(mode os.FileMode) Option {
	return func(s *SnapshotStore) error {
		if mode&minimumOwnerPermission != minimumOwnerPermission {
			return ErrInvalidFileMode
		}

		s.fileMode = mode

		return nil
	}
}

// NewSnapshotStore creates a SnapshotStore for dir with optional configuration.
// The directory is created on the first Save if it does not exist.
func NewSnapshotStore(dir string, options ...Option) (SnapshotStore, error) {
	if dir == "" {
		return SnapshotStore{}, snapshotstore.ErrEmptyDirectory
	}

	s := SnapshotStore{
		dir:      dir,
		fileMode: defaultFileMode,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return SnapshotStore{}, err
		}
	}

	return s, nil
}

// Dir returns the directory holding the document files.
func (s SnapshotStore) Dir() string {
	return s.dir
}

// PathOf returns the file path used for the document with the given name.
func (s SnapshotStore) PathOf(name string) string {
	return filepath.Join(s.dir, name+fileExtension)
}

// Save overwrites the given documents.
func (s SnapshotStore) Save(
	ctx context.Context,
	document snapshotstore.StorableDocument,
	additionalDocuments ...snapshotstore.StorableDocument,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	allDocuments := snapshotstore.StorableDocuments{document}
	allDocuments = append(allDocuments, additionalDocuments...)

	if err := checkUniqueNames(allDocuments); err != nil {
		return err
	}

	start := time.Now()

	if err := os.MkdirAll(s.dir, defaultDirMode); err != nil {
		s.logError(logMsgStagingFailed, err, logAttrDirectory, s.dir)
		return errors.Join(snapshotstore.ErrSavingDocumentsFailed, err)
	}

	staged, stageErr := s.stageAll(allDocuments)
	if stageErr != nil {
		s.removeStaged(staged)
		return errors.Join(snapshotstore.ErrSavingDocumentsFailed, stageErr)
	}

	if err := ctx.Err(); err != nil {
		s.removeStaged(staged)
		return err
	}

	if err := s.commitAll(staged); err != nil {
		return errors.Join(snapshotstore.ErrSavingDocumentsFailed, err)
	}

	if err := syncDir(s.dir); err != nil {
		return errors.Join(snapshotstore.ErrSavingDocumentsFailed, err)
	}

	s.logInfo(
		logMsgDocumentsSaved,
		logAttrDocumentCount, len(allDocuments),
		logAttrDurationMS, time.Since(start).Milliseconds(),
	)

	return nil
}

// Load reads the document with the given name.
// It returns snapshotstore.ErrDocumentNotFound if the document was never saved.
func (s SnapshotStore) Load(ctx context.Context, name string) (snapshotstore.StorableDocument, error) {
	if err := ctx.Err(); err != nil {
		return snapshotstore.StorableDocument{}, err
	}

	if err := snapshotstore.ValidateDocumentName(name); err != nil {
		return snapshotstore.StorableDocument{}, err
	}

	payloadJSON, readErr := os.ReadFile(s.PathOf(name))
	if readErr != nil {
		if errors.Is(readErr, os.ErrNotExist) {
			s.logDebug(logMsgDocumentMissing, logAttrDocument, name)
			return snapshotstore.StorableDocument{}, snapshotstore.ErrDocumentNotFound
		}

		s.logError(logMsgReadFailed, readErr, logAttrDocument, name)

		return snapshotstore.StorableDocument{}, errors.Join(snapshotstore.ErrLoadingDocumentFailed, readErr)
	}

	document, buildErr := snapshotstore.BuildStorableDocument(name, payloadJSON)
	if buildErr != nil {
		s.logError(logMsgReadFailed, buildErr, logAttrDocument, name)
		return snapshotstore.StorableDocument{}, errors.Join(snapshotstore.ErrLoadingDocumentFailed, buildErr)
	}

	s.logDebug(logMsgDocumentLoaded, logAttrDocument, name, logAttrBytes, len(payloadJSON))

	return document, nil
}

func checkUniqueNames(documents snapshotstore.StorableDocuments) error {
	seen := make(map[string]struct{}, len(documents))
	for _, document := range documents {
		if _, ok := seen[document.Name]; ok {
			return snapshotstore.ErrDuplicateDocumentName
		}

		seen[document.Name] = struct{}{}
	}

	return nil
}

func (s SnapshotStore) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s SnapshotStore) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s SnapshotStore) logWarn(msg string, err error, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}

func (s SnapshotStore) logError(msg string, err error, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}
