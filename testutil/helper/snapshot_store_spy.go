package helper

import (
	"context"
	"errors"
	"sync"

	"github.com/AntonStoeckl/bookface-go/snapshotstore"
)

// ErrInjectedSaveFailure is the cause joined into save errors produced by SnapshotStoreSpy.FailNextSaves.
var ErrInjectedSaveFailure = errors.New("injected save failure")

// SnapshotStoreSpy is an in-memory snapshot store that records save calls and can simulate failing saves.
type SnapshotStoreSpy struct {
	documents     map[string][]byte
	saveCalls     int
	failNextSaves int
	mu            sync.Mutex
}

// NewSnapshotStoreSpy creates an empty SnapshotStoreSpy.
func NewSnapshotStoreSpy() *SnapshotStoreSpy {
	return &SnapshotStoreSpy{documents: make(map[string][]byte)}
}

// FailNextSaves makes the next n saves fail with snapshotstore.ErrSavingDocumentsFailed.
func (s *SnapshotStoreSpy) FailNextSaves(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failNextSaves = n
}

// Put stores a raw payload as if it had been saved before.
func (s *SnapshotStoreSpy) Put(name string, payloadJSON string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[name] = []byte(payloadJSON)
}

// Save implements the snapshot store contract of the shell.Repository.
func (s *SnapshotStoreSpy) Save(
	ctx context.Context,
	document snapshotstore.StorableDocument,
	additionalDocuments ...snapshotstore.StorableDocument,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveCalls++

	if s.failNextSaves > 0 {
		s.failNextSaves--
		return errors.Join(snapshotstore.ErrSavingDocumentsFailed, ErrInjectedSaveFailure)
	}

	for _, d := range append([]snapshotstore.StorableDocument{document}, additionalDocuments...) {
		s.documents[d.Name] = d.PayloadJSON
	}

	return nil
}

// Load implements the snapshot store contract of the shell.Repository.
func (s *SnapshotStoreSpy) Load(ctx context.Context, name string) (snapshotstore.StorableDocument, error) {
	if err := ctx.Err(); err != nil {
		return snapshotstore.StorableDocument{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payloadJSON, ok := s.documents[name]
	if !ok {
		return snapshotstore.StorableDocument{}, snapshotstore.ErrDocumentNotFound
	}

	return snapshotstore.BuildStorableDocument(name, payloadJSON)
}

// SaveCalls returns the number of Save calls, failed ones included.
func (s *SnapshotStoreSpy) SaveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveCalls
}

// Payload returns the saved payload of a document and whether it exists.
func (s *SnapshotStoreSpy) Payload(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payloadJSON, ok := s.documents[name]

	return string(payloadJSON), ok
}
