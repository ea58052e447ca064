package fileengine

import (
	"errors"
	"os"

	"github.com/AntonStoeckl/bookface-go/snapshotstore"
)

// stagedFile is a fully written and synced temp file waiting to be renamed to its final path.
type stagedFile struct {
	name      string
	tempPath  string
	finalPath string
}

// stageAll writes every document to its own temp file next to the final path.
// On error the files staged so far are returned, so the caller can remove them.
func (s SnapshotStore) stageAll(documents snapshotstore.StorableDocuments) ([]stagedFile, error) {
	staged := make([]stagedFile, 0, len(documents))

	for _, document := range documents {
		file, err := s.stage(document)
		if err != nil {
			s.logError(logMsgStagingFailed, err, logAttrDocument, document.Name)
			return staged, err
		}

		staged = append(staged, file)
	}

	return staged, nil
}

func (s SnapshotStore) stage(document snapshotstore.StorableDocument) (stagedFile, error) {
	finalPath := s.PathOf(document.Name)

	tmp, err := os.CreateTemp(s.dir, document.Name+fileExtension+tempFilePattern)
	if err != nil {
		return stagedFile{}, err
	}

	file := stagedFile{name: document.Name, tempPath: tmp.Name(), finalPath: finalPath}

	if _, err := tmp.Write(document.PayloadJSON); err != nil {
		return file, errors.Join(err, closeAndRemove(tmp))
	}

	if err := tmp.Chmod(s.fileMode); err != nil {
		return file, errors.Join(err, closeAndRemove(tmp))
	}

	if err := tmp.Sync(); err != nil {
		return file, errors.Join(err, closeAndRemove(tmp))
	}

	if err := tmp.Close(); err != nil {
		return file, errors.Join(err, os.Remove(tmp.Name()))
	}

	return file, nil
}

// commitAll renames the staged files into place in order.
// If a rename fails, the remaining staged files are removed and the documents renamed so far stay new.
func (s SnapshotStore) commitAll(staged []stagedFile) error {
	for i, file := range staged {
		if err := os.Rename(file.tempPath, file.finalPath); err != nil {
			s.logError(logMsgCommitFailed, err, logAttrDocument, file.name)
			s.removeStaged(staged[i:])

			return err
		}
	}

	return nil
}

func (s SnapshotStore) removeStaged(staged []stagedFile) {
	for _, file := range staged {
		if err := os.Remove(file.tempPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logWarn(logMsgCleanupFailed, err, logAttrDocument, file.name)
		}
	}
}

func closeAndRemove(f *os.File) error {
	_ = f.Close()

	if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Sync()
}
