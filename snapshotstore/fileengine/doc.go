// Package fileengine provides a snapshot store that keeps every document as a JSON file in one directory.
//
// Save is a full overwrite of the given documents. All documents are first staged as temporary files
// (written and synced) and only then renamed into place, so a failure while staging leaves every
// previously saved document untouched. The renames themselves are not atomic as a group: a crash between
// two renames leaves a mix of old and new documents, which the caller detects on the next load.
//
// The engine checks the context before it starts writing and again before it commits the staged files.
package fileengine
