package store

import (
	"fmt"
	"os"
	"path/filepath"

	"mygrow-go/internal/journal"
)

// FileSystemStore is a filesystem-based implementation of the DocumentStore
// interface. It stores one JSON file per document:
//
//	<root>/
//	  users/
//	    <user>/
//	      entries.json
//	      patterns.json
//	      timeline.json
type FileSystemStore struct {
	root string
}

// NewFileSystemStore creates a new filesystem store rooted at the given path.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "users"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileSystemStore{root: root}, nil
}

func (s *FileSystemStore) docPath(user, name string) string {
	return filepath.Join(s.root, "users", user, name+".json")
}

// ReadDocument returns the current contents of a named document.
func (s *FileSystemStore) ReadDocument(user, name string) ([]byte, error) {
	data, err := os.ReadFile(s.docPath(user, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, journal.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("reading document %s/%s: %w", user, name, err)
	}
	return data, nil
}

// WriteDocument atomically replaces a named document's contents using a
// temp file + rename, so readers never observe a torn document.
func (s *FileSystemStore) WriteDocument(user, name string, data []byte) error {
	destPath := s.docPath(user, name)
	dir := filepath.Dir(destPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create user directory: %w", err)
	}

	// Create temp file in the same directory to ensure atomic rename works
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// ValidateSetup verifies that the store root is accessible.
func (s *FileSystemStore) ValidateSetup() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("store root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store root is not a directory: %s", s.root)
	}
	return nil
}

// Compile-time check that FileSystemStore implements journal.DocumentStore
var _ journal.DocumentStore = (*FileSystemStore)(nil)
