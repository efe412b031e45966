package checkpoint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultStateFile is the checkpoint document written beside the config.
const DefaultStateFile = "nfsetup.state.yaml"

// ErrNoPriorRun indicates that no checkpoint document exists yet.
var ErrNoPriorRun = errors.New("no prior run found")

// Store persists checkpoint documents.
type Store interface {
	// Load reads the current document. Returns ErrNoPriorRun when none
	// exists; any other error means the store is unreadable or corrupt.
	Load() (*Document, error)

	// Save persists the document, replacing any previous one.
	Save(doc *Document) error

	// Clear removes the persisted document. Clearing an empty store is
	// not an error.
	Clear() error
}

// FileStore stores the document as a YAML file, written atomically via a
// temp file and rename in the same directory.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoPriorRun
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("state file %s is corrupt: %w", s.path, err)
	}
	if doc.Version == 0 || len(doc.Checkpoints) == 0 {
		return nil, fmt.Errorf("state file %s is corrupt: missing version or checkpoints", s.path)
	}

	return &doc, nil
}

// Save implements Store. The document is marshaled to a temp file in the
// state file's directory and renamed into place.
func (s *FileStore) Save(doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".nfsetup.state.*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set state file mode: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	doc *Document

	// Optional fault injection.
	LoadErr error
	SaveErr error

	SaveCalls int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load() (*Document, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.doc == nil {
		return nil, ErrNoPriorRun
	}
	// Round-trip through YAML so callers never share memory with the store.
	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save implements Store.
func (s *MemoryStore) Save(doc *Document) error {
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	var copied Document
	if err := yaml.Unmarshal(data, &copied); err != nil {
		return err
	}
	s.doc = &copied
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear() error {
	s.doc = nil
	return nil
}
