package store

import (
	"sync"

	"mygrow-go/internal/journal"
)

// MemoryStore is an in-memory implementation of the DocumentStore interface.
// It keeps all documents in a map, making it useful for testing.
// This implementation is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte // "user/name" -> document bytes
}

// NewMemoryStore creates a new in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// docKey returns the map key for a user/name pair.
func docKey(user, name string) string {
	return user + "/" + name
}

// ReadDocument returns the current contents of a named document.
func (m *MemoryStore) ReadDocument(user, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[docKey(user, name)]
	if !ok {
		return nil, journal.ErrDocumentNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteDocument replaces a named document's contents.
func (m *MemoryStore) WriteDocument(user, name string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[docKey(user, name)] = stored
	return nil
}

// ValidateSetup always succeeds for the in-memory store.
func (m *MemoryStore) ValidateSetup() error {
	return nil
}

// Compile-time check that MemoryStore implements journal.DocumentStore
var _ journal.DocumentStore = (*MemoryStore)(nil)
