package testutil

import (
	"fmt"

	"mygrow-go/internal/journal"
	"mygrow-go/internal/store"
)

// NewTestStore creates a new in-memory document store for testing.
func NewTestStore() journal.DocumentStore {
	return store.NewMemoryStore()
}

// FailingStore wraps another DocumentStore and fails selected operations.
// Use it to exercise persistence error paths.
type FailingStore struct {
	Inner journal.DocumentStore

	// FailWrites lists document names whose writes should fail.
	// An empty list with FailAllWrites set fails every write.
	FailWrites    []string
	FailAllWrites bool
	FailAllReads  bool
}

// NewFailingStore creates a FailingStore over a fresh in-memory store.
func NewFailingStore() *FailingStore {
	return &FailingStore{Inner: store.NewMemoryStore()}
}

func (s *FailingStore) ReadDocument(user, name string) ([]byte, error) {
	if s.FailAllReads {
		return nil, fmt.Errorf("injected read failure for %s/%s", user, name)
	}
	return s.Inner.ReadDocument(user, name)
}

func (s *FailingStore) WriteDocument(user, name string, data []byte) error {
	if s.FailAllWrites {
		return fmt.Errorf("injected write failure for %s/%s", user, name)
	}
	for _, doc := range s.FailWrites {
		if doc == name {
			return fmt.Errorf("injected write failure for %s/%s", user, name)
		}
	}
	return s.Inner.WriteDocument(user, name, data)
}

func (s *FailingStore) ValidateSetup() error {
	return s.Inner.ValidateSetup()
}

// Compile-time check
var _ journal.DocumentStore = (*FailingStore)(nil)
