package store_test

import (
	"bytes"
	"errors"
	"testing"

	"mygrow-go/internal/journal"
	"mygrow-go/internal/store"
)

func TestMemoryStore(t *testing.T) {
	t.Run("read after write returns the document", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryStore()

		if err := s.WriteDocument("alice", "entries", []byte(`[]`)); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		data, err := s.ReadDocument("alice", "entries")
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		if !bytes.Equal(data, []byte(`[]`)) {
			t.Errorf("got %q, want []", data)
		}
	})

	t.Run("unknown document is not found", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryStore()

		_, err := s.ReadDocument("alice", "entries")
		if !errors.Is(err, journal.ErrDocumentNotFound) {
			t.Fatalf("ReadDocument() error = %v, want ErrDocumentNotFound", err)
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryStore()

		if err := s.WriteDocument("alice", "entries", []byte(`["a"]`)); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		if _, err := s.ReadDocument("bob", "entries"); !errors.Is(err, journal.ErrDocumentNotFound) {
			t.Fatalf("bob read error = %v, want ErrDocumentNotFound", err)
		}
	})

	t.Run("returned bytes are a copy", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryStore()

		if err := s.WriteDocument("alice", "entries", []byte(`original`)); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		data, err := s.ReadDocument("alice", "entries")
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		data[0] = 'X'

		again, err := s.ReadDocument("alice", "entries")
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		if !bytes.Equal(again, []byte(`original`)) {
			t.Errorf("stored document mutated: %q", again)
		}
	})

	t.Run("validate setup always succeeds", func(t *testing.T) {
		t.Parallel()
		if err := store.NewMemoryStore().ValidateSetup(); err != nil {
			t.Errorf("ValidateSetup() error = %v", err)
		}
	})
}
