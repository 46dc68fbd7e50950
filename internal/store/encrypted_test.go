package store_test

import (
	"bytes"
	"testing"

	"mygrow-go/internal/encryption"
	"mygrow-go/internal/store"
)

func TestEncryptedStore(t *testing.T) {
	newStore := func() (*store.EncryptedStore, *store.MemoryStore) {
		inner := store.NewMemoryStore()
		return store.NewEncryptedStore(inner, encryption.NewTestEncryptor()), inner
	}

	t.Run("write stores ciphertext in the inner store", func(t *testing.T) {
		t.Parallel()
		enc, inner := newStore()

		plaintext := []byte(`{"secret":"journal"}`)
		if err := enc.WriteDocument("alice", "entries", plaintext); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		raw, err := inner.ReadDocument("alice", "entries")
		if err != nil {
			t.Fatalf("inner ReadDocument() error = %v", err)
		}
		if bytes.Equal(raw, plaintext) {
			t.Error("inner store holds plaintext, want ciphertext")
		}
	})

	t.Run("read requires unlock", func(t *testing.T) {
		t.Parallel()
		enc, _ := newStore()

		if err := enc.WriteDocument("alice", "entries", []byte(`[]`)); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		if _, err := enc.ReadDocument("alice", "entries"); err == nil {
			t.Fatal("ReadDocument() succeeded on locked store")
		}
	})

	t.Run("round trips after unlock", func(t *testing.T) {
		t.Parallel()
		enc, _ := newStore()

		plaintext := []byte(`{"secret":"journal"}`)
		if err := enc.WriteDocument("alice", "entries", plaintext); err != nil {
			t.Fatalf("WriteDocument() error = %v", err)
		}

		if err := enc.Unlock("passphrase"); err != nil {
			t.Fatalf("Unlock() error = %v", err)
		}

		got, err := enc.ReadDocument("alice", "entries")
		if err != nil {
			t.Fatalf("ReadDocument() error = %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("got %q, want %q", got, plaintext)
		}
	})
}
