package store

import (
	"bytes"
	"fmt"
	"io"

	"mygrow-go/internal/journal"
)

// EncryptedStore decorates another DocumentStore with at-rest encryption.
// Document bodies are encrypted with the public key alone; reads require
// the store to be unlocked with a DecryptionContext first and fail while
// locked. Callers that read before writing, such as an append over the
// existing archive, must unlock before the operation.
type EncryptedStore struct {
	inner     journal.DocumentStore
	encryptor journal.Encryptor
	decctx    journal.DecryptionContext
}

// NewEncryptedStore wraps inner so that document bodies are encrypted
// before they reach it.
func NewEncryptedStore(inner journal.DocumentStore, encryptor journal.Encryptor) *EncryptedStore {
	return &EncryptedStore{inner: inner, encryptor: encryptor}
}

// Unlock decrypts the private key with the passphrase, enabling reads for
// the rest of the session.
func (s *EncryptedStore) Unlock(passphrase string) error {
	ctx, err := s.encryptor.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking store: %w", err)
	}
	s.decctx = ctx
	return nil
}

// ReadDocument reads and decrypts a named document.
func (s *EncryptedStore) ReadDocument(user, name string) ([]byte, error) {
	if s.decctx == nil {
		return nil, fmt.Errorf("store is locked: unlock required to read documents")
	}

	ciphertext, err := s.inner.ReadDocument(user, name)
	if err != nil {
		return nil, err
	}

	var plaintext bytes.Buffer
	if err := s.decctx.Decrypt(bytes.NewReader(ciphertext), &plaintext); err != nil {
		return nil, fmt.Errorf("decrypting document %s/%s: %w", user, name, err)
	}
	return plaintext.Bytes(), nil
}

// WriteDocument encrypts and writes a named document.
func (s *EncryptedStore) WriteDocument(user, name string, data []byte) error {
	var ciphertext bytes.Buffer
	if err := s.encryptor.Encrypt(bytes.NewReader(data), &ciphertext); err != nil {
		return fmt.Errorf("encrypting document %s/%s: %w", user, name, err)
	}
	return s.inner.WriteDocument(user, name, ciphertext.Bytes())
}

// Close releases the inner store if its backend holds resources.
func (s *EncryptedStore) Close() error {
	if c, ok := s.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ValidateSetup verifies the inner store and that encryption keys exist.
func (s *EncryptedStore) ValidateSetup() error {
	if !s.encryptor.IsConfigured() {
		return fmt.Errorf("encryption enabled but keys are not configured")
	}
	return s.inner.ValidateSetup()
}

// Compile-time check that EncryptedStore implements journal.DocumentStore
var _ journal.DocumentStore = (*EncryptedStore)(nil)
