package testutil

import (
	"mygrow-go/internal/encryption"
	"mygrow-go/internal/journal"
)

// NewTestEncryptor creates a deterministic encryptor for testing.
func NewTestEncryptor() journal.Encryptor {
	return encryption.NewTestEncryptor()
}
