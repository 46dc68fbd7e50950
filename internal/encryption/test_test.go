package encryption_test

import (
	"bytes"
	"strings"
	"testing"

	"mygrow-go/internal/encryption"
)

func TestTestEncryptor_RoundTrip(t *testing.T) {
	t.Parallel()

	enc := encryption.NewTestEncryptor()
	plaintext := []byte(`{"entries":[]}`)

	var ciphertext bytes.Buffer
	if err := enc.Encrypt(bytes.NewReader(plaintext), &ciphertext); err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if bytes.Equal(ciphertext.Bytes(), plaintext) {
		t.Error("ciphertext equals plaintext")
	}

	ctx, err := enc.Unlock("any passphrase")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	var decrypted bytes.Buffer
	if err := ctx.Decrypt(bytes.NewReader(ciphertext.Bytes()), &decrypted); err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(decrypted.Bytes(), plaintext) {
		t.Errorf("got %q, want %q", decrypted.Bytes(), plaintext)
	}
}

func TestTestEncryptor_RejectsUnencryptedInput(t *testing.T) {
	t.Parallel()

	enc := encryption.NewTestEncryptor()
	ctx, err := enc.Unlock("any")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	var out bytes.Buffer
	if err := ctx.Decrypt(strings.NewReader("this was never encrypted"), &out); err == nil {
		t.Error("Decrypt() accepted input without the header")
	}
}
