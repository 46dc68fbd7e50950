package encryption_test

import (
	"testing"

	"mygrow-go/internal/config"
	"mygrow-go/internal/encryption"
)

func TestNewEncryptorFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		typ     string
		wantErr bool
	}{
		{"age", "age", false},
		{"empty defaults to age", "", false},
		{"test", "test", false},
		{"unknown", "rot13", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := encryption.NewEncryptorFromConfig(config.EncryptionConfig{Type: tt.typ})
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}
