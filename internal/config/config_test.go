package config_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"mygrow-go/internal/config"
)

func TestConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig("alice", "/tmp/mygrow")
	original.Store.Type = "sqlite"
	original.Store.DBPath = "/tmp/mygrow/documents.db"
	original.Encryption.Enabled = true

	m := &config.Manager{}
	var buf bytes.Buffer
	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.DefaultUser != "alice" {
		t.Errorf("DefaultUser = %q, want alice", got.DefaultUser)
	}
	if got.Store.Type != "sqlite" || got.Store.DBPath != "/tmp/mygrow/documents.db" {
		t.Errorf("Store = %+v", got.Store)
	}
	if !got.Encryption.Enabled {
		t.Error("Encryption.Enabled lost in round trip")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig("alice", "/data/mygrow")

	if cfg.LogDir != filepath.Join("/data/mygrow", "log") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.Store.Type != "filesystem" {
		t.Errorf("Store.Type = %q, want filesystem", cfg.Store.Type)
	}
	if cfg.Store.DataDir != filepath.Join("/data/mygrow", "data") {
		t.Errorf("Store.DataDir = %q", cfg.Store.DataDir)
	}
	if cfg.Encryption.Enabled {
		t.Error("encryption enabled by default")
	}
	if cfg.Encryption.PublicKeyPath == "" || cfg.Encryption.PrivateKeyPath == "" {
		t.Errorf("key paths not defaulted: %+v", cfg.Encryption)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mygrow.toml")
	cfg := config.NewConfig("alice", "/data/mygrow")

	if err := config.Init(path, cfg); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	got, err := config.ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if got.DefaultUser != "alice" {
		t.Errorf("DefaultUser = %q, want alice", got.DefaultUser)
	}

	// A second Init must refuse to clobber the existing file.
	if err := config.Init(path, cfg); err == nil {
		t.Error("Init() overwrote existing config")
	}
}
