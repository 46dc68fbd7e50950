package store_test

import (
	"testing"

	"mygrow-go/internal/config"
	"mygrow-go/internal/store"
)

func TestNewDocumentStoreFromConfig(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		t.Parallel()
		s, err := store.NewDocumentStoreFromConfig(config.StoreConfig{Type: "memory"})
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if _, ok := s.(*store.MemoryStore); !ok {
			t.Errorf("got %T, want *store.MemoryStore", s)
		}
	})

	t.Run("filesystem", func(t *testing.T) {
		t.Parallel()
		s, err := store.NewDocumentStoreFromConfig(config.StoreConfig{
			Type:    "filesystem",
			DataDir: t.TempDir(),
		})
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if _, ok := s.(*store.FileSystemStore); !ok {
			t.Errorf("got %T, want *store.FileSystemStore", s)
		}
	})

	t.Run("filesystem requires data_dir", func(t *testing.T) {
		t.Parallel()
		if _, err := store.NewDocumentStoreFromConfig(config.StoreConfig{Type: "filesystem"}); err == nil {
			t.Error("want error for missing data_dir")
		}
	})

	t.Run("sqlite requires db_path", func(t *testing.T) {
		t.Parallel()
		if _, err := store.NewDocumentStoreFromConfig(config.StoreConfig{Type: "sqlite"}); err == nil {
			t.Error("want error for missing db_path")
		}
	})

	t.Run("unknown type fails", func(t *testing.T) {
		t.Parallel()
		if _, err := store.NewDocumentStoreFromConfig(config.StoreConfig{Type: "tape"}); err == nil {
			t.Error("want error for unknown type")
		}
	})
}
