package store

import (
	"context"
	"fmt"

	"mygrow-go/internal/config"
	"mygrow-go/internal/journal"
)

// NewDocumentStoreFromConfig creates a DocumentStore implementation based on
// the store config type.
func NewDocumentStoreFromConfig(cfg config.StoreConfig) (journal.DocumentStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("filesystem store requires data_dir to be set")
		}
		return NewFileSystemStore(cfg.DataDir)
	case "sqlite":
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("sqlite store requires db_path to be set")
		}
		return NewSQLiteStore(cfg.DBPath)
	case "s3":
		return NewS3Store(context.Background(), cfg)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
