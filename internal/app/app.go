package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"mygrow-go/internal/analyzer"
	"mygrow-go/internal/config"
	"mygrow-go/internal/encryption"
	"mygrow-go/internal/journal"
	"mygrow-go/internal/model"
	"mygrow-go/internal/store"
)

// MyGrowApp is the application layer between the CLI and the per-user
// journal services. It constructs all dependencies from config, hands out
// one Service per user, and manages store lifecycle on Close.
type MyGrowApp struct {
	cfg       *config.Config
	store     journal.DocumentStore
	encStore  *store.EncryptedStore // non-nil when encryption is enabled
	encryptor journal.Encryptor
	analyzer  analyzer.Analyzer
	logger    journal.Logger
	logFile   *os.File

	services map[string]*journal.Service
}

// NewMyGrowApp creates a fully wired MyGrowApp from the given config.
// operation identifies the CLI command being run (e.g. "Write", "Summary").
// The caller must call Close when done.
func NewMyGrowApp(cfg *config.Config, operation string) (*MyGrowApp, error) {
	docStore, err := store.NewDocumentStoreFromConfig(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("creating document store: %w", err)
	}

	var encryptor journal.Encryptor
	var encStore *store.EncryptedStore
	if cfg.Encryption.Enabled {
		encryptor, err = encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			closeStore(docStore)
			return nil, fmt.Errorf("creating encryptor: %w", err)
		}
		encStore = store.NewEncryptedStore(docStore, encryptor)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		closeStore(docStore)
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	active := docStore
	if encStore != nil {
		active = encStore
	}

	return &MyGrowApp{
		cfg:       cfg,
		store:     active,
		encStore:  encStore,
		encryptor: encryptor,
		analyzer:  analyzer.NewKeywordAnalyzer(),
		logger:    &slogAdapter{l: logger},
		logFile:   logFile,
		services:  make(map[string]*journal.Service),
	}, nil
}

// serviceFor returns the journal service bound to the given user, creating
// it on first use. An empty user falls back to the configured default.
func (a *MyGrowApp) serviceFor(user string) *journal.Service {
	if user == "" {
		user = a.cfg.DefaultUser
	}
	if svc, ok := a.services[user]; ok {
		return svc
	}
	svc := journal.NewService(a.store, user, a.logger, journal.RealClock{}, journal.UUIDGenerator{}, nil)
	a.services[user] = svc
	return svc
}

// Unlock decrypts the private key with the passphrase so reads can proceed.
// It is an error to call Unlock when encryption is not enabled.
func (a *MyGrowApp) Unlock(passphrase string) error {
	if a.encStore == nil {
		return fmt.Errorf("encryption is not enabled")
	}
	return a.encStore.Unlock(passphrase)
}

// EncryptionEnabled reports whether the store is wrapped with encryption.
func (a *MyGrowApp) EncryptionEnabled() bool { return a.encStore != nil }

// SetupEncryption generates a new key pair protected by the passphrase.
func (a *MyGrowApp) SetupEncryption(passphrase string) error {
	if a.encryptor == nil {
		enc, err := encryption.NewEncryptorFromConfig(a.cfg.Encryption)
		if err != nil {
			return fmt.Errorf("creating encryptor: %w", err)
		}
		a.encryptor = enc
	}
	if a.encryptor.IsConfigured() {
		return fmt.Errorf("encryption keys already exist")
	}
	return a.encryptor.Setup(passphrase)
}

// Write analyzes the journal text and appends the resulting entry.
func (a *MyGrowApp) Write(ctx context.Context, user, journalText string) (model.JournalEntry, error) {
	result, err := a.analyzer.Analyze(ctx, journalText)
	if err != nil {
		// Analysis must never block a journal write; store a degraded record.
		result = model.AnalysisResult{Error: err.Error()}
	}
	return a.serviceFor(user).Append(journalText, result)
}

// Entries returns the most recent limit entries (all when limit <= 0).
func (a *MyGrowApp) Entries(user string, limit int) []model.JournalEntry {
	return a.serviceFor(user).Entries(limit)
}

// Months returns every month with at least one entry, most recent first.
func (a *MyGrowApp) Months(user string) []string {
	return a.serviceFor(user).Months()
}

// MonthlySummary aggregates one YYYY-MM month.
func (a *MyGrowApp) MonthlySummary(user, yearMonth string) model.MonthlySummary {
	return a.serviceFor(user).MonthlySummary(yearMonth)
}

// MonthlySummaries returns one summary per month, most recent first.
func (a *MyGrowApp) MonthlySummaries(user string) []model.MonthlySummary {
	return a.serviceFor(user).MonthlySummaries()
}

// SummaryInsights returns the lifetime insight view.
func (a *MyGrowApp) SummaryInsights(user string) model.SummaryInsights {
	return a.serviceFor(user).SummaryInsights()
}

// Timeline returns the most recent limit milestone events (all when
// limit <= 0), in storage order.
func (a *MyGrowApp) Timeline(user string, limit int) []model.MilestoneEvent {
	return a.serviceFor(user).Timeline(limit)
}

// Search returns entries matching the term in text, themes, or emotions.
func (a *MyGrowApp) Search(user, term string) []model.JournalEntry {
	return a.serviceFor(user).SearchEntries(term)
}

// ExportReport bundles everything derived for the user.
func (a *MyGrowApp) ExportReport(user string) model.GrowthReport {
	return a.serviceFor(user).ExportReport()
}

// ValidateSetup verifies the configured store is usable.
func (a *MyGrowApp) ValidateSetup() error {
	return a.store.ValidateSetup()
}

// Close releases the store and log file.
func (a *MyGrowApp) Close() error {
	var firstErr error
	if err := closeStore(a.store); err != nil {
		firstErr = err
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}

// closeStore closes the store if the backend holds resources (sqlite).
func closeStore(s journal.DocumentStore) error {
	if c, ok := s.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing store: %w", err)
		}
	}
	return nil
}
