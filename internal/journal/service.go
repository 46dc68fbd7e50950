package journal

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"mygrow-go/internal/model"
)

// TimelineCap is the maximum number of milestone events retained; older
// events are silently dropped, oldest first.
const TimelineCap = 20

// Service is one user's journal archive: the append-only entry store, the
// derived pattern snapshot, and the milestone timeline, kept consistent as a
// single unit. Construct one Service per user; there are no process-wide
// singletons.
//
// Append serializes on an internal mutex so concurrent requests for the same
// user cannot lose updates. Read accessors are best-effort: missing or
// corrupt storage reads as empty rather than failing.
type Service struct {
	store  DocumentStore
	user   string
	logger Logger
	clock  Clock
	idgen  IDGenerator
	rules  []MilestoneRule

	mu sync.Mutex // guards the read-modify-write cycle in Append
}

// NewService creates a Service for the given user with the provided
// dependencies. A nil rules slice selects the default milestone rule set.
func NewService(store DocumentStore, user string, logger Logger, clock Clock, idgen IDGenerator, rules []MilestoneRule) *Service {
	if rules == nil {
		rules = DefaultMilestoneRules()
	}
	return &Service{
		store:  store,
		user:   user,
		logger: logger,
		clock:  clock,
		idgen:  idgen,
		rules:  rules,
	}
}

// User returns the user identity this service is bound to.
func (s *Service) User() string { return s.user }

// Append stores a new journal entry and brings the pattern snapshot and
// milestone timeline up to date before returning. On success all three
// documents are durably consistent with each other; on failure the error is
// a *PersistenceError (storage unreadable or unwritable) or
// *DataIntegrityError (existing entries malformed). Nothing is written until
// the prior state has been read and the new snapshot and timeline have been
// computed, so read and integrity failures leave storage untouched.
func (s *Service) Append(journalText string, analysis model.AnalysisResult) (model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadEntriesStrict()
	if err != nil {
		return model.JournalEntry{}, err
	}

	now := s.clock.Now()
	entry := model.JournalEntry{
		ID:             s.idgen.New(),
		Timestamp:      now,
		Date:           now.Format("2006-01-02"),
		JournalText:    journalText,
		Analysis:       analysis,
		Themes:         orEmpty(analysis.PrimaryThemes),
		Emotions:       orEmpty(analysis.EmotionalState),
		BiblePassages:  orEmptyPassages(analysis.BiblePassages),
		PracticalSteps: orEmpty(analysis.PracticalSteps),
		WordCount:      len(strings.Fields(journalText)),
	}

	updated := append(entries, entry)

	snapshot, err := ComputeSnapshot(updated, now)
	if err != nil {
		return model.JournalEntry{}, err
	}

	timeline := s.loadTimeline()
	events := DetectMilestones(entry, len(updated), timeline, s.rules)
	timeline = capTimeline(append(timeline, events...))

	if err := s.writeDocument(DocEntries, updated); err != nil {
		return model.JournalEntry{}, err
	}
	if err := s.writeDocument(DocPatterns, snapshot); err != nil {
		return model.JournalEntry{}, err
	}
	if err := s.writeDocument(DocTimeline, timeline); err != nil {
		return model.JournalEntry{}, err
	}

	s.logger.Info("entry appended",
		"user", s.user,
		"entry_id", entry.ID,
		"words", entry.WordCount,
		"milestones", len(events),
	)
	return entry, nil
}

// Entries returns all entries oldest first. If limit is positive, only the
// most recent limit entries are returned (order preserved).
func (s *Service) Entries(limit int) []model.JournalEntry {
	entries := s.loadEntries()
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

// EntriesByMonth returns entries whose date falls in the given YYYY-MM
// month, in insertion order.
func (s *Service) EntriesByMonth(yearMonth string) []model.JournalEntry {
	var filtered []model.JournalEntry
	for _, e := range s.loadEntries() {
		if e.Month() == yearMonth {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Months returns every YYYY-MM month with at least one entry, most recent
// first.
func (s *Service) Months() []string {
	seen := make(map[string]bool)
	var months []string
	for _, e := range s.loadEntries() {
		m := e.Month()
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sortDescending(months)
	return months
}

// Timeline returns milestone events in storage order (most recent last).
// If limit is positive, only the most recent limit events are returned.
// Display-order reversal is the caller's concern.
func (s *Service) Timeline(limit int) []model.MilestoneEvent {
	events := s.loadTimeline()
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events
}

// Snapshot returns the persisted pattern snapshot. The second return is
// false when no snapshot has been persisted yet (or it cannot be read).
func (s *Service) Snapshot() (model.PatternSnapshot, bool) {
	data, err := s.store.ReadDocument(s.user, DocPatterns)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			s.logger.Warn("reading patterns document", "user", s.user, "error", err)
		}
		return model.PatternSnapshot{}, false
	}
	var snapshot model.PatternSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn("corrupt patterns document", "user", s.user, "error", err)
		return model.PatternSnapshot{}, false
	}
	return snapshot, true
}

// capTimeline truncates events to the most recent TimelineCap entries.
func capTimeline(events []model.MilestoneEvent) []model.MilestoneEvent {
	if len(events) > TimelineCap {
		events = events[len(events)-TimelineCap:]
	}
	return events
}

func (s *Service) loadEntries() []model.JournalEntry {
	var entries []model.JournalEntry
	s.loadDocument(DocEntries, &entries)
	return entries
}

// loadEntriesStrict reads the entries document for the append path. The
// read-modify-write cycle must see the real archive: a store that cannot be
// read (locked, unreachable) fails the append with a *PersistenceError,
// since writing back an empty list would replace every prior entry. A
// missing document is a fresh archive, and corrupt JSON still reads as
// empty like the soft read paths.
func (s *Service) loadEntriesStrict() ([]model.JournalEntry, error) {
	data, err := s.store.ReadDocument(s.user, DocEntries)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, &PersistenceError{Document: DocEntries, Err: err}
	}
	var entries []model.JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("corrupt entries document", "user", s.user, "error", err)
		return nil, nil
	}
	return entries, nil
}

func (s *Service) loadTimeline() []model.MilestoneEvent {
	var events []model.MilestoneEvent
	s.loadDocument(DocTimeline, &events)
	return events
}

// loadDocument reads and decodes a document into v. Read paths are
// best-effort: a missing or corrupt document leaves v at its zero value.
func (s *Service) loadDocument(name string, v any) {
	data, err := s.store.ReadDocument(s.user, name)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			s.logger.Warn("reading document", "user", s.user, "doc", name, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("corrupt document", "user", s.user, "doc", name, "error", err)
	}
}

// writeDocument encodes v and writes it strictly: any failure is a
// *PersistenceError surfaced to the caller.
func (s *Service) writeDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Document: name, Err: err}
	}
	if err := s.store.WriteDocument(s.user, name, data); err != nil {
		return &PersistenceError{Document: name, Err: err}
	}
	return nil
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func orEmptyPassages(in []model.Passage) []model.Passage {
	if in == nil {
		return []model.Passage{}
	}
	return in
}

// sortDescending sorts YYYY-MM strings most recent first. Plain string
// comparison is correct for zero-padded dates.
func sortDescending(months []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
}
