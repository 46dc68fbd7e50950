package model

import "time"

// Passage is one scripture reference attached to an entry by the analyzer.
type Passage struct {
	Reference string `json:"reference"`
	Text      string `json:"text,omitempty"`
	WhyItFits string `json:"why_it_fits,omitempty"`
}

// AnalysisResult is the record produced by the external analyzer for one
// journal text. The archive stores it verbatim and only indexes the four
// extracted slices. Unknown fields arriving from the analyzer survive
// round-trips via Extra. A non-empty Error marks a degraded result, which
// is still stored as-is.
type AnalysisResult struct {
	PrimaryThemes  []string  `json:"primary_themes,omitempty"`
	EmotionalState []string  `json:"emotional_state,omitempty"`
	BiblePassages  []Passage `json:"bible_passages,omitempty"`
	PracticalSteps []string  `json:"practical_steps,omitempty"`
	CoreQuestion   string    `json:"core_question,omitempty"`
	KeyInsight     string    `json:"key_insight,omitempty"`
	PrayerStarter  string    `json:"prayer_starter,omitempty"`
	Encouragement  string    `json:"encouragement,omitempty"`
	Error          string    `json:"error,omitempty"`

	Extra map[string]any `json:"-"`
}

// Degraded reports whether the analyzer signalled a fallback result.
func (a AnalysisResult) Degraded() bool { return a.Error != "" }

// JournalEntry is one journal submission plus its analysis annotation.
// Entries are append-only and never mutated after creation.
type JournalEntry struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Date        string         `json:"date"` // YYYY-MM-DD, derived from Timestamp
	JournalText string         `json:"journal_text"`
	Analysis    AnalysisResult `json:"analysis"`

	// Indexed fields extracted from Analysis at creation time.
	Themes         []string  `json:"themes"`
	Emotions       []string  `json:"emotions"`
	BiblePassages  []Passage `json:"bible_passages"`
	PracticalSteps []string  `json:"practical_steps"`
	WordCount      int       `json:"word_count"`
}

// Month returns the YYYY-MM prefix of the entry date.
func (e JournalEntry) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// FrequencyEntry is one label with its occurrence count. Ranked views use
// slices of these rather than maps so ordering survives persistence.
type FrequencyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ThemePatterns struct {
	MostCommon     []FrequencyEntry `json:"most_common"`     // top 10
	AllFrequencies []FrequencyEntry `json:"all_frequencies"` // first-seen order
}

type EmotionPatterns struct {
	MostCommon []FrequencyEntry            `json:"most_common"` // top 5
	Trends     map[string][]FrequencyEntry `json:"trends"`      // ISO week -> top 2
}

type BiblePatterns struct {
	MostReferenced []FrequencyEntry `json:"most_referenced"` // top 5 references
	FavoriteBooks  []FrequencyEntry `json:"favorite_books"`  // top 5 books
}

type WritingPatterns struct {
	AverageLength float64 `json:"average_length"`
	Cadence       string  `json:"frequency_days"`
}

// GrowthIndicators compares the earliest and most recent writing windows.
type GrowthIndicators struct {
	Stage                  string   `json:"stage"`
	Indicators             []string `json:"indicators"`
	ThemeDiversityIncrease int      `json:"theme_diversity_increase"`
}

// PatternSnapshot is the fully derived statistics object for one user.
// It is a pure function of the entry list and may be discarded and rebuilt
// at any time without loss.
type PatternSnapshot struct {
	LastUpdated  time.Time `json:"last_updated"`
	TotalEntries int       `json:"total_entries"`

	ThemePatterns   ThemePatterns   `json:"theme_patterns"`
	EmotionPatterns EmotionPatterns `json:"emotion_patterns"`
	BiblePatterns   BiblePatterns   `json:"bible_patterns"`
	WritingPatterns WritingPatterns `json:"writing_patterns"`

	GrowthIndicators GrowthIndicators `json:"growth_indicators"`
}

// MilestoneEvent is a one-time achievement recorded on the growth timeline.
// EntryID is a back-reference for lookup, not an ownership edge.
type MilestoneEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	EntryID     string    `json:"entry_id"`
}

// MonthlySummary is the month-scoped view served by the query layer.
type MonthlySummary struct {
	Month            string           `json:"month"`
	EntryCount       int              `json:"entry_count"`
	TopThemes        []FrequencyEntry `json:"top_themes"`   // top 5
	TopEmotions      []FrequencyEntry `json:"top_emotions"` // top 3
	AverageWords     int              `json:"average_words"`
	UniqueScriptures int              `json:"unique_scriptures"`
	FirstEntryDate   string           `json:"first_entry_date,omitempty"`
	LastEntryDate    string           `json:"last_entry_date,omitempty"`
}

// SummaryInsights is the lifetime view served by the query layer.
type SummaryInsights struct {
	TotalEntries   int      `json:"total_entries"`
	Insights       []string `json:"insights"` // at most 4
	NextSuggestion string   `json:"next_suggestion"`
}

// GrowthReport is the exportable bundle of everything derived for a user.
type GrowthReport struct {
	GeneratedAt   time.Time        `json:"generated_at"`
	Summary       SummaryInsights  `json:"summary"`
	Patterns      PatternSnapshot  `json:"patterns"`
	Timeline      []MilestoneEvent `json:"timeline"`
	RecentEntries []JournalEntry   `json:"recent_entries"`
}
