package journal

import (
	"fmt"
	"strings"

	"mygrow-go/internal/model"
)

const (
	monthlyTopThemes   = 5
	monthlyTopEmotions = 3
	maxInsights        = 4
	reportRecentLimit  = 5
)

// MonthlySummary aggregates one YYYY-MM month of entries. A month with no
// entries produces a zero-shaped summary; this never fails.
func (s *Service) MonthlySummary(yearMonth string) model.MonthlySummary {
	entries := s.EntriesByMonth(yearMonth)
	if len(entries) == 0 {
		return model.MonthlySummary{
			Month:       yearMonth,
			TopThemes:   []model.FrequencyEntry{},
			TopEmotions: []model.FrequencyEntry{},
		}
	}

	themes := newCounter()
	emotions := newCounter()
	uniqueVerses := make(map[string]bool)
	totalWords := 0

	for _, e := range entries {
		themes.addAll(e.Themes)
		emotions.addAll(e.Emotions)
		totalWords += e.WordCount
		for _, p := range e.BiblePassages {
			uniqueVerses[p.Reference] = true
		}
	}

	return model.MonthlySummary{
		Month:            yearMonth,
		EntryCount:       len(entries),
		TopThemes:        themes.mostCommon(monthlyTopThemes),
		TopEmotions:      emotions.mostCommon(monthlyTopEmotions),
		AverageWords:     totalWords / len(entries),
		UniqueScriptures: len(uniqueVerses),
		FirstEntryDate:   entries[0].Date,
		LastEntryDate:    entries[len(entries)-1].Date,
	}
}

// MonthlySummaries returns one summary per month with entries, most recent
// month first.
func (s *Service) MonthlySummaries() []model.MonthlySummary {
	months := s.Months()
	summaries := make([]model.MonthlySummary, 0, len(months))
	for _, m := range months {
		summaries = append(summaries, s.MonthlySummary(m))
	}
	return summaries
}

// SummaryInsights distills the persisted snapshot into at most four
// human-readable insights plus a next-step suggestion. The insight cascade
// order is fixed: top theme, second theme, growth indicators, writing
// cadence, top scripture book. The wording is template text.
func (s *Service) SummaryInsights() model.SummaryInsights {
	entries := s.loadEntries()
	if len(entries) == 0 {
		return model.SummaryInsights{
			Insights:       []string{"Welcome to your spiritual journey!"},
			NextSuggestion: "Write your first reflection to begin tracking your growth.",
		}
	}

	snapshot, ok := s.Snapshot()
	if !ok {
		// Entries exist but no snapshot was readable; rebuild in memory.
		rebuilt, err := ComputeSnapshot(entries, s.clock.Now())
		if err != nil {
			s.logger.Warn("rebuilding snapshot for insights", "user", s.user, "error", err)
			return model.SummaryInsights{
				TotalEntries:   len(entries),
				Insights:       []string{},
				NextSuggestion: "Keep journaling to reveal your patterns.",
			}
		}
		snapshot = rebuilt
	}

	var insights []string

	topThemes := snapshot.ThemePatterns.MostCommon
	if len(topThemes) > 0 {
		insights = append(insights, fmt.Sprintf("Your spiritual heart centers on %s (appeared %d times)",
			topThemes[0].Label, topThemes[0].Count))
		if len(topThemes) > 1 {
			insights = append(insights, fmt.Sprintf("Secondary focus: %s (%d occurrences)",
				topThemes[1].Label, topThemes[1].Count))
		}
	}

	insights = append(insights, snapshot.GrowthIndicators.Indicators...)

	insights = append(insights, fmt.Sprintf("Writing rhythm: %s", snapshot.WritingPatterns.Cadence))

	if books := snapshot.BiblePatterns.FavoriteBooks; len(books) > 0 {
		insights = append(insights, fmt.Sprintf("Most engaged Scripture: %s", books[0].Label))
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return model.SummaryInsights{
		TotalEntries:   len(entries),
		Insights:       insights,
		NextSuggestion: nextSuggestion(snapshot),
	}
}

// nextSuggestion picks a suggestion template keyed on entry total and
// parameterized by the most frequent themes.
func nextSuggestion(snapshot model.PatternSnapshot) string {
	themes := snapshot.ThemePatterns.MostCommon

	switch {
	case snapshot.TotalEntries < 3:
		return "Try exploring different spiritual themes in your next reflection."
	case snapshot.TotalEntries < 10:
		if len(themes) >= 2 {
			return fmt.Sprintf("Consider how %s and %s connect in your spiritual journey.",
				themes[0].Label, themes[1].Label)
		}
		return "Reflect on how your understanding has evolved since you started journaling."
	default:
		if len(themes) > 0 {
			return fmt.Sprintf("Your deep focus on %s shows spiritual maturity. What new aspect of this theme could you explore?",
				themes[0].Label)
		}
		return "Your consistent journaling reveals a beautiful spiritual journey. Keep listening to your heart."
	}
}

// SearchEntries returns entries whose text, themes, or emotions contain the
// term, case-insensitively, in insertion order. An empty term matches all.
func (s *Service) SearchEntries(term string) []model.JournalEntry {
	term = strings.ToLower(term)
	var matched []model.JournalEntry
	for _, e := range s.loadEntries() {
		if entryMatches(e, term) {
			matched = append(matched, e)
		}
	}
	return matched
}

func entryMatches(e model.JournalEntry, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.JournalText), term) {
		return true
	}
	for _, t := range e.Themes {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	for _, em := range e.Emotions {
		if strings.Contains(strings.ToLower(em), term) {
			return true
		}
	}
	return false
}

// ExportReport bundles everything derived for the user into one document.
func (s *Service) ExportReport() model.GrowthReport {
	snapshot, _ := s.Snapshot()
	return model.GrowthReport{
		GeneratedAt:   s.clock.Now(),
		Summary:       s.SummaryInsights(),
		Patterns:      snapshot,
		Timeline:      s.Timeline(0),
		RecentEntries: s.Entries(reportRecentLimit),
	}
}
