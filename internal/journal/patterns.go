package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mygrow-go/internal/model"
)

// Top-N sizes for the ranked snapshot views.
const (
	topThemes   = 10
	topEmotions = 5
	topVerses   = 5
	topBooks    = 5
)

// Cadence labels derived from entries per day over the writing span.
const (
	CadenceJustStarting = "just starting"
	CadenceDaily        = "daily"
	CadenceRegular      = "regular"
	CadenceWeekly       = "weekly"
	CadenceOccasional   = "occasional"
)

// growthWindow is the number of entries compared at each end of the history
// when computing growth indicators.
const growthWindow = 3

// Vocabulary the growth heuristics scan for. The indicator strings these
// produce are template text; only the triggering conditions are contractual.
var (
	completionVocab = []string{"completed", "done", "finished", "accomplished", "achieved"}
	gratitudeVocab  = []string{"thank", "grateful", "appreciate", "blessed", "thankful"}
)

// ComputeSnapshot derives the full statistics snapshot from the entry list.
// It is a pure function: the same entries and now always produce the same
// snapshot. A malformed entry fails the whole computation with a
// *DataIntegrityError rather than being skipped, so downstream statistics
// are always exact.
func ComputeSnapshot(entries []model.JournalEntry, now time.Time) (model.PatternSnapshot, error) {
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return model.PatternSnapshot{}, err
		}
	}

	themes := newCounter()
	emotions := newCounter()
	verses := newCounter()
	books := newCounter()
	totalWords := 0

	for _, e := range entries {
		themes.addAll(e.Themes)
		emotions.addAll(e.Emotions)
		for _, p := range e.BiblePassages {
			verses.add(p.Reference)
			if book, ok := bookOf(p.Reference); ok {
				books.add(book)
			}
		}
		totalWords += e.WordCount
	}

	avg := 0.0
	if len(entries) > 0 {
		avg = float64(totalWords) / float64(len(entries))
	}

	return model.PatternSnapshot{
		LastUpdated:  now,
		TotalEntries: len(entries),
		ThemePatterns: model.ThemePatterns{
			MostCommon:     themes.mostCommon(topThemes),
			AllFrequencies: themes.entries(),
		},
		EmotionPatterns: model.EmotionPatterns{
			MostCommon: emotions.mostCommon(topEmotions),
			Trends:     emotionTrends(entries),
		},
		BiblePatterns: model.BiblePatterns{
			MostReferenced: verses.mostCommon(topVerses),
			FavoriteBooks:  books.mostCommon(topBooks),
		},
		WritingPatterns: model.WritingPatterns{
			AverageLength: avg,
			Cadence:       cadence(entries),
		},
		GrowthIndicators: growthIndicators(entries),
	}, nil
}

func validateEntry(e model.JournalEntry) error {
	switch {
	case e.ID == "":
		return &DataIntegrityError{EntryID: "(unknown)", Reason: "missing id"}
	case e.Timestamp.IsZero():
		return &DataIntegrityError{EntryID: e.ID, Reason: "missing timestamp"}
	case e.WordCount < 0:
		return &DataIntegrityError{EntryID: e.ID, Reason: fmt.Sprintf("negative word count %d", e.WordCount)}
	case e.Date != e.Timestamp.Format("2006-01-02"):
		return &DataIntegrityError{EntryID: e.ID, Reason: fmt.Sprintf("date %q inconsistent with timestamp", e.Date)}
	}
	return nil
}

// bookOf extracts the leading book token from a verse reference, e.g.
// "Matthew" from "Matthew 6:33". References without a space have no
// recognizable book.
func bookOf(reference string) (string, bool) {
	book, _, found := strings.Cut(reference, " ")
	if !found || book == "" {
		return "", false
	}
	return book, true
}

// cadence maps entries-per-day over the writing span to a categorical label.
func cadence(entries []model.JournalEntry) string {
	if len(entries) < 2 {
		return CadenceJustStarting
	}

	dates := make([]string, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
	}
	sort.Strings(dates)

	first, err1 := time.Parse("2006-01-02", dates[0])
	last, err2 := time.Parse("2006-01-02", dates[len(dates)-1])
	if err1 != nil || err2 != nil {
		return CadenceJustStarting
	}

	spanDays := int(last.Sub(first).Hours()/24) + 1
	ratio := float64(len(entries)) / float64(spanDays)

	switch {
	case ratio >= 0.7:
		return CadenceDaily
	case ratio >= 0.3:
		return CadenceRegular
	case ratio >= 0.14:
		return CadenceWeekly
	default:
		return CadenceOccasional
	}
}

// emotionTrends buckets entries by ISO year-week and reports the two most
// frequent emotions per week. Needs at least two entries to be meaningful;
// below that it returns an empty map so the snapshot serializes a stable
// object shape.
func emotionTrends(entries []model.JournalEntry) map[string][]model.FrequencyEntry {
	if len(entries) < 2 {
		return map[string][]model.FrequencyEntry{}
	}

	weekly := make(map[string]*counter)
	for _, e := range entries {
		year, week := e.Timestamp.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		c, ok := weekly[key]
		if !ok {
			c = newCounter()
			weekly[key] = c
		}
		c.addAll(e.Emotions)
	}

	trends := make(map[string][]model.FrequencyEntry, len(weekly))
	for week, c := range weekly {
		if c.len() == 0 {
			continue
		}
		trends[week] = c.mostCommon(2)
	}
	return trends
}

// growthIndicators compares the earliest and most recent writing windows.
func growthIndicators(entries []model.JournalEntry) model.GrowthIndicators {
	if len(entries) < growthWindow {
		return model.GrowthIndicators{Stage: "Beginning", Indicators: []string{}}
	}

	older := entries[:growthWindow]
	recent := entries[len(entries)-growthWindow:]

	olderThemes := themeSet(older)
	recentThemes := themeSet(recent)

	olderText := joinedText(older)
	recentText := joinedText(recent)

	var indicators []string

	if len(recentThemes) > len(olderThemes) {
		indicators = append(indicators, "Exploring more spiritual themes")
	}

	for _, word := range completionVocab {
		if strings.Contains(recentText, word) {
			indicators = append(indicators, "Taking practical steps forward")
			break
		}
	}

	if vocabHits(recentText, gratitudeVocab) > vocabHits(olderText, gratitudeVocab) {
		indicators = append(indicators, "Growing in gratitude")
	}

	stage := "Developing"
	if len(indicators) > 0 {
		stage = "Growing"
	}
	if indicators == nil {
		indicators = []string{}
	}

	return model.GrowthIndicators{
		Stage:                  stage,
		Indicators:             indicators,
		ThemeDiversityIncrease: len(recentThemes) - len(olderThemes),
	}
}

func themeSet(entries []model.JournalEntry) map[string]bool {
	set := make(map[string]bool)
	for _, e := range entries {
		for _, t := range e.Themes {
			set[t] = true
		}
	}
	return set
}

func joinedText(entries []model.JournalEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = strings.ToLower(e.JournalText)
	}
	return strings.Join(parts, " ")
}

// vocabHits counts how many distinct vocabulary words occur in text.
func vocabHits(text string, vocab []string) int {
	hits := 0
	for _, word := range vocab {
		if strings.Contains(text, word) {
			hits++
		}
	}
	return hits
}
