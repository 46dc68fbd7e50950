package journal

import (
	"fmt"

	"mygrow-go/internal/model"
)

// Milestone types in the default rule set.
const (
	MilestoneLongReflection      = "long-reflection"
	MilestoneNewTheme            = "new-theme"
	MilestoneScriptureEngagement = "scripture-engagement"
	MilestoneFiveEntries         = "five-entries"
)

// longReflectionWords is the word count above which an entry counts as a
// deep reflection.
const longReflectionWords = 300

// fiveEntriesCount is the entry total that marks the habit-building milestone.
const fiveEntriesCount = 5

// MilestoneRule inspects a newly appended entry and decides whether its
// milestone type fires. Each type fires at most once ever; the at-most-once
// gate lives in DetectMilestones, so rules only judge the entry itself.
type MilestoneRule struct {
	Type string

	// Detect returns the event description and whether the rule fires.
	// totalEntries is the entry count including the new entry.
	Detect func(entry model.JournalEntry, totalEntries int) (string, bool)
}

// DefaultMilestoneRules returns the built-in milestone rule set.
func DefaultMilestoneRules() []MilestoneRule {
	return []MilestoneRule{
		{
			Type: MilestoneLongReflection,
			Detect: func(e model.JournalEntry, _ int) (string, bool) {
				if e.WordCount > longReflectionWords {
					return fmt.Sprintf("Deep reflection (%d words)", e.WordCount), true
				}
				return "", false
			},
		},
		{
			Type: MilestoneNewTheme,
			Detect: func(e model.JournalEntry, _ int) (string, bool) {
				if len(e.Themes) > 0 {
					return fmt.Sprintf("Exploring new theme: %s", e.Themes[0]), true
				}
				return "", false
			},
		},
		{
			Type: MilestoneScriptureEngagement,
			Detect: func(e model.JournalEntry, _ int) (string, bool) {
				if len(e.BiblePassages) >= 2 {
					return "Engaging deeply with Scripture", true
				}
				return "", false
			},
		},
		{
			Type: MilestoneFiveEntries,
			Detect: func(_ model.JournalEntry, total int) (string, bool) {
				if total == fiveEntriesCount {
					return "Completed 5 journal entries - building a habit!", true
				}
				return "", false
			},
		},
	}
}

// DetectMilestones evaluates the rules against a newly appended entry.
// A rule whose type already appears in the existing timeline never fires
// again (first occurrence wins). Pure function, no side effects.
func DetectMilestones(entry model.JournalEntry, totalEntries int, existing []model.MilestoneEvent, rules []MilestoneRule) []model.MilestoneEvent {
	seen := make(map[string]bool, len(existing))
	for _, ev := range existing {
		seen[ev.Type] = true
	}

	var events []model.MilestoneEvent
	for _, rule := range rules {
		if seen[rule.Type] {
			continue
		}
		desc, fired := rule.Detect(entry, totalEntries)
		if !fired {
			continue
		}
		events = append(events, model.MilestoneEvent{
			Timestamp:   entry.Timestamp,
			Type:        rule.Type,
			Description: desc,
			EntryID:     entry.ID,
		})
	}
	return events
}
