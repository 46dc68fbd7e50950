package journal_test

import (
	"strings"
	"testing"

	"mygrow-go/internal/journal"
	"mygrow-go/internal/model"
)

func TestDetectMilestones_DefaultRules(t *testing.T) {
	t.Parallel()

	rules := journal.DefaultMilestoneRules()

	t.Run("long reflection requires more than 300 words", func(t *testing.T) {
		t.Parallel()

		entry := entryAt("e1", day(0), strings.Repeat("word ", 301), nil, nil, nil)
		events := journal.DetectMilestones(entry, 1, nil, rules)
		if !hasType(events, journal.MilestoneLongReflection) {
			t.Errorf("301 words: events = %v, want long-reflection", events)
		}

		entry = entryAt("e2", day(0), strings.Repeat("word ", 300), nil, nil, nil)
		events = journal.DetectMilestones(entry, 1, nil, rules)
		if hasType(events, journal.MilestoneLongReflection) {
			t.Errorf("exactly 300 words: events = %v, want no long-reflection", events)
		}
	})

	t.Run("new theme names the first theme", func(t *testing.T) {
		t.Parallel()

		entry := entryAt("e1", day(0), "text", []string{"Faith", "Hope"}, nil, nil)
		events := journal.DetectMilestones(entry, 1, nil, rules)

		ev, ok := findType(events, journal.MilestoneNewTheme)
		if !ok {
			t.Fatalf("events = %v, want new-theme", events)
		}
		if want := "Exploring new theme: Faith"; ev.Description != want {
			t.Errorf("description = %q, want %q", ev.Description, want)
		}
	})

	t.Run("scripture engagement requires two passages", func(t *testing.T) {
		t.Parallel()

		one := entryAt("e1", day(0), "text", nil, nil, []model.Passage{{Reference: "Psalm 23:1"}})
		if events := journal.DetectMilestones(one, 1, nil, rules); hasType(events, journal.MilestoneScriptureEngagement) {
			t.Errorf("one passage: events = %v, want no scripture-engagement", events)
		}

		two := entryAt("e2", day(0), "text", nil, nil,
			[]model.Passage{{Reference: "Psalm 23:1"}, {Reference: "John 3:16"}})
		if events := journal.DetectMilestones(two, 1, nil, rules); !hasType(events, journal.MilestoneScriptureEngagement) {
			t.Errorf("two passages: events = %v, want scripture-engagement", events)
		}
	})

	t.Run("five entries fires on the fifth only", func(t *testing.T) {
		t.Parallel()

		entry := entryAt("e1", day(0), "text", nil, nil, nil)
		if events := journal.DetectMilestones(entry, 4, nil, rules); hasType(events, journal.MilestoneFiveEntries) {
			t.Errorf("total 4: events = %v, want no five-entries", events)
		}
		if events := journal.DetectMilestones(entry, 5, nil, rules); !hasType(events, journal.MilestoneFiveEntries) {
			t.Errorf("total 5: want five-entries")
		}
		if events := journal.DetectMilestones(entry, 6, nil, rules); hasType(events, journal.MilestoneFiveEntries) {
			t.Errorf("total 6: events = %v, want no five-entries", events)
		}
	})
}

func TestDetectMilestones_FiresAtMostOncePerType(t *testing.T) {
	t.Parallel()

	rules := journal.DefaultMilestoneRules()
	entry := entryAt("e9", day(1), "text", []string{"Hope"}, nil, nil)

	existing := []model.MilestoneEvent{
		{Type: journal.MilestoneNewTheme, EntryID: "e1", Timestamp: day(0)},
	}

	events := journal.DetectMilestones(entry, 2, existing, rules)
	if hasType(events, journal.MilestoneNewTheme) {
		t.Errorf("events = %v, want new-theme suppressed by existing timeline", events)
	}
}

func TestDetectMilestones_EventCarriesEntryBackReference(t *testing.T) {
	t.Parallel()

	entry := entryAt("e7", day(2), "text", []string{"Peace"}, nil, nil)
	events := journal.DetectMilestones(entry, 1, nil, journal.DefaultMilestoneRules())

	ev, ok := findType(events, journal.MilestoneNewTheme)
	if !ok {
		t.Fatalf("events = %v, want new-theme", events)
	}
	if ev.EntryID != "e7" {
		t.Errorf("EntryID = %q, want e7", ev.EntryID)
	}
	if !ev.Timestamp.Equal(entry.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", ev.Timestamp, entry.Timestamp)
	}
}

func hasType(events []model.MilestoneEvent, typ string) bool {
	_, ok := findType(events, typ)
	return ok
}

func findType(events []model.MilestoneEvent, typ string) (model.MilestoneEvent, bool) {
	for _, ev := range events {
		if ev.Type == typ {
			return ev, true
		}
	}
	return model.MilestoneEvent{}, false
}
