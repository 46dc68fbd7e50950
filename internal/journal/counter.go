package journal

import (
	"sort"

	"mygrow-go/internal/model"
)

// counter counts label occurrences while remembering first-seen order, so
// top-N views break count ties deterministically by insertion order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) addAll(labels []string) {
	for _, l := range labels {
		c.add(l)
	}
}

func (c *counter) len() int { return len(c.order) }

// entries returns every label with its count, in first-seen order.
func (c *counter) entries() []model.FrequencyEntry {
	out := make([]model.FrequencyEntry, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, model.FrequencyEntry{Label: label, Count: c.counts[label]})
	}
	return out
}

// mostCommon returns up to n labels ordered by descending count.
// Ties keep first-seen order (stable sort over insertion order).
func (c *counter) mostCommon(n int) []model.FrequencyEntry {
	out := c.entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
