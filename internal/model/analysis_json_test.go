package model_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"mygrow-go/internal/model"
)

func TestAnalysisResult_UnknownFieldsSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	raw := `{
		"primary_themes": ["Faith - learning to trust"],
		"key_insight": "An insight.",
		"pattern_insights": ["first", "second"],
		"core_question": "A question?",
		"custom_score": 0.75
	}`

	var a model.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if a.KeyInsight != "An insight." {
		t.Errorf("KeyInsight = %q", a.KeyInsight)
	}
	if got, want := a.Extra["pattern_insights"], []any{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Extra[pattern_insights] = %v, want %v", got, want)
	}
	if _, ok := a.Extra["custom_score"]; !ok {
		t.Errorf("Extra missing custom_score: %v", a.Extra)
	}
	if _, ok := a.Extra["core_question"]; ok {
		t.Errorf("known field core_question leaked into Extra")
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var b model.AnalysisResult
	if err := json.Unmarshal(out, &b); err != nil {
		t.Fatalf("re-Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(a.Extra, b.Extra) {
		t.Errorf("Extra changed across round trip:\nbefore: %v\nafter:  %v", a.Extra, b.Extra)
	}
	if !strings.Contains(string(out), "pattern_insights") {
		t.Errorf("marshaled output lost unknown field: %s", out)
	}
}

func TestAnalysisResult_Degraded(t *testing.T) {
	t.Parallel()

	if (model.AnalysisResult{}).Degraded() {
		t.Error("zero result reports degraded")
	}
	if !(model.AnalysisResult{Error: "analyzer offline"}).Degraded() {
		t.Error("result with error does not report degraded")
	}
}

func TestJournalEntry_Month(t *testing.T) {
	t.Parallel()

	if got := (model.JournalEntry{Date: "2026-01-31"}).Month(); got != "2026-01" {
		t.Errorf("Month() = %q, want 2026-01", got)
	}
	if got := (model.JournalEntry{Date: "bad"}).Month(); got != "bad" {
		t.Errorf("Month() on malformed date = %q, want passthrough", got)
	}
}
