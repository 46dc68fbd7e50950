package model

import (
	"encoding/json"
	"fmt"
)

// knownAnalysisFields are the keys the archive understands. Anything else the
// analyzer sends is carried in Extra so entries round-trip losslessly.
var knownAnalysisFields = map[string]bool{
	"primary_themes":  true,
	"emotional_state": true,
	"bible_passages":  true,
	"practical_steps": true,
	"core_question":   true,
	"key_insight":     true,
	"prayer_starter":  true,
	"encouragement":   true,
	"error":           true,
}

// analysisAlias avoids recursing into the custom marshalers.
type analysisAlias AnalysisResult

func (a AnalysisResult) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(analysisAlias(a))
	if err != nil {
		return nil, fmt.Errorf("marshaling analysis: %w", err)
	}
	if len(a.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]any, len(a.Extra)+len(knownAnalysisFields))
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, fmt.Errorf("remarshaling analysis: %w", err)
	}
	for k, v := range a.Extra {
		if !knownAnalysisFields[k] {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

func (a *AnalysisResult) UnmarshalJSON(data []byte) error {
	var alias analysisAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("unmarshaling analysis: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling analysis fields: %w", err)
	}

	for k := range raw {
		if knownAnalysisFields[k] {
			continue
		}
		var v any
		if err := json.Unmarshal(raw[k], &v); err != nil {
			return fmt.Errorf("unmarshaling analysis field %q: %w", k, err)
		}
		if alias.Extra == nil {
			alias.Extra = make(map[string]any)
		}
		alias.Extra[k] = v
	}

	*a = AnalysisResult(alias)
	return nil
}
