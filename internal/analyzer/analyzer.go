package analyzer

import (
	"context"

	"mygrow-go/internal/model"
)

// Analyzer annotates a journal text with themes, emotions, scripture
// passages and practical steps. The archive treats the result as opaque:
// it stores the full record verbatim and indexes only the extracted
// slices. Implementations should return a degraded result (non-empty
// Error field) rather than failing outright when their backend is
// unavailable, so that journal writes never block on analysis.
type Analyzer interface {
	Analyze(ctx context.Context, journalText string) (model.AnalysisResult, error)
}
