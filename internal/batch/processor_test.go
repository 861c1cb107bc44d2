package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

type fakeEvaluator struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeEvaluator) EvaluateQuality(ctx context.Context, query string, contexts []models.ContextChunk) (models.EvaluationResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if query == "" {
		return models.EvaluationResult{}, fmt.Errorf("query must not be empty")
	}
	return models.EvaluationResult{OverallQualityScore: 0.75}, nil
}

func TestProcessor_EvaluatesAllRecords(t *testing.T) {
	records := make([]InputRecord, 10)
	for i := range records {
		records[i] = InputRecord{
			LineNumber: i + 1,
			Request: models.EvaluationRequest{
				EventID: fmt.Sprintf("event-%d", i),
				Query:   "What is Go?",
			},
		}
	}

	eval := &fakeEvaluator{}
	processor := NewProcessor(eval, 3, newTestLogger())

	count := 0
	for result := range processor.Process(context.Background(), records) {
		count++
		if result.OverallQualityScore != 0.75 {
			t.Errorf("unexpected score %f", result.OverallQualityScore)
		}
		if result.EventID == "" {
			t.Error("expected event ID on result")
		}
	}

	if count != 10 {
		t.Errorf("expected 10 results, got %d", count)
	}
	if eval.calls != 10 {
		t.Errorf("expected 10 evaluator calls, got %d", eval.calls)
	}
}

func TestProcessor_SkipsBadRecords(t *testing.T) {
	records := []InputRecord{
		{LineNumber: 1, Request: models.EvaluationRequest{EventID: "ok", Query: "What is Go?"}},
		{LineNumber: 2, Error: fmt.Errorf("parse error")},
		{LineNumber: 3, Request: models.EvaluationRequest{EventID: "rejected", Query: ""}},
	}

	processor := NewProcessor(&fakeEvaluator{}, 2, newTestLogger())

	count := 0
	for result := range processor.Process(context.Background(), records) {
		count++
		if result.EventID != "ok" {
			t.Errorf("unexpected result for event %q", result.EventID)
		}
	}

	if count != 1 {
		t.Errorf("expected 1 result, got %d", count)
	}
}
