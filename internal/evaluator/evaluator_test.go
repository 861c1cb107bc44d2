package evaluator

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/povarna/generative-ai-agents/context-agent/internal/config"
	"github.com/povarna/generative-ai-agents/context-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// MockLLMClient routes on prompt content so relevance and completeness can
// return different judgments within one EvaluateQuality call.
type MockLLMClient struct {
	RelevanceContent    string
	CompletenessContent string
	ErrorToReturn       error

	mu    sync.Mutex
	Calls int
}

func (m *MockLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content := m.RelevanceContent
	if strings.Contains(request.Prompt, "completeness") {
		content = m.CompletenessContent
	}
	return &llm.LLMResponse{Content: content, StopReason: "end_turn"}, nil
}

func (m *MockLLMClient) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return m.InvokeModel(ctx, request)
}

func newTestEvaluator(t *testing.T, client llm.LLMClient) *Evaluator {
	t.Helper()
	eval, err := New(config.Default(), client, newTestLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return eval
}

var testContexts = []models.ContextChunk{
	{Text: "The IAU defines a planet as a body that has cleared its orbital neighbourhood.", Source: "iau.txt"},
}

func TestEvaluateQuality_WeightedCombination(t *testing.T) {
	client := &MockLLMClient{
		RelevanceContent:    `{"score": 0.9, "explanation": "directly answers", "key_points": ["IAU definition"]}`,
		CompletenessContent: `{"score": 0.7, "explanation": "partially complete", "missing_aspects": ["examples"]}`,
	}
	eval := newTestEvaluator(t, client)

	result, err := eval.EvaluateQuality(context.Background(), "What is a planet?", testContexts)
	if err != nil {
		t.Fatalf("EvaluateQuality failed: %v", err)
	}

	expected := 0.5*0.9 + 0.5*0.7
	if math.Abs(result.OverallQualityScore-expected) > 1e-6 {
		t.Errorf("expected overall score %f, got %f", expected, result.OverallQualityScore)
	}
	if result.Relevance.RelevanceScore != 0.9 {
		t.Errorf("expected relevance 0.9, got %f", result.Relevance.RelevanceScore)
	}
	if result.Completeness.CompletenessScore != 0.7 {
		t.Errorf("expected completeness 0.7, got %f", result.Completeness.CompletenessScore)
	}
	if result.Recommendation != RecommendationHigh {
		t.Errorf("expected high quality recommendation, got %q", result.Recommendation)
	}
}

func TestEvaluateQuality_EmptyQuery(t *testing.T) {
	eval := newTestEvaluator(t, &MockLLMClient{})

	_, err := eval.EvaluateQuality(context.Background(), "", testContexts)
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}

	_, err = eval.EvaluateQuality(context.Background(), "   ", testContexts)
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery for whitespace query, got %v", err)
	}
}

func TestEvaluateQuality_EmptyContexts(t *testing.T) {
	client := &MockLLMClient{}
	eval := newTestEvaluator(t, client)

	result, err := eval.EvaluateQuality(context.Background(), "What is a planet?", nil)
	if err != nil {
		t.Fatalf("EvaluateQuality failed: %v", err)
	}

	if client.Calls != 0 {
		t.Errorf("expected no judgment calls for empty contexts, got %d", client.Calls)
	}
	if result.Relevance.RelevanceScore != 0.0 {
		t.Errorf("expected relevance 0.0, got %f", result.Relevance.RelevanceScore)
	}
	if !strings.Contains(result.Relevance.Explanation, "No context") {
		t.Errorf("expected explanation to mention missing context, got %q", result.Relevance.Explanation)
	}
	if result.OverallQualityScore != 0.0 {
		t.Errorf("expected overall 0.0, got %f", result.OverallQualityScore)
	}
	if result.Recommendation != RecommendationLow {
		t.Errorf("expected low quality recommendation, got %q", result.Recommendation)
	}
	if result.Relevance.KeyPoints == nil || result.Completeness.MissingAspects == nil {
		t.Error("expected list fields to be initialized")
	}
}

func TestEvaluateQuality_JudgmentUnavailable(t *testing.T) {
	client := &MockLLMClient{ErrorToReturn: errors.New("throttled")}
	eval := newTestEvaluator(t, client)

	result, err := eval.EvaluateQuality(context.Background(), "What is a planet?", testContexts)
	if err != nil {
		t.Fatalf("expected degraded result, got error: %v", err)
	}

	if result.OverallQualityScore != 0.0 {
		t.Errorf("expected overall 0.0, got %f", result.OverallQualityScore)
	}
	if result.Recommendation != RecommendationLow {
		t.Errorf("expected low quality recommendation, got %q", result.Recommendation)
	}
	if result.Relevance.Explanation == "" || result.Completeness.Explanation == "" {
		t.Error("expected failure explanations on both sub-results")
	}
}

func TestEvaluateQuality_MalformedJudgment(t *testing.T) {
	client := &MockLLMClient{
		RelevanceContent:    `this is not json at all`,
		CompletenessContent: `{"score": 0.8, "explanation": "fine"}`,
	}
	eval := newTestEvaluator(t, client)

	result, err := eval.EvaluateQuality(context.Background(), "What is a planet?", testContexts)
	if err != nil {
		t.Fatalf("expected degraded result, got error: %v", err)
	}

	if result.Relevance.RelevanceScore != 0.0 {
		t.Errorf("expected relevance fallback 0.0, got %f", result.Relevance.RelevanceScore)
	}
	if result.Relevance.Explanation == "" {
		t.Error("expected non-empty failure explanation")
	}
	if result.Completeness.CompletenessScore != 0.8 {
		t.Errorf("expected completeness 0.8, got %f", result.Completeness.CompletenessScore)
	}

	expected := 0.5 * 0.8
	if math.Abs(result.OverallQualityScore-expected) > 1e-6 {
		t.Errorf("expected overall %f, got %f", expected, result.OverallQualityScore)
	}
}

func TestEvaluateRelevance_KeyPointsCapped(t *testing.T) {
	client := &MockLLMClient{
		RelevanceContent: `{"score": 0.9, "explanation": "ok", "key_points": ["a", "b", "c", "d", "e"]}`,
	}
	eval := newTestEvaluator(t, client)

	result := eval.EvaluateRelevance(context.Background(), "q", testContexts)
	if len(result.KeyPoints) != 3 {
		t.Errorf("expected key points capped at 3, got %d", len(result.KeyPoints))
	}
}

func TestEvaluateCompleteness_MissingAspectsCapped(t *testing.T) {
	client := &MockLLMClient{
		CompletenessContent: `{"score": 0.4, "explanation": "gaps", "missing_aspects": ["a", "b", "c", "d"]}`,
	}
	eval := newTestEvaluator(t, client)

	result := eval.EvaluateCompleteness(context.Background(), "q", testContexts)
	if len(result.MissingAspects) != 3 {
		t.Errorf("expected missing aspects capped at 3, got %d", len(result.MissingAspects))
	}
}

func TestEvaluateQuality_Cancellation(t *testing.T) {
	client := &MockLLMClient{
		RelevanceContent:    `{"score": 0.9, "explanation": "ok"}`,
		CompletenessContent: `{"score": 0.9, "explanation": "ok"}`,
	}
	eval := newTestEvaluator(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := eval.EvaluateQuality(ctx, "What is a planet?", testContexts)
	if err != nil {
		t.Fatalf("expected degraded result on cancellation, got error: %v", err)
	}
	if result.OverallQualityScore != 0.0 {
		t.Errorf("expected overall 0.0 on cancellation, got %f", result.OverallQualityScore)
	}
	if result.Recommendation == "" {
		t.Error("expected recommendation to be populated on cancellation")
	}
}

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.0, RecommendationLow},
		{0.49999, RecommendationLow},
		{0.5, RecommendationModerate},
		{0.79999, RecommendationModerate},
		{0.8, RecommendationHigh},
		{1.0, RecommendationHigh},
	}

	for _, tt := range tests {
		if got := recommendationFor(tt.score); got != tt.expected {
			t.Errorf("score %f: expected %q, got %q", tt.score, tt.expected, got)
		}
	}
}

func TestEvaluateQuality_SequentialMatchesConcurrentShape(t *testing.T) {
	client := &MockLLMClient{
		RelevanceContent:    `{"score": 0.6, "explanation": "ok", "key_points": ["p"]}`,
		CompletenessContent: `{"score": 0.6, "explanation": "ok", "missing_aspects": []}`,
	}
	eval := newTestEvaluator(t, client)

	relevance := eval.EvaluateRelevance(context.Background(), "q", testContexts)
	completeness := eval.EvaluateCompleteness(context.Background(), "q", testContexts)

	combined, err := eval.EvaluateQuality(context.Background(), "q", testContexts)
	if err != nil {
		t.Fatalf("EvaluateQuality failed: %v", err)
	}

	if combined.Relevance.RelevanceScore != relevance.RelevanceScore {
		t.Errorf("concurrent relevance %f differs from sequential %f", combined.Relevance.RelevanceScore, relevance.RelevanceScore)
	}
	if combined.Completeness.CompletenessScore != completeness.CompletenessScore {
		t.Errorf("concurrent completeness %f differs from sequential %f", combined.Completeness.CompletenessScore, completeness.CompletenessScore)
	}
	if combined.Relevance.KeyPoints == nil || combined.Completeness.MissingAspects == nil {
		t.Error("expected all fields initialized in concurrent result")
	}
}
