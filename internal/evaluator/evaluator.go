package evaluator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/context-agent/internal/config"
	"github.com/povarna/generative-ai-agents/context-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
	"github.com/rs/zerolog"
)

// ErrEmptyQuery is returned when evaluation is requested for an empty query.
// It is the only error EvaluateQuality surfaces; judgment failures degrade
// into a low-confidence result instead.
var ErrEmptyQuery = errors.New("query must not be empty")

// Recommendation bands. The bands partition [0,1] with inclusive lower
// bounds: 0.8 maps to high, 0.79999 to moderate.
const (
	RecommendationHigh     = "High quality context - suitable for use"
	RecommendationModerate = "Moderate quality - may need supplementation"
	RecommendationLow      = "Low quality - consider retrieving additional context"
)

const maxListItems = 3

// Weights combines the two sub-scores into the overall quality score.
// They must sum to 1; equal weighting is the default.
type Weights struct {
	Relevance    float64
	Completeness float64
}

type subEvaluator struct {
	name  string
	tmpl  *template.Template
	model config.ModelConfig
}

// Evaluator scores the quality of retrieved context against a query by
// delegating the semantic judgment to an LLM and normalizing its output into
// a machine-checkable result. It holds no per-request state; a single
// Evaluator is safe for concurrent use.
type Evaluator struct {
	llmClient    llm.LLMClient
	relevance    subEvaluator
	completeness subEvaluator
	weights      Weights
	logger       *zerolog.Logger
}

func New(cfg *config.EvaluatorsConfig, llmClient llm.LLMClient, logger *zerolog.Logger) (*Evaluator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("evaluators config is nil")
	}

	relevance, err := newSubEvaluator(config.EvaluatorRelevance, cfg)
	if err != nil {
		return nil, err
	}
	completeness, err := newSubEvaluator(config.EvaluatorCompleteness, cfg)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		llmClient:    llmClient,
		relevance:    relevance,
		completeness: completeness,
		weights: Weights{
			Relevance:    cfg.Aggregation.RelevanceWeight,
			Completeness: cfg.Aggregation.CompletenessWeight,
		},
		logger: logger,
	}, nil
}

func newSubEvaluator(name string, cfg *config.EvaluatorsConfig) (subEvaluator, error) {
	evalCfg, ok := cfg.Evaluators[name]
	if !ok {
		return subEvaluator{}, fmt.Errorf("evaluator %q missing from config", name)
	}

	tmpl, err := template.New(name).Parse(evalCfg.Prompt)
	if err != nil {
		return subEvaluator{}, fmt.Errorf("failed to parse prompt template for evaluator %s: %w", name, err)
	}

	if evalCfg.Model == nil {
		return subEvaluator{}, fmt.Errorf("evaluator %s has nil model config (should be populated by config loader)", name)
	}

	return subEvaluator{
		name:  name,
		tmpl:  tmpl,
		model: *evalCfg.Model,
	}, nil
}

// EvaluateRelevance scores how relevant the retrieved contexts are to the
// query. Empty contexts score 0.0 without a judgment call. The judgment is
// produced by a generative model, so repeated calls for the same input may
// yield different scores; only the fallback paths are deterministic.
func (e *Evaluator) EvaluateRelevance(ctx context.Context, query string, contexts []models.ContextChunk) models.RelevanceResult {
	if len(contexts) == 0 {
		return models.RelevanceResult{
			RelevanceScore: 0.0,
			Explanation:    "No context was provided for evaluation",
			KeyPoints:      []string{},
		}
	}

	judgment, err := e.judge(ctx, e.relevance, query, contexts)
	if err != nil {
		e.logger.Error().Err(err).Str("evaluator", e.relevance.name).Msg("judgment failed")
		return models.RelevanceResult{
			RelevanceScore: 0.0,
			Explanation:    fmt.Sprintf("Evaluation error: %v", err),
			KeyPoints:      []string{},
		}
	}

	return models.RelevanceResult{
		RelevanceScore: judgment.Score,
		Explanation:    judgment.Explanation,
		KeyPoints:      capList(judgment.KeyPoints, maxListItems),
	}
}

// EvaluateCompleteness scores whether the contexts are sufficient to answer
// the query. Same constraints, fallback policy, and non-determinism caveat
// as EvaluateRelevance.
func (e *Evaluator) EvaluateCompleteness(ctx context.Context, query string, contexts []models.ContextChunk) models.CompletenessResult {
	if len(contexts) == 0 {
		return models.CompletenessResult{
			CompletenessScore: 0.0,
			Explanation:       "No context was provided for evaluation",
			MissingAspects:    []string{},
		}
	}

	judgment, err := e.judge(ctx, e.completeness, query, contexts)
	if err != nil {
		e.logger.Error().Err(err).Str("evaluator", e.completeness.name).Msg("judgment failed")
		return models.CompletenessResult{
			CompletenessScore: 0.0,
			Explanation:       fmt.Sprintf("Evaluation error: %v", err),
			MissingAspects:    []string{},
		}
	}

	return models.CompletenessResult{
		CompletenessScore: judgment.Score,
		Explanation:       judgment.Explanation,
		MissingAspects:    capList(judgment.MissingAspects, maxListItems),
	}
}

// EvaluateQuality runs both sub-evaluations concurrently over the same
// immutable input and combines them into a single verdict. Judgment failures
// never surface as errors; the failed side scores 0.0 with an explanation
// naming the failure. The only returned error is ErrEmptyQuery.
func (e *Evaluator) EvaluateQuality(ctx context.Context, query string, contexts []models.ContextChunk) (models.EvaluationResult, error) {
	if strings.TrimSpace(query) == "" {
		return models.EvaluationResult{}, ErrEmptyQuery
	}

	now := time.Now()

	var (
		wg           sync.WaitGroup
		relevance    models.RelevanceResult
		completeness models.CompletenessResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		relevance = e.EvaluateRelevance(ctx, query, contexts)
	}()
	go func() {
		defer wg.Done()
		completeness = e.EvaluateCompleteness(ctx, query, contexts)
	}()
	wg.Wait()

	overall := e.weights.Relevance*relevance.RelevanceScore + e.weights.Completeness*completeness.CompletenessScore
	if overall < 0.0 {
		overall = 0.0
	}
	if overall > 1.0 {
		overall = 1.0
	}

	result := models.EvaluationResult{
		OverallQualityScore: overall,
		Relevance:           relevance,
		Completeness:        completeness,
		Recommendation:      recommendationFor(overall),
	}

	e.logger.Info().
		Float64("overall_score", overall).
		Float64("relevance_score", relevance.RelevanceScore).
		Float64("completeness_score", completeness.CompletenessScore).
		Int("contexts", len(contexts)).
		Dur("duration", time.Since(now)).
		Msg("context evaluation complete")

	return result, nil
}

func recommendationFor(score float64) string {
	if score >= 0.8 {
		return RecommendationHigh
	}
	if score >= 0.5 {
		return RecommendationModerate
	}
	return RecommendationLow
}

// judge builds the prompt, invokes the judgment model, and parses its reply.
func (e *Evaluator) judge(ctx context.Context, sub subEvaluator, query string, contexts []models.ContextChunk) (judgmentResponse, error) {
	prompt, err := sub.buildPrompt(query, contexts)
	if err != nil {
		return judgmentResponse{}, fmt.Errorf("failed to build prompt: %w", err)
	}

	request := llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   sub.model.MaxTokens,
		Temperature: sub.model.Temperature,
	}

	var resp *llm.LLMResponse
	if sub.model.Retry {
		resp, err = e.llmClient.InvokeModelWithRetry(ctx, request)
	} else {
		resp, err = e.llmClient.InvokeModel(ctx, request)
	}
	if err != nil {
		return judgmentResponse{}, fmt.Errorf("judgment call failed: %w", err)
	}

	judgment, err := parseJudgment(resp.Content)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("evaluator", sub.name).
			Str("content", resp.Content).
			Msg("failed to parse judgment response")
		return judgmentResponse{}, err
	}

	e.logger.Debug().
		Str("evaluator", sub.name).
		Float64("score", judgment.Score).
		Msg("judgment completed")

	return judgment, nil
}

type promptInput struct {
	Query   string
	Context string
}

func (s subEvaluator) buildPrompt(query string, contexts []models.ContextChunk) (string, error) {
	var buf bytes.Buffer
	input := promptInput{
		Query:   query,
		Context: renderContexts(contexts),
	}
	if err := s.tmpl.Execute(&buf, input); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// renderContexts flattens the ordered chunks into a single prompt section,
// keeping source attributions visible to the judgment model.
func renderContexts(contexts []models.ContextChunk) string {
	parts := make([]string, 0, len(contexts))
	for _, chunk := range contexts {
		if chunk.Source != "" {
			parts = append(parts, fmt.Sprintf("[%s]\n%s", chunk.Source, chunk.Text))
		} else {
			parts = append(parts, chunk.Text)
		}
	}
	return strings.Join(parts, "\n\n---\n\n")
}
