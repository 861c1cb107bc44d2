package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEvaluatorsConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "evaluators.yaml")

	configContent := `evaluators:
  relevance:
    prompt: |
      Query: {{.Query}}
      Context: {{.Context}}
      {"score": <float>, "explanation": "<string>"}
    model:
      max_tokens: 128
      temperature: 0.0
      retry: true

  completeness:
    prompt: |
      Query: {{.Query}}
      Context: {{.Context}}
      {"score": <float>, "explanation": "<string>"}

aggregation:
  relevance_weight: 0.6
  completeness_weight: 0.4
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("EVALUATORS_CONFIG_PATH", configPath)
	defer os.Unsetenv("EVALUATORS_CONFIG_PATH")

	cfg, err := LoadEvaluatorsConfig()
	if err != nil {
		t.Fatalf("LoadEvaluatorsConfig() failed: %v", err)
	}

	relevance := cfg.Evaluators[EvaluatorRelevance]
	if relevance.Model.MaxTokens != 128 {
		t.Errorf("Expected relevance max_tokens=128, got %d", relevance.Model.MaxTokens)
	}
	if !relevance.Model.Retry {
		t.Error("Expected relevance retry=true")
	}

	// Completeness has no model block, so defaults apply
	completeness := cfg.Evaluators[EvaluatorCompleteness]
	if completeness.Model == nil {
		t.Fatal("Expected completeness.Model to be populated with defaults")
	}
	if completeness.Model.MaxTokens != 512 {
		t.Errorf("Expected completeness max_tokens=512 (default), got %d", completeness.Model.MaxTokens)
	}

	if cfg.Aggregation.RelevanceWeight != 0.6 {
		t.Errorf("Expected relevance weight 0.6, got %f", cfg.Aggregation.RelevanceWeight)
	}
	if cfg.Aggregation.CompletenessWeight != 0.4 {
		t.Errorf("Expected completeness weight 0.4, got %f", cfg.Aggregation.CompletenessWeight)
	}
}

func TestLoadEvaluatorsConfig_FileNotFound(t *testing.T) {
	os.Setenv("EVALUATORS_CONFIG_PATH", "/nonexistent/path/evaluators.yaml")
	defer os.Unsetenv("EVALUATORS_CONFIG_PATH")

	if _, err := LoadEvaluatorsConfig(); err == nil {
		t.Error("Expected error for nonexistent config file")
	}
}

func TestLoadEvaluatorsConfig_InvalidWeights(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "evaluators.yaml")

	configContent := `evaluators:
  relevance:
    prompt: "Query: {{.Query}}"
  completeness:
    prompt: "Query: {{.Query}}"

aggregation:
  relevance_weight: 0.6
  completeness_weight: 0.6
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("EVALUATORS_CONFIG_PATH", configPath)
	defer os.Unsetenv("EVALUATORS_CONFIG_PATH")

	_, err := LoadEvaluatorsConfig()
	if err == nil {
		t.Fatal("Expected error for weights that do not sum to 1")
	}
	if !strings.Contains(err.Error(), "sum to 1") {
		t.Errorf("Expected weight sum error, got: %v", err)
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() config failed validation: %v", err)
	}

	if cfg.Aggregation.RelevanceWeight != 0.5 || cfg.Aggregation.CompletenessWeight != 0.5 {
		t.Errorf("Expected equal default weights, got %f/%f",
			cfg.Aggregation.RelevanceWeight, cfg.Aggregation.CompletenessWeight)
	}

	for _, name := range []string{EvaluatorRelevance, EvaluatorCompleteness} {
		ev := cfg.Evaluators[name]
		if ev.Prompt == "" {
			t.Errorf("Expected built-in prompt for %q", name)
		}
		if ev.Model == nil || ev.Model.MaxTokens != 512 {
			t.Errorf("Expected default model for %q", name)
		}
	}
}

func TestValidate_MissingEvaluator(t *testing.T) {
	cfg := &EvaluatorsConfig{
		Evaluators: map[string]EvaluatorConfiguration{
			EvaluatorRelevance: {Prompt: "test"},
		},
		Aggregation: AggregationConfig{RelevanceWeight: 0.5, CompletenessWeight: 0.5},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for missing completeness evaluator")
	}
	if !strings.Contains(err.Error(), "completeness") {
		t.Errorf("Expected error to name the missing evaluator, got: %v", err)
	}
}

func TestValidate_EmptyPrompt(t *testing.T) {
	cfg := &EvaluatorsConfig{
		Evaluators: map[string]EvaluatorConfiguration{
			EvaluatorRelevance:    {Prompt: ""},
			EvaluatorCompleteness: {Prompt: "test"},
		},
		Aggregation: AggregationConfig{RelevanceWeight: 0.5, CompletenessWeight: 0.5},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for empty prompt")
	}
}

func TestValidate_NegativeWeights(t *testing.T) {
	cfg := &EvaluatorsConfig{
		Evaluators: map[string]EvaluatorConfiguration{
			EvaluatorRelevance:    {Prompt: "test"},
			EvaluatorCompleteness: {Prompt: "test"},
		},
		Aggregation: AggregationConfig{RelevanceWeight: 1.5, CompletenessWeight: -0.5},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for negative weight")
	}
}
