package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	EvaluatorRelevance    = "relevance"
	EvaluatorCompleteness = "completeness"
)

func LoadEvaluatorsConfig() (*EvaluatorsConfig, error) {
	path := os.Getenv("EVALUATORS_CONFIG_PATH")
	if path == "" {
		path = "configs/evaluators.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg EvaluatorsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no YAML file is
// available (tests, MCP over stdio started outside the repo root).
func Default() *EvaluatorsConfig {
	cfg := &EvaluatorsConfig{
		Evaluators: map[string]EvaluatorConfiguration{
			EvaluatorRelevance:    {Prompt: defaultRelevancePrompt},
			EvaluatorCompleteness: {Prompt: defaultCompletenessPrompt},
		},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *EvaluatorsConfig) {
	for name, ev := range cfg.Evaluators {
		if ev.Model == nil {
			ev.Model = &ModelConfig{}
		}
		if ev.Model.MaxTokens == 0 {
			ev.Model.MaxTokens = 512
		}
		cfg.Evaluators[name] = ev
	}

	if cfg.Aggregation.RelevanceWeight == 0 && cfg.Aggregation.CompletenessWeight == 0 {
		cfg.Aggregation.RelevanceWeight = 0.5
		cfg.Aggregation.CompletenessWeight = 0.5
	}
}

func (c *EvaluatorsConfig) Validate() error {
	for _, name := range []string{EvaluatorRelevance, EvaluatorCompleteness} {
		ev, ok := c.Evaluators[name]
		if !ok {
			return fmt.Errorf("evaluator %q missing from config", name)
		}
		if ev.Prompt == "" {
			return fmt.Errorf("evaluator %q has an empty prompt", name)
		}
	}

	sum := c.Aggregation.RelevanceWeight + c.Aggregation.CompletenessWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("aggregation weights must sum to 1, got %f", sum)
	}
	if c.Aggregation.RelevanceWeight < 0 || c.Aggregation.CompletenessWeight < 0 {
		return fmt.Errorf("aggregation weights must be non-negative")
	}

	return nil
}
