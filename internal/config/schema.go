package config

// EvaluatorsConfig is the root of configs/evaluators.yaml. It carries the
// judgment prompt templates, per-evaluator model parameters, and the weights
// used when combining the sub-scores into the overall quality score.
type EvaluatorsConfig struct {
	Evaluators  map[string]EvaluatorConfiguration `yaml:"evaluators"`
	Aggregation AggregationConfig                 `yaml:"aggregation"`
}

// EvaluatorConfiguration configures a single sub-evaluation (relevance or
// completeness). The prompt is a text/template executed against the
// evaluation input.
type EvaluatorConfiguration struct {
	Prompt string       `yaml:"prompt"`
	Model  *ModelConfig `yaml:"model"`
}

type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

// AggregationConfig holds the sub-score weights. Equal weighting is the
// default; the two weights must sum to 1.
type AggregationConfig struct {
	RelevanceWeight    float64 `yaml:"relevance_weight"`
	CompletenessWeight float64 `yaml:"completeness_weight"`
}
