package models

type TaskType string

const (
	TaskTypeDefault          TaskType = "default"
	TaskTypeDocumentAnalysis TaskType = "document_analysis"
	TaskTypeResearch         TaskType = "research"
	TaskTypeCalculation      TaskType = "calculation"
	TaskTypeGeneral          TaskType = "general"
)

// ValidTaskType reports whether t is one of the supported task types.
// An empty task type is treated as "default" by the agent.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TaskTypeDefault, TaskTypeDocumentAnalysis, TaskTypeResearch, TaskTypeCalculation, TaskTypeGeneral:
		return true
	}
	return false
}

// ContextChunk is a single unit of retrieved text. Chunks are owned by the
// retrieval layer and passed by value into the evaluator; they are never
// mutated after retrieval.
type ContextChunk struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// EvaluationRequest is the evaluator's input message.
type EvaluationRequest struct {
	EventID  string         `json:"event_id,omitempty"`
	Query    string         `json:"query"`
	Contexts []ContextChunk `json:"contexts"`
}

type RelevanceResult struct {
	RelevanceScore float64  `json:"relevance_score"`
	Explanation    string   `json:"explanation"`
	KeyPoints      []string `json:"key_points"`
}

type CompletenessResult struct {
	CompletenessScore float64  `json:"completeness_score"`
	Explanation       string   `json:"explanation"`
	MissingAspects    []string `json:"missing_aspects"`
}

// EvaluationResult is the structured quality verdict for a (query, contexts)
// pair. OverallQualityScore is a deterministic weighted combination of the
// two sub-scores and always lies in [0,1].
type EvaluationResult struct {
	EventID             string             `json:"event_id,omitempty"`
	OverallQualityScore float64            `json:"overall_quality_score"`
	Relevance           RelevanceResult    `json:"relevance"`
	Completeness        CompletenessResult `json:"completeness"`
	Recommendation      string             `json:"recommendation"`
}
