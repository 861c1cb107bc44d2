package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits evaluation results either one JSON object per line or as a
// single summary object on Close.
type Writer struct {
	output  io.Writer
	format  string
	encoder *json.Encoder
	summary summaryStats
	logger  *zerolog.Logger
}

type summaryStats struct {
	Total           int            `json:"total"`
	ScoreSum        float64        `json:"-"`
	MeanScore       float64        `json:"mean_overall_quality_score"`
	Recommendations map[string]int `json:"recommendations"`
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatJSONL, FormatSummary:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &Writer{
		output:  output,
		format:  format,
		encoder: json.NewEncoder(output),
		summary: summaryStats{Recommendations: map[string]int{}},
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.EvaluationResult) error {
	w.summary.Total++
	w.summary.ScoreSum += result.OverallQualityScore
	w.summary.Recommendations[result.Recommendation]++

	if w.format == FormatJSONL {
		return w.encoder.Encode(result)
	}
	return nil
}

// Close flushes the summary in summary mode.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	if w.summary.Total > 0 {
		w.summary.MeanScore = w.summary.ScoreSum / float64(w.summary.Total)
	}

	return w.encoder.Encode(w.summary)
}
