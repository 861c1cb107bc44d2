package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

func TestWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatJSONL, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	results := []models.EvaluationResult{
		{EventID: "1", OverallQualityScore: 0.9},
		{EventID: "2", OverallQualityScore: 0.4},
	}
	for _, result := range results {
		if err := writer.Write(result); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var decoded models.EvaluationResult
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("failed to decode line: %v", err)
	}
	if decoded.EventID != "1" {
		t.Errorf("expected event ID '1', got %q", decoded.EventID)
	}
}

func TestWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	writer, err := NewWriter(&buf, FormatSummary, newTestLogger())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	writer.Write(models.EvaluationResult{OverallQualityScore: 0.9, Recommendation: "High quality context - suitable for use"})
	writer.Write(models.EvaluationResult{OverallQualityScore: 0.3, Recommendation: "Low quality - consider retrieving additional context"})

	if buf.Len() != 0 {
		t.Error("summary format should not write per-result output")
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var summary struct {
		Total           int            `json:"total"`
		MeanScore       float64        `json:"mean_overall_quality_score"`
		Recommendations map[string]int `json:"recommendations"`
	}
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}

	if summary.Total != 2 {
		t.Errorf("expected total 2, got %d", summary.Total)
	}
	if summary.MeanScore != 0.6 {
		t.Errorf("expected mean score 0.6, got %f", summary.MeanScore)
	}
	if len(summary.Recommendations) != 2 {
		t.Errorf("expected 2 recommendation buckets, got %d", len(summary.Recommendations))
	}
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewWriter(&buf, "xml", newTestLogger()); err == nil {
		t.Error("expected error for unsupported format")
	}
}
