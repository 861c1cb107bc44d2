package evaluator

import (
	"strings"
	"testing"
)

func TestParseJudgment_RawJSON(t *testing.T) {
	judgment, err := parseJudgment(`{"score": 0.85, "explanation": "good match", "key_points": ["a", "b"]}`)
	if err != nil {
		t.Fatalf("parseJudgment failed: %v", err)
	}
	if judgment.Score != 0.85 {
		t.Errorf("expected score 0.85, got %f", judgment.Score)
	}
	if judgment.Explanation != "good match" {
		t.Errorf("expected explanation 'good match', got %q", judgment.Explanation)
	}
	if len(judgment.KeyPoints) != 2 {
		t.Errorf("expected 2 key points, got %d", len(judgment.KeyPoints))
	}
}

func TestParseJudgment_MarkdownCodeBlock(t *testing.T) {
	content := "```json\n{\"score\": 0.5, \"explanation\": \"partial\"}\n```"

	judgment, err := parseJudgment(content)
	if err != nil {
		t.Fatalf("parseJudgment failed: %v", err)
	}
	if judgment.Score != 0.5 {
		t.Errorf("expected score 0.5, got %f", judgment.Score)
	}
}

func TestParseJudgment_JSONEmbeddedInProse(t *testing.T) {
	content := `Here is my evaluation: {"score": 0.7, "explanation": "mostly relevant"} Hope this helps.`

	judgment, err := parseJudgment(content)
	if err != nil {
		t.Fatalf("parseJudgment failed: %v", err)
	}
	if judgment.Score != 0.7 {
		t.Errorf("expected score 0.7, got %f", judgment.Score)
	}
}

func TestParseJudgment_InvalidJSON(t *testing.T) {
	_, err := parseJudgment("not json")
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseJudgment_ScoreOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative", `{"score": -0.5, "explanation": "bad"}`},
		{"too high", `{"score": 1.5, "explanation": "bad"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJudgment(tt.content)
			if err == nil {
				t.Error("expected error for out-of-range score")
			}
			if err != nil && !strings.Contains(err.Error(), "out of range") {
				t.Errorf("expected out-of-range error, got %v", err)
			}
		})
	}
}

func TestParseJudgment_MissingExplanation(t *testing.T) {
	_, err := parseJudgment(`{"score": 0.9}`)
	if err == nil {
		t.Error("expected error for missing explanation")
	}
}

func TestStripMarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced json", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"unclosed fence", "```json", "```json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripMarkdownCodeBlock(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCapList(t *testing.T) {
	if got := capList(nil, 3); got == nil || len(got) != 0 {
		t.Errorf("expected empty slice for nil input, got %v", got)
	}
	if got := capList([]string{"a", "b"}, 3); len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
	if got := capList([]string{"a", "b", "c", "d"}, 3); len(got) != 3 {
		t.Errorf("expected 3 items, got %d", len(got))
	}
}
