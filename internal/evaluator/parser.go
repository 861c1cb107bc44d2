package evaluator

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// judgmentResponse is the shape the judgment model is instructed to return.
// Only one of KeyPoints / MissingAspects is populated per sub-evaluation.
type judgmentResponse struct {
	Score          float64  `json:"score"`
	Explanation    string   `json:"explanation"`
	KeyPoints      []string `json:"key_points"`
	MissingAspects []string `json:"missing_aspects"`
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseJudgment defensively extracts the judgment JSON from free model
// output. Models wrap JSON in markdown fences or prose despite instructions,
// so the parser strips a code block first and then falls back to the first
// top-level brace pair.
func parseJudgment(content string) (judgmentResponse, error) {
	content = stripMarkdownCodeBlock(content)
	if match := jsonObjectPattern.FindString(content); match != "" {
		content = match
	}

	var judgment judgmentResponse
	if err := json.Unmarshal([]byte(content), &judgment); err != nil {
		return judgmentResponse{}, fmt.Errorf("failed to deserialize judgment response: %w", err)
	}

	if math.IsNaN(judgment.Score) || judgment.Score < 0.0 || judgment.Score > 1.0 {
		return judgmentResponse{}, fmt.Errorf("judgment score %f out of range [0.0, 1.0]", judgment.Score)
	}

	if judgment.Explanation == "" {
		return judgmentResponse{}, fmt.Errorf("judgment response missing explanation")
	}

	return judgment, nil
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	// Check for markdown code blocks (```json ... ``` or ``` ... ```)
	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}

// capList bounds a judgment list for display and normalizes nil to an empty
// slice so the JSON field is always an array.
func capList(items []string, max int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}
