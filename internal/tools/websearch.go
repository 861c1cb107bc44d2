package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const duckDuckGoEndpoint = "https://api.duckduckgo.com/"

// WebSearchTool queries the DuckDuckGo instant answer API. Results are best
// effort; the API frequently returns no abstract for niche queries.
type WebSearchTool struct {
	httpClient *http.Client
	endpoint   string
}

func NewWebSearchTool() *WebSearchTool {
	return &WebSearchTool{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   duckDuckGoEndpoint,
	}
}

func (t *WebSearchTool) Name() string {
	return "web_search"
}

func (t *WebSearchTool) Description() string {
	return "Search the web for current information using DuckDuckGo"
}

func (t *WebSearchTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query",
			},
		},
		"required": []string{"query"},
	}
}

type duckDuckGoResponse struct {
	Abstract      string `json:"Abstract"`
	AbstractURL   string `json:"AbstractURL"`
	Answer        string `json:"Answer"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

func (t *WebSearchTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query must not be empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read search response: %w", err)
	}

	var result duckDuckGoResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode search response: %w", err)
	}

	return formatSearchResult(query, result), nil
}

func formatSearchResult(query string, result duckDuckGoResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Search results for %q:\n", query)

	if result.Answer != "" {
		fmt.Fprintf(&b, "Answer: %s\n", result.Answer)
	}
	if result.Abstract != "" {
		fmt.Fprintf(&b, "Summary: %s\n", result.Abstract)
		if result.AbstractURL != "" {
			fmt.Fprintf(&b, "Source: %s\n", result.AbstractURL)
		}
	}

	count := 0
	for _, topic := range result.RelatedTopics {
		if topic.Text == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s)\n", topic.Text, topic.FirstURL)
		count++
		if count == 3 {
			break
		}
	}

	if result.Answer == "" && result.Abstract == "" && count == 0 {
		b.WriteString("No results found.\n")
	}

	return b.String()
}
