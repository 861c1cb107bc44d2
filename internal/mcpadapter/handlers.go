// Package mcpadapter exposes the evaluator and the agent as MCP tools.
package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/povarna/generative-ai-agents/context-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/context-agent/internal/evaluator"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

// ContextInput is one retrieved chunk in an MCP evaluate call.
type ContextInput struct {
	Text   string `json:"text" jsonschema:"retrieved chunk text"`
	Source string `json:"source,omitempty" jsonschema:"optional chunk source, e.g. a filename"`
}

// EvaluateContextInput is the MCP tool input schema (matches HTTP API field names).
type EvaluateContextInput struct {
	EventID  string         `json:"event_id,omitempty" jsonschema:"unique event identifier"`
	Query    string         `json:"query" jsonschema:"user's original query"`
	Contexts []ContextInput `json:"contexts" jsonschema:"retrieved context chunks to score"`
}

// AskInput is the MCP tool input schema for asking the agent.
type AskInput struct {
	Message         string `json:"message" jsonschema:"question for the agent"`
	TaskType        string `json:"task_type,omitempty" jsonschema:"task type: default, document_analysis, research, calculation, or general"`
	EvaluateContext bool   `json:"evaluate_context,omitempty" jsonschema:"also score the retrieved context"`
}

// AskResult is the MCP tool output for ask_agent.
type AskResult struct {
	Response   string                   `json:"response"`
	ToolUsed   string                   `json:"tool_used,omitempty"`
	Evaluation *models.EvaluationResult `json:"evaluation,omitempty"`
}

// NewEvaluateContextHandler returns a tool handler that scores retrieved
// context with the given evaluator. Pass the returned function to mcp.AddTool.
func NewEvaluateContextHandler(eval *evaluator.Evaluator) func(context.Context, *mcp.CallToolRequest, EvaluateContextInput) (*mcp.CallToolResult, models.EvaluationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EvaluateContextInput) (*mcp.CallToolResult, models.EvaluationResult, error) {
		contexts := make([]models.ContextChunk, 0, len(input.Contexts))
		for _, c := range input.Contexts {
			contexts = append(contexts, models.ContextChunk{Text: c.Text, Source: c.Source})
		}

		result, err := eval.EvaluateQuality(ctx, input.Query, contexts)
		if err != nil {
			return nil, models.EvaluationResult{}, err
		}
		result.EventID = input.EventID

		return nil, result, nil
	}
}

// NewAskHandler returns a tool handler that answers questions with the given
// agent. Pass the returned function to mcp.AddTool.
func NewAskHandler(a *agent.Agent) func(context.Context, *mcp.CallToolRequest, AskInput) (*mcp.CallToolResult, AskResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskResult, error) {
		answer, err := a.Ask(ctx, agent.Question{
			Message:         input.Message,
			TaskType:        models.TaskType(input.TaskType),
			EvaluateContext: input.EvaluateContext,
		})
		if err != nil {
			return nil, AskResult{}, err
		}

		return nil, AskResult{
			Response:   answer.Response,
			ToolUsed:   answer.ToolUsed,
			Evaluation: answer.Evaluation,
		}, nil
	}
}
