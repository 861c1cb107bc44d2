// Package agent answers user questions over the retrieved document context.
// The agent runs at most one tool round per question: if the model replies
// with a tool call, the tool result is fed back for a final answer.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
	"github.com/povarna/generative-ai-agents/context-agent/internal/prompts"
	"github.com/povarna/generative-ai-agents/context-agent/internal/tools"
)

var ErrEmptyMessage = errors.New("message must not be empty")

// ContextRetriever supplies document context for a question.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string) ([]models.ContextChunk, error)
}

// QualityEvaluator scores the retrieved context against the question.
type QualityEvaluator interface {
	EvaluateQuality(ctx context.Context, query string, contexts []models.ContextChunk) (models.EvaluationResult, error)
}

// ToolRunner lists and executes the agent's tools.
type ToolRunner interface {
	List() []tools.Descriptor
	Execute(ctx context.Context, name string, args map[string]any) (string, error)
}

// Question is a single user request to the agent.
type Question struct {
	Message         string
	TaskType        models.TaskType
	EvaluateContext bool
}

// Answer is the agent's reply. Evaluation is set only when the question
// asked for it and context was retrieved.
type Answer struct {
	Response   string
	ToolUsed   string
	Evaluation *models.EvaluationResult
}

type Agent struct {
	llmClient   llm.LLMClient
	retriever   ContextRetriever
	evaluator   QualityEvaluator
	toolRunner  ToolRunner
	maxTokens   int
	temperature float64
	logger      *zerolog.Logger
}

func New(llmClient llm.LLMClient, retriever ContextRetriever, evaluator QualityEvaluator, toolRunner ToolRunner, logger *zerolog.Logger) *Agent {
	return &Agent{
		llmClient:   llmClient,
		retriever:   retriever,
		evaluator:   evaluator,
		toolRunner:  toolRunner,
		maxTokens:   1024,
		temperature: 0.7,
		logger:      logger,
	}
}

func (a *Agent) Ask(ctx context.Context, question Question) (*Answer, error) {
	message := strings.TrimSpace(question.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	start := time.Now()

	contexts, err := a.retriever.Retrieve(ctx, message)
	if err != nil {
		a.logger.Warn().Err(err).Msg("Context retrieval failed, answering without context")
		contexts = []models.ContextChunk{}
	}

	response, err := a.llmClient.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      buildUserPrompt(message, contexts),
		System:      a.buildSystemPrompt(question.TaskType),
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	answer := &Answer{Response: strings.TrimSpace(response.Content)}

	if call, ok := parseToolCall(response.Content); ok {
		answer.ToolUsed = call.Tool
		final, err := a.runToolRound(ctx, question.TaskType, message, contexts, call)
		if err != nil {
			return nil, err
		}
		answer.Response = final
	}

	if question.EvaluateContext {
		evaluation, err := a.evaluator.EvaluateQuality(ctx, message, contexts)
		if err != nil {
			return nil, fmt.Errorf("context evaluation failed: %w", err)
		}
		answer.Evaluation = &evaluation
	}

	a.logger.Info().
		Str("task_type", string(question.TaskType)).
		Str("tool", answer.ToolUsed).
		Bool("evaluated", answer.Evaluation != nil).
		Dur("duration", time.Since(start)).
		Msg("Question answered")

	return answer, nil
}

// runToolRound executes the requested tool and asks the model for a final
// answer with the tool output in hand.
func (a *Agent) runToolRound(ctx context.Context, taskType models.TaskType, message string, contexts []models.ContextChunk, call toolCall) (string, error) {
	result, err := a.toolRunner.Execute(ctx, call.Tool, call.Args)
	if err != nil {
		result = fmt.Sprintf("Tool %s failed: %v", call.Tool, err)
		a.logger.Warn().Err(err).Str("tool", call.Tool).Msg("Tool execution failed")
	}

	prompt := fmt.Sprintf("%s\n\nYou called the tool %s and it returned:\n%s\n\nAnswer the original question using this result.",
		buildUserPrompt(message, contexts), call.Tool, result)

	response, err := a.llmClient.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		System:      a.buildSystemPrompt(taskType),
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke model after tool round: %w", err)
	}

	return strings.TrimSpace(response.Content), nil
}

func (a *Agent) buildSystemPrompt(taskType models.TaskType) string {
	var b strings.Builder
	b.WriteString(prompts.ForTaskType(taskType))

	descriptors := a.toolRunner.List()
	if len(descriptors) == 0 {
		return b.String()
	}

	b.WriteString("\n\nAvailable tools:\n")
	for _, d := range descriptors {
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, d.Description)
	}
	b.WriteString(`
To use a tool, respond with ONLY a JSON object of the form
{"tool": "<name>", "args": {...}} and nothing else.
Otherwise answer the question directly.`)

	return b.String()
}

func buildUserPrompt(message string, contexts []models.ContextChunk) string {
	if len(contexts) == 0 {
		return message
	}

	var b strings.Builder
	b.WriteString("Context from the document knowledge base:\n\n")
	for _, chunk := range contexts {
		if chunk.Source != "" {
			fmt.Fprintf(&b, "[%s]\n", chunk.Source)
		}
		b.WriteString(chunk.Text)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Question: %s", message)

	return b.String()
}

type toolCall struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

var toolCallPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseToolCall detects a tool-call reply. Anything that does not decode to
// an object with a non-empty "tool" field is treated as a direct answer.
func parseToolCall(content string) (toolCall, bool) {
	match := toolCallPattern.FindString(content)
	if match == "" {
		return toolCall{}, false
	}

	var call toolCall
	if err := json.Unmarshal([]byte(match), &call); err != nil {
		return toolCall{}, false
	}
	if call.Tool == "" {
		return toolCall{}, false
	}
	if call.Args == nil {
		call.Args = map[string]any{}
	}

	return call, true
}
