package api

import (
	"github.com/povarna/generative-ai-agents/context-agent/internal/database"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
	"github.com/povarna/generative-ai-agents/context-agent/internal/tools"
)

type AskRequest struct {
	Message         string          `json:"message"`
	TaskType        models.TaskType `json:"task_type,omitempty"`
	EvaluateContext bool            `json:"evaluate_context,omitempty"`
}

type AskResponse struct {
	Response   string                   `json:"response"`
	ToolUsed   string                   `json:"tool_used,omitempty"`
	Evaluation *models.EvaluationResult `json:"evaluation,omitempty"`
	Status     string                   `json:"status"`
}

type FileResponse struct {
	Filename   string `json:"filename"`
	DocumentID string `json:"document_id,omitempty"`
	Status     string `json:"status"`
}

type FileListResponse struct {
	Files []database.Document `json:"files"`
}

type ToolListResponse struct {
	Tools []tools.Descriptor `json:"tools"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
