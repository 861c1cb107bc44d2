package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/context-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/context-agent/internal/database"
	"github.com/povarna/generative-ai-agents/context-agent/internal/evaluator"
	"github.com/povarna/generative-ai-agents/context-agent/internal/files"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
	"github.com/povarna/generative-ai-agents/context-agent/internal/retrieval"
	"github.com/povarna/generative-ai-agents/context-agent/internal/tools"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	agent     *agent.Agent
	evaluator *evaluator.Evaluator
	pipeline  *retrieval.Pipeline
	fileStore *files.Store
	registry  *tools.Registry
	logger    *zerolog.Logger
}

func NewHandler(
	agent *agent.Agent,
	evaluator *evaluator.Evaluator,
	pipeline *retrieval.Pipeline,
	fileStore *files.Store,
	registry *tools.Registry,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		agent:     agent,
		evaluator: evaluator,
		pipeline:  pipeline,
		fileStore: fileStore,
		registry:  registry,
		logger:    logger,
	}
}

// POST /api/v1/ask
func (h *Handler) Ask(req *restful.Request, resp *restful.Response) {
	var askRequest AskRequest
	if err := req.ReadEntity(&askRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if askRequest.TaskType != "" && !models.ValidTaskType(askRequest.TaskType) {
		middleware.HandleError(resp, fmt.Errorf("unknown task type %q", askRequest.TaskType), http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("task_type", string(askRequest.TaskType)).
		Bool("evaluate_context", askRequest.EvaluateContext).
		Msg("Ask received")

	answer, err := h.agent.Ask(req.Request.Context(), agent.Question{
		Message:         askRequest.Message,
		TaskType:        askRequest.TaskType,
		EvaluateContext: askRequest.EvaluateContext,
	})
	if err != nil {
		if errors.Is(err, agent.ErrEmptyMessage) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("Ask failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, AskResponse{
		Response:   answer.Response,
		ToolUsed:   answer.ToolUsed,
		Evaluation: answer.Evaluation,
		Status:     "success",
	})
}

// POST /api/v1/evaluate
func (h *Handler) Evaluate(req *restful.Request, resp *restful.Response) {
	var evalRequest models.EvaluationRequest
	if err := req.ReadEntity(&evalRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", evalRequest.EventID).
		Int("contexts", len(evalRequest.Contexts)).
		Msg("Start context evaluation")

	result, err := h.evaluator.EvaluateQuality(req.Request.Context(), evalRequest.Query, evalRequest.Contexts)
	if err != nil {
		if errors.Is(err, evaluator.ErrEmptyQuery) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("Evaluation failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	result.EventID = evalRequest.EventID

	h.logger.Info().
		Str("event_id", result.EventID).
		Float64("overall_quality_score", result.OverallQualityScore).
		Msg("Context evaluation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/files
func (h *Handler) UploadFile(req *restful.Request, resp *restful.Response) {
	h.ingestUpload(req, resp, false)
}

// PUT /api/v1/files/{filename}
func (h *Handler) UpdateFile(req *restful.Request, resp *restful.Response) {
	filename := req.PathParameter("filename")
	if _, err := h.pipeline.GetDocument(req.Request.Context(), filename); err != nil {
		if errors.Is(err, database.ErrDocumentNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("filename", filename).Msg("Document lookup failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	h.ingestUpload(req, resp, true)
}

func (h *Handler) ingestUpload(req *restful.Request, resp *restful.Response, update bool) {
	filename, data, err := readUpload(req)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if update {
		expected := req.PathParameter("filename")
		if filename != expected {
			middleware.HandleError(resp, fmt.Errorf("uploaded file %s does not match path %s", filename, expected), http.StatusBadRequest)
			return
		}
	}

	if err := h.fileStore.Save(filename, data); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	docID, err := h.pipeline.IngestDocument(req.Request.Context(), filename, data)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", filename).Msg("Ingestion failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	statusText := "created"
	if update {
		status = http.StatusOK
		statusText = "updated"
	}

	resp.WriteHeaderAndEntity(status, FileResponse{
		Filename:   filename,
		DocumentID: docID,
		Status:     statusText,
	})
}

// DELETE /api/v1/files/{filename}
func (h *Handler) DeleteFile(req *restful.Request, resp *restful.Response) {
	filename := req.PathParameter("filename")

	if err := h.pipeline.DeleteDocument(req.Request.Context(), filename); err != nil {
		if errors.Is(err, database.ErrDocumentNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("filename", filename).Msg("Delete failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	if err := h.fileStore.Delete(filename); err != nil {
		h.logger.Warn().Err(err).Str("filename", filename).Msg("File missing from data directory")
	}

	resp.WriteHeaderAndEntity(http.StatusOK, FileResponse{
		Filename: filename,
		Status:   "deleted",
	})
}

// GET /api/v1/files
func (h *Handler) ListFiles(req *restful.Request, resp *restful.Response) {
	documents, err := h.pipeline.ListDocuments(req.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list documents")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	if documents == nil {
		documents = []database.Document{}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, FileListResponse{Files: documents})
}

// GET /api/v1/tools
func (h *Handler) ListTools(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, ToolListResponse{Tools: h.registry.List()})
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// readUpload extracts the uploaded file from a multipart form.
func readUpload(req *restful.Request) (string, []byte, error) {
	if err := req.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := req.Request.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("form field 'file' is required: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("uploaded file is empty")
	}

	return header.Filename, data, nil
}
