package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/povarna/generative-ai-agents/context-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/ask").
			To(handler.Ask).
			Doc("Ask the agent a question over the document knowledge base").
			Metadata(restfulspec.KeyOpenAPITags, []string{"agent"}).
			Reads(AskRequest{}).
			Writes(AskResponse{}).
			Returns(200, "OK", AskResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/evaluate").
			To(handler.Evaluate).
			Doc("Evaluate retrieved context quality for a query").
			Metadata(restfulspec.KeyOpenAPITags, []string{"evaluate"}).
			Reads(models.EvaluationRequest{}).
			Writes(models.EvaluationResult{}).
			Returns(200, "OK", models.EvaluationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/files").
			To(handler.ListFiles).
			Doc("List ingested documents").
			Metadata(restfulspec.KeyOpenAPITags, []string{"files"}).
			Writes(FileListResponse{}).
			Returns(200, "OK", FileListResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/files").
			To(handler.UploadFile).
			Doc("Upload and ingest a document").
			Metadata(restfulspec.KeyOpenAPITags, []string{"files"}).
			Consumes("multipart/form-data").
			Writes(FileResponse{}).
			Returns(201, "Created", FileResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.PUT("/files/{filename}").
			To(handler.UpdateFile).
			Doc("Replace an ingested document").
			Metadata(restfulspec.KeyOpenAPITags, []string{"files"}).
			Consumes("multipart/form-data").
			Param(ws.PathParameter("filename", "Name of the file to replace").DataType("string")).
			Writes(FileResponse{}).
			Returns(200, "OK", FileResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.DELETE("/files/{filename}").
			To(handler.DeleteFile).
			Doc("Delete a document and its chunks").
			Metadata(restfulspec.KeyOpenAPITags, []string{"files"}).
			Param(ws.PathParameter("filename", "Name of the file to delete").DataType("string")).
			Writes(FileResponse{}).
			Returns(200, "OK", FileResponse{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/tools").
			To(handler.ListTools).
			Doc("List the agent's available tools").
			Metadata(restfulspec.KeyOpenAPITags, []string{"tools"}).
			Writes(ToolListResponse{}).
			Returns(200, "OK", ToolListResponse{}))

	container.Add(ws)
}
