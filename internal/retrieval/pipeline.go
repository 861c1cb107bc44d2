package retrieval

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/database"
)

// DocumentStore is the slice of the document store the pipeline needs.
type DocumentStore interface {
	UpsertDocumentWithChunks(ctx context.Context, filename string, sizeBytes int64, contents []string, embeddings [][]float32) (string, error)
	DeleteDocumentByFilename(ctx context.Context, filename string) error
	GetDocumentByFilename(ctx context.Context, filename string) (*database.Document, error)
	ListDocuments(ctx context.Context) ([]database.Document, error)
}

// Pipeline chunks, embeds, and stores uploaded documents.
type Pipeline struct {
	chunker  *Chunker
	embedder Embedder
	store    DocumentStore
	logger   *zerolog.Logger
}

func NewPipeline(chunker *Chunker, embedder Embedder, store DocumentStore, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		logger:   logger,
	}
}

// IngestDocument stores a document and its embedded chunks, replacing any
// previous upload with the same filename.
func (p *Pipeline) IngestDocument(ctx context.Context, filename string, data []byte) (string, error) {
	chunks := p.chunker.ChunkText(string(data))
	if len(chunks) == 0 {
		return "", fmt.Errorf("document %s produced no chunks", filename)
	}

	contents := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		contents = append(contents, chunk.Content)
	}

	embeddings, err := p.embedder.GenerateBatchEmbeddings(ctx, contents)
	if err != nil {
		return "", fmt.Errorf("failed to generate embeddings for %s: %w", filename, err)
	}

	docID, err := p.store.UpsertDocumentWithChunks(ctx, filename, int64(len(data)), contents, embeddings)
	if err != nil {
		return "", fmt.Errorf("failed to store document %s: %w", filename, err)
	}

	p.logger.Info().
		Str("doc_id", docID).
		Str("filename", filename).
		Int("chunks", len(chunks)).
		Msg("Document ingested")

	return docID, nil
}

func (p *Pipeline) DeleteDocument(ctx context.Context, filename string) error {
	if err := p.store.DeleteDocumentByFilename(ctx, filename); err != nil {
		return err
	}

	p.logger.Info().Str("filename", filename).Msg("Document deleted")
	return nil
}

func (p *Pipeline) GetDocument(ctx context.Context, filename string) (*database.Document, error) {
	return p.store.GetDocumentByFilename(ctx, filename)
}

func (p *Pipeline) ListDocuments(ctx context.Context) ([]database.Document, error) {
	return p.store.ListDocuments(ctx)
}
