package retrieval

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/database"
	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

// SearchStore is the slice of the document store the retriever needs.
type SearchStore interface {
	SemanticSearch(ctx context.Context, queryEmbedding []float32, limit int) ([]database.Chunk, error)
}

type Retriever struct {
	embedder Embedder
	store    SearchStore
	limit    int
	logger   *zerolog.Logger
}

func NewRetriever(embedder Embedder, store SearchStore, limit int, logger *zerolog.Logger) *Retriever {
	if limit <= 0 {
		limit = 5
	}
	return &Retriever{
		embedder: embedder,
		store:    store,
		limit:    limit,
		logger:   logger,
	}
}

// Retrieve embeds the query and returns the closest chunks as context for
// the agent and the evaluator.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]models.ContextChunk, error) {
	embedding, err := r.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := r.store.SemanticSearch(ctx, embedding, r.limit)
	if err != nil {
		return nil, fmt.Errorf("semantic search failed: %w", err)
	}

	contexts := make([]models.ContextChunk, 0, len(hits))
	for _, hit := range hits {
		contexts = append(contexts, models.ContextChunk{
			Text:   hit.Content,
			Source: hit.Filename,
		})
	}

	r.logger.Debug().
		Int("chunks", len(contexts)).
		Msg("Context retrieved")

	return contexts, nil
}
