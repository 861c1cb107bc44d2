package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

var ErrDocumentNotFound = errors.New("document not found")

// UpsertDocumentWithChunks stores a document and its embedded chunks in a
// single transaction. An existing document with the same filename is
// replaced, chunks included.
func (db *DB) UpsertDocumentWithChunks(ctx context.Context, filename string, sizeBytes int64, contents []string, embeddings [][]float32) (string, error) {
	if len(contents) != len(embeddings) {
		return "", fmt.Errorf("chunk count %d does not match embedding count %d", len(contents), len(embeddings))
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM documents WHERE filename = $1`, filename); err != nil {
		return "", fmt.Errorf("failed to remove previous document %s: %w", filename, err)
	}

	docID := uuid.NewString()
	docQuery := `
        INSERT INTO documents (id, filename, size_bytes, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
    `
	if _, err := tx.Exec(ctx, docQuery, docID, filename, sizeBytes); err != nil {
		return "", fmt.Errorf("failed to insert document %s: %w", filename, err)
	}

	chunkQuery := `
        INSERT INTO document_chunks (id, document_id, chunk_index, content, embedding, created_at)
        VALUES (uuid_generate_v4(), $1, $2, $3, $4, NOW())
    `
	for i, content := range contents {
		vector := pgvector.NewVector(embeddings[i])
		if _, err := tx.Exec(ctx, chunkQuery, docID, i, content, vector); err != nil {
			return "", fmt.Errorf("failed to insert chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return docID, nil
}

// DeleteDocumentByFilename removes a document and, via the foreign key
// cascade, its chunks.
func (db *DB) DeleteDocumentByFilename(ctx context.Context, filename string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM documents WHERE filename = $1`, filename)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", filename, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, filename)
	}

	return nil
}

func (db *DB) GetDocumentByFilename(ctx context.Context, filename string) (*Document, error) {
	query := `SELECT id, filename, size_bytes, created_at, updated_at FROM documents WHERE filename = $1`

	var doc Document
	err := db.Pool.QueryRow(ctx, query, filename).Scan(&doc.ID, &doc.Filename, &doc.SizeBytes, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, filename)
		}
		return nil, fmt.Errorf("failed to fetch document %s: %w", filename, err)
	}

	return &doc, nil
}

// TODO: Add pagination
func (db *DB) ListDocuments(ctx context.Context) ([]Document, error) {
	query := `SELECT id, filename, size_bytes, created_at, updated_at FROM documents ORDER BY filename`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Filename, &doc.SizeBytes, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return documents, nil
}

// TODO: Add support for cosine and euclidean distance configuration
func (db *DB) SemanticSearch(ctx context.Context, queryEmbedding []float32, limit int) ([]Chunk, error) {
	vector := pgvector.NewVector(queryEmbedding)

	query := `
	SELECT
	  c.id,
	  c.document_id,
	  d.filename,
	  c.content,
	  c.embedding <=> $1 AS distance
	FROM document_chunks c
	JOIN documents d ON d.id = c.document_id
	ORDER BY distance ASC
	LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, vector, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query the database: %w", err)
	}
	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var chunk Chunk
		if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.Filename, &chunk.Content, &chunk.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return chunks, nil
}
