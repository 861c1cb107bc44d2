package database

import "time"

// Document is a row in the documents table. Filename is unique; uploads with
// the same name replace the existing document.
type Document struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Chunk is a search hit from the document_chunks table. Distance is the
// cosine distance to the query embedding, lower is closer.
type Chunk struct {
	ID         string
	DocumentID string
	Filename   string
	Content    string
	Distance   float64
}
