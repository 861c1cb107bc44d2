package retrieval

import (
	"strings"
	"testing"
)

func TestChunkText_SplitsWithOverlap(t *testing.T) {
	chunker := NewChunker(10, 2)
	text := strings.Repeat("abcdefghij", 3)

	chunks := chunker.ChunkText(text)
	if len(chunks) == 0 {
		t.Fatal("expected chunks, got none")
	}

	for i, chunk := range chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d: expected index %d, got %d", i, i, chunk.Index)
		}
		if len(chunk.Content) > 10 {
			t.Errorf("chunk %d: content longer than chunk size: %d", i, len(chunk.Content))
		}
		if chunk.Content != text[chunk.Start:chunk.End] {
			t.Errorf("chunk %d: content does not match its offsets", i)
		}
	}

	// Consecutive chunks share the overlap region
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Start != chunks[i-1].Start+8 {
			t.Errorf("chunk %d: expected start %d, got %d", i, chunks[i-1].Start+8, chunks[i].Start)
		}
	}
}

func TestChunkText_ShortInput(t *testing.T) {
	chunker := NewChunker(100, 10)

	chunks := chunker.ChunkText("short text")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != "short text" {
		t.Errorf("expected full text in single chunk, got %q", chunks[0].Content)
	}
}

func TestChunkText_EmptyInput(t *testing.T) {
	chunker := NewChunker(100, 10)

	if chunks := chunker.ChunkText(""); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty input, got %d", len(chunks))
	}
}

func TestChunkText_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative overlap", 10, -1},
		{"overlap equals size", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunker := NewChunker(tt.size, tt.overlap)
			if chunks := chunker.ChunkText("some text"); len(chunks) != 0 {
				t.Errorf("expected no chunks, got %d", len(chunks))
			}
		})
	}
}
