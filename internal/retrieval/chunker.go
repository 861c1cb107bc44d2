// Package retrieval turns uploaded documents into embedded chunks and turns
// user queries into ranked context chunks for the agent and the evaluator.
package retrieval

type Chunker struct {
	ChunkSize    int
	ChunkOverlap int
}

type Chunk struct {
	Index   int
	Start   int
	End     int
	Content string
}

func NewChunker(chunkSize, overlap int) *Chunker {
	return &Chunker{
		ChunkSize:    chunkSize,
		ChunkOverlap: overlap,
	}
}

// ChunkText splits text into fixed-size windows that overlap by
// ChunkOverlap bytes. Invalid settings yield no chunks.
func (c *Chunker) ChunkText(text string) []Chunk {
	if c.ChunkSize <= 0 || c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return []Chunk{}
	}

	results := []Chunk{}
	n := len(text)
	i := 0
	chunkIndex := 0

	for i < n {
		end := i + c.ChunkSize
		if end > n {
			end = n
		}

		results = append(results, Chunk{
			Index:   chunkIndex,
			Start:   i,
			End:     end,
			Content: text[i:end],
		})

		i = i + c.ChunkSize - c.ChunkOverlap
		chunkIndex++
	}

	return results
}
