// Package batch processes JSONL files of evaluation requests through the
// evaluator with a worker pool.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

// InputRecord is one parsed line of the input file. Error is set for lines
// that are not valid JSON; such records carry their line number so failures
// can be reported against the source file.
type InputRecord struct {
	LineNumber int
	Request    models.EvaluationRequest
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records from the input. Blank lines are skipped; the
// channel closes when the input is exhausted or the context is cancelled.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	ch := make(chan InputRecord)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal([]byte(line), &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			}

			select {
			case ch <- record:
			case <-ctx.Done():
				r.logger.Warn().Int("line", lineNumber).Msg("Reader cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case ch <- InputRecord{LineNumber: lineNumber + 1, Error: fmt.Errorf("read failed: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return ch
}
