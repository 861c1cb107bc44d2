package batch

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/models"
)

// Evaluator is the slice of the evaluator the processor needs.
type Evaluator interface {
	EvaluateQuality(ctx context.Context, query string, contexts []models.ContextChunk) (models.EvaluationResult, error)
}

type Processor struct {
	evaluator Evaluator
	workers   int
	logger    *zerolog.Logger
}

func NewProcessor(evaluator Evaluator, workers int, logger *zerolog.Logger) *Processor {
	if workers <= 0 {
		workers = 1
	}
	return &Processor{
		evaluator: evaluator,
		workers:   workers,
		logger:    logger,
	}
}

// Process evaluates records concurrently. Records that failed to parse or
// are rejected by the evaluator are logged and skipped; result order is not
// guaranteed.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.EvaluationResult {
	jobs := make(chan InputRecord)
	results := make(chan models.EvaluationResult)

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, jobs, results)
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) worker(ctx context.Context, jobs <-chan InputRecord, results chan<- models.EvaluationResult) {
	for record := range jobs {
		if record.Error != nil {
			p.logger.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Skipping unparsable record")
			continue
		}

		result, err := p.evaluator.EvaluateQuality(ctx, record.Request.Query, record.Request.Contexts)
		if err != nil {
			p.logger.Error().
				Int("line", record.LineNumber).
				Str("event_id", record.Request.EventID).
				Err(err).
				Msg("Evaluation rejected")
			continue
		}
		result.EventID = record.Request.EventID

		select {
		case results <- result:
		case <-ctx.Done():
			return
		}
	}
}
