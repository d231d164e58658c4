package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// Batch summarizes each path in order. One failing item never stops the
// rest; its Result keeps the original path and carries the error message.
func (p *implPipeline) Batch(ctx context.Context, paths []string, opts Options) ([]audio.Result, error) {
	if len(paths) == 0 {
		return nil, audio.NoInput("select one or more audio files")
	}

	startTime := time.Now()
	results := make([]audio.Result, 0, len(paths))
	successCount := 0
	failCount := 0

	p.logger.Info(ctx, "Found %d files to summarize", len(paths))

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			results = append(results, audio.Result{Source: path, Error: err.Error()})
			failCount++
			continue
		}

		p.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(paths), path)

		res, err := p.summarizeArtifact(ctx, audio.NewArtifact(path, audio.OriginBatchItem), opts)
		if err != nil {
			p.logger.Error(ctx, "Failed to summarize %s: %v", path, err)
			results = append(results, audio.Result{Source: path, Error: err.Error()})
			failCount++
			continue
		}

		results = append(results, res)
		successCount++
	}

	p.logger.Info(ctx, "Batch complete: %d success, %d failed (%s)", successCount, failCount, time.Since(startTime))
	return results, nil
}
