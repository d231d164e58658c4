package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/report"
)

// SummarizeTo returns an EventHandler that summarizes each new file and
// writes <stem>.md into outputDir.
func SummarizeTo(p pipeline.Pipeline, opts pipeline.Options, outputDir string, log logger.Logger) EventHandler {
	return func(ctx context.Context, filePath string) error {
		res, err := p.Process(ctx, pipeline.Input{UploadPath: filePath}, opts)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		mdPath, err := report.WriteSummary(outputDir, filePath, time.Now(), res.Summary)
		if err != nil {
			return err
		}

		log.Info(ctx, "[DONE] %s -> %s", filePath, mdPath)
		return nil
	}
}
