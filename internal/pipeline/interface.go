package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// Pipeline turns audio inputs into summaries.
type Pipeline interface {
	// Process resolves a single input and summarizes it. Failures before the
	// summarizer call are returned as errors.
	Process(ctx context.Context, in Input, opts Options) (audio.Result, error)

	// Batch summarizes local files in order. A failing item becomes a Result
	// with Error set; only an empty input list fails the whole call.
	Batch(ctx context.Context, paths []string, opts Options) ([]audio.Result, error)
}

// Input names one audio source. When several are set, UploadPath wins over
// RecordingPath, which wins over URL.
type Input struct {
	UploadPath    string
	RecordingPath string
	URL           string
}

// Options are per-request knobs.
type Options struct {
	// SaveDir enables persistence when non-empty.
	SaveDir      string
	SystemPrompt string
	UserPrompt   string
}
