package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// Summarizer sends encoded audio to a hosted model and returns its summary.
// It never returns an error: remote or configuration failures come back as
// the summary text so callers have a single display path.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) string
	Name() string
}

// Request is one summarization call.
type Request struct {
	// Name is a display name for the audio, usually the file's base name.
	Name string
	// Audio is the base64-encoded file content.
	Audio  string
	Format audio.Format

	SystemPrompt string
	UserPrompt   string
}
