package pipeline

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// resolveSource turns the first non-empty input into a local artifact.
// Local paths pass through untouched; URLs are downloaded into a temporary
// directory owned by the returned artifact.
func (p *implPipeline) resolveSource(ctx context.Context, in Input) (*audio.Artifact, error) {
	switch {
	case in.UploadPath != "":
		return audio.NewArtifact(in.UploadPath, audio.OriginUpload), nil
	case in.RecordingPath != "":
		return audio.NewArtifact(in.RecordingPath, audio.OriginRecording), nil
	case strings.TrimSpace(in.URL) != "":
		return p.download(ctx, strings.TrimSpace(in.URL))
	}
	return nil, audio.NoInput("provide an audio file via upload, recording, or URL")
}
