package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

// releaseArtifact removes a downloaded artifact's temp dir, logs warning if fails
func (p *implPipeline) releaseArtifact(ctx context.Context, a *audio.Artifact) {
	if a == nil || !a.Transient() {
		return
	}
	if err := a.Release(); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp download %s: %v", a.Path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp download: %s", a.Path)
	}
}
