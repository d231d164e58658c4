package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
)

// Process orchestrates the single-item pipeline
func (p *implPipeline) Process(ctx context.Context, in Input, opts Options) (audio.Result, error) {
	startTime := time.Now()

	// Step 1: Resolve the input to a local file
	art, err := p.resolveSource(ctx, in)
	if err != nil {
		return audio.Result{}, err
	}
	defer p.releaseArtifact(ctx, art)

	p.logger.Info(ctx, "Summarizing %s audio: %s", art.Origin, art.Path)

	// Steps 2-5: gate, persist, encode, summarize
	res, err := p.summarizeArtifact(ctx, art, opts)
	if err != nil {
		return audio.Result{}, err
	}

	p.logger.Info(ctx, "Summary ready for %s (%s)", res.Source, time.Since(startTime))
	return res, nil
}

// summarizeArtifact runs every step after source resolution. Only the
// format gate, persistence and encoding can fail; the summarizer folds its
// own failures into the summary text.
func (p *implPipeline) summarizeArtifact(ctx context.Context, art *audio.Artifact, opts Options) (audio.Result, error) {
	if err := p.checkFormat(art.Path); err != nil {
		return audio.Result{}, err
	}

	usedPath, err := p.persistCopy(ctx, art.Path, opts.SaveDir)
	if err != nil {
		return audio.Result{}, err
	}

	payload, err := encodePayload(usedPath)
	if err != nil {
		return audio.Result{}, err
	}

	p.logger.Debug(ctx, "Encoded %s: %d base64 bytes", usedPath, len(payload))

	summary := p.summarizer.Summarize(ctx, summarizer.Request{
		Name:         filepath.Base(usedPath),
		Audio:        payload,
		Format:       p.policy,
		SystemPrompt: opts.SystemPrompt,
		UserPrompt:   opts.UserPrompt,
	})

	return audio.Result{Source: usedPath, Summary: summary}, nil
}
