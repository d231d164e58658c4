package pipeline

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
)

type implPipeline struct {
	cfg        *config.Config
	policy     audio.Format
	summarizer summarizer.Summarizer
	logger     logger.Logger
	httpClient *http.Client
	now        func() time.Time
}

// Option customizes a Pipeline.
type Option func(*implPipeline)

// WithClock replaces time.Now, which names collision-free persisted copies.
func WithClock(now func() time.Time) Option {
	return func(p *implPipeline) {
		p.now = now
	}
}

// WithHTTPClient replaces the client used for URL downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(p *implPipeline) {
		p.httpClient = c
	}
}

// New creates a Pipeline. cfg must have been validated.
func New(cfg *config.Config, sum summarizer.Summarizer, log logger.Logger, opts ...Option) Pipeline {
	p := &implPipeline{
		cfg:        cfg,
		policy:     cfg.Format.Accepted,
		summarizer: sum,
		logger:     log,
		httpClient: &http.Client{Timeout: cfg.Download.Timeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
