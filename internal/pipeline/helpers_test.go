package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
)

var fixedNow = time.Unix(1700000000, 0)

// recordingSummarizer remembers every request and answers like the demo stub.
type recordingSummarizer struct {
	mu       sync.Mutex
	requests []summarizer.Request
}

func (r *recordingSummarizer) Name() string { return "recording" }

func (r *recordingSummarizer) Summarize(ctx context.Context, req summarizer.Request) string {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()
	return summarizer.NewDemo().Summarize(ctx, req)
}

func (r *recordingSummarizer) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func newTestPipeline(t *testing.T, policy audio.Format) (*implPipeline, *recordingSummarizer) {
	t.Helper()

	cfg := &config.Config{
		Format:   config.FormatConfig{Policy: policy.String()},
		Download: config.DownloadConfig{TempDir: t.TempDir()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	sum := &recordingSummarizer{}
	log := logger.NewWithWriter(io.Discard, "debug", "text")
	p := New(cfg, sum, log, WithClock(func() time.Time { return fixedNow })).(*implPipeline)
	return p, sum
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
