package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/report"
	"github.com/nguyentantai21042004/audio-summarizer/internal/watcher"
	"github.com/nguyentantai21042004/audio-summarizer/internal/web"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	Addr string `help:"Listen address (defaults to server.addr)."`
}

func (c *ServeCmd) Run(a *app) error {
	ctx := context.Background()

	addr := c.Addr
	if addr == "" {
		addr = a.cfg.Server.Addr
	}

	srv := web.New(a.cfg, a.pipeline, a.summarizer, a.logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen(addr)
	}()

	a.logger.Info(ctx, "Audio summarizer listening on %s (format: %s, summarizer: %s)",
		addr, a.cfg.Format.Accepted, a.summarizer.Name())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		a.logger.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("listen: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.logger.Info(ctx, "Server stopped")
	return nil
}

type SummarizeCmd struct {
	File      string `arg:"" help:"Audio file to summarize."`
	Recording bool   `help:"Treat the file as a microphone recording."`
}

func (c *SummarizeCmd) Run(a *app) error {
	in := pipeline.Input{UploadPath: c.File}
	if c.Recording {
		in = pipeline.Input{RecordingPath: c.File}
	}
	return a.single(in)
}

type URLCmd struct {
	URL string `arg:"" name:"url" help:"HTTP(S) URL of the audio file."`
}

func (c *URLCmd) Run(a *app) error {
	return a.single(pipeline.Input{URL: c.URL})
}

func (a *app) single(in pipeline.Input) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := a.pipeline.Process(ctx, in, a.opts)
	if err != nil {
		return err
	}

	fmt.Println(res.Summary)
	return nil
}

type BatchCmd struct {
	Files  []string `arg:"" help:"Audio files to summarize, in order."`
	Report string   `help:"Also write the results to a .md, .html or .docx report." type:"path"`
}

func (c *BatchCmd) Run(a *app) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := a.pipeline.Batch(ctx, c.Files, a.opts)
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Print(report.Table("Batch summary", now, results))

	if c.Report != "" {
		if err := report.Write(c.Report, "Batch summary", now, results); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		a.logger.Info(ctx, "Report written: %s", c.Report)
	}

	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func countFailed(results []audio.Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

type WatchCmd struct{}

func (c *WatchCmd) Run(a *app) error {
	ctx := context.Background()

	if err := ensureDirectories(a.cfg.Paths.Inbox, a.cfg.Paths.Output); err != nil {
		return err
	}

	handler := watcher.SummarizeTo(a.pipeline, a.opts, a.cfg.Paths.Output, a.logger)
	w, err := watcher.New(a.cfg.Paths.Inbox, a.cfg.Format.Accepted, handler, a.logger, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	a.logger.Info(ctx, "Watching %s for new %s files, summaries go to %s",
		a.cfg.Paths.Inbox, a.cfg.Format.Accepted.Ext(), a.cfg.Paths.Output)
	a.logger.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		a.logger.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	a.logger.Info(ctx, "Shutting down gracefully...")
	cancel()
	<-done
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Clean(dir), 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
