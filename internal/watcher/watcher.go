package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

type implWatcher struct {
	inputDir      string
	policy        audio.Format
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settle        time.Duration
	wg            sync.WaitGroup
}

// Start begins monitoring the input directory for new audio files
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Accepted format: %s", w.policy.Ext())

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring file outside format policy: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio detected: %s", event.Name)

			// Small delay to ensure file is fully written
			time.Sleep(w.settle)

			// Acquire semaphore slot (blocks if max concurrent reached)
			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isAudioFile checks the extension against the format policy
func (w *implWatcher) isAudioFile(path string) bool {
	return w.policy.Matches(path)
}
