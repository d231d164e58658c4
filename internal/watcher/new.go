package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher on inputDir that hands every new file matching the
// format policy to handler, at most maxConcurrent at a time.
func New(inputDir string, policy audio.Format, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Sequential unless configured otherwise
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inputDir:      inputDir,
		policy:        policy,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settle:        defaultSettleDelay,
	}, nil
}
