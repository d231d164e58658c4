package watcher

import "context"

// Watcher defines the interface for watch-folder intake
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles one new audio file
type EventHandler func(ctx context.Context, filePath string) error
