package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher on inboxDir. Files are handled one at a time.
func New(inboxDir string, handler Handler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir:    inboxDir,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: defaultSettleDelay,
	}, nil
}
