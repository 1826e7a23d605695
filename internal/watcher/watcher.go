package watcher

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

var supportedExtensions = []string{".url", ".txt"}

type implWatcher struct {
	inboxDir    string
	handler     Handler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// Start blocks until ctx is cancelled, handling each new link file in turn
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started. Monitoring: %s", w.inboxDir)
	w.logger.Info(ctx, "Supported files: %s", strings.Join(supportedExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isLinkFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New link file detected: %s", event.Name)
			w.handleFile(ctx, event.Name)

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

func (w *implWatcher) handleFile(ctx context.Context, path string) {
	// Small delay so the writer can finish
	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		return
	}

	source, err := readSource(path)
	if err != nil {
		w.logger.Error(ctx, "Failed to read %s: %v", path, err)
		return
	}

	if err := w.handler(ctx, source); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}

// readSource returns the first non-empty line of the file.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open link file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read link file: %w", err)
	}
	return "", fmt.Errorf("link file %s is empty", filepath.Base(path))
}

func isLinkFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
