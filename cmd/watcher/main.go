package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/video-summarizer/internal/config"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/processor"
	"github.com/nguyentantai21042004/video-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/video-summarizer/internal/transcript"
	"github.com/nguyentantai21042004/video-summarizer/internal/watcher"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	token, err := config.LoadCredential(cfg.Credentials.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credential: %v\n", err)
		return 1
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync(log)
	log.Info(ctx, "Video Summarizer inbox mode")
	log.Info(ctx, "Backend: %s, chunk size: %d", cfg.Summarizer.Backend, cfg.Summarizer.ChunkSize)
	log.Info(ctx, "Transcript source: %s (%s)", cfg.Transcript.Source, cfg.Transcript.Format)

	if err := os.MkdirAll(cfg.Watcher.Inbox, 0755); err != nil {
		log.Error(ctx, "Failed to create inbox %s: %v", cfg.Watcher.Inbox, err)
		return 1
	}

	// Initialize dependencies
	source, err := transcript.New(cfg.Transcript, executor.New(), log)
	if err != nil {
		log.Error(ctx, "Failed to create transcript source: %v", err)
		return 1
	}

	backend, err := summarizer.NewBackend(ctx, cfg, token)
	if err != nil {
		log.Error(ctx, "Failed to create summarization backend: %v", err)
		return 1
	}

	proc := processor.New(source, summarizer.New(cfg.Summarizer, backend, log), log)

	handler := func(ctx context.Context, input string) error {
		result, err := proc.Process(ctx, input)
		if err != nil {
			return err
		}
		log.Info(logger.WithRunID(ctx, result.RunID), "Video Summary for %s:\n%s", *result.VideoID, *result.Summary)
		return nil
	}

	w, err := watcher.New(cfg.Watcher.Inbox, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Drop .url or .txt files into %s. Press Ctrl+C to stop", cfg.Watcher.Inbox)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		cancel()
		return 1
	}

	cancel()
	log.Info(ctx, "Video Summarizer stopped")
	return 0
}
