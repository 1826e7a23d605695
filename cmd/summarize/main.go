package main

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/video-summarizer/internal/config"
	"github.com/nguyentantai21042004/video-summarizer/internal/console"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/processor"
	"github.com/nguyentantai21042004/video-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/video-summarizer/internal/transcript"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	// Load configuration and credential
	cfg, err := config.Load("config.yaml")
	if err != nil {
		console.PrintError(os.Stdout, err)
		return 1
	}

	token, err := config.LoadCredential(cfg.Credentials.Path)
	if err != nil {
		console.PrintError(os.Stdout, err)
		return 1
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync(log)

	// Initialize dependencies
	source, err := transcript.New(cfg.Transcript, executor.New(), log)
	if err != nil {
		console.PrintError(os.Stdout, err)
		return 1
	}

	backend, err := summarizer.NewBackend(ctx, cfg, token)
	if err != nil {
		console.PrintError(os.Stdout, err)
		return 1
	}
	log.Debug(ctx, "Summarization backend: %s", cfg.Summarizer.Backend)

	proc := processor.New(source, summarizer.New(cfg.Summarizer, backend, log), log)

	input, err := console.Prompt(os.Stdin, os.Stdout, console.URLPrompt)
	if err != nil {
		console.PrintError(os.Stdout, err)
		return 1
	}

	result, err := proc.Process(ctx, input)
	if err != nil {
		console.PrintError(os.Stdout, err)
		return 1
	}

	console.PrintSummary(os.Stdout, *result.Summary)
	return 0
}
