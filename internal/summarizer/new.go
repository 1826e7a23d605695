package summarizer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/video-summarizer/internal/config"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

type implSummarizer struct {
	backend   ChunkSummarizer
	chunkSize int
	separator string
	logger    logger.Logger
}

// New creates a Summarizer that splits text into cfg.ChunkSize chunks and
// joins per-chunk summaries with cfg.Separator.
func New(cfg config.SummarizerConfig, backend ChunkSummarizer, log logger.Logger) Summarizer {
	return &implSummarizer{
		backend:   backend,
		chunkSize: cfg.ChunkSize,
		separator: cfg.Separator,
		logger:    log,
	}
}

// NewBackend builds the ChunkSummarizer selected by cfg.Summarizer.Backend.
func NewBackend(ctx context.Context, cfg *config.Config, token string) (ChunkSummarizer, error) {
	httpClient := &http.Client{Timeout: cfg.Summarizer.Timeout}

	switch cfg.Summarizer.Backend {
	case config.BackendHuggingFace:
		return NewHuggingFace(cfg.Summarizer.Endpoint, token, cfg.Summarizer.MaxLength, cfg.Summarizer.MinLength, httpClient), nil
	case config.BackendGemini:
		return NewGemini(ctx, token, cfg.Gemini.Model, cfg.Summarizer.MaxLength, httpClient)
	case config.BackendOpenAI:
		return NewOpenAI(token, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.Summarizer.MaxLength, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend %q", cfg.Summarizer.Backend)
	}
}
