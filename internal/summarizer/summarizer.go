package summarizer

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/video-summarizer/internal/apperrors"
	"github.com/nguyentantai21042004/video-summarizer/internal/chunker"
)

// Summarize splits text into chunks and summarizes them one at a time, in
// document order. The first failing chunk aborts the run and no partial
// summary is returned.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	chunks := chunker.Split(text, s.chunkSize)
	s.logger.Info(ctx, "Summarizing %d chunks (max %d chars each)", len(chunks), s.chunkSize)

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "[%d/%d] Summarizing chunk (%d chars)", i+1, len(chunks), utf8.RuneCountInString(chunk))

		summary, err := s.backend.SummarizeChunk(ctx, chunk)
		if err != nil {
			return "", atChunk(err, i+1)
		}

		summary = strings.TrimSpace(summary)
		if summary == "" {
			s.logger.Warn(ctx, "[%d/%d] No summary returned for chunk", i+1, len(chunks))
			continue
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) == 0 {
		return "", apperrors.ErrNoSummaryProduced(len(chunks))
	}

	return strings.Join(summaries, s.separator), nil
}

// atChunk stamps the chunk position onto a backend failure. Untyped errors
// are treated as transport failures.
func atChunk(err error, chunk int) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		stamped := *appErr
		stamped.Chunk = chunk
		return &stamped
	}
	return apperrors.ErrSummarizationTransport(chunk, err)
}

func transportError(err error) error {
	return apperrors.ErrSummarizationTransport(0, err)
}

func parseError(err error) error {
	return apperrors.ErrSummarizationParse(0, err)
}
