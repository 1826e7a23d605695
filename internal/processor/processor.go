package processor

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-summarizer/internal/apperrors"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/transcript"
)

// Stage names the furthest point a run reached.
type Stage string

const (
	StageStart               Stage = "start"
	StageIdentifierExtracted Stage = "identifier_extracted"
	StageTranscriptFetched   Stage = "transcript_fetched"
	StageSummarized          Stage = "summarized"
	StageDone                Stage = "done"
)

func newRunID() string {
	return uuid.NewString()
}

// Process orchestrates the entire pipeline. It stops at the first failure and
// returns the partially filled result together with the error.
func (p *implProcessor) Process(ctx context.Context, source string) (*Result, error) {
	startTime := time.Now()
	result := &Result{RunID: p.newRunID()}
	ctx = logger.WithRunID(ctx, result.RunID)

	p.logger.Debug(ctx, "Pipeline stage: %s", StageStart)

	// Step 1: Extract video identifier
	videoID, ok := transcript.ExtractVideoID(source)
	if !ok {
		return result, p.fail(ctx, StageStart, apperrors.ErrIdentifierNotFound(source))
	}
	result.VideoID = &videoID
	p.logger.Info(ctx, "Extracted video ID: %s", videoID)
	p.logger.Debug(ctx, "Pipeline stage: %s", StageIdentifierExtracted)

	// Step 2: Fetch transcript
	text, err := p.source.Fetch(ctx, videoID)
	if err != nil {
		return result, p.fail(ctx, StageIdentifierExtracted, apperrors.ErrTranscriptFetch(videoID, err))
	}
	result.Transcript = &text
	p.logger.Info(ctx, "Transcript fetched: %d characters", utf8.RuneCountInString(text))
	p.logger.Debug(ctx, "Pipeline stage: %s", StageTranscriptFetched)

	// Step 3: Summarize
	summary, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		return result, p.fail(ctx, StageTranscriptFetched, &apperrors.Error{
			Kind:    apperrors.KindOf(err),
			Stage:   "summarize",
			Message: "failed to generate summary",
			Err:     err,
		})
	}
	result.Summary = &summary
	p.logger.Debug(ctx, "Pipeline stage: %s", StageSummarized)

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Debug(ctx, "Pipeline stage: %s", StageDone)

	return result, nil
}

func (p *implProcessor) fail(ctx context.Context, reached Stage, err error) error {
	p.logger.Error(ctx, "Pipeline failed after stage %s: %v", reached, err)
	return err
}
