package processor

import "context"

// Result is the outcome of one pipeline run. Each field is set as soon as its
// stage succeeds, so a failed run still exposes what was obtained.
type Result struct {
	RunID      string
	VideoID    *string
	Transcript *string
	Summary    *string
}

// Processor runs the extract -> fetch -> summarize pipeline for one source string.
type Processor interface {
	Process(ctx context.Context, source string) (*Result, error)
}
