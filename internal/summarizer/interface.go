package summarizer

import "context"

// ChunkSummarizer summarizes a single chunk. An empty string with a nil error
// means the backend answered but produced no summary.
type ChunkSummarizer interface {
	SummarizeChunk(ctx context.Context, chunk string) (string, error)
}

// Summarizer chunks a transcript and summarizes every chunk in order.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
