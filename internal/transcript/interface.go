package transcript

import "context"

// Source fetches the full transcript text for a video identifier.
type Source interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
