package transcript

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

type httpSource struct {
	urlTemplate string
	format      string
	client      *http.Client
	logger      logger.Logger
}

// URLPlaceholder marks where the video id goes in a transcript URL template.
const URLPlaceholder = "%s"

// expandURL substitutes the escaped id for the placeholder. Other percent
// sequences in the template are left as they are.
func expandURL(template, videoID string) string {
	return strings.Replace(template, URLPlaceholder, url.PathEscape(videoID), 1)
}

func (s *httpSource) Fetch(ctx context.Context, videoID string) (string, error) {
	target := expandURL(s.urlTemplate, videoID)
	s.logger.Info(ctx, "Fetching transcript from: %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "video-summarizer/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request transcript: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("transcript endpoint returned %s: %s", resp.Status, strings.TrimSpace(snippet(body)))
	}

	s.logger.Debug(ctx, "Raw transcript response: %s", snippet(body))

	return decode(s.format, body)
}
