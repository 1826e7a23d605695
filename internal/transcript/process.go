package transcript

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

// processSource delegates fetching to an external command that receives the
// video id as its last argument and prints the transcript on stdout.
type processSource struct {
	command  []string
	dir      string
	env      []string
	format   string
	timeout  time.Duration
	executor executor.Executor
	logger   logger.Logger
}

func (s *processSource) Fetch(ctx context.Context, videoID string) (string, error) {
	args := append(append([]string{}, s.command[1:]...), videoID)

	s.logger.Info(ctx, "Fetching transcript via: %s %v", s.command[0], args)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.executor.Run(ctx, executor.Command{
		Name: s.command[0],
		Args: args,
		Dir:  s.dir,
		Env:  s.env,
	})
	if err != nil {
		return "", fmt.Errorf("run transcript command: %w", err)
	}

	s.logger.Debug(ctx, "Transcript command finished in %s (%d bytes)", res.Duration, len(res.Stdout))

	return decode(s.format, res.Stdout)
}
