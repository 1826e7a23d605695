package transcript

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/video-summarizer/internal/config"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

// New builds the Source selected by cfg.Source.
func New(cfg config.TranscriptConfig, exec executor.Executor, log logger.Logger) (Source, error) {
	switch cfg.Source {
	case config.SourceHTTP:
		return &httpSource{
			urlTemplate: cfg.URLTemplate,
			format:      cfg.Format,
			client:      &http.Client{Timeout: cfg.Timeout},
			logger:      log,
		}, nil
	case config.SourceProcess:
		if len(cfg.Command) == 0 {
			return nil, fmt.Errorf("transcript command is empty")
		}
		return &processSource{
			command:  cfg.Command,
			dir:      cfg.Dir,
			env:      cfg.Env,
			format:   cfg.Format,
			timeout:  cfg.Timeout,
			executor: exec,
			logger:   log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown transcript source %q", cfg.Source)
	}
}
