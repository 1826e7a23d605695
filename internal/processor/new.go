package processor

import (
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/video-summarizer/internal/transcript"
)

type implProcessor struct {
	source     transcript.Source
	summarizer summarizer.Summarizer
	logger     logger.Logger
	newRunID   func() string
}

// New creates a new Processor instance
func New(source transcript.Source, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		source:     source,
		summarizer: sum,
		logger:     log,
		newRunID:   newRunID,
	}
}
