package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindIdentifierNotFound
	KindTranscriptFetch
	KindSummarizationTransport
	KindSummarizationParse
	KindNoSummaryProduced
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "CONFIG_ERROR"
	case KindIdentifierNotFound:
		return "IDENTIFIER_NOT_FOUND"
	case KindTranscriptFetch:
		return "TRANSCRIPT_FETCH_ERROR"
	case KindSummarizationTransport:
		return "SUMMARIZATION_TRANSPORT_ERROR"
	case KindSummarizationParse:
		return "SUMMARIZATION_PARSE_ERROR"
	case KindNoSummaryProduced:
		return "NO_SUMMARY_PRODUCED"
	default:
		return "UNKNOWN"
	}
}

// Error is the typed failure returned across package boundaries.
// Chunk is the 1-based chunk position for summarization failures, 0 otherwise.
type Error struct {
	Kind    Kind
	Stage   string
	Chunk   int
	Message string
	Err     error
}

// Error implements error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Chunk > 0 {
		msg = fmt.Sprintf("%s (chunk %d)", msg, e.Chunk)
	}
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		var appErr *Error
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Kind == kind {
			return true
		}
		err = appErr.Err
	}
	return false
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func ErrConfig(message string, err error) *Error {
	return &Error{Kind: KindConfig, Stage: "config", Message: message, Err: err}
}

func ErrIdentifierNotFound(source string) *Error {
	return &Error{
		Kind:    KindIdentifierNotFound,
		Stage:   "extract identifier",
		Message: fmt.Sprintf("no video identifier found in %q", source),
	}
}

func ErrTranscriptFetch(videoID string, err error) *Error {
	return &Error{
		Kind:    KindTranscriptFetch,
		Stage:   "fetch transcript",
		Message: fmt.Sprintf("failed to fetch transcript for %s", videoID),
		Err:     err,
	}
}

func ErrSummarizationTransport(chunk int, err error) *Error {
	return &Error{
		Kind:    KindSummarizationTransport,
		Stage:   "summarize",
		Chunk:   chunk,
		Message: "request failed",
		Err:     err,
	}
}

func ErrSummarizationParse(chunk int, err error) *Error {
	return &Error{
		Kind:    KindSummarizationParse,
		Stage:   "summarize",
		Chunk:   chunk,
		Message: "parse response failed",
		Err:     err,
	}
}

func ErrNoSummaryProduced(chunks int) *Error {
	return &Error{
		Kind:    KindNoSummaryProduced,
		Stage:   "summarize",
		Message: fmt.Sprintf("no summary produced from %d chunks", chunks),
	}
}
