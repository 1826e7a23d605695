package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "transport with chunk",
			err:  ErrSummarizationTransport(2, errors.New("connection refused")),
			want: "[SUMMARIZATION_TRANSPORT_ERROR] summarize: request failed (chunk 2): connection refused",
		},
		{
			name: "no cause",
			err:  ErrNoSummaryProduced(3),
			want: "[NO_SUMMARY_PRODUCED] summarize: no summary produced from 3 chunks",
		},
		{
			name: "identifier",
			err:  ErrIdentifierNotFound("nope"),
			want: `[IDENTIFIER_NOT_FOUND] extract identifier: no video identifier found in "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsWalksChain(t *testing.T) {
	inner := ErrSummarizationParse(1, errors.New("bad json"))
	outer := fmt.Errorf("process: %w", &Error{Kind: KindUnknown, Stage: "summarize", Message: "failed", Err: inner})

	if !Is(outer, KindSummarizationParse) {
		t.Error("Is() should find the inner parse error")
	}
	if Is(outer, KindSummarizationTransport) {
		t.Error("Is() matched a kind that is not in the chain")
	}
	if Is(errors.New("plain"), KindConfig) {
		t.Error("Is() matched a plain error")
	}
	if !strings.Contains(outer.Error(), "bad json") {
		t.Errorf("full chain missing root cause: %s", outer.Error())
	}
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrConfig("read credential", errors.New("missing")))
	if got := KindOf(err); got != KindConfig {
		t.Errorf("KindOf() = %v, want %v", got, KindConfig)
	}
	if got := KindOf(errors.New("x")); got != KindUnknown {
		t.Errorf("KindOf() = %v, want %v", got, KindUnknown)
	}
}
