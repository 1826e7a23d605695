package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

// SummaryText is nil when the field is absent.
type hfResult struct {
	SummaryText *string `json:"summary_text"`
}

// HuggingFace calls a hosted summarization model on the Inference API.
type HuggingFace struct {
	endpoint  string
	token     string
	maxLength int
	minLength int
	http      *http.Client
}

var _ ChunkSummarizer = (*HuggingFace)(nil)

// NewHuggingFace creates a client for endpoint authenticated with token.
func NewHuggingFace(endpoint, token string, maxLength, minLength int, client *http.Client) *HuggingFace {
	if client == nil {
		client = &http.Client{}
	}
	return &HuggingFace{
		endpoint:  endpoint,
		token:     token,
		maxLength: maxLength,
		minLength: minLength,
		http:      client,
	}
}

// SummarizeChunk posts one chunk and returns the first result's summary_text.
func (h *HuggingFace) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: chunk,
		Parameters: hfParameters{
			MaxLength: h.maxLength,
			MinLength: h.minLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", transportError(fmt.Errorf("marshal payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", transportError(fmt.Errorf("new request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.http.Do(req)
	if err != nil {
		return "", transportError(fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", transportError(fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(payload))))
	}

	var results []hfResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", parseError(fmt.Errorf("decode response: %w", err))
	}

	if len(results) == 0 {
		return "", nil
	}
	if results[0].SummaryText == nil {
		return "", parseError(fmt.Errorf("first result has no summary_text"))
	}
	return *results[0].SummaryText, nil
}
