package summarizer

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

const systemInstructions = "You summarize parts of video transcripts. Reply with one short paragraph that keeps the facts in order."

// OpenAI summarizes chunks with an OpenAI-compatible chat completion API.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
}

var _ ChunkSummarizer = (*OpenAI)(nil)

// NewOpenAI creates a client; baseURL overrides the default API address when set.
func NewOpenAI(apiKey, baseURL, model string, maxTokens int, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAI{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (o *OpenAI) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstructions},
			{Role: openai.ChatMessageRoleUser, Content: chunk},
		},
		MaxTokens: o.maxTokens,
		// zero is dropped by omitempty
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", transportError(fmt.Errorf("create chat completion: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
