package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const chunkPrompt = `Summarize the following part of a video transcript in one short paragraph.
Keep the facts and the order in which they appear. Reply with the summary only.

Transcript:
---
%s
---`

// Gemini summarizes chunks with a Gemini model.
type Gemini struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

var _ ChunkSummarizer = (*Gemini)(nil)

// NewGemini creates a Gemini-backed ChunkSummarizer using apiKey.
func NewGemini(ctx context.Context, apiKey, model string, maxTokens int, httpClient *http.Client) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
	}, nil
}

func (g *Gemini) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(chunkPrompt, chunk)), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", transportError(fmt.Errorf("generate content: %w", err))
	}

	return geminiText(result)
}

// geminiText joins the text parts of the first candidate.
func geminiText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", nil
	}

	content := result.Candidates[0].Content
	if content == nil {
		return "", parseError(fmt.Errorf("empty response from Gemini (finish reason %s)", result.Candidates[0].FinishReason))
	}

	var text strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", parseError(fmt.Errorf("gemini candidate has no text parts"))
	}
	return text.String(), nil
}
